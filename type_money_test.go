package networth

import "testing"

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		money      Money
		want       string
		wantSigned string
		wantFixed  string
	}{
		{M(d("1500.50"), "USD"), "$1,500.50", "+$1,500.50", "1500.50"},
		{M(d("-200000"), "USD"), "-$200,000.00", "-$200,000.00", "-200000.00"},
		{M(0, "USD"), "$0.00", "-", "0.00"},
		{M(d("7183.93"), "USD"), "$7,183.93", "+$7,183.93", "7183.93"},
		{M(d("0.999"), "USD"), "$1.00", "+$1.00", "1.00"},
		{M(d("-0.009"), "USD"), "-$0.01", "-$0.01", "-0.01"},
		{M(d("1.005"), "USD"), "$1.01", "+$1.01", "1.01"},
		{M(d("100000000000000000"), "USD"), "$100,000,000,000,000,000.00", "+$100,000,000,000,000,000.00", "100000000000000000.00"},
		{M(d("-123456789012345678.9"), "USD"), "-$123,456,789,012,345,678.90", "-$123,456,789,012,345,678.90", "-123456789012345678.90"},
		{M(d("92233720368547758.07"), "USD"), "$92,233,720,368,547,758.07", "+$92,233,720,368,547,758.07", "92233720368547758.07"},
	}
	for _, tc := range testCases {
		if got := tc.money.String(); got != tc.want {
			t.Errorf("String() = %q want %q", got, tc.want)
		}
		if got := tc.money.SignedString(); got != tc.wantSigned {
			t.Errorf("SignedString() = %q want %q", got, tc.wantSigned)
		}
		if got := tc.money.StringFixed(); got != tc.wantFixed {
			t.Errorf("StringFixed() = %q want %q", got, tc.wantFixed)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	sum := USD(0.1).Add(USD(0.2))
	if !sum.Equal(M(d("0.3"), "USD")) {
		t.Errorf("0.1 + 0.2 = %v want exactly 0.3", sum.Decimal())
	}
	// the empty currency is weak.
	if got := M(5, "").Add(USD(1)); got.Currency() != "USD" {
		t.Errorf("Add() currency = %q want USD", got.Currency())
	}
	if got := USD(-3).Abs(); !got.Equal(USD(3)) {
		t.Errorf("Abs() = %v want $3.00", got)
	}
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Add() of USD and EUR should panic")
		}
	}()
	USD(1).Add(M(1, "EUR"))
}

func TestPercent(t *testing.T) {
	if got := Percent(226.02).String(); got != "226.02%" {
		t.Errorf("String() = %q", got)
	}
	if got := Percent(-5.25).SignedString(); got != "-5.25%" {
		t.Errorf("SignedString() = %q", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() of zero = %q want -", got)
	}
	if got := Percent(-5.25).Abs(); !got.Equal(5.25) {
		t.Errorf("Abs() = %v", got)
	}
}
