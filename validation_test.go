package networth

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"1000.00", "1000", false},
		{" 500.50 ", "500.5", false},
		{"1,500.50", "1500.5", false},
		{"-42", "-42", false},
		{"0", "0", false},
		{"", "", true},
		{"   ", "", true},
		{"abc", "", true},
		{"12.3.4", "", true},
		{"$100", "", true},
		{"+7.25", "7.25", false},
		{"-1,234,567.891", "-1234567.891", false},
		{"1,5", "", true},
		{"1,,0", "", true},
		{"12,34.5", "", true},
		{",500", "", true},
		{"1,500,", "", true},
		{"1234,567", "", true},
		{"1e3", "", true},
		{"1.5E-2", "", true},
		{".5", "", true},
		{"5.", "", true},
		{"-", "", true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if tc.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) || verr.Kind != InvalidAmount || verr.Value != tc.input {
					t.Errorf("ParseAmount(%q) error = %#v want an InvalidAmount ValidationError", tc.input, err)
				}
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("errors.Is(%v, ErrInvalidAmount) = false", err)
				}
				return
			}
			if !got.Equal(d(tc.want)) {
				t.Errorf("ParseAmount(%q) = %v want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "name", Kind: InvalidName, Value: " "}
	if got, want := err.Error(), `invalid name " ": must not be blank`; got != want {
		t.Errorf("Error() = %q want %q", got, want)
	}
	if errors.Is(err, ErrInvalidAmount) {
		t.Errorf("an InvalidName error must not match ErrInvalidAmount")
	}
	if got := InvalidAmount.String(); got != "InvalidAmount" {
		t.Errorf("InvalidAmount.String() = %q", got)
	}
}
