package networth

import (
	"testing"

	"github.com/etnz/networth/date"
)

func TestParseWindow(t *testing.T) {
	testCases := []struct {
		input   string
		want    Window
		wantErr bool
	}{
		{"1D", Day, false},
		{"1w", Week, false},
		{"month", Month, false},
		{" 3M ", ThreeMonths, false},
		{"3months", ThreeMonths, false},
		{"1Y", Year, false},
		{"ALL", All, false},
		{"2Y", Year, true},
		{"", Year, true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseWindow(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseWindow(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseWindow(%q) = %v want %v", tc.input, got, tc.want)
			}
		})
	}
}

// TestWindowString checks that every label parses back to its window.
func TestWindowString(t *testing.T) {
	want := []string{"1D", "1W", "1M", "3M", "1Y", "All"}
	for i, w := range Windows() {
		if w.String() != want[i] {
			t.Errorf("Windows()[%d].String() = %q want %q", i, w.String(), want[i])
		}
		back, err := ParseWindow(w.String())
		if err != nil || back != w {
			t.Errorf("ParseWindow(%q) = %v, %v want %v", w.String(), back, err, w)
		}
		if w.Description() == "Unknown Period" {
			t.Errorf("%v has no description", w)
		}
	}
	if got := Window(42).String(); got != "Window(42)" {
		t.Errorf("Window(42).String() = %q", got)
	}
}

func TestWindowRange(t *testing.T) {
	today := date.MustParse("2025-05-15")
	testCases := []struct {
		window   Window
		wantFrom string
	}{
		{Day, "2025-05-14"},
		{Week, "2025-05-08"},
		{Month, "2025-04-15"},
		{ThreeMonths, "2025-02-15"},
		{Year, "2024-05-15"},
	}
	for _, tc := range testCases {
		r := tc.window.Range(today)
		if r.From.String() != tc.wantFrom || r.To != today {
			t.Errorf("%v.Range(%v) = %v want %s..%v", tc.window, today, r, tc.wantFrom, today)
		}
	}
	if r := All.Range(today); !r.From.IsZero() || r.To != today {
		t.Errorf("All.Range(%v) = %v want zero date..%v", today, r, today)
	}
}
