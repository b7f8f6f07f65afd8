package networth

import (
	"fmt"
	"strings"

	"github.com/etnz/networth/date"
)

// Window is a named time range ending today, used to ask for a change figure.
type Window int

const (
	Day Window = iota
	Week
	Month
	ThreeMonths
	Year
	All
)

// Windows returns all windows, from the shortest to the longest.
func Windows() []Window { return []Window{Day, Week, Month, ThreeMonths, Year, All} }

// String returns the short label of the window (e.g., "1D", "3M", "All").
func (w Window) String() string {
	switch w {
	case Day:
		return "1D"
	case Week:
		return "1W"
	case Month:
		return "1M"
	case ThreeMonths:
		return "3M"
	case Year:
		return "1Y"
	case All:
		return "All"
	default:
		return fmt.Sprintf("Window(%d)", int(w))
	}
}

// Description returns the human description of the window (e.g., "Past Week").
func (w Window) Description() string {
	switch w {
	case Day:
		return "Past Day"
	case Week:
		return "Past Week"
	case Month:
		return "Past Month"
	case ThreeMonths:
		return "Past 3 Months"
	case Year:
		return "Past Year"
	case All:
		return "All Time"
	default:
		return "Unknown Period"
	}
}

// Range returns the range of days covered by the window ending on 'today'.
// All starts at the zero Date.
func (w Window) Range(today date.Date) date.Range {
	switch w {
	case Day:
		return date.NewRange(today.Add(-1), today)
	case Week:
		return date.NewRange(today.Add(-7), today)
	case Month:
		return date.NewRange(today.AddMonths(-1), today)
	case ThreeMonths:
		return date.NewRange(today.AddMonths(-3), today)
	case Year:
		return date.NewRange(today.AddMonths(-12), today)
	default:
		return date.Range{To: today}
	}
}

// ParseWindow parses a window from its label ("1D", "3M"...) or its name
// ("day", "3months"...), case insensitive.
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1d", "day", "daily":
		return Day, nil
	case "1w", "week", "weekly":
		return Week, nil
	case "1m", "month", "monthly":
		return Month, nil
	case "3m", "3months", "threemonths", "quarter":
		return ThreeMonths, nil
	case "1y", "year", "yearly":
		return Year, nil
	case "all", "max":
		return All, nil
	default:
		return Year, fmt.Errorf("unknown window %q, want one of 1D, 1W, 1M, 3M, 1Y, All", s)
	}
}
