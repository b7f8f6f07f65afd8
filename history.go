package networth

import (
	"github.com/etnz/networth/date"
	"github.com/shopspring/decimal"
)

// Change is the variation of the net worth over a Window.
type Change struct {
	Window     Window
	Amount     Money
	Percentage Percent
}

// IsLoss reports whether the change is a decrease.
func (c Change) IsLoss() bool { return c.Amount.IsNegative() }

// HistoricalDataSource answers the questions that require past values of the portfolio.
//
// A real implementation diffs historical snapshots at the window boundaries
// (see Window.Range); MockHistory returns canned figures.
type HistoricalDataSource interface {
	// ChangeForPeriod returns the change over w.
	ChangeForPeriod(w Window) Change
	// Series returns the chart series of the portfolio value, ending on 'today'.
	Series(today date.Date) *date.History[Money]
	// ReturnRate returns the overall return rate of the portfolio.
	ReturnRate() Percent
}

// MockHistory is a HistoricalDataSource returning static figures.
type MockHistory struct {
	Currency string
}

// mockChanges are the canned (amount, percentage) pairs for each window.
var mockChanges = map[Window]struct {
	amount  string
	percent Percent
}{
	Day:         {"100.50", 5.25},
	Week:        {"520.30", 25.75},
	Month:       {"1200.80", 55.40},
	ThreeMonths: {"2500.60", 115.80},
	Year:        {"4980.40", 226.02},
	All:         {"6000.00", 275.50},
}

// mockSeries is the canned chart, oldest first.
var mockSeries = []string{"2000", "2100", "4000", "7000", "6500", "5000", "7183.93"}

func (h MockHistory) ChangeForPeriod(w Window) Change {
	c, ok := mockChanges[w]
	if !ok {
		return Change{Window: w, Amount: M(0, h.Currency)}
	}
	return Change{
		Window:     w,
		Amount:     M(decimal.RequireFromString(c.amount), h.Currency),
		Percentage: c.percent,
	}
}

// Series returns the canned values on consecutive days ending on 'today'.
func (h MockHistory) Series(today date.Date) *date.History[Money] {
	series := new(date.History[Money])
	first := today.Add(1 - len(mockSeries))
	for i, v := range mockSeries {
		series.Append(first.Add(i), M(decimal.RequireFromString(v), h.Currency))
	}
	return series
}

// ReturnRate is never computed from real data.
func (h MockHistory) ReturnRate() Percent { return 0 }
