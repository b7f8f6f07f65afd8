package renderer

import (
	"os"
	"time"

	"github.com/etnz/networth"
)

// Now is the current time used in reports.
// NETWORTH_TESTING_NOW overrides it, so that outputs are reproducible.
func Now() time.Time {
	if os.Getenv("NETWORTH_TESTING_NOW") != "" {
		t, err := time.Parse("2006-01-02 15:04:05", os.Getenv("NETWORTH_TESTING_NOW"))
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}

// Mask replaces figures when numbers are hidden.
const Mask = "****"

// Dashboard is the home screen of the tracker, ready to render.
type Dashboard struct {
	Title       string       `json:"title"`
	AsOf        string       `json:"asOf"`
	NetWorth    string       `json:"netWorth"`
	TotalAssets string       `json:"totalAssets"`
	TotalLoans  string       `json:"totalLoans"`
	ReturnRate  string       `json:"returnRate"`
	LastUpdate  string       `json:"lastUpdate"`
	Change      ChangeLine   `json:"change"`
	Windows     []WindowTab  `json:"windows"`
	Hidden      bool         `json:"hidden"`
	Counts      RecordCounts `json:"counts"`
}

// ChangeLine is the period-over-period change under the net worth.
type ChangeLine struct {
	Up          bool   `json:"up"`
	Arrow       string `json:"arrow"`
	Amount      string `json:"amount"`
	Percent     string `json:"percent"`
	Description string `json:"description"`
}

// WindowTab is one of the selectable windows.
type WindowTab struct {
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// RecordCounts is the number of records in each collection.
type RecordCounts struct {
	Assets int `json:"assets"`
	Loans  int `json:"loans"`
}

// NewDashboard builds the dashboard of a ledger for the selected window.
// When hidden is true every figure is replaced by Mask.
func NewDashboard(l *networth.Ledger, selected networth.Window, hidden bool) *Dashboard {
	snap := l.Snapshot()
	change := l.ChangeForPeriod(selected)

	d := &Dashboard{
		Title:       "Net Worth",
		AsOf:        Now().Format("2006-01-02 15:04"),
		NetWorth:    mask(snap.NetWorth.String(), hidden),
		TotalAssets: mask(snap.TotalAssets.String(), hidden),
		TotalLoans:  mask(snap.TotalLoans.String(), hidden),
		ReturnRate:  mask(l.ReturnRate().String(), hidden),
		LastUpdate:  snap.LastUpdate.Format("15:04:05"),
		Change: ChangeLine{
			Up:          !change.IsLoss(),
			Arrow:       "▲",
			Amount:      mask(change.Amount.Abs().String(), hidden),
			Percent:     mask(change.Percentage.Abs().String(), hidden),
			Description: selected.Description(),
		},
		Hidden: hidden,
		Counts: RecordCounts{Assets: len(snap.Assets), Loans: len(snap.Loans)},
	}
	if change.IsLoss() {
		d.Change.Arrow = "▼"
	}
	for _, w := range networth.Windows() {
		d.Windows = append(d.Windows, WindowTab{Label: w.String(), Selected: w == selected})
	}
	return d
}
