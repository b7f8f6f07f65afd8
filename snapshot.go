package networth

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Snapshot is a point-in-time copy of a ledger's records and aggregates.
type Snapshot struct {
	Currency    string
	Assets      []AssetRecord
	Loans       []LoanRecord
	TotalAssets Money
	TotalLoans  Money
	NetWorth    Money
	LastUpdate  time.Time
}

// Snapshot returns a consistent copy of the ledger state.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot{
		Currency:    l.currency,
		Assets:      slices.Clone(l.assets),
		Loans:       slices.Clone(l.loans),
		TotalAssets: l.totalAssets,
		TotalLoans:  l.totalLoans,
		NetWorth:    l.totalAssets.Sub(l.totalLoans),
		LastUpdate:  l.lastUpdate,
	}
}

// MarshalJSON encodes the snapshot with amounts as plain numbers in the snapshot currency.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("currency", s.Currency)
	w.Append("assets", nonNil(s.Assets))
	w.Append("loans", nonNil(s.Loans))
	w.Append("totalAssets", s.TotalAssets.Decimal())
	w.Append("totalLoans", s.TotalLoans.Decimal())
	w.Append("netWorth", s.NetWorth.Decimal())
	w.Append("lastUpdate", s.LastUpdate.Format(time.RFC3339))
	return w.MarshalJSON()
}

// nonNil makes empty collections encode as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
