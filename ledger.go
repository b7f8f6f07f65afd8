package networth

import (
	"fmt"
	"iter"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/etnz/networth/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger holds the user-entered asset and loan records and derives their aggregates.
//
// Records are kept in insertion order and are never updated nor deleted. Aggregates
// are recomputed from the records after every mutation.
//
// A Ledger is safe for concurrent use. Subscribers are notified synchronously on
// the mutating goroutine, once the mutation is visible.
type Ledger struct {
	mu       sync.Mutex
	currency string
	now      func() time.Time
	newID    func() uuid.UUID
	history  HistoricalDataSource

	assets []AssetRecord
	loans  []LoanRecord
	ids    map[uuid.UUID]struct{}

	totalAssets Money
	totalLoans  Money
	lastUpdate  time.Time

	subscribers subscribers
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithCurrency sets the currency of all amounts in the ledger.
func WithCurrency(currency string) Option { return func(l *Ledger) { l.currency = currency } }

// WithClock sets the function used to timestamp records and updates.
func WithClock(now func() time.Time) Option { return func(l *Ledger) { l.now = now } }

// WithHistory sets the source of historical figures. Defaults to MockHistory.
func WithHistory(h HistoricalDataSource) Option { return func(l *Ledger) { l.history = h } }

// WithIDs sets the record id generator. Defaults to uuid.New.
func WithIDs(newID func() uuid.UUID) Option { return func(l *Ledger) { l.newID = newID } }

// NewLedger creates an empty ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		currency: DefaultCurrency,
		now:      time.Now,
		newID:    uuid.New,
		ids:      make(map[uuid.UUID]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.history == nil {
		l.history = MockHistory{Currency: l.currency}
	}
	l.totalAssets, l.totalLoans = M(0, l.currency), M(0, l.currency)
	l.lastUpdate = l.now()
	return l
}

// Currency returns the currency of the ledger amounts.
func (l *Ledger) Currency() string { return l.currency }

// AddAsset records a cash asset. See AddAssetOf.
func (l *Ledger) AddAsset(name string, amount decimal.Decimal) (AssetRecord, error) {
	return l.AddAssetOf(Cash, name, amount)
}

// AddAssetOf records an asset of the given kind, stamped with the current time.
//
// It fails with an InvalidName ValidationError if the name is blank, or when the id
// generator keeps returning used ids. Zero and negative amounts are accepted.
func (l *Ledger) AddAssetOf(kind AssetKind, name string, amount decimal.Decimal) (AssetRecord, error) {
	name, err := validateName(name)
	if err != nil {
		return AssetRecord{}, err
	}

	l.mu.Lock()
	id, err := l.uniqueID()
	if err != nil {
		l.mu.Unlock()
		return AssetRecord{}, err
	}
	rec := AssetRecord{
		id:      id,
		kind:    kind,
		name:    name,
		amount:  M(amount, l.currency),
		created: l.now(),
	}
	l.assets = append(l.assets, rec)
	l.recompute()
	l.touch()
	ev := Event{Kind: AssetAdded, Asset: rec, At: l.lastUpdate}
	subs := l.subscribers.list()
	l.mu.Unlock()

	log.Printf("add-asset id=%s kind=%s name=%q amount=%s", rec.id, rec.kind, rec.name, rec.amount.StringFixed())
	notify(subs, ev)
	return rec, nil
}

// AddLoan records a loan, stamped with the current time.
//
// Unlike AddAsset it leaves LastUpdateTime untouched, but subscribers are notified.
func (l *Ledger) AddLoan(name string, amount decimal.Decimal) (LoanRecord, error) {
	name, err := validateName(name)
	if err != nil {
		return LoanRecord{}, err
	}

	l.mu.Lock()
	id, err := l.uniqueID()
	if err != nil {
		l.mu.Unlock()
		return LoanRecord{}, err
	}
	rec := LoanRecord{
		id:      id,
		name:    name,
		amount:  M(amount, l.currency),
		created: l.now(),
	}
	l.loans = append(l.loans, rec)
	l.recompute()
	ev := Event{Kind: LoanAdded, Loan: rec, At: rec.created}
	subs := l.subscribers.list()
	l.mu.Unlock()

	log.Printf("add-loan id=%s name=%q amount=%s", rec.id, rec.name, rec.amount.StringFixed())
	notify(subs, ev)
	return rec, nil
}

// Refresh recomputes the aggregates and the update time without adding data.
func (l *Ledger) Refresh() {
	l.mu.Lock()
	l.recompute()
	l.touch()
	ev := Event{Kind: Refreshed, At: l.lastUpdate}
	subs := l.subscribers.list()
	nAssets, nLoans := len(l.assets), len(l.loans)
	l.mu.Unlock()

	log.Printf("refresh assets=%d loans=%d", nAssets, nLoans)
	notify(subs, ev)
}

// TotalAssetValue returns the sum of all asset amounts, zero if there is none.
func (l *Ledger) TotalAssetValue() Money {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalAssets
}

// TotalLoanValue returns the sum of all loan amounts, zero if there is none.
func (l *Ledger) TotalLoanValue() Money {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalLoans
}

// NetWorth returns the total asset value minus the total loan value.
func (l *Ledger) NetWorth() Money {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalAssets.Sub(l.totalLoans)
}

// LastUpdateTime returns the time of the last asset mutation or refresh.
func (l *Ledger) LastUpdateTime() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastUpdate
}

// Assets returns an iterator over a copy of the asset records, in insertion order.
func (l *Ledger) Assets() iter.Seq[AssetRecord] {
	l.mu.Lock()
	assets := slices.Clone(l.assets)
	l.mu.Unlock()
	return slices.Values(assets)
}

// Loans returns an iterator over a copy of the loan records, in insertion order.
func (l *Ledger) Loans() iter.Seq[LoanRecord] {
	l.mu.Lock()
	loans := slices.Clone(l.loans)
	l.mu.Unlock()
	return slices.Values(loans)
}

// ChangeForPeriod returns the change of the portfolio over w.
func (l *Ledger) ChangeForPeriod(w Window) Change { return l.history.ChangeForPeriod(w) }

// Series returns the chart series of the portfolio value, ending today.
func (l *Ledger) Series() *date.History[Money] { return l.history.Series(date.Of(l.now())) }

// ReturnRate returns the overall return rate of the portfolio.
func (l *Ledger) ReturnRate() Percent { return l.history.ReturnRate() }

// recompute folds the records into the totals. l.mu must be held.
func (l *Ledger) recompute() {
	assets := M(0, l.currency)
	for _, a := range l.assets {
		assets = assets.Add(a.amount)
	}
	loans := M(0, l.currency)
	for _, x := range l.loans {
		loans = loans.Add(x.amount)
	}
	l.totalAssets, l.totalLoans = assets, loans
}

// touch moves the update time forward, never backward. l.mu must be held.
func (l *Ledger) touch() {
	if now := l.now(); now.After(l.lastUpdate) {
		l.lastUpdate = now
	}
}

// maxIDAttempts bounds the draws of uniqueID.
const maxIDAttempts = 16

// uniqueID returns an id never used by any record of this ledger. l.mu must be held.
func (l *Ledger) uniqueID() (uuid.UUID, error) {
	for range maxIDAttempts {
		id := l.newID()
		if _, used := l.ids[id]; !used {
			l.ids[id] = struct{}{}
			return id, nil
		}
		log.Printf("id collision id=%s, retrying", id)
	}
	return uuid.Nil, fmt.Errorf("cannot generate a unique record id after %d attempts", maxIDAttempts)
}
