package networth

import (
	"sync"
	"time"
)

// EventKind identifies the mutation that triggered an Event.
type EventKind int

const (
	AssetAdded EventKind = iota
	LoanAdded
	Refreshed
)

func (k EventKind) String() string {
	switch k {
	case AssetAdded:
		return "asset-added"
	case LoanAdded:
		return "loan-added"
	case Refreshed:
		return "refreshed"
	default:
		return "unknown"
	}
}

// Event describes a ledger mutation. Asset is set for AssetAdded, Loan for LoanAdded.
type Event struct {
	Kind  EventKind
	Asset AssetRecord
	Loan  LoanRecord
	At    time.Time
}

// Subscribe registers fn to be called after each mutation of the ledger, until the
// returned cancel function is called. Subscribers are called in subscription order.
func (l *Ledger) Subscribe(fn func(Event)) (cancel func()) {
	l.mu.Lock()
	id := l.subscribers.add(fn)
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.subscribers.remove(id)
			l.mu.Unlock()
		})
	}
}

type subscriber struct {
	id int
	fn func(Event)
}

// subscribers is an ordered registry of callbacks. It is guarded by the ledger mutex.
type subscribers struct {
	next int
	all  []subscriber
}

func (s *subscribers) add(fn func(Event)) int {
	s.next++
	s.all = append(s.all, subscriber{id: s.next, fn: fn})
	return s.next
}

func (s *subscribers) remove(id int) {
	for i, sub := range s.all {
		if sub.id == id {
			s.all = append(s.all[:i:i], s.all[i+1:]...)
			return
		}
	}
}

// list returns the current callbacks, so they can be called without holding the lock.
func (s *subscribers) list() []func(Event) {
	fns := make([]func(Event), len(s.all))
	for i, sub := range s.all {
		fns[i] = sub.fn
	}
	return fns
}

func notify(fns []func(Event), ev Event) {
	for _, fn := range fns {
		fn(ev)
	}
}
