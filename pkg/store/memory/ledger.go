package memory

import (
	"sync"
	"time"

	"github.com/costlens/costlens/pkg/models/domain"
)

// Ledger is the append-only record of realized savings events. Entries are
// never mutated or removed once accepted; there is no deduplication.
type Ledger struct {
	mu     sync.RWMutex
	events []domain.SavingsEvent
	clock  func() time.Time
}

func newLedger(clock func() time.Time) *Ledger {
	return &Ledger{clock: clock}
}

// Append records ev unconditionally. RecordedAt is stamped with the
// ingestion time; a zero EffectiveDate defaults to the same instant.
// The accepted entry is returned.
func (l *Ledger) Append(ev domain.SavingsEvent) domain.SavingsEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	ev.RecordedAt = now
	if ev.EffectiveDate.IsZero() {
		ev.EffectiveDate = now
	}

	l.events = append(l.events, ev)
	return ev
}

// List returns a snapshot of the ledger in append order.
func (l *Ledger) List() []domain.SavingsEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.SavingsEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of recorded events.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.events)
}
