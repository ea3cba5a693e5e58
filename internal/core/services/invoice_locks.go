package services

import "sync"

// invoiceLocks serializes lifecycle transitions per invoice id.
//
// The remote store provides no server-side mutual exclusion, so two
// near-simultaneous finalize calls could both pass the "status is Draft"
// guard and double-apply ledger rows. Holding a per-invoice mutex across
// the guard-check-then-write sequence closes that race within one process.
type invoiceLocks struct {
	mu    sync.Mutex
	locks map[string]*invoiceLock
}

type invoiceLock struct {
	mu   sync.Mutex
	refs int
}

func newInvoiceLocks() *invoiceLocks {
	return &invoiceLocks{locks: make(map[string]*invoiceLock)}
}

// Lock acquires the mutex for an invoice id and returns its release func.
// Entries are refcounted and removed on release so the map does not grow
// with the invoice count.
func (l *invoiceLocks) Lock(invoiceID string) func() {
	l.mu.Lock()
	entry, ok := l.locks[invoiceID]
	if !ok {
		entry = &invoiceLock{}
		l.locks[invoiceID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, invoiceID)
		}
		l.mu.Unlock()
	}
}
