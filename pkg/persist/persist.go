// Package persist schedules trailing-edge debounced writes of a loan's
// records to the backing store.
package persist

import (
	"log"
	"sync"
	"time"
)

// DefaultQuiescence is how long edits must stay quiet before the pending
// write fires.
const DefaultQuiescence = 800 * time.Millisecond

// Record keys for Schedule and Cancel. A loan has one pending write per
// record kind, so editing the delivery order never displaces a pending
// payment-record write for the same loan.
const (
	KeyDeliveryOrder = "delivery_order"
	KeyPayments      = "payments"
)

// Saver holds the pending writes for one loan, at most one per record key.
// Every new edit to a record pushes that record's write out; an edit for a
// different loan abandons all pending writes outright, never redirecting
// them to the new loan. Failed writes are logged and not retried; they never
// surface to the editing path.
type Saver struct {
	mu       sync.Mutex
	delay    time.Duration
	errorLog *log.Logger
	loan     int
	timers   map[string]*time.Timer
	seqs     map[string]uint64
}

// NewSaver returns a Saver firing writes after the given quiescence period.
func NewSaver(delay time.Duration, errorLog *log.Logger) *Saver {
	return &Saver{
		delay:    delay,
		errorLog: errorLog,
		timers:   make(map[string]*time.Timer),
		seqs:     make(map[string]uint64),
	}
}

// Schedule queues write to run once the loan's edits to the keyed record
// have been quiet for the quiescence period. A previously pending write for
// the same key is pushed out (trailing edge); scheduling against a
// different loan abandons every pending write first (navigation).
func (s *Saver) Schedule(loanID int, key string, write func() error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if loanID != s.loan {
		s.abandonLocked()
		s.loan = loanID
	}

	if t := s.timers[key]; t != nil {
		t.Stop()
	}
	s.seqs[key]++
	seq := s.seqs[key]

	s.timers[key] = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		if s.loan != loanID || s.seqs[key] != seq {
			s.mu.Unlock()
			return
		}
		delete(s.timers, key)
		s.mu.Unlock()

		if err := write(); err != nil {
			s.errorLog.Printf("persist: %s upsert for loan %d failed: %v", key, loanID, err)
		}
	})
}

// Cancel abandons the pending keyed write for the given loan, if any.
// Called when the record is about to be written through explicitly.
func (s *Saver) Cancel(loanID int, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loan != loanID {
		return
	}
	if t := s.timers[key]; t != nil {
		t.Stop()
		delete(s.timers, key)
	}
	s.seqs[key]++
}

func (s *Saver) abandonLocked() {
	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
		s.seqs[key]++
	}
}
