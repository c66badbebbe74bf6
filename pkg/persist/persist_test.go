package persist

import (
	"bytes"
	"errors"
	"log"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testSaver() (*Saver, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewSaver(20*time.Millisecond, log.New(&buf, "", 0)), &buf
}

func TestScheduleFiresAfterQuiescence(t *testing.T) {
	s, _ := testSaver()
	var writes int32

	s.Schedule(7, KeyDeliveryOrder, func() error {
		atomic.AddInt32(&writes, 1)
		return nil
	})
	assert.Equal(t, int32(0), atomic.LoadInt32(&writes))

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&writes))
}

func TestTrailingEdgeCoalescesEdits(t *testing.T) {
	s, _ := testSaver()
	var writes int32

	for i := 0; i < 5; i++ {
		s.Schedule(7, KeyDeliveryOrder, func() error {
			atomic.AddInt32(&writes, 1)
			return nil
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&writes))
}

func TestDistinctRecordWritesCoexist(t *testing.T) {
	s, _ := testSaver()
	var factsWrites, paymentWrites int32

	// An edit schedules the facts write and then the recomputed payment
	// record right behind it. Neither may displace the other.
	s.Schedule(7, KeyDeliveryOrder, func() error {
		atomic.AddInt32(&factsWrites, 1)
		return nil
	})
	s.Schedule(7, KeyPayments, func() error {
		atomic.AddInt32(&paymentWrites, 1)
		return nil
	})

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&factsWrites))
	assert.Equal(t, int32(1), atomic.LoadInt32(&paymentWrites))
}

func TestLoanChangeAbandonsAllPendingWrites(t *testing.T) {
	s, _ := testSaver()
	var firstFacts, firstPayments, secondWrites int32

	s.Schedule(7, KeyDeliveryOrder, func() error {
		atomic.AddInt32(&firstFacts, 1)
		return nil
	})
	s.Schedule(7, KeyPayments, func() error {
		atomic.AddInt32(&firstPayments, 1)
		return nil
	})
	// Navigating to another loan before the debounce fires must abandon
	// every pending write for the first loan, never redirect them.
	s.Schedule(8, KeyDeliveryOrder, func() error {
		atomic.AddInt32(&secondWrites, 1)
		return nil
	})

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&firstFacts))
	assert.Equal(t, int32(0), atomic.LoadInt32(&firstPayments))
	assert.Equal(t, int32(1), atomic.LoadInt32(&secondWrites))
}

func TestCancelAbandonsPendingWrite(t *testing.T) {
	s, _ := testSaver()
	var writes int32

	s.Schedule(7, KeyDeliveryOrder, func() error {
		atomic.AddInt32(&writes, 1)
		return nil
	})
	s.Cancel(7, KeyDeliveryOrder)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&writes))
}

func TestCancelLeavesOtherKeyPending(t *testing.T) {
	s, _ := testSaver()
	var factsWrites, paymentWrites int32

	s.Schedule(7, KeyDeliveryOrder, func() error {
		atomic.AddInt32(&factsWrites, 1)
		return nil
	})
	s.Schedule(7, KeyPayments, func() error {
		atomic.AddInt32(&paymentWrites, 1)
		return nil
	})
	s.Cancel(7, KeyPayments)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&factsWrites))
	assert.Equal(t, int32(0), atomic.LoadInt32(&paymentWrites))
}

func TestCancelIgnoresOtherLoan(t *testing.T) {
	s, _ := testSaver()
	var writes int32

	s.Schedule(7, KeyDeliveryOrder, func() error {
		atomic.AddInt32(&writes, 1)
		return nil
	})
	s.Cancel(8, KeyDeliveryOrder)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&writes))
}

func TestWriteFailureLoggedNotRetried(t *testing.T) {
	s, buf := testSaver()
	var attempts int32

	s.Schedule(7, KeyDeliveryOrder, func() error {
		atomic.AddInt32(&attempts, 1)
		return errors.New("connection refused")
	})

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	assert.Contains(t, buf.String(), "delivery_order upsert for loan 7 failed")
	assert.Contains(t, buf.String(), "connection refused")
}
