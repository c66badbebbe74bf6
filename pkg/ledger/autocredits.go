package ledger

import (
	"github.com/autocredits/brokerd/pkg/models"
)

// ReceiptType labels what a customer receipt settles. A single receipt may
// carry several types and is split across buckets in priority order.
type ReceiptType string

const (
	ReceiptInsurance       ReceiptType = "Insurance"
	ReceiptMarginMoney     ReceiptType = "MarginMoney"
	ReceiptExchangeVehicle ReceiptType = "ExchangeVehicle"
	ReceiptCommission      ReceiptType = "Commission"
)

// ReceiptEntry is one receipt row on the Autocredits account.
type ReceiptEntry struct {
	ID     int64         `json:"id"`
	Types  []ReceiptType `json:"types"`
	Mode   PaymentMode   `json:"mode"`
	Amount int64         `json:"amount"`
	Date   string        `json:"date"`
}

func (e ReceiptEntry) has(t ReceiptType) bool {
	for _, rt := range e.Types {
		if rt == t {
			return true
		}
	}
	return false
}

func (e ReceiptEntry) commissionOnly() bool {
	return len(e.Types) == 1 && e.Types[0] == ReceiptCommission
}

// Receivable is what the Autocredits account expects to collect from the
// customer, derived from the two pricing variants and the Showroom totals.
type Receivable struct {
	Margin              int64 `json:"margin"`
	ExchangeDeduction   int64 `json:"exchange_deduction"`
	MarginReceivable    int64 `json:"margin_receivable"`
	InsuranceReceivable int64 `json:"insurance_receivable"`
	NetReceivable       int64 `json:"net_receivable"`
}

// ComputeReceivable derives the receivable targets. The exchange value is
// subtracted exactly once, inside MarginReceivable.
func ComputeReceivable(facts models.DeliveryOrderFacts, showroomNetOnRoad, customerNetOnRoad, autocreditsPaid int64) Receivable {
	margin := customerNetOnRoad - showroomNetOnRoad

	var exchange int64
	if facts.ExchangePurchasedBy == models.PartyAutocredits {
		exchange = facts.ExchangeVehicleValue
	}

	var insurance int64
	if facts.InsuranceBy == models.PartyAutocredits {
		insurance = facts.InsuranceCost
	}

	marginReceivable := margin + autocreditsPaid - exchange
	return Receivable{
		Margin:              margin,
		ExchangeDeduction:   exchange,
		MarginReceivable:    marginReceivable,
		InsuranceReceivable: insurance,
		NetReceivable:       marginReceivable + insurance,
	}
}

// Buckets is the allocation of receipt amounts by settlement purpose.
type Buckets struct {
	Insurance       int64 `json:"insurance"`
	MarginMoney     int64 `json:"margin_money"`
	ExchangeVehicle int64 `json:"exchange_vehicle"`
	Commission      int64 `json:"commission"`
}

// Autocredits is the internal receipt ledger.
type Autocredits struct {
	Entries  []ReceiptEntry `json:"entries"`
	Verified bool           `json:"verified"`
}

func (l *Autocredits) nextID() int64 {
	var max int64
	for _, e := range l.Entries {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

// Add appends a receipt entry and returns its id. Entries with no type
// selected are legal but allocate nothing.
func (l *Autocredits) Add(e ReceiptEntry) (int64, error) {
	if l.Verified {
		return 0, ErrVerified
	}
	e.ID = l.nextID()
	l.Entries = append(l.Entries, e)
	return e.ID, nil
}

// Update replaces a receipt entry in place, keyed by id.
func (l *Autocredits) Update(e ReceiptEntry) error {
	if l.Verified {
		return ErrVerified
	}
	for i, cur := range l.Entries {
		if cur.ID == e.ID {
			l.Entries[i] = e
			return nil
		}
	}
	return ErrEntryNotFound
}

// Remove deletes a receipt entry by id.
func (l *Autocredits) Remove(id int64) error {
	if l.Verified {
		return ErrVerified
	}
	for i, cur := range l.Entries {
		if cur.ID == id {
			l.Entries = append(l.Entries[:i], l.Entries[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

// Allocate walks the entries in order and splits each amount into buckets:
// commission-only entries go wholly to Commission; otherwise Insurance fills
// up to its receivable, then ExchangeVehicle up to the exchange deduction,
// then MarginMoney up to its receivable, and whatever is left goes to
// Commission when selected, or spills into MarginMoney when not. Adjustment
// entries allocate but do not count toward the received-from-customer total.
func (l *Autocredits) Allocate(rcv Receivable) (Buckets, int64) {
	var b Buckets
	var receiptTotal int64

	for _, e := range l.Entries {
		if e.Mode != ModeAdjustment {
			receiptTotal += e.Amount
		}
		if len(e.Types) == 0 {
			continue
		}

		rem := e.Amount
		if e.commissionOnly() {
			b.Commission += rem
			continue
		}

		if e.has(ReceiptInsurance) {
			if gap := rcv.InsuranceReceivable - b.Insurance; gap > 0 {
				take := rem
				if take > gap {
					take = gap
				}
				b.Insurance += take
				rem -= take
			}
		}

		if rem > 0 && e.has(ReceiptExchangeVehicle) {
			if gap := rcv.ExchangeDeduction - b.ExchangeVehicle; gap > 0 {
				take := rem
				if take > gap {
					take = gap
				}
				b.ExchangeVehicle += take
				rem -= take
			}
		}

		if rem > 0 && e.has(ReceiptMarginMoney) {
			take := rem
			if gap := rcv.MarginReceivable - b.MarginMoney; gap > 0 && take > gap {
				take = gap
			}
			b.MarginMoney += take
			rem -= take
		}

		if rem > 0 {
			if e.has(ReceiptCommission) {
				b.Commission += rem
			} else if e.has(ReceiptMarginMoney) {
				// The margin target is exhausted and there is no
				// commission sink; margin absorbs the rest.
				b.MarginMoney += rem
			} else if e.has(ReceiptExchangeVehicle) {
				b.ExchangeVehicle += rem
			} else {
				b.Insurance += rem
			}
		}
	}
	return b, receiptTotal
}

// ReceiptAmountTotal is the received-from-customer figure: the sum of all
// non-adjustment entries.
func (l *Autocredits) ReceiptAmountTotal() int64 {
	var total int64
	for _, e := range l.Entries {
		if e.Mode != ModeAdjustment {
			total += e.Amount
		}
	}
	return total
}

// Verify freezes the ledger when the receivable is fully settled.
func (l *Autocredits) Verify(rcv Receivable) error {
	_, receiptTotal := l.Allocate(rcv)
	if residual := rcv.NetReceivable - receiptTotal; residual != 0 {
		return &VerificationError{Account: "Autocredits", Residual: residual}
	}
	l.Verified = true
	return nil
}

// Revert re-opens a verified ledger for entry mutation.
func (l *Autocredits) Revert() {
	l.Verified = false
}
