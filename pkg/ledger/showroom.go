// Package ledger reconciles the money actually paid and received on a deal
// across the Showroom and Autocredits accounts.
package ledger

import (
	"github.com/autocredits/brokerd/pkg/models"
	"github.com/autocredits/brokerd/pkg/payable"
)

// Origin tags who owns a payment entry. Derived entries belong to the
// recompute pass; manual entries belong to the user.
type Origin string

const (
	OriginManual  Origin = "Manual"
	OriginDerived Origin = "Derived"
)

type EntryType string

const (
	TypePayment             EntryType = "Payment"
	TypeLoan                EntryType = "Loan"
	TypeMarginMoney         EntryType = "MarginMoney"
	TypeCommission          EntryType = "Commission"
	TypeInsuranceAdjustment EntryType = "InsuranceAdjustment"
	TypeExchangeAdjustment  EntryType = "ExchangeAdjustment"
)

type PaymentMode string

const (
	ModeCash       PaymentMode = "Cash"
	ModeCheque     PaymentMode = "Cheque"
	ModeTransfer   PaymentMode = "Transfer"
	ModeAdjustment PaymentMode = "Adjustment"
)

// Entry is one payment row on the Showroom account.
type Entry struct {
	ID      int64        `json:"id"`
	Type    EntryType    `json:"type"`
	Payer   models.Party `json:"payer"`
	Mode    PaymentMode  `json:"mode"`
	Amount  int64        `json:"amount"`
	Date    string       `json:"date"`
	Remarks string       `json:"remarks"`
	Origin  Origin       `json:"origin"`
}

// Totals aggregates entry amounts by (type, payer).
type Totals struct {
	LoanPaid                   int64 `json:"loan_paid"`
	AutocreditsPaid            int64 `json:"autocredits_paid"`
	CustomerPaid               int64 `json:"customer_paid"`
	InsuranceAdjustmentApplied int64 `json:"insurance_adjustment_applied"`
	ExchangeAdjustmentApplied  int64 `json:"exchange_adjustment_applied"`
	MarginMoneyPaid            int64 `json:"margin_money_paid"`
	CommissionReceived         int64 `json:"commission_received"`
}

// Summary carries the Showroom account's derived balances.
type Summary struct {
	Totals               Totals `json:"totals"`
	NetPayableToShowroom int64  `json:"net_payable_to_showroom"`
	Balance              int64  `json:"balance"`
	ClosingBalance       int64  `json:"closing_balance"`
}

// Showroom is the dealer-facing payment ledger.
type Showroom struct {
	Entries  []Entry `json:"entries"`
	Verified bool    `json:"verified"`
}

func (l *Showroom) nextID() int64 {
	var max int64
	for _, e := range l.Entries {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

// Add appends a manual entry and returns its id.
func (l *Showroom) Add(e Entry) (int64, error) {
	if l.Verified {
		return 0, ErrVerified
	}
	e.ID = l.nextID()
	e.Origin = OriginManual
	l.Entries = append(l.Entries, e)
	return e.ID, nil
}

// Update replaces a manual entry in place, keyed by id.
func (l *Showroom) Update(e Entry) error {
	if l.Verified {
		return ErrVerified
	}
	for i, cur := range l.Entries {
		if cur.ID != e.ID {
			continue
		}
		if cur.Origin == OriginDerived {
			return ErrDerivedEntry
		}
		e.Origin = OriginManual
		l.Entries[i] = e
		return nil
	}
	return ErrEntryNotFound
}

// Remove deletes a manual entry by id.
func (l *Showroom) Remove(id int64) error {
	if l.Verified {
		return ErrVerified
	}
	for i, cur := range l.Entries {
		if cur.ID != id {
			continue
		}
		if cur.Origin == OriginDerived {
			return ErrDerivedEntry
		}
		l.Entries = append(l.Entries[:i], l.Entries[i+1:]...)
		return nil
	}
	return ErrEntryNotFound
}

// SyncDerived rebuilds the system-derived rows from the current facts:
// every derived row is dropped and reinserted so a fact change can never
// leave a stale one behind. Manual rows are untouched. A verified ledger is
// frozen and keeps the rows it was verified with.
func (l *Showroom) SyncDerived(p payable.Result, facts models.DeliveryOrderFacts, date string) {
	if l.Verified {
		return
	}

	kept := l.Entries[:0]
	for _, e := range l.Entries {
		if e.Origin != OriginDerived {
			kept = append(kept, e)
		}
	}
	l.Entries = kept

	if facts.Financed && p.FinanceDeduction > 0 {
		l.Entries = append(l.Entries, Entry{
			ID:      l.nextID(),
			Type:    TypeLoan,
			Payer:   models.PartyBank,
			Mode:    ModeTransfer,
			Amount:  p.FinanceDeduction,
			Date:    date,
			Remarks: "Loan disbursement",
			Origin:  OriginDerived,
		})
	}

	// When the brokerage itself bought the trade-in, its value never
	// flows through this ledger.
	if facts.ExchangeVehicleValue > 0 && facts.ExchangePurchasedBy == models.PartyShowroom {
		l.Entries = append(l.Entries, Entry{
			ID:      l.nextID(),
			Type:    TypeExchangeAdjustment,
			Payer:   models.PartyShowroom,
			Mode:    ModeAdjustment,
			Amount:  facts.ExchangeVehicleValue,
			Date:    date,
			Remarks: "Exchange vehicle value",
			Origin:  OriginDerived,
		})
	}

	if facts.InsuranceCost > 0 && facts.InsuranceBy != models.PartyShowroom {
		l.Entries = append(l.Entries, Entry{
			ID:      l.nextID(),
			Type:    TypeInsuranceAdjustment,
			Payer:   facts.InsuranceBy,
			Mode:    ModeAdjustment,
			Amount:  facts.InsuranceCost,
			Date:    date,
			Remarks: "Insurance cost",
			Origin:  OriginDerived,
		})
	}
}

// Totals sums the entries into the (type, payer) aggregate.
func (l *Showroom) Totals() Totals {
	var t Totals
	for _, e := range l.Entries {
		switch e.Type {
		case TypeLoan:
			t.LoanPaid += e.Amount
		case TypePayment:
			if e.Payer == models.PartyAutocredits {
				t.AutocreditsPaid += e.Amount
			} else {
				t.CustomerPaid += e.Amount
			}
		case TypeMarginMoney:
			t.MarginMoneyPaid += e.Amount
		case TypeCommission:
			t.CommissionReceived += e.Amount
		case TypeInsuranceAdjustment:
			t.InsuranceAdjustmentApplied += e.Amount
		case TypeExchangeAdjustment:
			t.ExchangeAdjustmentApplied += e.Amount
		}
	}
	return t
}

// Summarize derives the account balances from the current entries and the
// payable figure.
func (l *Showroom) Summarize(netPayableToDealer int64) Summary {
	t := l.Totals()
	netToShowroom := netPayableToDealer - t.InsuranceAdjustmentApplied - t.ExchangeAdjustmentApplied
	balance := netToShowroom - (t.LoanPaid + t.AutocreditsPaid + t.CustomerPaid)
	return Summary{
		Totals:               t,
		NetPayableToShowroom: netToShowroom,
		Balance:              balance,
		ClosingBalance:       balance + t.CommissionReceived,
	}
}

// Verify freezes the ledger. It is rejected with a VerificationError unless
// the closing balance is exactly zero.
func (l *Showroom) Verify(netPayableToDealer int64) error {
	if closing := l.Summarize(netPayableToDealer).ClosingBalance; closing != 0 {
		return &VerificationError{Account: "Showroom", Residual: closing}
	}
	l.Verified = true
	return nil
}

// Revert re-opens a verified ledger for entry mutation.
func (l *Showroom) Revert() {
	l.Verified = false
}
