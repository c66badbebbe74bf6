package ledger

import (
	"github.com/autocredits/brokerd/pkg/models"
	"github.com/autocredits/brokerd/pkg/payable"
	"github.com/autocredits/brokerd/pkg/pricing"
)

// Facts is the full set of source facts a recompute pulls from: the shared
// charge set, the two discount variants and the delivery-order record.
type Facts struct {
	Charges           pricing.Charges           `json:"charges"`
	ShowroomDiscounts pricing.Discounts         `json:"showroom_discounts"`
	CustomerDiscounts pricing.Discounts         `json:"customer_discounts"`
	Order             models.DeliveryOrderFacts `json:"order"`
}

// Derived is everything downstream of the facts. It is rebuilt in full on
// every call; nothing here is patched incrementally.
type Derived struct {
	ShowroomPricing    pricing.Breakdown `json:"showroom_pricing"`
	CustomerPricing    pricing.Breakdown `json:"customer_pricing"`
	Payable            payable.Result    `json:"payable"`
	Showroom           Summary           `json:"showroom"`
	Receivable         Receivable        `json:"receivable"`
	Buckets            Buckets           `json:"buckets"`
	ReceiptAmountTotal int64             `json:"receipt_amount_total"`
}

// Recompute runs the whole financial chain synchronously: price composition
// for both account variants, the payable derivation, derived-row maintenance
// on the Showroom ledger, its balance summary, and finally the Autocredits
// receivable and bucket allocation. Callers invoke it whenever any source
// fact or entry changes; there is no subscription machinery behind it.
func Recompute(f Facts, showroom *Showroom, autocredits *Autocredits, date string) Derived {
	showroomPricing := pricing.Compose(f.Charges, f.ShowroomDiscounts)
	customerPricing := pricing.Compose(f.Charges, f.CustomerDiscounts)

	// The payable deductions carve the exchange value out of the discount
	// total, which only the Showroom discount set actually contains.
	p := payable.Calculate(showroomPricing, f.Order)

	showroom.SyncDerived(p, f.Order, date)
	summary := showroom.Summarize(p.NetPayableToDealer)

	rcv := ComputeReceivable(f.Order, showroomPricing.NetOnRoad, customerPricing.NetOnRoad, summary.Totals.AutocreditsPaid)
	buckets, receiptTotal := autocredits.Allocate(rcv)

	return Derived{
		ShowroomPricing:    showroomPricing,
		CustomerPricing:    customerPricing,
		Payable:            p,
		Showroom:           summary,
		Receivable:         rcv,
		Buckets:            buckets,
		ReceiptAmountTotal: receiptTotal,
	}
}
