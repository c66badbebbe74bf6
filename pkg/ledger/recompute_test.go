package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autocredits/brokerd/pkg/models"
	"github.com/autocredits/brokerd/pkg/pricing"
)

func dealFacts() Facts {
	return Facts{
		Charges: pricing.Charges{
			BasePrice:   850000,
			Tax:         95000,
			Insurance:   30000,
			RoadTax:     12000,
			Accessories: 8000,
			TagFee:      5000,
		},
		ShowroomDiscounts: pricing.Discounts{
			Dealer:               30000,
			ExchangeVehiclePrice: 80000,
		},
		CustomerDiscounts: pricing.Discounts{
			Dealer: 30000,
		},
		Order: models.DeliveryOrderFacts{
			MarginMoneyPaid:      100000,
			InsuranceCost:        30000,
			InsuranceBy:          models.PartyAutocredits,
			ExchangeVehicleValue: 80000,
			ExchangePurchasedBy:  models.PartyShowroom,
			Financed:             true,
			LoanAmount:           600000,
			ProcessingFees:       5000,
			AccountType:          models.AccountShowroom,
		},
	}
}

func TestRecomputeChain(t *testing.T) {
	f := dealFacts()
	showroom := &Showroom{}
	autocredits := &Autocredits{}

	d := Recompute(f, showroom, autocredits, "2026-08-29")

	// On-road 1,000,000 for both variants; discounts differ by the
	// exchange vehicle price.
	assert.Equal(t, int64(1000000), d.ShowroomPricing.OnRoadBeforeDiscount)
	assert.Equal(t, int64(890000), d.ShowroomPricing.NetOnRoad)
	assert.Equal(t, int64(970000), d.CustomerPricing.NetOnRoad)

	// 1,000,000 - 100,000 margin - 30,000 discount - 595,000 finance
	// - 30,000 insurance - 80,000 exchange.
	assert.Equal(t, int64(595000), d.Payable.FinanceDeduction)
	assert.Equal(t, int64(165000), d.Payable.NetPayableToDealer)

	// Derived rows landed: loan, exchange adjustment, insurance adjustment.
	require.Len(t, showroom.Entries, 3)
	assert.Equal(t, int64(595000), d.Showroom.Totals.LoanPaid)
	assert.Equal(t, int64(30000), d.Showroom.Totals.InsuranceAdjustmentApplied)
	assert.Equal(t, int64(80000), d.Showroom.Totals.ExchangeAdjustmentApplied)

	// 165,000 - 30,000 - 80,000 = 55,000 still payable; loan row already
	// paid 595,000 of it.
	assert.Equal(t, int64(55000), d.Showroom.NetPayableToShowroom)
	assert.Equal(t, int64(-540000), d.Showroom.Balance)

	// Margin between variants is 80,000; insurance is Autocredits' to
	// collect; exchange was bought by the showroom, so no deduction here.
	assert.Equal(t, int64(80000), d.Receivable.Margin)
	assert.Equal(t, int64(0), d.Receivable.ExchangeDeduction)
	assert.Equal(t, int64(30000), d.Receivable.InsuranceReceivable)
	assert.Equal(t, int64(110000), d.Receivable.NetReceivable)
}

func TestRecomputeIsDeterministic(t *testing.T) {
	f := dealFacts()
	showroom := &Showroom{}
	autocredits := &Autocredits{}

	first := Recompute(f, showroom, autocredits, "2026-08-29")
	second := Recompute(f, showroom, autocredits, "2026-08-29")
	assert.Equal(t, first, second)
	// Repeated passes never duplicate derived rows.
	assert.Len(t, showroom.Entries, 3)
}

func TestRecomputeReactsToFactChange(t *testing.T) {
	f := dealFacts()
	showroom := &Showroom{}
	autocredits := &Autocredits{}
	Recompute(f, showroom, autocredits, "2026-08-29")

	// The brokerage takes over the trade-in: the exchange row must leave
	// the Showroom ledger and surface as an Autocredits deduction instead.
	f.Order.ExchangePurchasedBy = models.PartyAutocredits
	d := Recompute(f, showroom, autocredits, "2026-08-29")

	assert.Equal(t, int64(0), d.Showroom.Totals.ExchangeAdjustmentApplied)
	assert.Equal(t, int64(80000), d.Receivable.ExchangeDeduction)
	require.Len(t, showroom.Entries, 2)
}

func TestRecomputeSettlesBothAccounts(t *testing.T) {
	f := dealFacts()
	showroom := &Showroom{}
	autocredits := &Autocredits{}
	d := Recompute(f, showroom, autocredits, "2026-08-29")

	// Settle the Showroom side: the balance sits at -540,000 after the
	// loan row, and closing balance is balance plus commission, so a
	// matching commission row closes the account.
	_, err := showroom.Add(Entry{Type: TypeCommission, Payer: models.PartyShowroom, Mode: ModeAdjustment, Amount: 540000})
	require.NoError(t, err)
	d = Recompute(f, showroom, autocredits, "2026-08-29")
	require.NoError(t, showroom.Verify(d.Payable.NetPayableToDealer))

	// Settle the Autocredits side: receivable is margin 80,000 +
	// insurance 30,000.
	_, err = autocredits.Add(ReceiptEntry{
		Types:  []ReceiptType{ReceiptInsurance, ReceiptMarginMoney},
		Mode:   ModeCash,
		Amount: 110000,
	})
	require.NoError(t, err)
	d = Recompute(f, showroom, autocredits, "2026-08-29")
	require.NoError(t, autocredits.Verify(d.Receivable))

	assert.Equal(t, int64(30000), d.Buckets.Insurance)
	assert.Equal(t, int64(80000), d.Buckets.MarginMoney)
	assert.Equal(t, int64(110000), d.ReceiptAmountTotal)
}
