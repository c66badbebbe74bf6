package main

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autocredits/brokerd/pkg/models"
	"github.com/autocredits/brokerd/pkg/pricing"
)

func TestFactsFromForm(t *testing.T) {
	form := url.Values{}
	form.Set("base_price", "1000000")
	form.Set("tax", "180000")
	form.Set("showroom_dealer_discount", "30000")
	form.Set("customer_dealer_discount", "10000")
	form.Set("margin_money_paid", "50000")
	form.Set("insurance_by", "Autocredits")
	form.Set("financed", "1")
	form.Set("loan_amount", "not-a-number")

	f := factsFromForm(form)
	assert.Equal(t, int64(1000000), f.Charges.BasePrice)
	assert.Equal(t, int64(180000), f.Charges.Tax)
	assert.Equal(t, int64(30000), f.ShowroomDiscounts.Dealer)
	assert.Equal(t, int64(10000), f.CustomerDiscounts.Dealer)
	assert.Equal(t, int64(50000), f.Order.MarginMoneyPaid)
	assert.Equal(t, models.PartyAutocredits, f.Order.InsuranceBy)
	assert.True(t, f.Order.Financed)
	assert.Equal(t, int64(0), f.Order.LoanAmount)
}

func TestFactsFromFormParsesExtras(t *testing.T) {
	form := url.Values{}
	form.Set("base_price", "1000000")
	form.Set("charge_extra_label_0", "Handling")
	form.Set("charge_extra_amount_0", "2500")
	form.Set("charge_extra_label_1", "Fastag Recharge")
	form.Set("charge_extra_amount_1", "junk")
	form.Set("showroom_extra_label_0", "Festival Offer")
	form.Set("showroom_extra_amount_0", "15000")
	form.Set("customer_extra_label_0", "Referral")
	form.Set("customer_extra_amount_0", "5000")

	f := factsFromForm(form)

	require.Len(t, f.Charges.Extras, 2)
	assert.Equal(t, pricing.LineItem{Label: "Handling", Amount: 2500}, f.Charges.Extras[0])
	assert.Equal(t, pricing.LineItem{Label: "Fastag Recharge", Amount: 0}, f.Charges.Extras[1])

	require.Len(t, f.ShowroomDiscounts.Extras, 1)
	assert.Equal(t, pricing.LineItem{Label: "Festival Offer", Amount: 15000}, f.ShowroomDiscounts.Extras[0])

	require.Len(t, f.CustomerDiscounts.Extras, 1)
	assert.Equal(t, pricing.LineItem{Label: "Referral", Amount: 5000}, f.CustomerDiscounts.Extras[0])

	// The parsed extras flow through to the composed price.
	b := pricing.Compose(f.Charges, f.ShowroomDiscounts)
	assert.Equal(t, int64(1002500), b.OnRoadBeforeDiscount)
	assert.Equal(t, int64(15000), b.TotalDiscount)
	assert.Equal(t, int64(987500), b.NetOnRoad)
}

func TestFactsFromFormNoExtras(t *testing.T) {
	form := url.Values{}
	form.Set("base_price", "500000")

	f := factsFromForm(form)
	assert.Empty(t, f.Charges.Extras)
	assert.Empty(t, f.ShowroomDiscounts.Extras)
	assert.Empty(t, f.CustomerDiscounts.Extras)
}
