package payable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autocredits/brokerd/pkg/models"
	"github.com/autocredits/brokerd/pkg/pricing"
)

func TestCalculateFinancedDeal(t *testing.T) {
	b := pricing.Breakdown{
		OnRoadBeforeDiscount: 1000000,
		TotalDiscount:        150000,
		NetOnRoad:            850000,
	}
	facts := models.DeliveryOrderFacts{
		MarginMoneyPaid:      100000,
		InsuranceCost:        30000,
		InsuranceBy:          models.PartyCustomer,
		ExchangeVehicleValue: 100000,
		ExchangePurchasedBy:  models.PartyShowroom,
		Financed:             true,
		LoanAmount:           700000,
		ProcessingFees:       5000,
	}

	res := Calculate(b, facts)
	assert.Equal(t, int64(900000), res.GrossPayable)
	assert.Equal(t, int64(50000), res.DiscountExcludingVehicleValue)
	assert.Equal(t, int64(30000), res.InsuranceDeduction)
	assert.Equal(t, int64(100000), res.VehicleValueDeduction)
	assert.Equal(t, int64(695000), res.FinanceDeduction)
	// 1,000,000 - 100,000 - 50,000 - 695,000 - 30,000 - 100,000
	assert.Equal(t, int64(25000), res.NetPayableToDealer)
}

func TestInsuranceDeductionByPayer(t *testing.T) {
	b := pricing.Breakdown{OnRoadBeforeDiscount: 500000}

	byCustomer := Calculate(b, models.DeliveryOrderFacts{
		InsuranceCost: 30000,
		InsuranceBy:   models.PartyCustomer,
	})
	assert.Equal(t, int64(30000), byCustomer.InsuranceDeduction)

	byShowroom := Calculate(b, models.DeliveryOrderFacts{
		InsuranceCost: 30000,
		InsuranceBy:   models.PartyShowroom,
	})
	assert.Equal(t, int64(0), byShowroom.InsuranceDeduction)
}

func TestVehicleValueDeductionByPurchaser(t *testing.T) {
	b := pricing.Breakdown{OnRoadBeforeDiscount: 500000, TotalDiscount: 80000}

	byShowroom := Calculate(b, models.DeliveryOrderFacts{
		ExchangeVehicleValue: 80000,
		ExchangePurchasedBy:  models.PartyShowroom,
	})
	assert.Equal(t, int64(80000), byShowroom.VehicleValueDeduction)

	// The brokerage bought the trade-in itself; nothing is deducted from
	// what is owed to the dealer.
	byAutocredits := Calculate(b, models.DeliveryOrderFacts{
		ExchangeVehicleValue: 80000,
		ExchangePurchasedBy:  models.PartyAutocredits,
	})
	assert.Equal(t, int64(0), byAutocredits.VehicleValueDeduction)
}

func TestDiscountCarveOutClampedAtZero(t *testing.T) {
	b := pricing.Breakdown{OnRoadBeforeDiscount: 500000, TotalDiscount: 40000}
	res := Calculate(b, models.DeliveryOrderFacts{ExchangeVehicleValue: 90000})
	assert.Equal(t, int64(0), res.DiscountExcludingVehicleValue)
}

func TestFinanceDeduction(t *testing.T) {
	b := pricing.Breakdown{OnRoadBeforeDiscount: 500000}

	unfinanced := Calculate(b, models.DeliveryOrderFacts{LoanAmount: 400000, ProcessingFees: 5000})
	assert.Equal(t, int64(0), unfinanced.FinanceDeduction)

	financed := Calculate(b, models.DeliveryOrderFacts{Financed: true, LoanAmount: 400000, ProcessingFees: 5000})
	assert.Equal(t, int64(395000), financed.FinanceDeduction)

	feesExceedLoan := Calculate(b, models.DeliveryOrderFacts{Financed: true, LoanAmount: 3000, ProcessingFees: 5000})
	assert.Equal(t, int64(0), feesExceedLoan.FinanceDeduction)
}

func TestNegativeNetPayableNotClamped(t *testing.T) {
	b := pricing.Breakdown{OnRoadBeforeDiscount: 100000, TotalDiscount: 50000}
	res := Calculate(b, models.DeliveryOrderFacts{
		MarginMoneyPaid: 40000,
		Financed:        true,
		LoanAmount:      90000,
	})
	// 100,000 - 40,000 - 50,000 - 90,000
	assert.Equal(t, int64(-80000), res.NetPayableToDealer)
}
