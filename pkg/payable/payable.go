// Package payable derives the net amount owed to the dealer for a delivery
// order after margin money, discount, finance, insurance and exchange
// deductions.
package payable

import (
	"github.com/autocredits/brokerd/pkg/models"
	"github.com/autocredits/brokerd/pkg/pricing"
)

// Result is the payable derivation. NetPayableToDealer is not clamped; the
// ledgers accept a negative payable as valid input.
type Result struct {
	OnRoadVehicleCost             int64 `json:"on_road_vehicle_cost"`
	GrossPayable                  int64 `json:"gross_payable"`
	DiscountExcludingVehicleValue int64 `json:"discount_excluding_vehicle_value"`
	InsuranceDeduction            int64 `json:"insurance_deduction"`
	VehicleValueDeduction         int64 `json:"vehicle_value_deduction"`
	FinanceDeduction              int64 `json:"finance_deduction"`
	NetPayableToDealer            int64 `json:"net_payable_to_dealer"`
}

// Calculate combines a composed price with the delivery-order facts.
func Calculate(b pricing.Breakdown, facts models.DeliveryOrderFacts) Result {
	onRoad := b.OnRoadBeforeDiscount

	// The exchange-vehicle value is carved out of the generic discount
	// total because it is handled as its own deduction line below.
	discount := b.TotalDiscount - facts.ExchangeVehicleValue
	if discount < 0 {
		discount = 0
	}

	var insurance int64
	if facts.InsuranceCost > 0 && facts.InsuranceBy != models.PartyShowroom {
		insurance = facts.InsuranceCost
	}

	var vehicleValue int64
	if facts.ExchangePurchasedBy == models.PartyShowroom {
		vehicleValue = facts.ExchangeVehicleValue
	}

	var finance int64
	if facts.Financed {
		finance = facts.LoanAmount - facts.ProcessingFees
		if finance < 0 {
			finance = 0
		}
	}

	return Result{
		OnRoadVehicleCost:             onRoad,
		GrossPayable:                  onRoad - facts.MarginMoneyPaid,
		DiscountExcludingVehicleValue: discount,
		InsuranceDeduction:            insurance,
		VehicleValueDeduction:         vehicleValue,
		FinanceDeduction:              finance,
		NetPayableToDealer: onRoad - facts.MarginMoneyPaid - discount -
			finance - insurance - vehicleValue,
	}
}
