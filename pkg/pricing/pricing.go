// Package pricing composes a vehicle's on-road price from fixed charges,
// open line items and a discount set.
package pricing

import (
	"strconv"
	"strings"
)

// LineItem is an open-ended named amount appended to the fixed charge or
// discount sets. Amounts are whole currency units and never negative.
type LineItem struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Charges holds the fixed additive components of the on-road price.
type Charges struct {
	BasePrice        int64      `json:"base_price"`
	Tax              int64      `json:"tax"`
	Insurance        int64      `json:"insurance"`
	RoadTax          int64      `json:"road_tax"`
	RegistrationFee  int64      `json:"registration_fee"`
	Accessories      int64      `json:"accessories"`
	TagFee           int64      `json:"tag_fee"`
	ExtendedWarranty int64      `json:"extended_warranty"`
	Extras           []LineItem `json:"extras"`
}

// Discounts holds the fixed deductible components. A delivery order carries
// two of these, one per account variant, sharing a single Charges set.
type Discounts struct {
	Dealer               int64      `json:"dealer"`
	Scheme               int64      `json:"scheme"`
	InsuranceCashback    int64      `json:"insurance_cashback"`
	ExchangeBonus        int64      `json:"exchange_bonus"`
	ExchangeVehiclePrice int64      `json:"exchange_vehicle_price"`
	Loyalty              int64      `json:"loyalty"`
	Corporate            int64      `json:"corporate"`
	Extras               []LineItem `json:"extras"`
}

// Breakdown is the composed price. NetOnRoad is not clamped; discounts
// exceeding the charges produce a negative figure that must be surfaced.
type Breakdown struct {
	OnRoadBeforeDiscount int64 `json:"on_road_before_discount"`
	TotalDiscount        int64 `json:"total_discount"`
	NetOnRoad            int64 `json:"net_on_road"`
}

func (c Charges) total() int64 {
	t := c.BasePrice + c.Tax + c.Insurance + c.RoadTax + c.RegistrationFee +
		c.Accessories + c.TagFee + c.ExtendedWarranty
	for _, li := range c.Extras {
		t += li.Amount
	}
	return t
}

func (d Discounts) total() int64 {
	t := d.Dealer + d.Scheme + d.InsuranceCashback + d.ExchangeBonus +
		d.ExchangeVehiclePrice + d.Loyalty + d.Corporate
	for _, li := range d.Extras {
		t += li.Amount
	}
	return t
}

// Compose sums the charge and discount sets into a Breakdown.
func Compose(c Charges, d Discounts) Breakdown {
	onRoad := c.total()
	discount := d.total()
	return Breakdown{
		OnRoadBeforeDiscount: onRoad,
		TotalDiscount:        discount,
		NetOnRoad:            onRoad - discount,
	}
}

// ParseAmount coerces free-form numeric input to whole currency units.
// Fractions are truncated, junk and negatives collapse to zero.
func ParseAmount(s string) int64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return int64(v)
}

// ParseCount coerces free-form input to a non-negative integer count.
func ParseCount(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
