package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	charges := Charges{
		BasePrice:       850000,
		Tax:             95000,
		Insurance:       30000,
		RoadTax:         12000,
		RegistrationFee: 8000,
		Accessories:     4000,
		TagFee:          500,
		Extras:          []LineItem{{Label: "Handling", Amount: 500}},
	}
	discounts := Discounts{
		Dealer: 30000,
		Scheme: 15000,
		Extras: []LineItem{{Label: "Festival", Amount: 5000}},
	}

	b := Compose(charges, discounts)
	assert.Equal(t, int64(1000000), b.OnRoadBeforeDiscount)
	assert.Equal(t, int64(50000), b.TotalDiscount)
	assert.Equal(t, int64(950000), b.NetOnRoad)
}

func TestComposeNegativeNetNotClamped(t *testing.T) {
	b := Compose(Charges{BasePrice: 100000}, Discounts{Dealer: 120000})
	assert.Equal(t, int64(-20000), b.NetOnRoad)
}

func TestComposeEmpty(t *testing.T) {
	b := Compose(Charges{}, Discounts{})
	assert.Equal(t, Breakdown{}, b)
}

func TestComposeVariantsShareCharges(t *testing.T) {
	charges := Charges{BasePrice: 500000, Tax: 50000}
	showroom := Discounts{Dealer: 20000, ExchangeVehiclePrice: 100000}
	customer := Discounts{Dealer: 20000}

	sb := Compose(charges, showroom)
	cb := Compose(charges, customer)

	assert.Equal(t, sb.OnRoadBeforeDiscount, cb.OnRoadBeforeDiscount)
	assert.Equal(t, int64(430000), sb.NetOnRoad)
	assert.Equal(t, int64(530000), cb.NetOnRoad)
	assert.NotEqual(t, sb.NetOnRoad, cb.NetOnRoad)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"12500", 12500},
		{" 12500.75 ", 12500},
		{"", 0},
		{"abc", 0},
		{"-300", 0},
		{"0", 0},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseAmount(tc.in))
		})
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 60, ParseCount("60"))
	assert.Equal(t, 0, ParseCount("-4"))
	assert.Equal(t, 0, ParseCount("x"))
}
