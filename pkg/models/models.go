package models

import (
	"errors"
	"time"
)

var ErrNoRecord = errors.New("models: no matching record found")

type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

type User struct {
	ID        int
	Username  string
	Password  string
	Name      string
	Type      string
	CreatedAt time.Time
}

type Dropdown struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Party identifies who pays, receives or absorbs an amount on a deal.
type Party string

const (
	PartyShowroom    Party = "Showroom"
	PartyCustomer    Party = "Customer"
	PartyAutocredits Party = "Autocredits"
	PartyBank        Party = "Bank"
)

// AccountType selects which discount set of a delivery order is in play.
type AccountType string

const (
	AccountShowroom AccountType = "Showroom"
	AccountCustomer AccountType = "Customer"
)

// DeliveryOrderFacts are the upstream facts a delivery order supplies to the
// payable derivation and both ledgers. All amounts are whole currency units.
type DeliveryOrderFacts struct {
	MarginMoneyPaid      int64       `json:"margin_money_paid"`
	InsuranceCost        int64       `json:"insurance_cost"`
	InsuranceBy          Party       `json:"insurance_by"`
	ExchangeVehicleValue int64       `json:"exchange_vehicle_value"`
	ExchangePurchasedBy  Party       `json:"exchange_purchased_by"`
	Financed             bool        `json:"financed"`
	LoanAmount           int64       `json:"loan_amount"`
	ProcessingFees       int64       `json:"processing_fees"`
	AccountType          AccountType `json:"account_type"`
}

// Loan is the externally-owned loan record, read-only to the financial core.
type Loan struct {
	ID              int    `json:"id"`
	CustomerName    string `json:"customer_name"`
	CustomerNIC     string `json:"customer_nic"`
	CustomerAddress string `json:"customer_address"`
	CustomerContact string `json:"customer_contact"`
	VehicleModel    string `json:"vehicle_model"`
	ChassisNumber   string `json:"chassis_number"`
	Financed        bool   `json:"financed"`
	Bank            string `json:"bank"`
	Created         string `json:"created"`
}

type LoanSearchResult struct {
	ID            int    `json:"id"`
	CustomerName  string `json:"customer_name"`
	VehicleModel  string `json:"vehicle_model"`
	ChassisNumber string `json:"chassis_number"`
	Financed      bool   `json:"financed"`
	Bank          string `json:"bank"`
	Created       string `json:"created"`
}

type LoanDocument struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	S3Region string `json:"s3region"`
	S3Bucket string `json:"s3bucket"`
	Source   string `json:"source"`
}
