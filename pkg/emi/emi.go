// Package emi solves fixed-installment loan scenarios and generates
// reducing-balance amortization schedules.
package emi

import "math"

// Mode names the field a Scenario leaves to be derived. Exactly one field is
// unknown at solve time.
type Mode string

const (
	ModeInstallment Mode = "installment"
	ModePrincipal   Mode = "principal"
	ModeRate        Mode = "rate"
	ModeTenure      Mode = "tenure"
)

// Bisection interval for rate solves, in monthly rate terms. A true rate
// outside this interval yields a boundary-adjacent answer, not an error.
const (
	rateLow  = 0.0001
	rateHigh = 0.05
	rateIter = 40
)

// Scenario is a loan scenario with one unknown identified by Mode.
// Amounts are whole currency units.
type Scenario struct {
	Principal         int64   `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TenureMonths      int     `json:"tenure_months"`
	Installment       int64   `json:"installment"`
	Mode              Mode    `json:"mode"`
}

// Result carries the completed scenario. Total and Interest are derived from
// the rounded installment, so rounding noise of a few units is expected.
type Result struct {
	Principal         int64   `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TenureMonths      int     `json:"tenure_months"`
	Installment       int64   `json:"installment"`
	Total             int64   `json:"total"`
	Interest          int64   `json:"interest"`
}

// Row is one month of an amortization schedule. Each row is rounded
// independently; residuals need not net to zero.
type Row struct {
	Month          int   `json:"month"`
	Interest       int64 `json:"interest"`
	Principal      int64 `json:"principal"`
	ClosingBalance int64 `json:"closing_balance"`
}

func monthlyRate(annualPercent float64) float64 {
	return annualPercent / 1200
}

// installmentFor returns the exact (unrounded) fixed payment for P at
// monthly rate r over n months: P*r*(1+r)^n / ((1+r)^n - 1).
func installmentFor(p, r float64, n int) float64 {
	pow := math.Pow(1+r, float64(n))
	return p * r * pow / (pow - 1)
}

// Solve completes the scenario's unknown field. Infeasible or degenerate
// inputs produce an all-zero Result rather than an error.
func Solve(s Scenario) Result {
	switch s.Mode {
	case ModeInstallment:
		return solveInstallment(s)
	case ModePrincipal:
		return solvePrincipal(s)
	case ModeTenure:
		return solveTenure(s)
	case ModeRate:
		return solveRate(s)
	}
	return Result{}
}

func solveInstallment(s Scenario) Result {
	r := monthlyRate(s.AnnualRatePercent)
	if s.Principal <= 0 || r <= 0 || s.TenureMonths <= 0 {
		return Result{}
	}

	e := int64(math.Round(installmentFor(float64(s.Principal), r, s.TenureMonths)))
	total := e * int64(s.TenureMonths)
	return Result{
		Principal:         s.Principal,
		AnnualRatePercent: s.AnnualRatePercent,
		TenureMonths:      s.TenureMonths,
		Installment:       e,
		Total:             total,
		Interest:          total - s.Principal,
	}
}

func solvePrincipal(s Scenario) Result {
	r := monthlyRate(s.AnnualRatePercent)
	if s.Installment <= 0 || r <= 0 || s.TenureMonths <= 0 {
		return Result{}
	}

	pow := math.Pow(1+r, float64(s.TenureMonths))
	p := int64(math.Round(float64(s.Installment) * (pow - 1) / (r * pow)))
	total := s.Installment * int64(s.TenureMonths)
	return Result{
		Principal:         p,
		AnnualRatePercent: s.AnnualRatePercent,
		TenureMonths:      s.TenureMonths,
		Installment:       s.Installment,
		Total:             total,
		Interest:          total - p,
	}
}

func solveTenure(s Scenario) Result {
	r := monthlyRate(s.AnnualRatePercent)
	if s.Installment <= 0 || s.Principal <= 0 || r <= 0 {
		return Result{}
	}

	e := float64(s.Installment)
	p := float64(s.Principal)
	// The installment must at least cover a month's interest or the
	// balance never amortizes. Zero months signals infeasibility.
	if e <= p*r {
		return Result{}
	}

	n := int(math.Round((math.Log(e) - math.Log(e-p*r)) / math.Log(1+r)))
	total := s.Installment * int64(n)
	return Result{
		Principal:         s.Principal,
		AnnualRatePercent: s.AnnualRatePercent,
		TenureMonths:      n,
		Installment:       s.Installment,
		Total:             total,
		Interest:          total - s.Principal,
	}
}

func solveRate(s Scenario) Result {
	if s.Installment <= 0 || s.Principal <= 0 || s.TenureMonths <= 0 {
		return Result{}
	}

	p := float64(s.Principal)
	e := float64(s.Installment)
	lo, hi := rateLow, rateHigh
	mid := lo
	// Fixed iteration count: the interval shrinks to (hi-lo)/2^40, exact
	// for currency purposes.
	for i := 0; i < rateIter; i++ {
		mid = (lo + hi) / 2
		if installmentFor(p, mid, s.TenureMonths) > e {
			hi = mid
		} else {
			lo = mid
		}
	}

	total := s.Installment * int64(s.TenureMonths)
	return Result{
		Principal:         s.Principal,
		AnnualRatePercent: mid * 1200,
		TenureMonths:      s.TenureMonths,
		Installment:       s.Installment,
		Total:             total,
		Interest:          total - s.Principal,
	}
}

// BuildSchedule iterates the reducing balance month by month. The closing
// balance is clamped at zero for output.
func BuildSchedule(principal int64, annualRatePercent float64, installment int64, months int) []Row {
	r := monthlyRate(annualRatePercent)
	if principal <= 0 || r <= 0 || installment <= 0 || months <= 0 {
		return nil
	}

	schedule := make([]Row, 0, months)
	balance := float64(principal)
	for m := 1; m <= months; m++ {
		interest := balance * r
		capital := float64(installment) - interest
		balance -= capital

		closing := balance
		if closing < 0 {
			closing = 0
		}
		schedule = append(schedule, Row{
			Month:          m,
			Interest:       int64(math.Round(interest)),
			Principal:      int64(math.Round(capital)),
			ClosingBalance: int64(math.Round(closing)),
		})
	}
	return schedule
}
