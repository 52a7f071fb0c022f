package portfolio

import "math"

// flatTaxRate is the flat income-tax rate applied to non-exempt yield.
// A deliberate simplification of the tiered tax tables.
const flatTaxRate = 0.15

// SimulationInput is the five-tuple every simulation converges on,
// whether the market data came from a live lookup or manual entry.
// Monetary fields are in currency units, not cents, because prices are
// quoted values rather than ledger balances.
type SimulationInput struct {
	TargetMonthlyIncome float64
	Price               float64
	DividendYieldPct    float64
	TaxExempt           bool
	HoldingValue        float64
}

// SimulationResult answers how much capital in an asset is needed to
// produce the target net monthly income at its current yield.
type SimulationResult struct {
	RequiredCapital   float64 `json:"required_capital"`
	RequiredUnits     int64   `json:"required_units"`
	CurrentValue      float64 `json:"current_value"`
	Gap               float64 `json:"gap"`
	NetAnnualYieldPct float64 `json:"net_annual_yield_pct"`
	MonthlyYieldPct   float64 `json:"monthly_yield_pct"`
	TaxDeductionPct   float64 `json:"tax_deduction_pct"`
}

// SimulateIncome computes the required capital and unit count for the
// given input. It returns ok=false when the net yield is not positive:
// the calculation is undefined there and must not divide by zero.
//
// Prices at or below one currency unit are treated as not meaningfully
// quotable in discrete units, so the unit count is reported as zero.
func SimulateIncome(in SimulationInput) (*SimulationResult, bool) {
	taxRate := flatTaxRate
	if in.TaxExempt {
		taxRate = 0
	}

	netAnnualYield := (in.DividendYieldPct / 100) * (1 - taxRate)
	if netAnnualYield <= 0 {
		return nil, false
	}

	annualTarget := in.TargetMonthlyIncome * 12
	requiredCapital := annualTarget / netAnnualYield

	var requiredUnits int64
	if in.Price > 1 {
		requiredUnits = int64(math.Ceil(requiredCapital / in.Price))
	}

	return &SimulationResult{
		RequiredCapital:   requiredCapital,
		RequiredUnits:     requiredUnits,
		CurrentValue:      in.HoldingValue,
		Gap:               math.Max(0, requiredCapital-in.HoldingValue),
		NetAnnualYieldPct: netAnnualYield * 100,
		MonthlyYieldPct:   netAnnualYield / 12 * 100,
		TaxDeductionPct:   in.DividendYieldPct * taxRate,
	}, true
}
