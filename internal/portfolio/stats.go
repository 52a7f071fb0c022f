package portfolio

import "patrimon/internal/models"

// MonthlyVariationPlaceholder is the fixed monthly variation reported in
// portfolio stats. There is no historical series behind it; the evolution
// chart is synthesized from this value.
const MonthlyVariationPlaceholder = 2.45

// Stats contains the summary statistics for a (filtered) asset ledger.
// Balances are in cents, returns in percent.
type Stats struct {
	GrossBalance     int64   `json:"gross_balance"`
	InvestedBalance  int64   `json:"invested_balance"`
	TotalReturn      float64 `json:"total_return"`
	MonthlyVariation float64 `json:"monthly_variation"`
}

// ComputeStats reduces a list of assets to summary statistics. An empty
// list yields zero balances and a zero total return; the invested-balance
// guard keeps the return defined when nothing has been invested.
func ComputeStats(assets []models.Asset) Stats {
	var gross, invested int64
	for _, a := range assets {
		gross += a.Value
		invested += a.Invested
	}

	var totalReturn float64
	if invested > 0 {
		totalReturn = float64(gross-invested) / float64(invested) * 100
	}

	return Stats{
		GrossBalance:     gross,
		InvestedBalance:  invested,
		TotalReturn:      totalReturn,
		MonthlyVariation: MonthlyVariationPlaceholder,
	}
}
