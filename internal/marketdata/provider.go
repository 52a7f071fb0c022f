// Package marketdata provides market quotes for income simulations.
// The live provider asks a generative model; a Redis decorator caches
// its answers. A nil quote always means "fall back to manual entry",
// never "assume zero values".
package marketdata

import (
	"context"
	"strings"

	"patrimon/internal/models"
)

// Source is one citation backing a quote.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Quote is the ephemeral market data consumed by one simulation.
type Quote struct {
	Price            float64  `json:"price"`
	DividendYieldPct float64  `json:"dividend_yield_pct"`
	Frequency        string   `json:"frequency"`
	Sources          []Source `json:"sources"`
	Estimated        bool     `json:"estimated"`
	TaxExempt        bool     `json:"tax_exempt"`
}

// Provider fetches a quote for a ticker. Implementations return
// (nil, err) on any failure; callers must route that to manual entry.
type Provider interface {
	Fetch(ctx context.Context, ticker string, category models.AssetCategory) (*Quote, error)
}

// IsTaxExemptTicker reports whether a ticker names a tax-exempt
// instrument. Only LCI/LCA certificates qualify under the flat-rate
// model this system uses.
func IsTaxExemptTicker(ticker string) bool {
	t := strings.ToLower(ticker)
	return strings.Contains(t, "lci") || strings.Contains(t, "lca")
}
