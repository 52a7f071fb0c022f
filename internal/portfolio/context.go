// Package portfolio implements the aggregation and simulation pipeline:
// context filtering, summary statistics, allocation grouping, the
// synthesized evolution series and the passive-income simulation.
// Everything here is a pure function over asset slices.
package portfolio

import "patrimon/internal/models"

// Context is a reporting scope used to filter which assets count
// toward displayed totals.
type Context string

const (
	ContextNational     Context = "national"
	ContextGlobal       Context = "global"
	ContextConsolidated Context = "consolidated"
)

// IsValid reports whether the context is one of the three scopes.
func (c Context) IsValid() bool {
	switch c {
	case ContextNational, ContextGlobal, ContextConsolidated:
		return true
	}
	return false
}

// ParseContext parses a context query value. An empty value defaults
// to the consolidated scope.
func ParseContext(s string) (Context, bool) {
	if s == "" {
		return ContextConsolidated, true
	}
	c := Context(s)
	return c, c.IsValid()
}

// FilterByContext returns the subset of assets belonging to the given
// reporting context: national keeps domestic holdings, global keeps
// offshore holdings, consolidated keeps everything.
func FilterByContext(assets []models.Asset, ctx Context) []models.Asset {
	if ctx == ContextConsolidated {
		return assets
	}
	wantGlobal := ctx == ContextGlobal
	filtered := make([]models.Asset, 0, len(assets))
	for _, a := range assets {
		if a.IsGlobal == wantGlobal {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
