package portfolio

import "math"

// EvolutionPoint is one synthesized point of the evolution chart.
// Values are in cents.
type EvolutionPoint struct {
	Month string `json:"month"`
	Value int64  `json:"value"`
	Gain  int64  `json:"gain"`
}

// evolutionSteps holds the fixed multipliers the chart is synthesized
// from. The series is fictitious: it scales the current gross balance
// backwards instead of reading any stored history.
var evolutionSteps = []struct {
	month string
	value float64
	gain  float64
}{
	{"Jan", 0.82, 0.015},
	{"Feb", 0.85, 0.032},
	{"Mar", 0.88, 0.028},
	{"Apr", 0.87, -0.011},
	{"May", 0.94, 0.065},
	{"Jun", 1.00, 0},
}

// EvolutionSeries synthesizes the six-month evolution series from the
// current stats. The last point's gain carries the monthly variation.
// A zero gross balance yields an empty series.
func EvolutionSeries(stats Stats) []EvolutionPoint {
	base := stats.GrossBalance
	if base == 0 {
		return []EvolutionPoint{}
	}

	points := make([]EvolutionPoint, 0, len(evolutionSteps))
	for i, step := range evolutionSteps {
		gain := step.gain
		if i == len(evolutionSteps)-1 {
			gain = stats.MonthlyVariation / 100
		}
		points = append(points, EvolutionPoint{
			Month: step.month,
			Value: int64(math.Round(float64(base) * step.value)),
			Gain:  int64(math.Round(float64(base) * gain)),
		})
	}
	return points
}
