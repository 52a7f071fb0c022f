// Package insights generates portfolio commentary through the Gemini
// API. Failures degrade to a fixed fallback message; they are never
// surfaced as request errors.
package insights

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"patrimon/internal/logger"
	"patrimon/internal/models"
	"patrimon/internal/portfolio"
)

// DefaultModel is the default Gemini model for insights.
const DefaultModel = "gemini-2.5-flash"

// FallbackMessage is returned whenever the model cannot be reached or
// replies with nothing usable.
const FallbackMessage = "Insights are temporarily unavailable. Please try again later."

// Generator produces portfolio insights.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a Generator using ambient credentials
// (GEMINI_API_KEY or ADC). An empty model selects DefaultModel.
func NewGenerator(ctx context.Context, model string) (*Generator, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}, nil
}

// Generate asks the model for a concise strategic summary of the
// portfolio. Any failure yields the fallback message, not an error.
func (g *Generator) Generate(ctx context.Context, stats portfolio.Stats, assets []models.Asset) string {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(stats, assets)), nil)
	if err != nil {
		logger.Get().Warnw("insights generation failed", "error", err)
		return FallbackMessage
	}

	text := resp.Text()
	if text == "" {
		return FallbackMessage
	}
	return text
}

// buildPrompt renders the stats and asset list into the analysis prompt.
// Amounts are converted from cents to currency units for readability.
func buildPrompt(stats portfolio.Stats, assets []models.Asset) string {
	var b strings.Builder
	b.WriteString("Analyze this investment portfolio:\n")
	fmt.Fprintf(&b, "Gross balance: %.2f\n", float64(stats.GrossBalance)/100)
	fmt.Fprintf(&b, "Invested balance: %.2f\n", float64(stats.InvestedBalance)/100)
	fmt.Fprintf(&b, "Monthly variation: %.2f%%\n", stats.MonthlyVariation)

	b.WriteString("Assets: ")
	for i, a := range assets {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s (%s): %.2f", a.Name, a.Ticker, float64(a.Value)/100)
	}
	b.WriteString("\n\nProvide a concise, strategic summary.")
	return b.String()
}
