package services

import (
	"context"

	"patrimon/internal/insights"
	"patrimon/internal/portfolio"
)

// insightService turns the current ledger into AI commentary.
type insightService struct {
	assets    AssetServicer
	generator InsightGenerator
}

// NewInsightService creates a new InsightServicer.
func NewInsightService(assets AssetServicer, generator InsightGenerator) InsightServicer {
	return &insightService{assets: assets, generator: generator}
}

// GetInsights generates commentary for the context's ledger. The
// generator owns its own failure handling, so the only errors here are
// ledger reads.
func (s *insightService) GetInsights(ctx context.Context, userID string, rctx portfolio.Context) (string, error) {
	ledger, stats, err := ledgerWithStats(s.assets, userID, rctx)
	if err != nil {
		return "", err
	}
	if s.generator == nil {
		return insights.FallbackMessage, nil
	}
	return s.generator.Generate(ctx, stats, ledger), nil
}
