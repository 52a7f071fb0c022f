package services

import (
	"patrimon/internal/models"
	"patrimon/internal/portfolio"
)

// portfolioService aggregates the asset ledger into reporting views.
// All arithmetic lives in the portfolio package; this layer only loads
// the ledger for the requested context.
type portfolioService struct {
	assets AssetServicer
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(assets AssetServicer) PortfolioServicer {
	return &portfolioService{assets: assets}
}

// GetStats returns the headline balances for the context. An empty
// ledger yields zero stats, not an error.
func (s *portfolioService) GetStats(userID string, rctx portfolio.Context) (*portfolio.Stats, error) {
	ledger, err := s.assets.GetLedger(userID, rctx)
	if err != nil {
		return nil, err
	}
	stats := portfolio.ComputeStats(ledger)
	return &stats, nil
}

// GetAllocation returns the category/subcategory breakdown for the context.
func (s *portfolioService) GetAllocation(userID string, rctx portfolio.Context) ([]portfolio.CategoryGroup, error) {
	ledger, err := s.assets.GetLedger(userID, rctx)
	if err != nil {
		return nil, err
	}
	stats := portfolio.ComputeStats(ledger)
	return portfolio.GroupAllocations(ledger, stats.GrossBalance), nil
}

// GetEvolution returns the six-month synthetic series for the context.
func (s *portfolioService) GetEvolution(userID string, rctx portfolio.Context) ([]portfolio.EvolutionPoint, error) {
	ledger, err := s.assets.GetLedger(userID, rctx)
	if err != nil {
		return nil, err
	}
	return portfolio.EvolutionSeries(portfolio.ComputeStats(ledger)), nil
}

// ledgerWithStats loads a context's ledger once for callers that need
// both the assets and their aggregate stats.
func ledgerWithStats(assets AssetServicer, userID string, rctx portfolio.Context) ([]models.Asset, portfolio.Stats, error) {
	ledger, err := assets.GetLedger(userID, rctx)
	if err != nil {
		return nil, portfolio.Stats{}, err
	}
	return ledger, portfolio.ComputeStats(ledger), nil
}
