package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	apperrors "patrimon/internal/errors"
	"patrimon/internal/kvstore"
	"patrimon/internal/logger"
	"patrimon/internal/marketdata"
	"patrimon/internal/portfolio"
	"patrimon/internal/simulation"
)

// simulationService drives the income-simulator flow for one asset at a
// time. Market data comes from the provider; submitted targets are
// remembered per ticker so reopening the simulator pre-fills the form.
type simulationService struct {
	assets   AssetServicer
	provider marketdata.Provider
	prefs    *kvstore.Store
}

// NewSimulationService creates a new SimulationServicer. The preference
// store may be nil; targets are then simply not remembered.
func NewSimulationService(assets AssetServicer, provider marketdata.Provider, prefs *kvstore.Store) SimulationServicer {
	return &simulationService{assets: assets, provider: provider, prefs: prefs}
}

// targetKey is the preference key holding the remembered target income
// for a ticker.
func targetKey(ticker string) string {
	return fmt.Sprintf("income_target:%s", ticker)
}

// GetTarget returns the remembered target monthly income for the
// asset's ticker, or nil when none was ever submitted.
func (s *simulationService) GetTarget(ctx context.Context, userID, assetID string) (*float64, error) {
	asset, err := s.assets.GetAssetByID(userID, assetID)
	if err != nil {
		return nil, err
	}
	if s.prefs == nil {
		return nil, nil
	}

	raw, err := s.prefs.Get(ctx, userID, targetKey(asset.Ticker))
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	target, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, nil
	}
	return &target, nil
}

// rememberTarget persists the submitted target for the ticker. Best
// effort: a store failure never fails the simulation, and viewer-mode
// sessions leave no trace.
func (s *simulationService) rememberTarget(ctx context.Context, actor Actor, ticker string, target float64) {
	if s.prefs == nil || actor.ReadOnly {
		return
	}
	value := strconv.FormatFloat(target, 'f', -1, 64)
	if err := s.prefs.Set(ctx, actor.UserID, targetKey(ticker), value); err != nil {
		logger.Get().Warnw("failed to store simulation target", "ticker", ticker, "error", err)
	}
}

// Simulate runs the automatic flow: fetch a quote for the asset's
// ticker and compute the required capital. A failed fetch is not an
// error; the outcome tells the client to fall back to manual entry.
func (s *simulationService) Simulate(ctx context.Context, actor Actor, assetID string, targetMonthlyIncome float64) (*SimulationOutcome, error) {
	asset, err := s.assets.GetAssetByID(actor.UserID, assetID)
	if err != nil {
		return nil, err
	}

	flow := simulation.NewFlow()
	if err := flow.SubmitTarget(targetMonthlyIncome); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target monthly income must be positive")
	}
	s.rememberTarget(ctx, actor, asset.Ticker, targetMonthlyIncome)

	if s.provider == nil {
		return nil, apperrors.ErrMarketDataFailed
	}

	quote, err := s.provider.Fetch(ctx, asset.Ticker, asset.Category)
	if err != nil || quote == nil {
		if err != nil {
			logger.Get().Warnw("market data fetch failed", "ticker", asset.Ticker, "error", err)
		}
		if err := flow.LoadFailed(); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &SimulationOutcome{State: flow.State(), ManualEntryRequired: true}, nil
	}

	if err := flow.QuoteLoaded(quote); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.finish(flow, asset.Value)
}

// SimulateManual runs the manual flow with user-entered price and
// yield. Tax exemption is inferred from the ticker, same as auto mode.
func (s *simulationService) SimulateManual(ctx context.Context, actor Actor, assetID string, targetMonthlyIncome, price, dividendYieldPct float64) (*SimulationOutcome, error) {
	asset, err := s.assets.GetAssetByID(actor.UserID, assetID)
	if err != nil {
		return nil, err
	}
	if price < 0 || dividendYieldPct < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "price and dividend yield cannot be negative")
	}

	flow := simulation.NewFlow()
	if err := flow.SubmitTarget(targetMonthlyIncome); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target monthly income must be positive")
	}
	s.rememberTarget(ctx, actor, asset.Ticker, targetMonthlyIncome)

	// Manual entry is only reachable through the error state.
	if err := flow.LoadFailed(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := flow.EnterManual(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	quote := &marketdata.Quote{
		Price:            price,
		DividendYieldPct: dividendYieldPct,
		TaxExempt:        marketdata.IsTaxExemptTicker(asset.Ticker),
	}
	if err := flow.SubmitManual(quote); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.finish(flow, asset.Value)
}

// finish computes the simulation result from a flow holding a quote.
func (s *simulationService) finish(flow *simulation.Flow, holdingCents int64) (*SimulationOutcome, error) {
	quote := flow.Quote()

	result, ok := portfolio.SimulateIncome(portfolio.SimulationInput{
		TargetMonthlyIncome: flow.Target(),
		Price:               quote.Price,
		DividendYieldPct:    quote.DividendYieldPct,
		TaxExempt:           quote.TaxExempt,
		HoldingValue:        float64(holdingCents) / 100,
	})
	if !ok {
		return nil, apperrors.ErrNonPositiveYield
	}

	return &SimulationOutcome{
		State:  flow.State(),
		Quote:  quote,
		Result: result,
	}, nil
}
