package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "patrimon/internal/errors"
	"patrimon/internal/marketdata"
	"patrimon/internal/portfolio"
	"patrimon/internal/services"
	"patrimon/internal/simulation"
)

const testAssetID = "01890000-0000-7000-8000-0000000000dd"

type mockSimulationService struct {
	getTargetFn      func(ctx context.Context, userID, assetID string) (*float64, error)
	simulateFn       func(ctx context.Context, actor services.Actor, assetID string, target float64) (*services.SimulationOutcome, error)
	simulateManualFn func(ctx context.Context, actor services.Actor, assetID string, target, price, yield float64) (*services.SimulationOutcome, error)
}

func (m *mockSimulationService) GetTarget(ctx context.Context, userID, assetID string) (*float64, error) {
	if m.getTargetFn != nil {
		return m.getTargetFn(ctx, userID, assetID)
	}
	return nil, nil
}

func (m *mockSimulationService) Simulate(ctx context.Context, actor services.Actor, assetID string, target float64) (*services.SimulationOutcome, error) {
	if m.simulateFn != nil {
		return m.simulateFn(ctx, actor, assetID, target)
	}
	return resultOutcome(), nil
}

func (m *mockSimulationService) SimulateManual(ctx context.Context, actor services.Actor, assetID string, target, price, yield float64) (*services.SimulationOutcome, error) {
	if m.simulateManualFn != nil {
		return m.simulateManualFn(ctx, actor, assetID, target, price, yield)
	}
	return resultOutcome(), nil
}

var _ services.SimulationServicer = (*mockSimulationService)(nil)

func resultOutcome() *services.SimulationOutcome {
	return &services.SimulationOutcome{
		State: simulation.StateResult,
		Quote: &marketdata.Quote{Price: 38.50, DividendYieldPct: 12},
		Result: &portfolio.SimulationResult{
			RequiredCapital: 117647.06,
			RequiredUnits:   3056,
		},
	}
}

func setupSimulationRouter(handler *SimulationHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/assets/:id/simulation", injectActor(testUserID, false))
	g.GET("/target", handler.GetTarget)
	g.POST("", handler.Simulate)
	g.POST("/manual", handler.SimulateManual)
	return r
}

func TestSimulationHandler_GetTarget(t *testing.T) {
	t.Run("returns null when no target remembered", func(t *testing.T) {
		handler := NewSimulationHandler(&mockSimulationService{})
		r := setupSimulationRouter(handler)

		rec := doRequest(r, "GET", "/assets/"+testAssetID+"/simulation/target", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["target"] != nil {
			t.Errorf("expected null target, got %v", result["target"])
		}
	})

	t.Run("returns remembered target", func(t *testing.T) {
		svc := &mockSimulationService{
			getTargetFn: func(_ context.Context, _, _ string) (*float64, error) {
				target := 1500.0
				return &target, nil
			},
		}
		handler := NewSimulationHandler(svc)
		r := setupSimulationRouter(handler)

		rec := doRequest(r, "GET", "/assets/"+testAssetID+"/simulation/target", "")

		result := parseJSON(t, rec)
		if result["target"] != float64(1500) {
			t.Errorf("expected target 1500, got %v", result["target"])
		}
	})

	t.Run("returns 400 on malformed asset id", func(t *testing.T) {
		handler := NewSimulationHandler(&mockSimulationService{})
		r := setupSimulationRouter(handler)

		rec := doRequest(r, "GET", "/assets/bogus/simulation/target", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSimulationHandler_Simulate(t *testing.T) {
	t.Run("returns result outcome", func(t *testing.T) {
		handler := NewSimulationHandler(&mockSimulationService{})
		r := setupSimulationRouter(handler)

		rec := doRequest(r, "POST", "/assets/"+testAssetID+"/simulation",
			`{"target_monthly_income":1000}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["state"] != "result" {
			t.Errorf("expected result state, got %v", result["state"])
		}
		simResult := result["result"].(map[string]interface{})
		if simResult["required_units"] != float64(3056) {
			t.Errorf("expected 3056 units, got %v", simResult["required_units"])
		}
	})

	t.Run("fetch failure surfaces manual-entry hint with 200", func(t *testing.T) {
		svc := &mockSimulationService{
			simulateFn: func(_ context.Context, _ services.Actor, _ string, _ float64) (*services.SimulationOutcome, error) {
				return &services.SimulationOutcome{
					State:               simulation.StateError,
					ManualEntryRequired: true,
				}, nil
			},
		}
		handler := NewSimulationHandler(svc)
		r := setupSimulationRouter(handler)

		rec := doRequest(r, "POST", "/assets/"+testAssetID+"/simulation",
			`{"target_monthly_income":1000}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["manual_entry_required"] != true {
			t.Errorf("expected manual entry hint, got %v", result["manual_entry_required"])
		}
		if _, ok := result["result"]; ok {
			t.Error("expected no result in failure outcome")
		}
	})

	t.Run("returns 400 on non-positive target", func(t *testing.T) {
		handler := NewSimulationHandler(&mockSimulationService{})
		r := setupSimulationRouter(handler)

		rec := doRequest(r, "POST", "/assets/"+testAssetID+"/simulation",
			`{"target_monthly_income":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 on missing asset", func(t *testing.T) {
		svc := &mockSimulationService{
			simulateFn: func(_ context.Context, _ services.Actor, _ string, _ float64) (*services.SimulationOutcome, error) {
				return nil, apperrors.ErrAssetNotFound
			},
		}
		handler := NewSimulationHandler(svc)
		r := setupSimulationRouter(handler)

		rec := doRequest(r, "POST", "/assets/"+testAssetID+"/simulation",
			`{"target_monthly_income":1000}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestSimulationHandler_SimulateManual(t *testing.T) {
	t.Run("passes price and yield through", func(t *testing.T) {
		var gotPrice, gotYield float64
		svc := &mockSimulationService{
			simulateManualFn: func(_ context.Context, _ services.Actor, _ string, _, price, yield float64) (*services.SimulationOutcome, error) {
				gotPrice, gotYield = price, yield
				return resultOutcome(), nil
			},
		}
		handler := NewSimulationHandler(svc)
		r := setupSimulationRouter(handler)

		rec := doRequest(r, "POST", "/assets/"+testAssetID+"/simulation/manual",
			`{"target_monthly_income":1000,"price":38.50,"dividend_yield":12}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotPrice != 38.50 || gotYield != 12 {
			t.Errorf("expected price 38.50 and yield 12, got %v and %v", gotPrice, gotYield)
		}
	})

	t.Run("returns 422 on non-positive net yield", func(t *testing.T) {
		svc := &mockSimulationService{
			simulateManualFn: func(_ context.Context, _ services.Actor, _ string, _, _, _ float64) (*services.SimulationOutcome, error) {
				return nil, apperrors.ErrNonPositiveYield
			},
		}
		handler := NewSimulationHandler(svc)
		r := setupSimulationRouter(handler)

		rec := doRequest(r, "POST", "/assets/"+testAssetID+"/simulation/manual",
			`{"target_monthly_income":1000,"price":38.50,"dividend_yield":0}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NON_POSITIVE_YIELD")
	})

	t.Run("returns 400 on negative price", func(t *testing.T) {
		handler := NewSimulationHandler(&mockSimulationService{})
		r := setupSimulationRouter(handler)

		rec := doRequest(r, "POST", "/assets/"+testAssetID+"/simulation/manual",
			`{"target_monthly_income":1000,"price":-1,"dividend_yield":12}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
