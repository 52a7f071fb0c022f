package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"patrimon/internal/portfolio"
	"patrimon/internal/services"
)

type mockPortfolioService struct {
	getStatsFn      func(userID string, rctx portfolio.Context) (*portfolio.Stats, error)
	getAllocationFn func(userID string, rctx portfolio.Context) ([]portfolio.CategoryGroup, error)
	getEvolutionFn  func(userID string, rctx portfolio.Context) ([]portfolio.EvolutionPoint, error)
}

func (m *mockPortfolioService) GetStats(userID string, rctx portfolio.Context) (*portfolio.Stats, error) {
	if m.getStatsFn != nil {
		return m.getStatsFn(userID, rctx)
	}
	return &portfolio.Stats{GrossBalance: 5000000, InvestedBalance: 4500000, TotalReturn: 11.11, MonthlyVariation: portfolio.MonthlyVariationPlaceholder}, nil
}

func (m *mockPortfolioService) GetAllocation(userID string, rctx portfolio.Context) ([]portfolio.CategoryGroup, error) {
	if m.getAllocationFn != nil {
		return m.getAllocationFn(userID, rctx)
	}
	return []portfolio.CategoryGroup{}, nil
}

func (m *mockPortfolioService) GetEvolution(userID string, rctx portfolio.Context) ([]portfolio.EvolutionPoint, error) {
	if m.getEvolutionFn != nil {
		return m.getEvolutionFn(userID, rctx)
	}
	return []portfolio.EvolutionPoint{{Month: "Jun", Value: 5000000}}, nil
}

var _ services.PortfolioServicer = (*mockPortfolioService)(nil)

type mockInsightService struct {
	getInsightsFn func(ctx context.Context, userID string, rctx portfolio.Context) (string, error)
}

func (m *mockInsightService) GetInsights(ctx context.Context, userID string, rctx portfolio.Context) (string, error) {
	if m.getInsightsFn != nil {
		return m.getInsightsFn(ctx, userID, rctx)
	}
	return "Your portfolio is well diversified.", nil
}

var _ services.InsightServicer = (*mockInsightService)(nil)

func setupPortfolioRouter(handler *PortfolioHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/portfolio", injectActor(testUserID, false))
	g.GET("/stats", handler.GetStats)
	g.GET("/allocation", handler.GetAllocation)
	g.GET("/evolution", handler.GetEvolution)
	g.GET("/insights", handler.GetInsights)
	return r
}

func TestPortfolioHandler_GetStats(t *testing.T) {
	t.Run("defaults to consolidated context", func(t *testing.T) {
		var gotCtx portfolio.Context
		svc := &mockPortfolioService{
			getStatsFn: func(_ string, rctx portfolio.Context) (*portfolio.Stats, error) {
				gotCtx = rctx
				return &portfolio.Stats{}, nil
			},
		}
		handler := NewPortfolioHandler(svc, &mockInsightService{})
		r := setupPortfolioRouter(handler)

		rec := doRequest(r, "GET", "/portfolio/stats", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotCtx != portfolio.ContextConsolidated {
			t.Errorf("expected consolidated context, got %v", gotCtx)
		}
	})

	t.Run("passes explicit context", func(t *testing.T) {
		var gotCtx portfolio.Context
		svc := &mockPortfolioService{
			getStatsFn: func(_ string, rctx portfolio.Context) (*portfolio.Stats, error) {
				gotCtx = rctx
				return &portfolio.Stats{}, nil
			},
		}
		handler := NewPortfolioHandler(svc, &mockInsightService{})
		r := setupPortfolioRouter(handler)

		rec := doRequest(r, "GET", "/portfolio/stats?context=global", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotCtx != portfolio.ContextGlobal {
			t.Errorf("expected global context, got %v", gotCtx)
		}
	})

	t.Run("returns 400 on unknown context", func(t *testing.T) {
		handler := NewPortfolioHandler(&mockPortfolioService{}, &mockInsightService{})
		r := setupPortfolioRouter(handler)

		rec := doRequest(r, "GET", "/portfolio/stats?context=martian", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CONTEXT")
	})

	t.Run("returns stats payload", func(t *testing.T) {
		handler := NewPortfolioHandler(&mockPortfolioService{}, &mockInsightService{})
		r := setupPortfolioRouter(handler)

		rec := doRequest(r, "GET", "/portfolio/stats", "")

		result := parseJSON(t, rec)
		stats := result["stats"].(map[string]interface{})
		if stats["gross_balance"] != float64(5000000) {
			t.Errorf("expected gross balance 5000000, got %v", stats["gross_balance"])
		}
		if result["context"] != "consolidated" {
			t.Errorf("expected context echo, got %v", result["context"])
		}
	})
}

func TestPortfolioHandler_GetAllocation(t *testing.T) {
	t.Run("returns allocation groups", func(t *testing.T) {
		handler := NewPortfolioHandler(&mockPortfolioService{}, &mockInsightService{})
		r := setupPortfolioRouter(handler)

		rec := doRequest(r, "GET", "/portfolio/allocation?context=national", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if _, ok := result["allocation"]; !ok {
			t.Error("expected allocation key in response")
		}
	})
}

func TestPortfolioHandler_GetEvolution(t *testing.T) {
	t.Run("returns evolution points", func(t *testing.T) {
		handler := NewPortfolioHandler(&mockPortfolioService{}, &mockInsightService{})
		r := setupPortfolioRouter(handler)

		rec := doRequest(r, "GET", "/portfolio/evolution", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		points := result["evolution"].([]interface{})
		if len(points) != 1 {
			t.Fatalf("expected 1 point, got %d", len(points))
		}
	})
}

func TestPortfolioHandler_GetInsights(t *testing.T) {
	t.Run("returns insight text", func(t *testing.T) {
		handler := NewPortfolioHandler(&mockPortfolioService{}, &mockInsightService{})
		r := setupPortfolioRouter(handler)

		rec := doRequest(r, "GET", "/portfolio/insights", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["insights"] != "Your portfolio is well diversified." {
			t.Errorf("unexpected insight text: %v", result["insights"])
		}
	})

	t.Run("returns 400 on unknown context", func(t *testing.T) {
		handler := NewPortfolioHandler(&mockPortfolioService{}, &mockInsightService{})
		r := setupPortfolioRouter(handler)

		rec := doRequest(r, "GET", "/portfolio/insights?context=everything", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
