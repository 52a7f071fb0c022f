package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patrimon/internal/services"
)

// PortfolioHandler handles portfolio reporting requests.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
	insightService   services.InsightServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer, insightService services.InsightServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, insightService: insightService}
}

// GetStats returns the headline balances for a reporting context.
// @Summary     Get portfolio stats
// @Description Get gross balance, invested balance, total return and monthly variation
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       context query string false "Reporting context (national/global/consolidated)"
// @Success     200 {object} portfolio.Stats "Portfolio stats"
// @Failure     400 {object} ErrorResponse "Unknown context"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/stats [get]
func (h *PortfolioHandler) GetStats(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rctx, err := parseReportContext(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.portfolioService.GetStats(actor.UserID, rctx)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats, "context": rctx})
}

// GetAllocation returns the category breakdown for a reporting context.
// @Summary     Get portfolio allocation
// @Description Get the category and subcategory allocation breakdown
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       context query string false "Reporting context (national/global/consolidated)"
// @Success     200 {array} portfolio.CategoryGroup "Allocation groups"
// @Failure     400 {object} ErrorResponse "Unknown context"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/allocation [get]
func (h *PortfolioHandler) GetAllocation(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rctx, err := parseReportContext(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groups, err := h.portfolioService.GetAllocation(actor.UserID, rctx)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"allocation": groups, "context": rctx})
}

// GetEvolution returns the six-month evolution series.
// @Summary     Get portfolio evolution
// @Description Get the synthetic six-month balance series for charting
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       context query string false "Reporting context (national/global/consolidated)"
// @Success     200 {array} portfolio.EvolutionPoint "Evolution points"
// @Failure     400 {object} ErrorResponse "Unknown context"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/evolution [get]
func (h *PortfolioHandler) GetEvolution(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rctx, err := parseReportContext(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	points, err := h.portfolioService.GetEvolution(actor.UserID, rctx)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"evolution": points, "context": rctx})
}

// GetInsights returns AI commentary on the portfolio.
// @Summary     Get portfolio insights
// @Description Get AI-generated commentary for the context's portfolio
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       context query string false "Reporting context (national/global/consolidated)"
// @Success     200 {object} MessageResponse "Insight text"
// @Failure     400 {object} ErrorResponse "Unknown context"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/insights [get]
func (h *PortfolioHandler) GetInsights(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rctx, err := parseReportContext(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	text, err := h.insightService.GetInsights(c.Request.Context(), actor.UserID, rctx)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": text, "context": rctx})
}
