package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "patrimon/internal/errors"
	"patrimon/internal/services"
)

// SimulationHandler handles income simulation requests.
type SimulationHandler struct {
	simulationService services.SimulationServicer
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(simulationService services.SimulationServicer) *SimulationHandler {
	return &SimulationHandler{simulationService: simulationService}
}

// SimulateRequest represents the automatic simulation payload.
type SimulateRequest struct {
	TargetMonthlyIncome float64 `json:"target_monthly_income" binding:"required,gt=0"`
}

// SimulateManualRequest represents the manual simulation payload.
type SimulateManualRequest struct {
	TargetMonthlyIncome float64 `json:"target_monthly_income" binding:"required,gt=0"`
	Price               float64 `json:"price" binding:"gte=0"`
	DividendYieldPct    float64 `json:"dividend_yield" binding:"gte=0"`
}

// GetTarget returns the remembered target income for an asset's ticker.
// @Summary     Get simulation target
// @Description Get the previously submitted target monthly income for the asset's ticker
// @Tags        simulation
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset ID"
// @Success     200 {object} map[string]interface{} "Remembered target or null"
// @Failure     400 {object} ErrorResponse "Invalid asset ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id}/simulation/target [get]
func (h *SimulationHandler) GetTarget(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	target, err := h.simulationService.GetTarget(c.Request.Context(), actor.UserID, assetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"target": target})
}

// Simulate runs the automatic simulation for an asset.
// @Summary     Run income simulation
// @Description Fetch market data for the asset and compute the required capital
// @Tags        simulation
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string          true "Asset ID"
// @Param       request body SimulateRequest true "Target monthly income"
// @Success     200 {object} services.SimulationOutcome "Simulation outcome"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     422 {object} ErrorResponse "Non-positive net yield"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id}/simulation [post]
func (h *SimulationHandler) Simulate(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	outcome, err := h.simulationService.Simulate(c.Request.Context(), actor, assetID, req.TargetMonthlyIncome)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// SimulateManual runs the simulation with user-entered market data.
// @Summary     Run manual income simulation
// @Description Compute the required capital from user-entered price and dividend yield
// @Tags        simulation
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Asset ID"
// @Param       request body SimulateManualRequest true "Target, price and yield"
// @Success     200 {object} services.SimulationOutcome "Simulation outcome"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     422 {object} ErrorResponse "Non-positive net yield"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/{id}/simulation/manual [post]
func (h *SimulationHandler) SimulateManual(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	assetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SimulateManualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	outcome, err := h.simulationService.SimulateManual(c.Request.Context(), actor, assetID,
		req.TargetMonthlyIncome, req.Price, req.DividendYieldPct)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}
