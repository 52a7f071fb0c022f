package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "patrimon/internal/errors"
	"patrimon/internal/services"
)

// PreferenceHandler handles scalar user preference requests.
type PreferenceHandler struct {
	preferenceService services.PreferenceServicer
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(preferenceService services.PreferenceServicer) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// SetPreferenceRequest represents the preference update payload.
type SetPreferenceRequest struct {
	Value string `json:"value" binding:"required,max=512"`
}

// GetPreference returns a stored preference value.
// @Summary     Get preference
// @Description Get a whitelisted preference value for the authenticated user
// @Tags        preferences
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       key path string true "Preference key"
// @Success     200 {object} map[string]string "Preference value"
// @Failure     400 {object} ErrorResponse "Unknown preference key"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Preference not set"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /preferences/{key} [get]
func (h *PreferenceHandler) GetPreference(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	key := c.Param("key")
	value, err := h.preferenceService.GetPreference(c.Request.Context(), actor.UserID, key)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

// SetPreference stores a preference value.
// @Summary     Set preference
// @Description Set a whitelisted preference value for the authenticated user
// @Tags        preferences
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       key     path string               true "Preference key"
// @Param       request body SetPreferenceRequest true "Preference value"
// @Success     200 {object} map[string]string "Stored value"
// @Failure     400 {object} ErrorResponse "Unknown key or invalid value"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Read-only session"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /preferences/{key} [put]
func (h *PreferenceHandler) SetPreference(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	key := c.Param("key")

	var req SetPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.preferenceService.SetPreference(c.Request.Context(), actor, key, req.Value); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "value": req.Value})
}
