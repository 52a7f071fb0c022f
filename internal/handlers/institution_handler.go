package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "patrimon/internal/errors"
	"patrimon/internal/pagination"
	"patrimon/internal/services"
)

// InstitutionHandler handles institution connection requests.
type InstitutionHandler struct {
	institutionService services.InstitutionServicer
	auditService       services.AuditServicer
}

// NewInstitutionHandler creates a new InstitutionHandler.
func NewInstitutionHandler(institutionService services.InstitutionServicer, auditService services.AuditServicer) *InstitutionHandler {
	return &InstitutionHandler{institutionService: institutionService, auditService: auditService}
}

// ConnectRequest represents the institution connection payload.
type ConnectRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=100"`
	CredentialToken string `json:"credential_token" binding:"required"`
}

// GetInstitutions handles listing the user's connected institutions.
// @Summary     Get institutions
// @Description Get a paginated list of the user's connected institutions
// @Tags        institutions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Institution] "Paginated institutions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /institutions [get]
func (h *InstitutionHandler) GetInstitutions(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.institutionService.GetUserInstitutions(actor.UserID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCatalog returns the fixed list of connectable institutions.
// @Summary     Get connection catalog
// @Description Get the list of institutions available for connection
// @Tags        institutions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} catalog.Entry "Catalog entries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /institutions/catalog [get]
func (h *InstitutionHandler) GetCatalog(c *gin.Context) {
	if _, err := getActor(c); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"catalog": h.institutionService.Catalog()})
}

// Connect handles connecting a new institution.
// @Summary     Connect an institution
// @Description Connect a catalog institution and seed its balance and cash asset
// @Tags        institutions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ConnectRequest true "Institution name and credential token"
// @Success     201 {object} models.Institution "Connected institution"
// @Failure     400 {object} ErrorResponse "Invalid input or unknown institution"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Read-only session"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /institutions/connect [post]
func (h *InstitutionHandler) Connect(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	institution, err := h.institutionService.Connect(actor, req.Name, req.CredentialToken)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// The credential token is deliberately not logged.
	h.auditService.Log(actor.UserID, "CONNECT_INSTITUTION", "institution", institution.ID, c.ClientIP(),
		map[string]interface{}{"name": institution.Name})

	c.JSON(http.StatusCreated, gin.H{"institution": institution})
}
