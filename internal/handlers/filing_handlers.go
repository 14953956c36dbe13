package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epeers/company-accounts/internal/middleware"
	"github.com/epeers/company-accounts/internal/models"
	"github.com/epeers/company-accounts/internal/services"
)

// FilingHandler handles the private filing endpoint called when a
// transaction closes
type FilingHandler struct {
	filingSvc *services.FilingService
}

// NewFilingHandler creates a new FilingHandler
func NewFilingHandler(filingSvc *services.FilingService) *FilingHandler {
	return &FilingHandler{filingSvc: filingSvc}
}

// Generate handles GET /private/transactions/:transaction_id/company-accounts/:company_accounts_id/filings
// @Summary Generate the accounts filing
// @Description Render the accounts as iXBRL and describe the resulting document
// @Tags filings
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param company_accounts_id path string true "Company account ID"
// @Success 200 {array} models.Filing
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /private/transactions/{transaction_id}/company-accounts/{company_accounts_id}/filings [get]
func (h *FilingHandler) Generate(c *gin.Context) {
	filing, err := h.filingSvc.GenerateFiling(c.Request.Context(), c.Param("transaction_id"), c.Param("company_accounts_id"), middleware.GetRequestID(c))
	if err != nil {
		if errors.Is(err, services.ErrCompanyAccountNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not_found", Message: "company account not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, []models.Filing{*filing})
}
