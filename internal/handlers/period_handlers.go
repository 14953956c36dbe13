package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epeers/company-accounts/internal/middleware"
	"github.com/epeers/company-accounts/internal/models"
	"github.com/epeers/company-accounts/internal/services"
)

// PeriodHandler handles the balance sheet endpoints of one accounting period
type PeriodHandler struct {
	periodSvc *services.PeriodService
	period    models.PeriodType
}

// NewPeriodHandler creates a new PeriodHandler for period
func NewPeriodHandler(periodSvc *services.PeriodService, period models.PeriodType) *PeriodHandler {
	return &PeriodHandler{periodSvc: periodSvc, period: period}
}

// Create handles POST .../small-full/{period}
// @Summary Submit a period balance sheet
// @Tags periods
// @Accept json
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param company_accounts_id path string true "Company account ID"
// @Param period path string true "current-period or previous-period"
// @Param body body models.Period true "Balance sheet"
// @Success 201 {object} models.Period
// @Failure 400 {object} models.Errors
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions/{transaction_id}/company-accounts/{company_accounts_id}/small-full/{period} [post]
func (h *PeriodHandler) Create(c *gin.Context) {
	tx, ok := requireTransaction(c)
	if !ok {
		return
	}

	var p models.Period
	if err := c.ShouldBindJSON(&p); err != nil {
		bindingFailed(c, err, h.period.JSONPath())
		return
	}

	resp, err := h.periodSvc.Create(c.Request.Context(), h.period, &p, tx, c.Param("company_accounts_id"), middleware.GetRequestID(c))
	writeResponse(c, resp, err, http.StatusCreated)
}

// Get handles GET .../small-full/{period}
// @Summary Get a period balance sheet
// @Tags periods
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param company_accounts_id path string true "Company account ID"
// @Param period path string true "current-period or previous-period"
// @Success 200 {object} models.Period
// @Failure 404 {object} models.ErrorResponse
// @Router /transactions/{transaction_id}/company-accounts/{company_accounts_id}/small-full/{period} [get]
func (h *PeriodHandler) Get(c *gin.Context) {
	resp, err := h.periodSvc.Get(c.Request.Context(), h.period, c.Param("company_accounts_id"), middleware.GetRequestID(c))
	writeResponse(c, resp, err, http.StatusOK)
}

// Update handles PUT .../small-full/{period}
// @Summary Replace a period balance sheet
// @Tags periods
// @Accept json
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param company_accounts_id path string true "Company account ID"
// @Param period path string true "current-period or previous-period"
// @Param body body models.Period true "Balance sheet"
// @Success 200 {object} models.Period
// @Failure 400 {object} models.Errors
// @Failure 404 {object} models.ErrorResponse
// @Router /transactions/{transaction_id}/company-accounts/{company_accounts_id}/small-full/{period} [put]
func (h *PeriodHandler) Update(c *gin.Context) {
	tx, ok := requireTransaction(c)
	if !ok {
		return
	}

	var p models.Period
	if err := c.ShouldBindJSON(&p); err != nil {
		bindingFailed(c, err, h.period.JSONPath())
		return
	}

	resp, err := h.periodSvc.Update(c.Request.Context(), h.period, &p, tx, c.Param("company_accounts_id"), middleware.GetRequestID(c))
	writeResponse(c, resp, err, http.StatusOK)
}

// Delete handles DELETE .../small-full/{period}
// @Summary Delete a period balance sheet
// @Tags periods
// @Param transaction_id path string true "Transaction ID"
// @Param company_accounts_id path string true "Company account ID"
// @Param period path string true "current-period or previous-period"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /transactions/{transaction_id}/company-accounts/{company_accounts_id}/small-full/{period} [delete]
func (h *PeriodHandler) Delete(c *gin.Context) {
	resp, err := h.periodSvc.Delete(c.Request.Context(), h.period, c.Param("company_accounts_id"), middleware.GetRequestID(c))
	writeResponse(c, resp, err, http.StatusNoContent)
}
