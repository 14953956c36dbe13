package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epeers/company-accounts/internal/middleware"
	"github.com/epeers/company-accounts/internal/models"
	"github.com/epeers/company-accounts/internal/services"
)

// CompanyAccountHandler handles the company account and small full endpoints
type CompanyAccountHandler struct {
	companyAccountSvc *services.CompanyAccountService
	smallFullSvc      *services.SmallFullService
}

// NewCompanyAccountHandler creates a new CompanyAccountHandler
func NewCompanyAccountHandler(companyAccountSvc *services.CompanyAccountService, smallFullSvc *services.SmallFullService) *CompanyAccountHandler {
	return &CompanyAccountHandler{
		companyAccountSvc: companyAccountSvc,
		smallFullSvc:      smallFullSvc,
	}
}

// Create handles POST /transactions/:transaction_id/company-accounts
// @Summary Create a company account
// @Description Start an accounts submission within a filing transaction
// @Tags company-accounts
// @Accept json
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param body body models.CompanyAccount true "Company account"
// @Success 201 {object} models.CompanyAccount
// @Failure 400 {object} models.Errors
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions/{transaction_id}/company-accounts [post]
func (h *CompanyAccountHandler) Create(c *gin.Context) {
	tx, ok := requireTransaction(c)
	if !ok {
		return
	}

	var account models.CompanyAccount
	if err := c.ShouldBindJSON(&account); err != nil {
		bindingFailed(c, err, "$")
		return
	}

	resp, err := h.companyAccountSvc.Create(c.Request.Context(), &account, tx, middleware.GetRequestID(c))
	writeResponse(c, resp, err, http.StatusCreated)
}

// Get handles GET /transactions/:transaction_id/company-accounts/:company_accounts_id
// @Summary Get a company account
// @Tags company-accounts
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param company_accounts_id path string true "Company account ID"
// @Success 200 {object} models.CompanyAccount
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions/{transaction_id}/company-accounts/{company_accounts_id} [get]
func (h *CompanyAccountHandler) Get(c *gin.Context) {
	resp, err := h.companyAccountSvc.Get(c.Request.Context(), c.Param("company_accounts_id"), middleware.GetRequestID(c))
	writeResponse(c, resp, err, http.StatusOK)
}

// CreateSmallFull handles POST .../company-accounts/:company_accounts_id/small-full
// @Summary Create small full accounts
// @Tags small-full
// @Accept json
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param company_accounts_id path string true "Company account ID"
// @Param body body models.SmallFull true "Small full accounts"
// @Success 201 {object} models.SmallFull
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions/{transaction_id}/company-accounts/{company_accounts_id}/small-full [post]
func (h *CompanyAccountHandler) CreateSmallFull(c *gin.Context) {
	tx, ok := requireTransaction(c)
	if !ok {
		return
	}

	var smallFull models.SmallFull
	if err := c.ShouldBindJSON(&smallFull); err != nil {
		bindingFailed(c, err, "$")
		return
	}

	resp, err := h.smallFullSvc.Create(c.Request.Context(), &smallFull, tx, c.Param("company_accounts_id"), middleware.GetRequestID(c))
	writeResponse(c, resp, err, http.StatusCreated)
}

// GetSmallFull handles GET .../company-accounts/:company_accounts_id/small-full
// @Summary Get small full accounts
// @Tags small-full
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param company_accounts_id path string true "Company account ID"
// @Success 200 {object} models.SmallFull
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions/{transaction_id}/company-accounts/{company_accounts_id}/small-full [get]
func (h *CompanyAccountHandler) GetSmallFull(c *gin.Context) {
	resp, err := h.smallFullSvc.Get(c.Request.Context(), c.Param("company_accounts_id"), middleware.GetRequestID(c))
	writeResponse(c, resp, err, http.StatusOK)
}
