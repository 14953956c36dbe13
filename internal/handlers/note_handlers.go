package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epeers/company-accounts/internal/middleware"
	"github.com/epeers/company-accounts/internal/models"
	"github.com/epeers/company-accounts/internal/services"
)

type notePointer[T any] interface {
	*T
	models.Note
}

// NoteHandler handles the endpoints of one accounting note type. T is the
// REST shape the request body is bound to.
type NoteHandler[T any, PT notePointer[T]] struct {
	noteSvc *services.NoteService
	key     models.AccountingNoteType
}

// NewNoteHandler creates a new NoteHandler for key
func NewNoteHandler[T any, PT notePointer[T]](noteSvc *services.NoteService, key models.AccountingNoteType) *NoteHandler[T, PT] {
	return &NoteHandler[T, PT]{noteSvc: noteSvc, key: key}
}

func (h *NoteHandler[T, PT]) bind(c *gin.Context) (PT, bool) {
	note := PT(new(T))
	if err := c.ShouldBindJSON(note); err != nil {
		bindingFailed(c, err, h.key.JSONPath())
		return nil, false
	}
	return note, true
}

// Create handles POST .../small-full/notes/{note}
// @Summary Submit a note
// @Tags notes
// @Accept json
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param company_accounts_id path string true "Company account ID"
// @Param note path string true "Note type, e.g. debtors or tangible-assets"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.Errors
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions/{transaction_id}/company-accounts/{company_accounts_id}/small-full/notes/{note} [post]
func (h *NoteHandler[T, PT]) Create(c *gin.Context) {
	tx, ok := requireTransaction(c)
	if !ok {
		return
	}
	note, ok := h.bind(c)
	if !ok {
		return
	}

	resp, err := h.noteSvc.Create(c.Request.Context(), h.key, note, tx, c.Param("company_accounts_id"), middleware.GetRequestID(c))
	writeResponse(c, resp, err, http.StatusCreated)
}

// Get handles GET .../small-full/notes/{note}
// @Summary Get a note
// @Tags notes
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param company_accounts_id path string true "Company account ID"
// @Param note path string true "Note type"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /transactions/{transaction_id}/company-accounts/{company_accounts_id}/small-full/notes/{note} [get]
func (h *NoteHandler[T, PT]) Get(c *gin.Context) {
	resp, err := h.noteSvc.Get(c.Request.Context(), h.key, c.Param("company_accounts_id"), middleware.GetRequestID(c))
	writeResponse(c, resp, err, http.StatusOK)
}

// Update handles PUT .../small-full/notes/{note}
// @Summary Replace a note
// @Tags notes
// @Accept json
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param company_accounts_id path string true "Company account ID"
// @Param note path string true "Note type"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.Errors
// @Failure 404 {object} models.ErrorResponse
// @Router /transactions/{transaction_id}/company-accounts/{company_accounts_id}/small-full/notes/{note} [put]
func (h *NoteHandler[T, PT]) Update(c *gin.Context) {
	tx, ok := requireTransaction(c)
	if !ok {
		return
	}
	note, ok := h.bind(c)
	if !ok {
		return
	}

	resp, err := h.noteSvc.Update(c.Request.Context(), h.key, note, tx, c.Param("company_accounts_id"), middleware.GetRequestID(c))
	writeResponse(c, resp, err, http.StatusOK)
}

// Delete handles DELETE .../small-full/notes/{note}
// @Summary Delete a note
// @Tags notes
// @Param transaction_id path string true "Transaction ID"
// @Param company_accounts_id path string true "Company account ID"
// @Param note path string true "Note type"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /transactions/{transaction_id}/company-accounts/{company_accounts_id}/small-full/notes/{note} [delete]
func (h *NoteHandler[T, PT]) Delete(c *gin.Context) {
	resp, err := h.noteSvc.Delete(c.Request.Context(), h.key, c.Param("company_accounts_id"), middleware.GetRequestID(c))
	writeResponse(c, resp, err, http.StatusNoContent)
}

func registerNote[T any, PT notePointer[T]](group gin.IRoutes, noteSvc *services.NoteService, key models.AccountingNoteType) {
	h := NewNoteHandler[T, PT](noteSvc, key)
	path := "/" + key.URISegment()
	group.POST(path, h.Create)
	group.GET(path, h.Get)
	group.PUT(path, h.Update)
	group.DELETE(path, h.Delete)
}

// registerSmallFullNotes adds the routes of every small full note to group
func registerSmallFullNotes(group gin.IRoutes, noteSvc *services.NoteService) {
	registerNote[models.Debtors](group, noteSvc, models.SmallFullDebtors)
	registerNote[models.Stocks](group, noteSvc, models.SmallFullStocks)
	registerNote[models.Employees](group, noteSvc, models.SmallFullEmployees)
	registerNote[models.TangibleAssets](group, noteSvc, models.SmallFullTangibleAssets)
	registerNote[models.IntangibleAssets](group, noteSvc, models.SmallFullIntangibleAssets)
	registerNote[models.CreditorsWithinOneYear](group, noteSvc, models.SmallFullCreditorsWithinOneYear)
	registerNote[models.CreditorsAfterOneYear](group, noteSvc, models.SmallFullCreditorsAfterOneYear)
	registerNote[models.LoansToDirectors](group, noteSvc, models.SmallFullLoansToDirectors)
	registerNote[models.RelatedPartyTransactions](group, noteSvc, models.SmallFullRelatedPartyTransactions)
}
