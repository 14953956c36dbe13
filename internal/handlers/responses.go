package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/epeers/company-accounts/internal/factory"
	"github.com/epeers/company-accounts/internal/middleware"
	"github.com/epeers/company-accounts/internal/models"
	"github.com/epeers/company-accounts/internal/validation"
)

// internalError logs err and answers with a generic 500. The cause never
// reaches the client.
func internalError(c *gin.Context, err error) {
	entry := log.WithField("request_id", middleware.GetRequestID(c)).WithError(err)
	if errors.Is(err, factory.ErrMissingInfrastructure) {
		entry.Error("configuration defect: no implementation registered")
	} else {
		entry.Error("request failed")
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal_error"})
}

// bindingFailed answers a request whose body could not be decoded or failed
// its field rules
func bindingFailed(c *gin.Context, err error, root string) {
	c.JSON(http.StatusBadRequest, validation.BindingErrors(err, root))
}

// requireTransaction returns the transaction loaded by middleware
func requireTransaction(c *gin.Context) (*models.Transaction, bool) {
	tx, ok := middleware.GetTransaction(c)
	if !ok {
		internalError(c, errors.New("transaction not loaded for request"))
		return nil, false
	}
	return tx, true
}

// writeResponse maps a service outcome to its HTTP response
func writeResponse[T any](c *gin.Context, resp *models.ResponseObject[T], err error, successCode int) {
	if err != nil {
		internalError(c, err)
		return
	}

	switch resp.Status {
	case models.ResponseStatusCreated, models.ResponseStatusFound, models.ResponseStatusUpdated:
		if successCode == http.StatusNoContent {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(successCode, resp.Data)
	case models.ResponseStatusValidationError:
		c.JSON(http.StatusBadRequest, resp.Errors)
	case models.ResponseStatusNotFound:
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not_found", Message: "resource not found"})
	case models.ResponseStatusDuplicateKeyError:
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "conflict", Message: "resource already exists"})
	default:
		internalError(c, errors.New("unexpected response status "+string(resp.Status)))
	}
}
