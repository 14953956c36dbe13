package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/epeers/company-accounts/internal/chs"
	"github.com/epeers/company-accounts/internal/models"
)

const TransactionKey = "transaction"

// TransactionGetter loads filing transactions
type TransactionGetter interface {
	GetTransaction(ctx context.Context, transactionID, requestID string) (*models.Transaction, error)
}

// LoadTransaction fetches the transaction named by the transaction_id path
// parameter. Writes are only accepted while the transaction is open.
func LoadTransaction(transactions TransactionGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := GetRequestID(c)
		tx, err := transactions.GetTransaction(c.Request.Context(), c.Param("transaction_id"), requestID)
		if err != nil {
			if errors.Is(err, chs.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not_found", Message: "transaction not found"})
				c.Abort()
				return
			}
			log.WithField("request_id", requestID).WithError(err).Error("failed to load transaction")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal_error"})
			c.Abort()
			return
		}

		if c.Request.Method != http.MethodGet && tx.Status != models.TransactionStatusOpen {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "bad_request", Message: "transaction is not open"})
			c.Abort()
			return
		}

		c.Set(TransactionKey, tx)
		c.Next()
	}
}

// GetTransaction retrieves the transaction loaded by LoadTransaction
func GetTransaction(c *gin.Context) (*models.Transaction, bool) {
	tx, exists := c.Get(TransactionKey)
	if !exists {
		return nil, false
	}
	return tx.(*models.Transaction), true
}
