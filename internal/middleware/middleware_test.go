package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/epeers/company-accounts/internal/chs"
	"github.com/epeers/company-accounts/internal/models"
)

type stubTransactions struct {
	tx  *models.Transaction
	err error
}

func (s *stubTransactions) GetTransaction(_ context.Context, transactionID, _ string) (*models.Transaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	tx := *s.tx
	tx.ID = transactionID
	return &tx, nil
}

func newRouter(transactions TransactionGetter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger(), ValidateIdentity())

	group := router.Group("/transactions/:transaction_id", RequireIdentity(), LoadTransaction(transactions))
	handler := func(c *gin.Context) {
		tx, _ := GetTransaction(c)
		identity, _ := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"transaction": tx.ID, "identity": identity, "request_id": GetRequestID(c)})
	}
	group.GET("", handler)
	group.POST("", handler)
	return router
}

func serve(router *gin.Engine, method string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/transactions/tx-1", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var identified = map[string]string{IdentityHeader: "user-1", IdentityTypeHeader: "oauth2"}

func TestRequireIdentity(t *testing.T) {
	router := newRouter(&stubTransactions{tx: &models.Transaction{Status: models.TransactionStatusOpen}})

	w := serve(router, http.MethodGet, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(router, http.MethodGet, map[string]string{IdentityHeader: "user-1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(router, http.MethodGet, identified)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"identity":"user-1"`)
}

func TestRequestID(t *testing.T) {
	router := newRouter(&stubTransactions{tx: &models.Transaction{Status: models.TransactionStatusOpen}})

	headers := map[string]string{chs.RequestIDHeader: "req-42"}
	for k, v := range identified {
		headers[k] = v
	}
	w := serve(router, http.MethodGet, headers)
	assert.Equal(t, "req-42", w.Header().Get(chs.RequestIDHeader))
	assert.Contains(t, w.Body.String(), `"request_id":"req-42"`)

	w = serve(router, http.MethodGet, identified)
	assert.NotEmpty(t, w.Header().Get(chs.RequestIDHeader))
}

func TestLoadTransaction(t *testing.T) {
	closed := newRouter(&stubTransactions{tx: &models.Transaction{Status: "closed"}})

	w := serve(closed, http.MethodGet, identified)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"transaction":"tx-1"`)

	w = serve(closed, http.MethodPost, identified)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	missing := newRouter(&stubTransactions{err: chs.ErrNotFound})
	w = serve(missing, http.MethodGet, identified)
	assert.Equal(t, http.StatusNotFound, w.Code)

	broken := newRouter(&stubTransactions{err: errors.New("connection refused")})
	w = serve(broken, http.MethodGet, identified)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
