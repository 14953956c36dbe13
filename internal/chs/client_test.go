package chs

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epeers/company-accounts/internal/models"
)

func TestClient_GetTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/transactions/tx-1", r.URL.Path)
		assert.Equal(t, "req-1", r.Header.Get(RequestIDHeader))
		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key", user)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"tx-1","company_number":"12345678","status":"open"}`))
	}))
	defer server.Close()

	client := NewClient("key", server.URL)
	tx, err := client.GetTransaction(context.Background(), "tx-1", "req-1")

	require.NoError(t, err)
	assert.Equal(t, "tx-1", tx.ID)
	assert.Equal(t, "12345678", tx.CompanyNumber)
	assert.Equal(t, models.TransactionStatusOpen, tx.Status)
}

func TestClient_GetCompanyProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/company/12345678", r.URL.Path)
		w.Write([]byte(`{
			"company_number": "12345678",
			"accounts": {"last_accounts": {"period_start_on": "2023-04-01", "period_end_on": "2024-03-31"}}
		}`))
	}))
	defer server.Close()

	profile, err := NewClient("key", server.URL).GetCompanyProfile(context.Background(), "12345678", "")

	require.NoError(t, err)
	assert.True(t, profile.HasFiledAccounts())
	assert.Equal(t, "2024-03-31", profile.Accounts.LastAccounts.PeriodEndOn)
}

func TestClient_UpdateTransactionResources(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var got struct {
			Resources map[string]models.TransactionResource `json:"resources"`
		}
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "/accounts", got.Resources["/accounts"].Links["resource"])

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := NewClient("key", server.URL).UpdateTransactionResources(context.Background(), "tx-1",
		map[string]models.TransactionResource{
			"/accounts": {Kind: "accounts", Links: map[string]string{"resource": "/accounts"}},
		}, "req-1")

	assert.NoError(t, err)
}

func TestClient_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/transactions/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer server.Close()

	client := NewClient("key", server.URL)

	_, err := client.GetTransaction(context.Background(), "missing", "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.GetCompanyProfile(context.Background(), "12345678", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
