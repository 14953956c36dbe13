// Package chs talks to the Companies House platform APIs that own
// transactions and company profiles.
package chs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/epeers/company-accounts/internal/models"
)

// RequestIDHeader carries the inbound request id to downstream services
const RequestIDHeader = "X-Request-Id"

var ErrNotFound = errors.New("resource not found")

// Client is an HTTP client for the transaction and company profile APIs
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new client for the API at baseURL
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetTransaction fetches a filing transaction
func (c *Client) GetTransaction(ctx context.Context, transactionID, requestID string) (*models.Transaction, error) {
	var tx models.Transaction
	path := "/transactions/" + url.PathEscape(transactionID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &tx, requestID); err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return &tx, nil
}

// UpdateTransactionResources attaches resources to a transaction, keyed by
// resource URI
func (c *Client) UpdateTransactionResources(ctx context.Context, transactionID string, resources map[string]models.TransactionResource, requestID string) error {
	body := map[string]any{"resources": resources}
	path := "/transactions/" + url.PathEscape(transactionID)
	if err := c.doJSON(ctx, http.MethodPatch, path, body, nil, requestID); err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}
	return nil
}

// GetCompanyProfile fetches the profile of a company
func (c *Client) GetCompanyProfile(ctx context.Context, companyNumber, requestID string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	path := "/company/" + url.PathEscape(companyNumber)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &profile, requestID); err != nil {
		return nil, fmt.Errorf("failed to get company profile %s: %w", companyNumber, err)
	}
	return &profile, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any, requestID string) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	resp, err := c.doRequest(ctx, method, path, body, requestID)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader, requestID string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		resp.Body.Close()
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	return resp, nil
}
