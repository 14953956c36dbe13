// Package render requests accounts documents from the document render
// service.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	generatePath = "/private/documents/generate"

	// PeriodEndOnKey is the description value naming the accounts period end
	PeriodEndOnKey = "period_end_on"

	MimeTypeXHTML     = "application/xhtml+xml"
	DocumentTypeIXBRL = "ixbrl"
)

var ErrInvalidResponse = errors.New("invalid document render response")

// Request asks the render service to generate a document for a resource
type Request struct {
	ResourceURI  string `json:"resource_uri"`
	ResourceID   string `json:"resource_id"`
	MimeType     string `json:"mime_type"`
	DocumentType string `json:"document_type"`
}

// Response describes the generated document
type Response struct {
	Links                 ResponseLinks     `json:"links"`
	Description           string            `json:"description"`
	DescriptionIdentifier string            `json:"description_identifier"`
	DescriptionValues     map[string]string `json:"description_values"`
	Size                  string            `json:"size,omitempty"`
}

type ResponseLinks struct {
	Location string `json:"location"`
}

// Client is an HTTP client for the document render service
type Client struct {
	apiKey     string
	host       string
	httpClient *http.Client
}

// NewClient creates a client for the render service at host
func NewClient(apiKey, host string) *Client {
	return &Client{
		apiKey: apiKey,
		host:   host,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Generate requests a document and returns the validated response. A
// response missing required fields yields ErrInvalidResponse.
func (c *Client) Generate(ctx context.Context, r Request, requestID string) (*Response, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+generatePath, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("render service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if !ValidResponse(&out) {
		log.WithFields(log.Fields{
			"resource_uri": r.ResourceURI,
			"request_id":   requestID,
		}).Error("document render service returned an incomplete response")
		return nil, ErrInvalidResponse
	}
	return &out, nil
}

// ValidResponse reports whether resp carries a location, a description and
// a period end date
func ValidResponse(resp *Response) bool {
	if resp == nil {
		return false
	}
	if isBlank(resp.Links.Location) || isBlank(resp.Description) {
		return false
	}
	return !isBlank(resp.DescriptionValues[PeriodEndOnKey])
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
