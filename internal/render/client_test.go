package render

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResponse() *Response {
	return &Response{
		Links:             ResponseLinks{Location: "s3://bucket/accounts.html"},
		Description:       "Small full accounts made up to 31 March 2025",
		DescriptionValues: map[string]string{PeriodEndOnKey: "2025-03-31"},
	}
}

func TestValidResponse(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Response)
		want   bool
	}{
		{"complete", func(*Response) {}, true},
		{"blank location", func(r *Response) { r.Links.Location = " " }, false},
		{"empty description", func(r *Response) { r.Description = "" }, false},
		{"missing description values", func(r *Response) { r.DescriptionValues = nil }, false},
		{"missing period end", func(r *Response) { r.DescriptionValues = map[string]string{"other": "x"} }, false},
		{"blank period end", func(r *Response) { r.DescriptionValues[PeriodEndOnKey] = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validResponse()
			tt.modify(r)
			assert.Equal(t, tt.want, ValidResponse(r))
		})
	}

	assert.False(t, ValidResponse(nil))
}

func TestClient_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/private/documents/generate", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("Authorization"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "/transactions/tx-1/company-accounts/ca-1", req.ResourceURI)
		assert.Equal(t, DocumentTypeIXBRL, req.DocumentType)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(validResponse())
	}))
	defer server.Close()

	resp, err := NewClient("key", server.URL).Generate(context.Background(), Request{
		ResourceURI:  "/transactions/tx-1/company-accounts/ca-1",
		ResourceID:   "ca-1",
		MimeType:     MimeTypeXHTML,
		DocumentType: DocumentTypeIXBRL,
	}, "req-1")

	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/accounts.html", resp.Links.Location)
	assert.Equal(t, "2025-03-31", resp.DescriptionValues[PeriodEndOnKey])
}

func TestClient_GenerateInvalidResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"links":{"location":""},"description":"accounts"}`))
	}))
	defer server.Close()

	resp, err := NewClient("key", server.URL).Generate(context.Background(), Request{}, "")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient("key", server.URL).Generate(context.Background(), Request{}, "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidResponse)
}
