package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epeers/company-accounts/internal/models"
)

func TestMemoryCache_Profile(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	profile := &models.CompanyProfile{CompanyNumber: "12345678"}

	_, ok := c.GetProfile("12345678")
	assert.False(t, ok)

	c.SetProfile("12345678", profile)
	got, ok := c.GetProfile("12345678")
	require.True(t, ok)
	assert.Same(t, profile, got)

	_, ok = c.GetProfile("87654321")
	assert.False(t, ok)
}

func TestMemoryCache_Expiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Minute)
	c.now = func() time.Time { return now }

	c.SetProfile("12345678", &models.CompanyProfile{})
	now = now.Add(30 * time.Second)
	_, ok := c.GetProfile("12345678")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = c.GetProfile("12345678")
	assert.False(t, ok)
}
