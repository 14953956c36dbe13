package cache

import (
	"sync"
	"time"

	"github.com/epeers/company-accounts/internal/models"
)

// MemoryCache provides an in-memory cache for company profiles
type MemoryCache struct {
	profiles map[string]profileEntry
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
}

type profileEntry struct {
	profile   *models.CompanyProfile
	fetchedAt time.Time
}

// NewMemoryCache creates a new in-memory cache whose entries expire after ttl
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		profiles: make(map[string]profileEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// GetProfile retrieves a cached profile if fresh
func (c *MemoryCache) GetProfile(companyNumber string) (*models.CompanyProfile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.profiles[companyNumber]
	if !exists {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) > c.ttl {
		return nil, false
	}
	return entry.profile, true
}

// SetProfile caches a profile
func (c *MemoryCache) SetProfile(companyNumber string, profile *models.CompanyProfile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.profiles[companyNumber] = profileEntry{
		profile:   profile,
		fetchedAt: c.now(),
	}
}
