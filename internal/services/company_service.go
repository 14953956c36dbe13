package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/epeers/company-accounts/internal/cache"
	"github.com/epeers/company-accounts/internal/models"
)

var ErrMissingTransaction = errors.New("transaction is required to identify the company")

// CompanyProfileClient fetches company profiles
type CompanyProfileClient interface {
	GetCompanyProfile(ctx context.Context, companyNumber, requestID string) (*models.CompanyProfile, error)
}

// CompanyService answers questions about the company a transaction files for
type CompanyService struct {
	profiles CompanyProfileClient
	cache    *cache.MemoryCache
	group    singleflight.Group
}

// NewCompanyService creates a new CompanyService. Profiles are kept in
// profileCache until they expire.
func NewCompanyService(profiles CompanyProfileClient, profileCache *cache.MemoryCache) *CompanyService {
	return &CompanyService{profiles: profiles, cache: profileCache}
}

// GetCompanyProfile returns the profile of a company. Concurrent lookups of
// the same company share one upstream call.
func (s *CompanyService) GetCompanyProfile(ctx context.Context, companyNumber, requestID string) (*models.CompanyProfile, error) {
	defer TrackTime("GetCompanyProfile", time.Now())

	if profile, ok := s.cache.GetProfile(companyNumber); ok {
		return profile, nil
	}

	// the shared call outlives any one caller's cancellation
	detached := context.WithoutCancel(ctx)
	v, err, shared := s.group.Do(companyNumber, func() (any, error) {
		profile, err := s.profiles.GetCompanyProfile(detached, companyNumber, requestID)
		if err != nil {
			return nil, err
		}
		s.cache.SetProfile(companyNumber, profile)
		return profile, nil
	})
	if err != nil {
		log.WithFields(log.Fields{"request_id": requestID, "company_number": companyNumber}).WithError(err).Error("company profile lookup failed")
		return nil, fmt.Errorf("failed to get company profile: %w", err)
	}
	if shared {
		log.WithField("company_number", companyNumber).Debug("company profile lookup shared")
	}
	return v.(*models.CompanyProfile), nil
}

// IsMultipleYearFiler reports whether the company has filed accounts for an
// earlier period, which obliges it to report previous period figures
func (s *CompanyService) IsMultipleYearFiler(ctx context.Context, tx *models.Transaction, requestID string) (bool, error) {
	if tx == nil || tx.CompanyNumber == "" {
		return false, ErrMissingTransaction
	}
	profile, err := s.GetCompanyProfile(ctx, tx.CompanyNumber, requestID)
	if err != nil {
		return false, err
	}
	return profile.HasFiledAccounts(), nil
}
