package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/epeers/company-accounts/internal/models"
	"github.com/epeers/company-accounts/internal/repository"
	"github.com/epeers/company-accounts/internal/transformer"
	"github.com/epeers/company-accounts/internal/util"
)

// SmallFullService handles the small full accounts of a company account
type SmallFullService struct {
	repo            *repository.SmallFullRepository
	companyAccounts *repository.CompanyAccountRepository
	keys            *util.KeyGenerator
}

// NewSmallFullService creates a new SmallFullService
func NewSmallFullService(repo *repository.SmallFullRepository, companyAccounts *repository.CompanyAccountRepository, keys *util.KeyGenerator) *SmallFullService {
	return &SmallFullService{repo: repo, companyAccounts: companyAccounts, keys: keys}
}

// Create stores small full accounts and links them from the company account
func (s *SmallFullService) Create(ctx context.Context, smallFull *models.SmallFull, tx *models.Transaction, companyAccountsID, requestID string) (*models.ResponseObject[*models.SmallFull], error) {
	defer TrackTime("CreateSmallFull", time.Now())

	if _, err := s.companyAccounts.FindByID(ctx, companyAccountsID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &models.ResponseObject[*models.SmallFull]{Status: models.ResponseStatusNotFound}, nil
		}
		return nil, fmt.Errorf("failed to get company account: %w", err)
	}

	uri := SmallFullURI(tx.ID, companyAccountsID)
	setMetadata(smallFull, models.KindSmallFull, uri)

	doc := transformer.SmallFullToEntity(smallFull)
	doc.ID = smallFullID(s.keys, companyAccountsID)
	if err := s.repo.Insert(ctx, doc); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return &models.ResponseObject[*models.SmallFull]{Status: models.ResponseStatusDuplicateKeyError}, nil
		}
		return nil, fmt.Errorf("failed to insert small full accounts: %w", err)
	}

	if err := s.companyAccounts.SetLink(ctx, companyAccountsID, models.LinkSmallFullAccounts, uri); err != nil {
		return nil, fmt.Errorf("failed to link small full accounts: %w", err)
	}

	log.WithFields(log.Fields{"request_id": requestID, "company_accounts_id": companyAccountsID}).Info("small full accounts created")
	return &models.ResponseObject[*models.SmallFull]{Status: models.ResponseStatusCreated, Data: smallFull}, nil
}

// Get returns the small full accounts of a company account
func (s *SmallFullService) Get(ctx context.Context, companyAccountsID, requestID string) (*models.ResponseObject[*models.SmallFull], error) {
	defer TrackTime("GetSmallFull", time.Now())

	doc, err := s.repo.FindByID(ctx, smallFullID(s.keys, companyAccountsID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &models.ResponseObject[*models.SmallFull]{Status: models.ResponseStatusNotFound}, nil
		}
		return nil, fmt.Errorf("failed to get small full accounts: %w", err)
	}
	return &models.ResponseObject[*models.SmallFull]{Status: models.ResponseStatusFound, Data: transformer.SmallFullToRest(doc)}, nil
}
