package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/epeers/company-accounts/internal/models"
	"github.com/epeers/company-accounts/internal/repository"
	"github.com/epeers/company-accounts/internal/transformer"
)

var ErrCompanyAccountNotFound = errors.New("company account not found")

// TransactionClient reads transactions and attaches resources to them
type TransactionClient interface {
	GetTransaction(ctx context.Context, transactionID, requestID string) (*models.Transaction, error)
	UpdateTransactionResources(ctx context.Context, transactionID string, resources map[string]models.TransactionResource, requestID string) error
}

// CompanyAccountService handles the root resource of an accounts submission
type CompanyAccountService struct {
	repo         *repository.CompanyAccountRepository
	transactions TransactionClient
}

// NewCompanyAccountService creates a new CompanyAccountService
func NewCompanyAccountService(repo *repository.CompanyAccountRepository, transactions TransactionClient) *CompanyAccountService {
	return &CompanyAccountService{repo: repo, transactions: transactions}
}

// Create stores a company account and attaches it to the transaction
func (s *CompanyAccountService) Create(ctx context.Context, account *models.CompanyAccount, tx *models.Transaction, requestID string) (*models.ResponseObject[*models.CompanyAccount], error) {
	defer TrackTime("CreateCompanyAccount", time.Now())

	id := uuid.NewString()
	uri := CompanyAccountURI(tx.ID, id)
	setMetadata(account, models.KindCompanyAccount, uri)
	account.Links[models.LinkTransaction] = TransactionURI(tx.ID)

	doc := transformer.CompanyAccountToEntity(account)
	doc.ID = id
	if err := s.repo.Insert(ctx, doc); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return &models.ResponseObject[*models.CompanyAccount]{Status: models.ResponseStatusDuplicateKeyError}, nil
		}
		return nil, fmt.Errorf("failed to insert company account: %w", err)
	}

	resources := map[string]models.TransactionResource{
		uri: {Kind: models.KindCompanyAccount, Links: map[string]string{LinkResource: uri}},
	}
	if err := s.transactions.UpdateTransactionResources(ctx, tx.ID, resources, requestID); err != nil {
		if delErr := s.repo.Delete(ctx, id); delErr != nil {
			log.WithFields(log.Fields{"request_id": requestID, "company_accounts_id": id}).WithError(delErr).Error("failed to remove orphaned company account")
		}
		return nil, fmt.Errorf("failed to attach company account to transaction: %w", err)
	}

	log.WithFields(log.Fields{"request_id": requestID, "company_accounts_id": id}).Info("company account created")
	return &models.ResponseObject[*models.CompanyAccount]{Status: models.ResponseStatusCreated, Data: account}, nil
}

// Get returns a company account
func (s *CompanyAccountService) Get(ctx context.Context, companyAccountsID, requestID string) (*models.ResponseObject[*models.CompanyAccount], error) {
	defer TrackTime("GetCompanyAccount", time.Now())

	doc, err := s.repo.FindByID(ctx, companyAccountsID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &models.ResponseObject[*models.CompanyAccount]{Status: models.ResponseStatusNotFound}, nil
		}
		return nil, fmt.Errorf("failed to get company account: %w", err)
	}
	return &models.ResponseObject[*models.CompanyAccount]{Status: models.ResponseStatusFound, Data: transformer.CompanyAccountToRest(doc)}, nil
}
