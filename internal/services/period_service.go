package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/epeers/company-accounts/internal/models"
	"github.com/epeers/company-accounts/internal/repository"
	"github.com/epeers/company-accounts/internal/transformer"
	"github.com/epeers/company-accounts/internal/util"
)

var ErrUnknownPeriod = errors.New("unknown accounting period")

// PeriodRepositories holds the repository of each accounting period
type PeriodRepositories map[models.PeriodType]*repository.PeriodRepository

// NewPeriodRepositories creates the current and previous period repositories
func NewPeriodRepositories(store repository.DocumentStore) PeriodRepositories {
	return PeriodRepositories{
		models.PeriodCurrent:  repository.NewPeriodRepository(store, models.PeriodCurrent),
		models.PeriodPrevious: repository.NewPeriodRepository(store, models.PeriodPrevious),
	}
}

func (r PeriodRepositories) get(period models.PeriodType) (*repository.PeriodRepository, error) {
	repo, ok := r[period]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPeriod, period)
	}
	return repo, nil
}

// PeriodReader reads stored balance sheets for note validation and filing
type PeriodReader struct {
	repos PeriodRepositories
	keys  *util.KeyGenerator
}

func NewPeriodReader(repos PeriodRepositories, keys *util.KeyGenerator) *PeriodReader {
	return &PeriodReader{repos: repos, keys: keys}
}

// GetBalanceSheet returns the balance sheet of a period, or nil when the
// period has not been submitted
func (r *PeriodReader) GetBalanceSheet(ctx context.Context, companyAccountsID string, period models.PeriodType, requestID string) (*models.BalanceSheet, error) {
	repo, err := r.repos.get(period)
	if err != nil {
		return nil, err
	}
	doc, err := repo.FindByID(ctx, periodID(r.keys, companyAccountsID, period))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		log.WithFields(log.Fields{"request_id": requestID, "period": period}).WithError(err).Error("failed to read balance sheet")
		return nil, fmt.Errorf("failed to get %s: %w", period, err)
	}
	return transformer.BalanceSheetToRest(doc.Data.BalanceSheet), nil
}

// GetBalanceSheets loads the current and previous balance sheets concurrently
func (r *PeriodReader) GetBalanceSheets(ctx context.Context, companyAccountsID, requestID string) (current, previous *models.BalanceSheet, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = r.GetBalanceSheet(gctx, companyAccountsID, models.PeriodCurrent, requestID)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = r.GetBalanceSheet(gctx, companyAccountsID, models.PeriodPrevious, requestID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return current, previous, nil
}

// PeriodValidator checks a submitted balance sheet
type PeriodValidator interface {
	ValidatePeriod(ctx context.Context, period models.PeriodType, p *models.Period, tx *models.Transaction, companyAccountsID, requestID string) (*models.Errors, error)
}

// PeriodService handles the current and previous period balance sheets
type PeriodService struct {
	repos     PeriodRepositories
	validator PeriodValidator
	parents   *ParentResourceFactory
	keys      *util.KeyGenerator
}

// NewPeriodService creates a new PeriodService
func NewPeriodService(repos PeriodRepositories, validator PeriodValidator, parents *ParentResourceFactory, keys *util.KeyGenerator) *PeriodService {
	return &PeriodService{repos: repos, validator: validator, parents: parents, keys: keys}
}

// Create validates and stores a period, then links it from the small full
// accounts
func (s *PeriodService) Create(ctx context.Context, period models.PeriodType, p *models.Period, tx *models.Transaction, companyAccountsID, requestID string) (*models.ResponseObject[*models.Period], error) {
	defer TrackTime("CreatePeriod", time.Now())

	repo, parent, err := s.dependencies(period)
	if err != nil {
		return nil, err
	}

	smallFull, err := parent.Get(ctx, companyAccountsID)
	if err != nil {
		if errors.Is(err, ErrParentNotFound) {
			return &models.ResponseObject[*models.Period]{Status: models.ResponseStatusNotFound}, nil
		}
		return nil, err
	}
	if parent.ChildExists(smallFull, period.LinkName()) {
		return &models.ResponseObject[*models.Period]{Status: models.ResponseStatusDuplicateKeyError}, nil
	}

	errs, err := s.validator.ValidatePeriod(ctx, period, p, tx, companyAccountsID, requestID)
	if err != nil {
		return nil, err
	}
	if errs.HasErrors() {
		return &models.ResponseObject[*models.Period]{Status: models.ResponseStatusValidationError, Errors: errs}, nil
	}

	uri := PeriodURI(tx.ID, companyAccountsID, period)
	setMetadata(p, period.Kind(), uri)

	doc := transformer.PeriodToEntity(p)
	doc.ID = periodID(s.keys, companyAccountsID, period)
	if err := repo.Insert(ctx, doc); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return &models.ResponseObject[*models.Period]{Status: models.ResponseStatusDuplicateKeyError}, nil
		}
		return nil, fmt.Errorf("failed to insert %s: %w", period, err)
	}

	if err := parent.AddLink(ctx, companyAccountsID, period.LinkName(), uri, requestID); err != nil {
		if delErr := repo.Delete(ctx, doc.ID); delErr != nil {
			log.WithFields(log.Fields{"request_id": requestID, "period": string(period)}).WithError(delErr).Error("failed to remove unlinked period")
		}
		return nil, err
	}
	return &models.ResponseObject[*models.Period]{Status: models.ResponseStatusCreated, Data: p}, nil
}

// Get returns a period
func (s *PeriodService) Get(ctx context.Context, period models.PeriodType, companyAccountsID, requestID string) (*models.ResponseObject[*models.Period], error) {
	defer TrackTime("GetPeriod", time.Now())

	repo, err := s.repos.get(period)
	if err != nil {
		return nil, err
	}
	doc, err := repo.FindByID(ctx, periodID(s.keys, companyAccountsID, period))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &models.ResponseObject[*models.Period]{Status: models.ResponseStatusNotFound}, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", period, err)
	}
	return &models.ResponseObject[*models.Period]{Status: models.ResponseStatusFound, Data: transformer.PeriodToRest(doc)}, nil
}

// Update re-validates and replaces a period
func (s *PeriodService) Update(ctx context.Context, period models.PeriodType, p *models.Period, tx *models.Transaction, companyAccountsID, requestID string) (*models.ResponseObject[*models.Period], error) {
	defer TrackTime("UpdatePeriod", time.Now())

	repo, err := s.repos.get(period)
	if err != nil {
		return nil, err
	}

	errs, err := s.validator.ValidatePeriod(ctx, period, p, tx, companyAccountsID, requestID)
	if err != nil {
		return nil, err
	}
	if errs.HasErrors() {
		return &models.ResponseObject[*models.Period]{Status: models.ResponseStatusValidationError, Errors: errs}, nil
	}

	setMetadata(p, period.Kind(), PeriodURI(tx.ID, companyAccountsID, period))
	doc := transformer.PeriodToEntity(p)
	doc.ID = periodID(s.keys, companyAccountsID, period)
	if err := repo.Update(ctx, doc); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &models.ResponseObject[*models.Period]{Status: models.ResponseStatusNotFound}, nil
		}
		return nil, fmt.Errorf("failed to update %s: %w", period, err)
	}
	return &models.ResponseObject[*models.Period]{Status: models.ResponseStatusUpdated, Data: p}, nil
}

// Delete removes a period and its link from the small full accounts
func (s *PeriodService) Delete(ctx context.Context, period models.PeriodType, companyAccountsID, requestID string) (*models.ResponseObject[*models.Period], error) {
	defer TrackTime("DeletePeriod", time.Now())

	repo, parent, err := s.dependencies(period)
	if err != nil {
		return nil, err
	}
	if err := repo.Delete(ctx, periodID(s.keys, companyAccountsID, period)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &models.ResponseObject[*models.Period]{Status: models.ResponseStatusNotFound}, nil
		}
		return nil, fmt.Errorf("failed to delete %s: %w", period, err)
	}
	if err := parent.RemoveLink(ctx, companyAccountsID, period.LinkName(), requestID); err != nil {
		return nil, err
	}
	return &models.ResponseObject[*models.Period]{Status: models.ResponseStatusUpdated}, nil
}

func (s *PeriodService) dependencies(period models.PeriodType) (*repository.PeriodRepository, ParentResource, error) {
	repo, err := s.repos.get(period)
	if err != nil {
		return nil, nil, err
	}
	parent, err := s.parents.Get(models.AccountTypeSmallFull)
	if err != nil {
		return nil, nil, err
	}
	return repo, parent, nil
}
