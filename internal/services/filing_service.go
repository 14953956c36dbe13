package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/epeers/company-accounts/internal/models"
	"github.com/epeers/company-accounts/internal/render"
	"github.com/epeers/company-accounts/internal/repository"
)

// LinkAccounts is the filing link to the generated accounts document
const LinkAccounts = "accounts"

var ErrFilingNotGenerated = errors.New("accounts filing could not be generated")

// DocumentGenerator renders accounts documents
type DocumentGenerator interface {
	Generate(ctx context.Context, req render.Request, requestID string) (*render.Response, error)
}

// FilingService produces the filing handed to the transaction service once
// the accounts are complete
type FilingService struct {
	companyAccounts *repository.CompanyAccountRepository
	periods         *PeriodReader
	renderer        DocumentGenerator
}

// NewFilingService creates a new FilingService
func NewFilingService(companyAccounts *repository.CompanyAccountRepository, periods *PeriodReader, renderer DocumentGenerator) *FilingService {
	return &FilingService{companyAccounts: companyAccounts, periods: periods, renderer: renderer}
}

// GenerateFiling renders the accounts of a company account as iXBRL
func (s *FilingService) GenerateFiling(ctx context.Context, transactionID, companyAccountsID, requestID string) (*models.Filing, error) {
	defer TrackTime("GenerateFiling", time.Now())

	logger := log.WithFields(log.Fields{"request_id": requestID, "company_accounts_id": companyAccountsID})

	var current *models.BalanceSheet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if _, err := s.companyAccounts.FindByID(gctx, companyAccountsID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrCompanyAccountNotFound
			}
			return fmt.Errorf("failed to get company account: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		current, _, err = s.periods.GetBalanceSheets(gctx, companyAccountsID, requestID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if current == nil {
		logger.Error("accounts have no current period balance sheet")
		return nil, ErrFilingNotGenerated
	}

	resp, err := s.renderer.Generate(ctx, render.Request{
		ResourceURI:  CompanyAccountURI(transactionID, companyAccountsID),
		ResourceID:   companyAccountsID,
		MimeType:     render.MimeTypeXHTML,
		DocumentType: render.DocumentTypeIXBRL,
	}, requestID)
	if err != nil {
		logger.WithError(err).Error("document render failed")
		return nil, fmt.Errorf("%w: %w", ErrFilingNotGenerated, err)
	}

	return &models.Filing{
		Kind:                  models.KindFiling,
		Description:           resp.Description,
		DescriptionIdentifier: resp.DescriptionIdentifier,
		DescriptionValues:     resp.DescriptionValues,
		Links:                 map[string]string{LinkAccounts: resp.Links.Location},
	}, nil
}
