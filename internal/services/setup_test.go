package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/epeers/company-accounts/internal/cache"
	"github.com/epeers/company-accounts/internal/models"
	"github.com/epeers/company-accounts/internal/render"
	"github.com/epeers/company-accounts/internal/repository"
	"github.com/epeers/company-accounts/internal/transformer"
	"github.com/epeers/company-accounts/internal/util"
	"github.com/epeers/company-accounts/internal/validation"
)

func ptr(v int64) *int64 { return &v }

type stubProfiles struct {
	mu      sync.Mutex
	profile *models.CompanyProfile
	err     error
	calls   int
}

func (s *stubProfiles) GetCompanyProfile(ctx context.Context, companyNumber, _ string) (*models.CompanyProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	p := *s.profile
	p.CompanyNumber = companyNumber
	return &p, nil
}

type stubTransactions struct {
	err       error
	resources map[string]models.TransactionResource
}

func (s *stubTransactions) GetTransaction(_ context.Context, transactionID, _ string) (*models.Transaction, error) {
	return &models.Transaction{ID: transactionID, CompanyNumber: "00006400", Status: models.TransactionStatusOpen}, nil
}

func (s *stubTransactions) UpdateTransactionResources(_ context.Context, _ string, resources map[string]models.TransactionResource, _ string) error {
	if s.err != nil {
		return s.err
	}
	s.resources = resources
	return nil
}

type stubRenderer struct {
	resp *render.Response
	err  error
	req  render.Request
}

func (s *stubRenderer) Generate(_ context.Context, req render.Request, _ string) (*render.Response, error) {
	s.req = req
	return s.resp, s.err
}

var errUpstream = errors.New("upstream unavailable")

func singleYearProfile() *models.CompanyProfile {
	return &models.CompanyProfile{CompanyName: "FIRST YEAR LTD"}
}

func multiYearProfile() *models.CompanyProfile {
	return &models.CompanyProfile{
		CompanyName: "ESTABLISHED LTD",
		Accounts: &models.CompanyAccounts{LastAccounts: &models.LastAccounts{
			PeriodStartOn: "2023-04-01",
			PeriodEndOn:   "2024-03-31",
		}},
	}
}

// testEnv wires every service against a bolt store the way main does
type testEnv struct {
	store           repository.DocumentStore
	keys            *util.KeyGenerator
	profiles        *stubProfiles
	transactions    *stubTransactions
	renderer        *stubRenderer
	companies       *CompanyService
	companyAccounts *CompanyAccountService
	smallFull       *SmallFullService
	periods         *PeriodService
	notes           *NoteService
	filings         *FilingService
	tx              *models.Transaction
}

func newTestEnv(t *testing.T, profile *models.CompanyProfile) *testEnv {
	t.Helper()
	store, err := repository.NewBoltStore(filepath.Join(t.TempDir(), "accounts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close(context.Background()) })

	env := &testEnv{
		store:        store,
		keys:         util.NewKeyGenerator("test-salt"),
		profiles:     &stubProfiles{profile: profile},
		transactions: &stubTransactions{},
		renderer:     &stubRenderer{},
		tx:           &models.Transaction{ID: "tx-1", CompanyNumber: "00006400", Status: models.TransactionStatusOpen},
	}

	companyAccountRepo := repository.NewCompanyAccountRepository(store)
	smallFullRepo := repository.NewSmallFullRepository(store)
	periodRepos := NewPeriodRepositories(store)
	reader := NewPeriodReader(periodRepos, env.keys)

	env.companies = NewCompanyService(env.profiles, cache.NewMemoryCache(time.Minute))
	validator := validation.NewValidator(env.companies, reader)
	parents := NewParentResourceFactory(NewSmallFullParentResource(smallFullRepo, env.keys))

	env.companyAccounts = NewCompanyAccountService(companyAccountRepo, env.transactions)
	env.smallFull = NewSmallFullService(smallFullRepo, companyAccountRepo, env.keys)
	env.periods = NewPeriodService(periodRepos, validator, parents, env.keys)
	env.notes = NewNoteService(
		validation.NewNoteValidatorFactory(validation.NoteValidators(validator)),
		transformer.NewNoteTransformerFactory(transformer.NoteTransformers()),
		repository.NewNoteRepositoryFactory(repository.NoteRepositories(store)),
		parents,
		env.keys,
	)
	env.filings = NewFilingService(companyAccountRepo, reader, env.renderer)
	return env
}

// newAccounts creates a company account with small full accounts and
// returns the company account id
func (e *testEnv) newAccounts(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	account := &models.CompanyAccount{PeriodEndOn: models.NewFlexibleDate(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC))}
	resp, err := e.companyAccounts.Create(ctx, account, e.tx, "req-1")
	require.NoError(t, err)
	require.Equal(t, models.ResponseStatusCreated, resp.Status)

	id := companyAccountsID(t, resp.Data)
	sf, err := e.smallFull.Create(ctx, &models.SmallFull{}, e.tx, id, "req-1")
	require.NoError(t, err)
	require.Equal(t, models.ResponseStatusCreated, sf.Status)
	return id
}

func companyAccountsID(t *testing.T, account *models.CompanyAccount) string {
	t.Helper()
	self := account.Links[models.LinkSelf]
	prefix := CompanyAccountURI("tx-1", "")
	require.Greater(t, len(self), len(prefix))
	return self[len(prefix):]
}

// balancedSheet returns a balance sheet whose totals are all consistent
func balancedSheet(debtors int64) *models.BalanceSheet {
	return &models.BalanceSheet{
		CurrentAssets: &models.CurrentAssets{Debtors: ptr(debtors), Total: ptr(debtors)},
		OtherLiabilitiesOrAssets: &models.OtherLiabilitiesOrAssets{
			NetCurrentAssets:                  ptr(debtors),
			TotalAssetsLessCurrentLiabilities: ptr(debtors),
			TotalNetAssets:                    ptr(debtors),
		},
		CapitalAndReserves: &models.CapitalAndReserves{ProfitAndLoss: ptr(debtors), TotalShareholdersFunds: ptr(debtors)},
	}
}
