package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epeers/company-accounts/internal/cache"
	"github.com/epeers/company-accounts/internal/factory"
	"github.com/epeers/company-accounts/internal/models"
	"github.com/epeers/company-accounts/internal/render"
	"github.com/epeers/company-accounts/internal/repository"
	"github.com/epeers/company-accounts/internal/transformer"
	"github.com/epeers/company-accounts/internal/validation"
)

func TestCompanyService_CachesProfiles(t *testing.T) {
	profiles := &stubProfiles{profile: multiYearProfile()}
	svc := NewCompanyService(profiles, cache.NewMemoryCache(time.Minute))
	tx := &models.Transaction{ID: "tx", CompanyNumber: "00006400"}

	multi, err := svc.IsMultipleYearFiler(context.Background(), tx, "req")
	require.NoError(t, err)
	assert.True(t, multi)

	multi, err = svc.IsMultipleYearFiler(context.Background(), tx, "req")
	require.NoError(t, err)
	assert.True(t, multi)
	assert.Equal(t, 1, profiles.calls)
}

func TestCompanyService_SingleYearFiler(t *testing.T) {
	svc := NewCompanyService(&stubProfiles{profile: singleYearProfile()}, cache.NewMemoryCache(time.Minute))
	multi, err := svc.IsMultipleYearFiler(context.Background(), &models.Transaction{CompanyNumber: "1"}, "req")
	require.NoError(t, err)
	assert.False(t, multi)
}

func TestCompanyService_Failures(t *testing.T) {
	profiles := &stubProfiles{err: errUpstream}
	svc := NewCompanyService(profiles, cache.NewMemoryCache(time.Minute))

	_, err := svc.IsMultipleYearFiler(context.Background(), &models.Transaction{CompanyNumber: "1"}, "req")
	assert.ErrorIs(t, err, errUpstream)

	_, err = svc.IsMultipleYearFiler(context.Background(), nil, "req")
	assert.ErrorIs(t, err, ErrMissingTransaction)

	// failures are not cached
	_, _ = svc.IsMultipleYearFiler(context.Background(), &models.Transaction{CompanyNumber: "1"}, "req")
	assert.Equal(t, 2, profiles.calls)
}

func TestCompanyService_LookupIgnoresCallerCancellation(t *testing.T) {
	svc := NewCompanyService(&stubProfiles{profile: multiYearProfile()}, cache.NewMemoryCache(time.Minute))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	profile, err := svc.GetCompanyProfile(ctx, "00006400", "req")
	require.NoError(t, err)
	assert.Equal(t, "00006400", profile.CompanyNumber)
}

func TestCompanyAccountService_CreateAndGet(t *testing.T) {
	env := newTestEnv(t, singleYearProfile())
	ctx := context.Background()

	account := &models.CompanyAccount{PeriodEndOn: models.NewFlexibleDate(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC))}
	resp, err := env.companyAccounts.Create(ctx, account, env.tx, "req")
	require.NoError(t, err)
	require.Equal(t, models.ResponseStatusCreated, resp.Status)

	id := companyAccountsID(t, resp.Data)
	uri := CompanyAccountURI("tx-1", id)
	assert.Equal(t, "/transactions/tx-1", resp.Data.Links[models.LinkTransaction])
	assert.Equal(t, models.KindCompanyAccount, resp.Data.Kind)
	assert.NotEmpty(t, resp.Data.Etag)
	require.Contains(t, env.transactions.resources, uri)
	assert.Equal(t, uri, env.transactions.resources[uri].Links[LinkResource])

	got, err := env.companyAccounts.Get(ctx, id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusFound, got.Status)
	assert.Equal(t, "2025-03-31", got.Data.PeriodEndOn.String())

	missing, err := env.companyAccounts.Get(ctx, "missing", "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusNotFound, missing.Status)
}

func TestCompanyAccountService_TransactionFailureRemovesAccount(t *testing.T) {
	env := newTestEnv(t, singleYearProfile())
	env.transactions.err = errUpstream

	account := &models.CompanyAccount{PeriodEndOn: models.NewFlexibleDate(time.Now())}
	_, err := env.companyAccounts.Create(context.Background(), account, env.tx, "req")
	require.ErrorIs(t, err, errUpstream)

	id := companyAccountsID(t, account)
	got, err := env.companyAccounts.Get(context.Background(), id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusNotFound, got.Status)
}

func TestSmallFullService(t *testing.T) {
	env := newTestEnv(t, singleYearProfile())
	ctx := context.Background()

	resp, err := env.smallFull.Create(ctx, &models.SmallFull{}, env.tx, "missing", "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusNotFound, resp.Status)

	id := env.newAccounts(t)

	account, err := env.companyAccounts.Get(ctx, id, "req")
	require.NoError(t, err)
	assert.Equal(t, SmallFullURI("tx-1", id), account.Data.Links[models.LinkSmallFullAccounts])

	dup, err := env.smallFull.Create(ctx, &models.SmallFull{}, env.tx, id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusDuplicateKeyError, dup.Status)

	got, err := env.smallFull.Get(ctx, id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusFound, got.Status)
	assert.Equal(t, models.KindSmallFull, got.Data.Kind)
}

func TestPeriodService_Lifecycle(t *testing.T) {
	env := newTestEnv(t, singleYearProfile())
	ctx := context.Background()
	id := env.newAccounts(t)

	created, err := env.periods.Create(ctx, models.PeriodCurrent, &models.Period{BalanceSheet: balancedSheet(10)}, env.tx, id, "req")
	require.NoError(t, err)
	require.Equal(t, models.ResponseStatusCreated, created.Status)

	dup, err := env.periods.Create(ctx, models.PeriodCurrent, &models.Period{BalanceSheet: balancedSheet(10)}, env.tx, id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusDuplicateKeyError, dup.Status)

	orphan, err := env.periods.Create(ctx, models.PeriodCurrent, &models.Period{BalanceSheet: balancedSheet(10)}, env.tx, "unknown", "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusNotFound, orphan.Status)

	sf, err := env.smallFull.Get(ctx, id, "req")
	require.NoError(t, err)
	assert.Equal(t, PeriodURI("tx-1", id, models.PeriodCurrent), sf.Data.Links[models.LinkCurrentPeriod])

	got, err := env.periods.Get(ctx, models.PeriodCurrent, id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusFound, got.Status)
	assert.Equal(t, int64(10), *got.Data.BalanceSheet.CurrentAssets.Debtors)

	updated, err := env.periods.Update(ctx, models.PeriodCurrent, &models.Period{BalanceSheet: balancedSheet(20)}, env.tx, id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusUpdated, updated.Status)
	assert.NotEqual(t, created.Data.Etag, updated.Data.Etag)

	deleted, err := env.periods.Delete(ctx, models.PeriodCurrent, id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusUpdated, deleted.Status)

	sf, err = env.smallFull.Get(ctx, id, "req")
	require.NoError(t, err)
	assert.NotContains(t, sf.Data.Links, models.LinkCurrentPeriod)

	again, err := env.periods.Delete(ctx, models.PeriodCurrent, id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusNotFound, again.Status)
}

func TestPeriodService_ValidationErrors(t *testing.T) {
	env := newTestEnv(t, singleYearProfile())
	ctx := context.Background()
	id := env.newAccounts(t)

	unbalanced := balancedSheet(10)
	unbalanced.CurrentAssets.Total = ptr(11)
	resp, err := env.periods.Create(ctx, models.PeriodCurrent, &models.Period{BalanceSheet: unbalanced}, env.tx, id, "req")
	require.NoError(t, err)
	require.Equal(t, models.ResponseStatusValidationError, resp.Status)
	ok, _ := resp.Errors.ContainsError(models.NewError(validation.ErrKeyIncorrectTotal, "$.current_period.balance_sheet.current_assets.total"))
	assert.True(t, ok, "%+v", resp.Errors.Errors())

	previous, err := env.periods.Create(ctx, models.PeriodPrevious, &models.Period{BalanceSheet: balancedSheet(5)}, env.tx, id, "req")
	require.NoError(t, err)
	require.Equal(t, models.ResponseStatusValidationError, previous.Status)
	ok, _ = previous.Errors.ContainsError(models.NewError(validation.ErrKeyUnexpectedData, "$.previous_period"))
	assert.True(t, ok)

	_, err = env.periods.Get(ctx, "next_period", id, "req")
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}

func TestNoteService_Lifecycle(t *testing.T) {
	env := newTestEnv(t, singleYearProfile())
	ctx := context.Background()
	id := env.newAccounts(t)

	_, err := env.periods.Create(ctx, models.PeriodCurrent, &models.Period{BalanceSheet: balancedSheet(10)}, env.tx, id, "req")
	require.NoError(t, err)

	note := &models.Debtors{CurrentPeriod: &models.DebtorsPeriod{TradeDebtors: ptr(10), Total: ptr(10)}}
	created, err := env.notes.Create(ctx, models.SmallFullDebtors, note, env.tx, id, "req")
	require.NoError(t, err)
	require.Equal(t, models.ResponseStatusCreated, created.Status)
	assert.Equal(t, models.SmallFullDebtors.Kind(), created.Data.Meta().Kind)

	sf, err := env.smallFull.Get(ctx, id, "req")
	require.NoError(t, err)
	assert.Equal(t, NoteURI("tx-1", id, models.SmallFullDebtors), sf.Data.Links[models.SmallFullDebtors.LinkName()])

	dup, err := env.notes.Create(ctx, models.SmallFullDebtors, note, env.tx, id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusDuplicateKeyError, dup.Status)

	got, err := env.notes.Get(ctx, models.SmallFullDebtors, id, "req")
	require.NoError(t, err)
	require.Equal(t, models.ResponseStatusFound, got.Status)
	debtors, ok := got.Data.(*models.Debtors)
	require.True(t, ok)
	assert.Equal(t, int64(10), *debtors.CurrentPeriod.Total)

	mismatch := &models.Debtors{CurrentPeriod: &models.DebtorsPeriod{TradeDebtors: ptr(7), Total: ptr(7)}}
	invalid, err := env.notes.Update(ctx, models.SmallFullDebtors, mismatch, env.tx, id, "req")
	require.NoError(t, err)
	require.Equal(t, models.ResponseStatusValidationError, invalid.Status)
	contains, _ := invalid.Errors.ContainsError(models.NewError(validation.ErrKeyNotEqualToCurrentBalanceSheet, "$.debtors.current_period.total"))
	assert.True(t, contains, "%+v", invalid.Errors.Errors())

	deleted, err := env.notes.Delete(ctx, models.SmallFullDebtors, id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusUpdated, deleted.Status)

	sf, err = env.smallFull.Get(ctx, id, "req")
	require.NoError(t, err)
	assert.NotContains(t, sf.Data.Links, models.SmallFullDebtors.LinkName())

	gone, err := env.notes.Get(ctx, models.SmallFullDebtors, id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusNotFound, gone.Status)
}

func TestNoteService_ParentAndCollaboratorFailures(t *testing.T) {
	env := newTestEnv(t, singleYearProfile())
	ctx := context.Background()

	note := &models.Employees{CurrentPeriod: &models.EmployeesPeriod{AverageNumberOfEmployees: ptr(3)}}
	resp, err := env.notes.Create(ctx, models.SmallFullEmployees, note, env.tx, "no-accounts", "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusNotFound, resp.Status)

	id := env.newAccounts(t)
	env.profiles.err = errUpstream
	_, err = env.notes.Create(ctx, models.SmallFullEmployees, note, env.tx, id, "req")
	assert.ErrorIs(t, err, validation.ErrDataAccess)

	unknown := models.AccountingNoteType{Account: "micro", Note: models.NoteTypeEmployees}
	_, err = env.notes.Get(ctx, unknown, id, "req")
	assert.ErrorIs(t, err, factory.ErrMissingInfrastructure)
}

// unlinkableParent reads the small full accounts but fails every link update
type unlinkableParent struct {
	ParentResource
}

func (unlinkableParent) AddLink(context.Context, string, string, string, string) error {
	return errUpstream
}

func TestCreate_FailedLinkRemovesDocument(t *testing.T) {
	env := newTestEnv(t, singleYearProfile())
	ctx := context.Background()
	id := env.newAccounts(t)

	parents := NewParentResourceFactory(unlinkableParent{
		ParentResource: NewSmallFullParentResource(repository.NewSmallFullRepository(env.store), env.keys),
	})
	periodRepos := NewPeriodRepositories(env.store)
	validator := validation.NewValidator(env.companies, NewPeriodReader(periodRepos, env.keys))

	periods := NewPeriodService(periodRepos, validator, parents, env.keys)
	_, err := periods.Create(ctx, models.PeriodCurrent, &models.Period{BalanceSheet: balancedSheet(10)}, env.tx, id, "req")
	require.ErrorIs(t, err, errUpstream)

	period, err := env.periods.Get(ctx, models.PeriodCurrent, id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusNotFound, period.Status)

	notes := NewNoteService(
		validation.NewNoteValidatorFactory(validation.NoteValidators(validator)),
		transformer.NewNoteTransformerFactory(transformer.NoteTransformers()),
		repository.NewNoteRepositoryFactory(repository.NoteRepositories(env.store)),
		parents,
		env.keys,
	)
	note := &models.Employees{CurrentPeriod: &models.EmployeesPeriod{AverageNumberOfEmployees: ptr(3)}}
	_, err = notes.Create(ctx, models.SmallFullEmployees, note, env.tx, id, "req")
	require.ErrorIs(t, err, errUpstream)

	got, err := env.notes.Get(ctx, models.SmallFullEmployees, id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusNotFound, got.Status)

	sf, err := env.smallFull.Get(ctx, id, "req")
	require.NoError(t, err)
	assert.NotContains(t, sf.Data.Links, models.LinkCurrentPeriod)
	assert.NotContains(t, sf.Data.Links, models.SmallFullEmployees.LinkName())

	retried, err := env.notes.Create(ctx, models.SmallFullEmployees, note, env.tx, id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusCreated, retried.Status)
}

func TestNoteService_UpdateMissingNote(t *testing.T) {
	env := newTestEnv(t, singleYearProfile())
	id := env.newAccounts(t)

	note := &models.Stocks{CurrentPeriod: &models.StocksPeriod{Stocks: ptr(1), Total: ptr(1)}}
	resp, err := env.notes.Update(context.Background(), models.SmallFullStocks, note, env.tx, id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.ResponseStatusNotFound, resp.Status)
}

func TestSmallFullParentResource_ChildExists(t *testing.T) {
	p := &SmallFullParentResource{}
	parent := &models.SmallFull{RestObject: models.RestObject{Links: map[string]string{
		"debtors_note": "/notes/debtors",
		"stocks_note":  "  ",
	}}}

	assert.True(t, p.ChildExists(parent, "debtors_note"))
	assert.False(t, p.ChildExists(parent, "Debtors_note"))
	assert.False(t, p.ChildExists(parent, "stocks_note"))
	assert.False(t, p.ChildExists(parent, "employees_note"))
	assert.False(t, p.ChildExists(nil, "debtors_note"))
}

func TestFilingService(t *testing.T) {
	env := newTestEnv(t, singleYearProfile())
	ctx := context.Background()
	id := env.newAccounts(t)

	_, err := env.filings.GenerateFiling(ctx, "tx-1", id, "req")
	assert.ErrorIs(t, err, ErrFilingNotGenerated)

	_, err = env.filings.GenerateFiling(ctx, "tx-1", "missing", "req")
	assert.ErrorIs(t, err, ErrCompanyAccountNotFound)

	_, err = env.periods.Create(ctx, models.PeriodCurrent, &models.Period{BalanceSheet: balancedSheet(10)}, env.tx, id, "req")
	require.NoError(t, err)

	env.renderer.resp = &render.Response{
		Links:             render.ResponseLinks{Location: "s3://documents/accounts.xhtml"},
		Description:       "Small full accounts made up to 31 March 2025",
		DescriptionValues: map[string]string{render.PeriodEndOnKey: "2025-03-31"},
	}
	filing, err := env.filings.GenerateFiling(ctx, "tx-1", id, "req")
	require.NoError(t, err)
	assert.Equal(t, models.KindFiling, filing.Kind)
	assert.Equal(t, "s3://documents/accounts.xhtml", filing.Links[LinkAccounts])
	assert.Equal(t, "2025-03-31", filing.DescriptionValues[render.PeriodEndOnKey])
	assert.Equal(t, CompanyAccountURI("tx-1", id), env.renderer.req.ResourceURI)
	assert.Equal(t, render.DocumentTypeIXBRL, env.renderer.req.DocumentType)

	env.renderer.resp, env.renderer.err = nil, render.ErrInvalidResponse
	_, err = env.filings.GenerateFiling(ctx, "tx-1", id, "req")
	assert.True(t, errors.Is(err, ErrFilingNotGenerated))
}
