package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epeers/company-accounts/internal/entity"
	"github.com/epeers/company-accounts/internal/factory"
	"github.com/epeers/company-accounts/internal/models"
)

func TestNoteRepositoryFactory_CoversEveryNoteType(t *testing.T) {
	f := NewNoteRepositoryFactory(NoteRepositories(newBoltStore(t)))

	assert.Equal(t, len(models.AccountingNoteTypes()), f.Len())
	for _, key := range models.AccountingNoteTypes() {
		repo, err := f.Get(key)
		require.NoError(t, err, key.String())
		assert.Equal(t, key, repo.AccountsNote())
	}
}

func TestNoteRepositoryFactory_MissingKey(t *testing.T) {
	store := newBoltStore(t)
	f := NewNoteRepositoryFactory([]NoteRepository{
		NewNoteRepository[entity.DebtorsData](store, models.SmallFullDebtors),
		NewNoteRepository[entity.StocksData](store, models.SmallFullStocks),
	})

	repo, err := f.Get(models.SmallFullEmployees)
	assert.Nil(t, repo)
	assert.ErrorIs(t, err, factory.ErrMissingInfrastructure)
}

func TestNoteRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository[entity.DebtorsData](newBoltStore(t), models.SmallFullDebtors)

	note := &entity.DebtorsEntity{
		ID: "debtors-1",
		Data: entity.DebtorsData{
			BaseData:      entity.BaseData{Kind: models.SmallFullDebtors.Kind()},
			CurrentPeriod: &entity.DebtorsPeriod{TradeDebtors: int64Ptr(10), Total: int64Ptr(10)},
		},
	}
	require.NoError(t, repo.Insert(ctx, note))
	assert.ErrorIs(t, repo.Insert(ctx, note), ErrDuplicateKey)

	found, err := repo.FindByID(ctx, "debtors-1")
	require.NoError(t, err)
	got, ok := found.(*entity.DebtorsEntity)
	require.True(t, ok)
	assert.Equal(t, int64(10), *got.Data.CurrentPeriod.Total)
	assert.Nil(t, got.Data.CurrentPeriod.OtherDebtors)
	assert.Nil(t, got.Data.PreviousPeriod)

	got.Data.CurrentPeriod.Total = int64Ptr(20)
	require.NoError(t, repo.Update(ctx, got))
	found, err = repo.FindByID(ctx, "debtors-1")
	require.NoError(t, err)
	assert.Equal(t, int64(20), *found.(*entity.DebtorsEntity).Data.CurrentPeriod.Total)

	require.NoError(t, repo.Delete(ctx, "debtors-1"))
	_, err = repo.FindByID(ctx, "debtors-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteRepository_WrongEntityType(t *testing.T) {
	repo := NewNoteRepository[entity.DebtorsData](newBoltStore(t), models.SmallFullDebtors)

	err := repo.Insert(context.Background(), &entity.StocksEntity{ID: "x"})
	assert.ErrorIs(t, err, ErrEntityType)
}

func TestPeriodRepository_UsesPeriodCollection(t *testing.T) {
	store := newBoltStore(t)
	assert.Equal(t, "small_full_current_period", NewPeriodRepository(store, models.PeriodCurrent).Collection())
	assert.Equal(t, "small_full_previous_period", NewPeriodRepository(store, models.PeriodPrevious).Collection())
}
