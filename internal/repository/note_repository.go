package repository

import (
	"context"
	"fmt"

	"github.com/epeers/company-accounts/internal/entity"
	"github.com/epeers/company-accounts/internal/factory"
	"github.com/epeers/company-accounts/internal/models"
)

// NoteRepository persists the notes of one accounting note type
type NoteRepository interface {
	AccountsNote() models.AccountingNoteType
	Insert(ctx context.Context, note entity.Note) error
	FindByID(ctx context.Context, id string) (entity.Note, error)
	Update(ctx context.Context, note entity.Note) error
	Delete(ctx context.Context, id string) error
}

type noteRepository[T any] struct {
	docs *DocumentRepository[T]
	key  models.AccountingNoteType
}

// NewNoteRepository creates a NoteRepository storing T documents in the
// collection of key
func NewNoteRepository[T any](store DocumentStore, key models.AccountingNoteType) NoteRepository {
	return &noteRepository[T]{
		docs: NewDocumentRepository[T](store, key.Collection()),
		key:  key,
	}
}

func (r *noteRepository[T]) AccountsNote() models.AccountingNoteType {
	return r.key
}

func (r *noteRepository[T]) document(note entity.Note) (*entity.Document[T], error) {
	doc, ok := note.(*entity.Document[T])
	if !ok || doc == nil {
		return nil, fmt.Errorf("%w: %s repository got %T", ErrEntityType, r.key, note)
	}
	return doc, nil
}

func (r *noteRepository[T]) Insert(ctx context.Context, note entity.Note) error {
	doc, err := r.document(note)
	if err != nil {
		return err
	}
	return r.docs.Insert(ctx, doc)
}

func (r *noteRepository[T]) FindByID(ctx context.Context, id string) (entity.Note, error) {
	doc, err := r.docs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *noteRepository[T]) Update(ctx context.Context, note entity.Note) error {
	doc, err := r.document(note)
	if err != nil {
		return err
	}
	return r.docs.Update(ctx, doc)
}

func (r *noteRepository[T]) Delete(ctx context.Context, id string) error {
	return r.docs.Delete(ctx, id)
}

// NoteRepositories returns a repository for every supported note type
func NoteRepositories(store DocumentStore) []NoteRepository {
	return []NoteRepository{
		NewNoteRepository[entity.DebtorsData](store, models.SmallFullDebtors),
		NewNoteRepository[entity.StocksData](store, models.SmallFullStocks),
		NewNoteRepository[entity.EmployeesData](store, models.SmallFullEmployees),
		NewNoteRepository[entity.TangibleAssetsData](store, models.SmallFullTangibleAssets),
		NewNoteRepository[entity.IntangibleAssetsData](store, models.SmallFullIntangibleAssets),
		NewNoteRepository[entity.CreditorsWithinOneYearData](store, models.SmallFullCreditorsWithinOneYear),
		NewNoteRepository[entity.CreditorsAfterOneYearData](store, models.SmallFullCreditorsAfterOneYear),
		NewNoteRepository[entity.LoansToDirectorsData](store, models.SmallFullLoansToDirectors),
		NewNoteRepository[entity.RelatedPartyTransactionsData](store, models.SmallFullRelatedPartyTransactions),
	}
}

// NoteRepositoryFactory resolves the repository for an accounting note type
type NoteRepositoryFactory = factory.Table[models.AccountingNoteType, NoteRepository]

// NewNoteRepositoryFactory builds the factory from repos, each keyed by the
// note type it declares
func NewNoteRepositoryFactory(repos []NoteRepository) *NoteRepositoryFactory {
	return factory.NewTable("note repository", repos, NoteRepository.AccountsNote)
}
