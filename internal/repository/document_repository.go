package repository

import (
	"context"

	"github.com/epeers/company-accounts/internal/entity"
	"github.com/epeers/company-accounts/internal/models"
)

// DocumentRepository reads and writes documents of one type in one collection
type DocumentRepository[T any] struct {
	store      DocumentStore
	collection string
}

// NewDocumentRepository creates a DocumentRepository over collection
func NewDocumentRepository[T any](store DocumentStore, collection string) *DocumentRepository[T] {
	return &DocumentRepository[T]{store: store, collection: collection}
}

// Collection returns the name of the backing collection
func (r *DocumentRepository[T]) Collection() string {
	return r.collection
}

func (r *DocumentRepository[T]) Insert(ctx context.Context, doc *entity.Document[T]) error {
	return r.store.Insert(ctx, r.collection, doc)
}

// FindByID returns the document stored under id, or ErrNotFound
func (r *DocumentRepository[T]) FindByID(ctx context.Context, id string) (*entity.Document[T], error) {
	var doc entity.Document[T]
	if err := r.store.FindByID(ctx, r.collection, id, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepository[T]) Update(ctx context.Context, doc *entity.Document[T]) error {
	return r.store.Update(ctx, r.collection, doc)
}

func (r *DocumentRepository[T]) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, r.collection, id)
}

func (r *DocumentRepository[T]) SetLink(ctx context.Context, id, name, link string) error {
	return r.store.SetLink(ctx, r.collection, id, name, link)
}

func (r *DocumentRepository[T]) RemoveLink(ctx context.Context, id, name string) error {
	return r.store.RemoveLink(ctx, r.collection, id, name)
}

// CompanyAccountRepository stores company account documents
type CompanyAccountRepository = DocumentRepository[entity.CompanyAccountData]

// SmallFullRepository stores small full documents
type SmallFullRepository = DocumentRepository[entity.SmallFullData]

// PeriodRepository stores current or previous period documents
type PeriodRepository = DocumentRepository[entity.PeriodData]

const (
	companyAccountsCollection = "company_accounts"
	smallFullCollection       = "small_full_accounts"
)

func NewCompanyAccountRepository(store DocumentStore) *CompanyAccountRepository {
	return NewDocumentRepository[entity.CompanyAccountData](store, companyAccountsCollection)
}

func NewSmallFullRepository(store DocumentStore) *SmallFullRepository {
	return NewDocumentRepository[entity.SmallFullData](store, smallFullCollection)
}

func NewPeriodRepository(store DocumentStore, period models.PeriodType) *PeriodRepository {
	return NewDocumentRepository[entity.PeriodData](store, period.Collection())
}
