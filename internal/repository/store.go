package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/epeers/company-accounts/internal/entity"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateKey = errors.New("document with the same id already exists")
	ErrEntityType   = errors.New("entity type does not match repository")
)

// DocumentStore persists {_id, data} documents grouped by collection. Every
// write touches exactly one document.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, doc entity.Entity) error
	FindByID(ctx context.Context, collection, id string, out entity.Entity) error
	Update(ctx context.Context, collection string, doc entity.Entity) error
	Delete(ctx context.Context, collection, id string) error
	// SetLink and RemoveLink change a single key of the document's links map
	// in one atomic update
	SetLink(ctx context.Context, collection, id, name, link string) error
	RemoveLink(ctx context.Context, collection, id, name string) error
	Close(ctx context.Context) error
}

func linksPath() []string {
	return strings.Split(entity.LinksPath, ".")
}
