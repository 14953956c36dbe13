// Package transformer copies resources between their REST and stored forms.
// Absent values stay absent in both directions.
package transformer

import (
	"errors"
	"fmt"

	"github.com/epeers/company-accounts/internal/entity"
	"github.com/epeers/company-accounts/internal/factory"
	"github.com/epeers/company-accounts/internal/models"
)

var ErrTypeMismatch = errors.New("resource type does not match transformer")

// NoteTransformer converts the notes of one accounting note type
type NoteTransformer interface {
	AccountsNote() models.AccountingNoteType
	ToEntity(note models.Note) (entity.Note, error)
	ToRest(note entity.Note) (models.Note, error)
}

type restNote[R any] interface {
	*R
	models.Note
}

type noteTransformer[R any, PR restNote[R], D any] struct {
	key      models.AccountingNoteType
	toEntity func(*R) *entity.Document[D]
	toRest   func(*entity.Document[D]) *R
}

func newNoteTransformer[R any, PR restNote[R], D any](key models.AccountingNoteType, toEntity func(*R) *entity.Document[D], toRest func(*entity.Document[D]) *R) NoteTransformer {
	return &noteTransformer[R, PR, D]{key: key, toEntity: toEntity, toRest: toRest}
}

func (t *noteTransformer[R, PR, D]) AccountsNote() models.AccountingNoteType {
	return t.key
}

func (t *noteTransformer[R, PR, D]) ToEntity(note models.Note) (entity.Note, error) {
	rest, ok := note.(PR)
	if !ok || (*R)(rest) == nil {
		return nil, fmt.Errorf("%w: %s transformer got %T", ErrTypeMismatch, t.key, note)
	}
	return t.toEntity((*R)(rest)), nil
}

func (t *noteTransformer[R, PR, D]) ToRest(note entity.Note) (models.Note, error) {
	doc, ok := note.(*entity.Document[D])
	if !ok || doc == nil {
		return nil, fmt.Errorf("%w: %s transformer got %T", ErrTypeMismatch, t.key, note)
	}
	return PR(t.toRest(doc)), nil
}

// NoteTransformers returns a transformer for every supported note type
func NoteTransformers() []NoteTransformer {
	return []NoteTransformer{
		newNoteTransformer(models.SmallFullDebtors, DebtorsToEntity, DebtorsToRest),
		newNoteTransformer(models.SmallFullStocks, StocksToEntity, StocksToRest),
		newNoteTransformer(models.SmallFullEmployees, EmployeesToEntity, EmployeesToRest),
		newNoteTransformer(models.SmallFullTangibleAssets, TangibleAssetsToEntity, TangibleAssetsToRest),
		newNoteTransformer(models.SmallFullIntangibleAssets, IntangibleAssetsToEntity, IntangibleAssetsToRest),
		newNoteTransformer(models.SmallFullCreditorsWithinOneYear, CreditorsWithinOneYearToEntity, CreditorsWithinOneYearToRest),
		newNoteTransformer(models.SmallFullCreditorsAfterOneYear, CreditorsAfterOneYearToEntity, CreditorsAfterOneYearToRest),
		newNoteTransformer(models.SmallFullLoansToDirectors, LoansToDirectorsToEntity, LoansToDirectorsToRest),
		newNoteTransformer(models.SmallFullRelatedPartyTransactions, RelatedPartyTransactionsToEntity, RelatedPartyTransactionsToRest),
	}
}

// NoteTransformerFactory resolves the transformer for an accounting note type
type NoteTransformerFactory = factory.Table[models.AccountingNoteType, NoteTransformer]

func NewNoteTransformerFactory(transformers []NoteTransformer) *NoteTransformerFactory {
	return factory.NewTable("note transformer", transformers, NoteTransformer.AccountsNote)
}

func copyInt(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyLinks(links map[string]string) map[string]string {
	if links == nil {
		return nil
	}
	out := make(map[string]string, len(links))
	for k, v := range links {
		out[k] = v
	}
	return out
}

func baseToEntity(r models.RestObject) entity.BaseData {
	return entity.BaseData{Etag: r.Etag, Kind: r.Kind, Links: copyLinks(r.Links)}
}

func baseToRest(b entity.BaseData) models.RestObject {
	return models.RestObject{Etag: b.Etag, Kind: b.Kind, Links: copyLinks(b.Links)}
}
