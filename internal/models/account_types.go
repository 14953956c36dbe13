package models

import "strings"

// AccountType identifies the kind of accounts a company account carries
type AccountType string

const (
	AccountTypeSmallFull AccountType = "small_full"
)

// NoteType identifies one section of a set of accounts
type NoteType string

const (
	NoteTypeDebtors                  NoteType = "debtors"
	NoteTypeStocks                   NoteType = "stocks"
	NoteTypeEmployees                NoteType = "employees"
	NoteTypeTangibleAssets           NoteType = "tangible_assets"
	NoteTypeIntangibleAssets         NoteType = "intangible_assets"
	NoteTypeCreditorsWithinOneYear   NoteType = "creditors_within_one_year"
	NoteTypeCreditorsAfterOneYear    NoteType = "creditors_after_more_than_one_year"
	NoteTypeLoansToDirectors         NoteType = "loans_to_directors"
	NoteTypeRelatedPartyTransactions NoteType = "related_party_transactions"
)

// AccountingNoteType is a note within a particular account type. It is the
// dispatch key for note repositories, validators and transformers.
type AccountingNoteType struct {
	Account AccountType
	Note    NoteType
}

var (
	SmallFullDebtors                  = AccountingNoteType{AccountTypeSmallFull, NoteTypeDebtors}
	SmallFullStocks                   = AccountingNoteType{AccountTypeSmallFull, NoteTypeStocks}
	SmallFullEmployees                = AccountingNoteType{AccountTypeSmallFull, NoteTypeEmployees}
	SmallFullTangibleAssets           = AccountingNoteType{AccountTypeSmallFull, NoteTypeTangibleAssets}
	SmallFullIntangibleAssets         = AccountingNoteType{AccountTypeSmallFull, NoteTypeIntangibleAssets}
	SmallFullCreditorsWithinOneYear   = AccountingNoteType{AccountTypeSmallFull, NoteTypeCreditorsWithinOneYear}
	SmallFullCreditorsAfterOneYear    = AccountingNoteType{AccountTypeSmallFull, NoteTypeCreditorsAfterOneYear}
	SmallFullLoansToDirectors         = AccountingNoteType{AccountTypeSmallFull, NoteTypeLoansToDirectors}
	SmallFullRelatedPartyTransactions = AccountingNoteType{AccountTypeSmallFull, NoteTypeRelatedPartyTransactions}
)

// AccountingNoteTypes lists every supported accounting note type
func AccountingNoteTypes() []AccountingNoteType {
	return []AccountingNoteType{
		SmallFullDebtors,
		SmallFullStocks,
		SmallFullEmployees,
		SmallFullTangibleAssets,
		SmallFullIntangibleAssets,
		SmallFullCreditorsWithinOneYear,
		SmallFullCreditorsAfterOneYear,
		SmallFullLoansToDirectors,
		SmallFullRelatedPartyTransactions,
	}
}

func (t AccountingNoteType) String() string {
	return string(t.Account) + "_" + string(t.Note)
}

// LinkName is the key under which the note appears in its parent's links
func (t AccountingNoteType) LinkName() string {
	return string(t.Note) + "_note"
}

// URISegment is the path of the note relative to its parent resource
func (t AccountingNoteType) URISegment() string {
	return "notes/" + strings.ReplaceAll(string(t.Note), "_", "-")
}

// Kind is the resource kind reported on the note
func (t AccountingNoteType) Kind() string {
	return strings.ReplaceAll(string(t.Account), "_", "-") + "-note#" + string(t.Note)
}

// Collection is the document store collection holding notes of this type
func (t AccountingNoteType) Collection() string {
	return t.String()
}

// JSONPath is the root JSON path used when reporting validation errors
func (t AccountingNoteType) JSONPath() string {
	return "$." + string(t.Note)
}

// ResponseStatus describes the outcome of a service operation
type ResponseStatus string

const (
	ResponseStatusCreated           ResponseStatus = "CREATED"
	ResponseStatusFound             ResponseStatus = "FOUND"
	ResponseStatusNotFound          ResponseStatus = "NOT_FOUND"
	ResponseStatusUpdated           ResponseStatus = "UPDATED"
	ResponseStatusDuplicateKeyError ResponseStatus = "DUPLICATE_KEY_ERROR"
	ResponseStatusValidationError   ResponseStatus = "VALIDATION_ERROR"
)

// ResponseObject carries a service result back to the handler layer
type ResponseObject[T any] struct {
	Status ResponseStatus
	Data   T
	Errors *Errors
}
