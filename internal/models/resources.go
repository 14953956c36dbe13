package models

// Link names shared across resources
const (
	LinkSelf              = "self"
	LinkTransaction       = "transaction"
	LinkSmallFullAccounts = "small_full_accounts"
	LinkCurrentPeriod     = "current_period"
	LinkPreviousPeriod    = "previous_period"
)

// Resource kinds
const (
	KindCompanyAccount = "company-accounts#company-accounts"
	KindSmallFull      = "small-full-accounts#small-full"
	KindFiling         = "accounts"
)

// RestObject carries the metadata shared by every resource
type RestObject struct {
	Etag  string            `json:"etag,omitempty"`
	Kind  string            `json:"kind,omitempty"`
	Links map[string]string `json:"links,omitempty"`
}

// Meta exposes the resource metadata for services that handle resources
// generically
func (r *RestObject) Meta() *RestObject { return r }

// Resource is implemented by every REST resource
type Resource interface {
	Meta() *RestObject
}

// Note is implemented by every note resource
type Note interface {
	Resource
}

// CompanyAccount is the root of an accounts submission within a transaction
type CompanyAccount struct {
	RestObject
	PeriodEndOn *FlexibleDate `json:"period_end_on" binding:"required"`
}

// SmallFull holds the links of a small full accounts submission
type SmallFull struct {
	RestObject
}

// Transaction is the subset of a filing transaction this service reads
type Transaction struct {
	ID            string                         `json:"id"`
	CompanyNumber string                         `json:"company_number"`
	Status        string                         `json:"status"`
	Resources     map[string]TransactionResource `json:"resources,omitempty"`
}

// TransactionStatusOpen marks a transaction that accepts changes
const TransactionStatusOpen = "open"

// TransactionResource describes a resource attached to a transaction
type TransactionResource struct {
	Kind  string            `json:"kind"`
	Links map[string]string `json:"links"`
}

// Filing describes a generated accounts document handed back to the
// transaction service
type Filing struct {
	Kind                  string            `json:"kind"`
	Description           string            `json:"description"`
	DescriptionIdentifier string            `json:"description_identifier,omitempty"`
	DescriptionValues     map[string]string `json:"description_values,omitempty"`
	Links                 map[string]string `json:"links"`
}
