package services

import (
	"github.com/epeers/company-accounts/internal/models"
	"github.com/epeers/company-accounts/internal/util"
)

// LinkResource is the transaction resource link naming the attached resource
const LinkResource = "resource"

func TransactionURI(transactionID string) string {
	return "/transactions/" + transactionID
}

func CompanyAccountURI(transactionID, companyAccountsID string) string {
	return TransactionURI(transactionID) + "/company-accounts/" + companyAccountsID
}

func SmallFullURI(transactionID, companyAccountsID string) string {
	return CompanyAccountURI(transactionID, companyAccountsID) + "/small-full"
}

func PeriodURI(transactionID, companyAccountsID string, period models.PeriodType) string {
	return SmallFullURI(transactionID, companyAccountsID) + "/" + period.URISegment()
}

func NoteURI(transactionID, companyAccountsID string, key models.AccountingNoteType) string {
	return SmallFullURI(transactionID, companyAccountsID) + "/" + key.URISegment()
}

func smallFullID(keys *util.KeyGenerator, companyAccountsID string) string {
	return keys.Generate(companyAccountsID + "-" + string(models.AccountTypeSmallFull))
}

func periodID(keys *util.KeyGenerator, companyAccountsID string, period models.PeriodType) string {
	return keys.Generate(companyAccountsID + "-" + string(period))
}

func noteID(keys *util.KeyGenerator, companyAccountsID string, key models.AccountingNoteType) string {
	return keys.Generate(companyAccountsID + "-" + key.String())
}

// setMetadata stamps the server owned fields of a resource before it is stored
func setMetadata(r models.Resource, kind, self string) {
	meta := r.Meta()
	meta.Etag = util.NewEtag()
	meta.Kind = kind
	meta.Links = map[string]string{models.LinkSelf: self}
}
