package models

// CompanyProfile is the subset of a company profile used to classify filers
type CompanyProfile struct {
	CompanyNumber string           `json:"company_number"`
	CompanyName   string           `json:"company_name"`
	Accounts      *CompanyAccounts `json:"accounts,omitempty"`
}

type CompanyAccounts struct {
	NextMadeUpTo string        `json:"next_made_up_to,omitempty"`
	LastAccounts *LastAccounts `json:"last_accounts,omitempty"`
}

type LastAccounts struct {
	MadeUpTo      string `json:"made_up_to,omitempty"`
	PeriodStartOn string `json:"period_start_on,omitempty"`
	PeriodEndOn   string `json:"period_end_on,omitempty"`
	Type          string `json:"type,omitempty"`
}

// HasFiledAccounts reports whether the company has previously filed accounts
// covering a full period
func (p *CompanyProfile) HasFiledAccounts() bool {
	return p != nil && p.Accounts != nil && p.Accounts.LastAccounts != nil &&
		p.Accounts.LastAccounts.PeriodStartOn != ""
}
