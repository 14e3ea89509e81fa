package domain

// Company is a tenant of the ledger. Every sale belongs to exactly one company.
type Company struct {
	CompanyID    string `json:"companyID"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
}
