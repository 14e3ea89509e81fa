package models

// Company represents a registered company, the tenant owning sales.
type Company struct {
	CompanyID    string `db:"company_id"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	AuditFields
}
