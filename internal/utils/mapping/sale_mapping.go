package mapping

import (
	"github.com/SscSPs/fish_sales_app/internal/core/domain"
	"github.com/SscSPs/fish_sales_app/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:      d.SaleID,
		CompanyID:   d.CompanyID,
		ClientName:  d.ClientName,
		FishType:    string(d.FishType),
		SaleDate:    domain.TruncateToDate(d.Date),
		Quantity:    d.Quantity,
		Delivered:   d.Delivered,
		UnitPrice:   d.UnitPrice,
		Amount:      d.Amount,
		Payment:     d.Payment,
		Balance:     d.Balance,
		Settled:     d.Settled,
		Observation: d.Observation,
		Version:     d.Version,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:      m.SaleID,
		CompanyID:   m.CompanyID,
		ClientName:  m.ClientName,
		FishType:    domain.FishType(m.FishType),
		Date:        domain.TruncateToDate(m.SaleDate),
		Quantity:    m.Quantity,
		Delivered:   m.Delivered,
		UnitPrice:   m.UnitPrice,
		Amount:      m.Amount,
		Payment:     m.Payment,
		Balance:     m.Balance,
		Settled:     m.Settled,
		Observation: m.Observation,
		Version:     m.Version,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSaleSlice converts a slice of model Sales to domain Sales
func ToDomainSaleSlice(ms []models.Sale) []domain.Sale {
	ds := make([]domain.Sale, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSale(m)
	}
	return ds
}
