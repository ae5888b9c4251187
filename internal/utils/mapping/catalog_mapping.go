package mapping

import (
	"github.com/barpos/comanda_backend/internal/core/domain"
	"github.com/barpos/comanda_backend/internal/models"
)

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:         m.ProductID,
		Description:       m.Description,
		Price:             m.Price,
		CommissionPerUnit: m.CommissionPerUnit,
		Sector:            m.Sector,
	}
}

// ToDomainProductSlice converts a slice of model Products to domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}

// ToDomainAttendant converts a model Attendant to a domain Attendant
func ToDomainAttendant(m models.Attendant) domain.Attendant {
	return domain.Attendant{
		AttendantID: m.AttendantID,
		Nickname:    m.Nickname,
		Present:     m.Present,
		Active:      m.Active,
	}
}

// ToDomainAttendantSlice converts a slice of model Attendants to domain Attendants
func ToDomainAttendantSlice(ms []models.Attendant) []domain.Attendant {
	ds := make([]domain.Attendant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAttendant(m)
	}
	return ds
}
