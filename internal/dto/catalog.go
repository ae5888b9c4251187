package dto

import (
	"github.com/barpos/comanda_backend/internal/core/domain"
	"github.com/barpos/comanda_backend/internal/utils"
)

// ProductResponse defines the data returned for a product. Amounts are
// fixed two-decimal strings.
type ProductResponse struct {
	ID                int    `json:"id"`
	Description       string `json:"description"`
	Price             string `json:"price"`
	CommissionPerUnit string `json:"commissionPerUnit"`
	HasCommission     bool   `json:"hasCommission"`
	Sector            string `json:"sector,omitempty"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ProductID,
		Description:       p.Description,
		Price:             utils.FormatMoney(p.Price),
		CommissionPerUnit: utils.FormatMoney(p.CommissionPerUnit),
		HasCommission:     p.HasCommission(),
		Sector:            p.Sector,
	}
}

// ToProductResponses converts a slice of domain products.
func ToProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ToProductResponse(p)
	}
	return out
}

// AttendantResponse defines the data returned for an attendant.
type AttendantResponse struct {
	ID       int    `json:"id"`
	Nickname string `json:"nickname"`
}

// ToAttendantResponse converts a domain.Attendant to AttendantResponse DTO
func ToAttendantResponse(a domain.Attendant) AttendantResponse {
	return AttendantResponse{ID: a.AttendantID, Nickname: a.Nickname}
}

// ToAttendantResponses converts a slice of domain attendants.
func ToAttendantResponses(attendants []domain.Attendant) []AttendantResponse {
	out := make([]AttendantResponse, len(attendants))
	for i, a := range attendants {
		out[i] = ToAttendantResponse(a)
	}
	return out
}
