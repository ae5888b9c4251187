package dto

import (
	"github.com/barpos/comanda_backend/internal/core/domain"
	"github.com/barpos/comanda_backend/internal/ledger"
	"github.com/barpos/comanda_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// CartLineRequest is one line of a submitted cart.
type CartLineRequest struct {
	ProductID    int   `json:"productId" binding:"required,gt=0"`
	Quantity     int   `json:"quantity" binding:"required,gt=0"`
	AttendantIDs []int `json:"attendantIds" binding:"omitempty,dive,gt=0"`
}

// CreateSaleRequest defines the data needed to post a sale. The operator is
// taken from the authenticated token, never from the body.
type CreateSaleRequest struct {
	TabID        int               `json:"tabId" binding:"required,gt=0"`
	Lines        []CartLineRequest `json:"lines" binding:"required,min=1,dive"`
	AttendantIDs []int             `json:"attendantIds" binding:"omitempty,dive,gt=0"`
}

// ToCheckoutRequest converts the request into the domain checkout request.
func (r CreateSaleRequest) ToCheckoutRequest(operatorID int) domain.CheckoutRequest {
	lines := make([]domain.CartLine, len(r.Lines))
	for i, l := range r.Lines {
		attendants := l.AttendantIDs
		if attendants == nil {
			attendants = []int{}
		}
		lines[i] = domain.CartLine{ProductID: l.ProductID, Quantity: l.Quantity, AttendantIDs: attendants}
	}
	return domain.CheckoutRequest{
		TabID:        r.TabID,
		OperatorID:   operatorID,
		Lines:        lines,
		AttendantIDs: r.AttendantIDs,
	}
}

// SaleItemResponse is one line of a reconstructed sale.
type SaleItemResponse struct {
	ProductID    int    `json:"productId"`
	Description  string `json:"description"`
	Quantity     int    `json:"quantity"`
	AttendantIDs []int  `json:"attendantIds"`
	UnitPrice    string `json:"unitPrice"`
	LineTotal    string `json:"lineTotal"`
}

// SaleResponse defines the data returned for a posted sale.
type SaleResponse struct {
	SequenceID int                `json:"sequenceId"`
	OperatorID int                `json:"operatorId"`
	RecordName string             `json:"recordName"`
	Items      []SaleItemResponse `json:"items"`
	Quantity   int                `json:"quantity"`
	Total      string             `json:"total"`
}

// ToSaleResponse converts a domain.StructuredSale to SaleResponse DTO
func ToSaleResponse(s domain.StructuredSale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ProductID:    item.ProductID,
			Description:  item.Description,
			Quantity:     item.Quantity,
			AttendantIDs: item.AttendantIDs,
			UnitPrice:    utils.FormatMoney(item.UnitPrice),
			LineTotal:    utils.FormatMoney(item.LineTotal()),
		}
	}
	return SaleResponse{
		SequenceID: s.SequenceID,
		OperatorID: s.OperatorID,
		RecordName: s.RecordName,
		Items:      items,
		Quantity:   s.TotalQuantity(),
		Total:      utils.FormatMoney(s.Total),
	}
}

// ListSalesResponse wraps the sales of a tab, newest first.
type ListSalesResponse struct {
	TabID int            `json:"tabId"`
	Sales []SaleResponse `json:"sales"`
	Total string         `json:"total"`
}

// ToListSalesResponse reverses the ascending ledger order so the latest sale comes first.
func ToListSalesResponse(tabID int, sales []domain.StructuredSale) ListSalesResponse {
	resp := ListSalesResponse{TabID: tabID, Sales: make([]SaleResponse, len(sales))}
	total := decimal.Zero
	for i, s := range sales {
		resp.Sales[len(sales)-1-i] = ToSaleResponse(s)
		total = total.Add(s.Total)
	}
	resp.Total = utils.FormatMoney(total)
	return resp
}

// CommissionLineResponse is one line of an attendant's commission.
type CommissionLineResponse struct {
	ProductID   int    `json:"productId"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Share       string `json:"share"`
	Total       string `json:"total"`
}

// CommissionResponse is what one attendant earned on a sale.
type CommissionResponse struct {
	AttendantID int                      `json:"attendantId"`
	Nickname    string                   `json:"nickname"`
	Lines       []CommissionLineResponse `json:"lines"`
	Total       string                   `json:"total"`
}

// ToCommissionResponses converts commission allocations.
func ToCommissionResponses(allocations []domain.CommissionAllocation) []CommissionResponse {
	out := make([]CommissionResponse, len(allocations))
	for i, a := range allocations {
		lines := make([]CommissionLineResponse, len(a.LineContributions))
		for j, c := range a.LineContributions {
			lines[j] = CommissionLineResponse{
				ProductID:   c.Product.ProductID,
				Description: c.Product.Description,
				Quantity:    c.Quantity,
				Share:       utils.FormatMoney(c.PerAttendantAmount),
				Total:       utils.FormatMoney(c.Total()),
			}
		}
		out[i] = CommissionResponse{
			AttendantID: a.Attendant.AttendantID,
			Nickname:    a.Attendant.Nickname,
			Lines:       lines,
			Total:       utils.FormatMoney(a.TotalCommission),
		}
	}
	return out
}

// CheckoutResponse reports a posted sale and its printing outcome.
type CheckoutResponse struct {
	SequenceID         int                  `json:"sequenceId"`
	RecordName         string               `json:"recordName"`
	TotalAmount        string               `json:"totalAmount"`
	Printed            bool                 `json:"printed"`
	PrintError         string               `json:"printError,omitempty"`
	Commissions        []CommissionResponse `json:"commissions,omitempty"`
	CommissionReceipts int                  `json:"commissionReceipts"`
}

// ToCheckoutResponse converts a domain.CheckoutResult to CheckoutResponse DTO
func ToCheckoutResponse(r *domain.CheckoutResult) CheckoutResponse {
	resp := CheckoutResponse{
		SequenceID:         r.Sale.SequenceID,
		RecordName:         r.Sale.RecordName,
		TotalAmount:        utils.FormatMoney(r.Sale.TotalAmount),
		Printed:            r.Printed,
		PrintError:         r.PrintError,
		CommissionReceipts: r.CommissionReceipts,
	}
	if len(r.Commissions) > 0 {
		resp.Commissions = ToCommissionResponses(r.Commissions)
	}
	return resp
}

// SaleExportRow is one CSV row of the sales export: one per sale line.
type SaleExportRow struct {
	TabID       int    `csv:"tab_id"`
	SequenceID  int    `csv:"sequence_id"`
	OperatorID  int    `csv:"operator_id"`
	ProductID   int    `csv:"product_id"`
	Description string `csv:"description"`
	Quantity    int    `csv:"quantity"`
	UnitPrice   string `csv:"unit_price"`
	LineTotal   string `csv:"line_total"`
	Attendants  string `csv:"attendant_ids"`
}

// ToSaleExportRows flattens sales into export rows in ledger order.
func ToSaleExportRows(sales []domain.StructuredSale) []*SaleExportRow {
	rows := make([]*SaleExportRow, 0, len(sales))
	for _, s := range sales {
		for _, item := range s.Items {
			rows = append(rows, &SaleExportRow{
				TabID:       s.TabID,
				SequenceID:  s.SequenceID,
				OperatorID:  s.OperatorID,
				ProductID:   item.ProductID,
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   utils.FormatMoney(item.UnitPrice),
				LineTotal:   utils.FormatMoney(item.LineTotal()),
				Attendants:  ledger.JoinAttendants(item.AttendantIDs),
			})
		}
	}
	return rows
}
