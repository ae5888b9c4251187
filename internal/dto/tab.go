package dto

import (
	"strings"
	"time"

	"github.com/barpos/comanda_backend/internal/core/domain"
	"github.com/barpos/comanda_backend/internal/utils"
)

// CreateTabRequest defines the data needed to open a tab.
// The label may be empty unless the room requires a customer name.
type CreateTabRequest struct {
	CustomerLabel string `json:"customerLabel" binding:"max=60"`
}

// ListTabsParams defines query parameters for listing tabs.
type ListTabsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=OPEN CLOSED open closed"`
}

// TabStatus returns the requested status filter, empty for all tabs.
func (p ListTabsParams) TabStatus() domain.TabStatus {
	return domain.TabStatus(strings.ToUpper(p.Status))
}

// TabResponse defines the data returned for a tab.
type TabResponse struct {
	ID            int       `json:"id"`
	CustomerLabel string    `json:"customerLabel"`
	Balance       string    `json:"balance"`
	OpenedAt      time.Time `json:"openedAt"`
	Status        string    `json:"status"`
}

// ToTabResponse converts a domain.Tab to TabResponse DTO
func ToTabResponse(t *domain.Tab) TabResponse {
	return TabResponse{
		ID:            t.TabID,
		CustomerLabel: t.CustomerLabel,
		Balance:       utils.FormatMoney(t.Balance),
		OpenedAt:      t.OpenedAt,
		Status:        string(t.Status),
	}
}

// ToTabResponses converts a slice of domain tabs.
func ToTabResponses(tabs []domain.Tab) []TabResponse {
	out := make([]TabResponse, len(tabs))
	for i := range tabs {
		out[i] = ToTabResponse(&tabs[i])
	}
	return out
}
