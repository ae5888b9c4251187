package mapping

import (
	"github.com/barpos/comanda_backend/internal/core/domain"
	"github.com/barpos/comanda_backend/internal/models"
)

// ToModelTab converts a domain Tab to a model Tab
func ToModelTab(d domain.Tab) models.Tab {
	status := d.Status
	if status == "" {
		status = domain.TabOpen
	}
	return models.Tab{
		TabID:         d.TabID,
		CustomerLabel: d.CustomerLabel,
		Balance:       d.Balance,
		OpenedAt:      d.OpenedAt,
		Status:        string(status),
	}
}

// ToDomainTab converts a model Tab to a domain Tab. A stored tab without a
// status is open.
func ToDomainTab(m models.Tab) domain.Tab {
	status := domain.TabStatus(m.Status)
	if status != domain.TabClosed {
		status = domain.TabOpen
	}
	return domain.Tab{
		TabID:         m.TabID,
		CustomerLabel: m.CustomerLabel,
		Balance:       m.Balance,
		OpenedAt:      m.OpenedAt,
		Status:        status,
	}
}

// ToDomainTabSlice converts a slice of model Tabs to domain Tabs
func ToDomainTabSlice(ms []models.Tab) []domain.Tab {
	ds := make([]domain.Tab, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTab(m)
	}
	return ds
}
