package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/barpos/comanda_backend/internal/apperrors"
	"github.com/barpos/comanda_backend/internal/core/domain"
	portsrepo "github.com/barpos/comanda_backend/internal/core/ports/repositories"
	portssvc "github.com/barpos/comanda_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type tabService struct {
	BaseService
	mu         sync.Mutex
	tabs       portsrepo.TabRepositoryFacade
	roomConfig portsrepo.RoomConfigReader
	now        func() time.Time
}

// TabServiceOption is a functional option for configuring the tab service
type TabServiceOption func(*tabService)

// WithTabClock sets the clock used for the opening timestamp.
func WithTabClock(now func() time.Time) TabServiceOption {
	return func(s *tabService) {
		s.now = now
	}
}

// NewTabService creates a new tab service.
func NewTabService(tabs portsrepo.TabRepositoryFacade, roomConfig portsrepo.RoomConfigReader, options ...TabServiceOption) portssvc.TabSvcFacade {
	svc := &tabService{tabs: tabs, roomConfig: roomConfig, now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TabSvcFacade = (*tabService)(nil)

// CreateTab opens a tab. Labels are stored upper case and compared without
// regard to case, so asking twice for the same customer returns the open tab.
func (s *tabService) CreateTab(ctx context.Context, customerLabel string) (*domain.Tab, bool, error) {
	label := strings.ToUpper(strings.TrimSpace(customerLabel))

	room, err := s.roomConfig.GetRoomConfig(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("%w: loading room config: %v", apperrors.ErrStorage, err)
	}
	if label == "" && room.CustomerNameRequired {
		return nil, false, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tabs, err := s.tabs.ListTabs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tabs")
		return nil, false, fmt.Errorf("%w: listing tabs: %v", apperrors.ErrStorage, err)
	}

	maxID := 0
	for i := range tabs {
		if label != "" && tabs[i].IsOpen() && strings.EqualFold(tabs[i].CustomerLabel, label) {
			return &tabs[i], true, nil
		}
		if tabs[i].TabID > maxID {
			maxID = tabs[i].TabID
		}
	}

	id := maxID + 1
	if room.InitialTabNumber > id {
		id = room.InitialTabNumber
	}
	if label == "" {
		label = "COMANDA " + strconv.Itoa(id)
	}

	tab := domain.Tab{
		TabID:         id,
		CustomerLabel: label,
		Balance:       decimal.Zero,
		OpenedAt:      s.now(),
		Status:        domain.TabOpen,
	}
	if err := s.tabs.SaveTab(ctx, tab); err != nil {
		s.LogError(ctx, err, "Failed to save new tab", slog.Int("tab_id", id))
		return nil, false, fmt.Errorf("%w: saving tab %d: %v", apperrors.ErrStorage, id, err)
	}

	s.LogInfo(ctx, "Tab opened", slog.Int("tab_id", id), slog.String("customer", label))
	return &tab, false, nil
}

func (s *tabService) GetTab(ctx context.Context, tabID int) (*domain.Tab, error) {
	tab, err := s.tabs.FindTabByID(ctx, tabID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: loading tab %d: %v", apperrors.ErrStorage, tabID, err)
	}
	return tab, nil
}

func (s *tabService) ListTabs(ctx context.Context, status domain.TabStatus) ([]domain.Tab, error) {
	tabs, err := s.tabs.ListTabs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing tabs: %v", apperrors.ErrStorage, err)
	}
	if status == "" {
		return tabs, nil
	}
	filtered := make([]domain.Tab, 0, len(tabs))
	for _, tab := range tabs {
		if tab.Status == status {
			filtered = append(filtered, tab)
		}
	}
	return filtered, nil
}

// CloseTab zeroes the balance and marks the tab closed, whatever it held.
func (s *tabService) CloseTab(ctx context.Context, tabID int) (*domain.Tab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tabs.CloseTab(ctx, tabID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to close tab", slog.Int("tab_id", tabID))
		return nil, fmt.Errorf("%w: closing tab %d: %v", apperrors.ErrStorage, tabID, err)
	}

	tab, err := s.GetTab(ctx, tabID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Tab closed", slog.Int("tab_id", tabID))
	return tab, nil
}

// RemoveTab deletes a tab whatever its status. Sales already posted to it stay
// in the ledger.
func (s *tabService) RemoveTab(ctx context.Context, tabID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tabs.RemoveTab(ctx, tabID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to remove tab", slog.Int("tab_id", tabID))
		return fmt.Errorf("%w: removing tab %d: %w", apperrors.ErrStorage, tabID, err)
	}

	s.LogInfo(ctx, "Tab removed", slog.Int("tab_id", tabID))
	return nil
}
