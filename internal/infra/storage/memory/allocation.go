package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	allocationRepo "github.com/m04kA/SMC-BillboardCalendar/internal/infra/storage/allocation"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

type assetPeriod struct {
	AssetID  string
	PeriodID string
}

// AllocationStore in-memory хранилище аренд
type AllocationStore struct {
	mu        sync.RWMutex
	windows   map[string][]domain.AllocationWindow
	byID      map[string]domain.AllocationWindow
	allocated map[assetPeriod]string
}

// NewAllocationStore создает пустое хранилище аренд
func NewAllocationStore() *AllocationStore {
	return &AllocationStore{
		windows:   make(map[string][]domain.AllocationWindow),
		byID:      make(map[string]domain.AllocationWindow),
		allocated: make(map[assetPeriod]string),
	}
}

func (s *AllocationStore) FindOverlapping(_ context.Context, assetID string, start, end types.Date) ([]domain.AllocationWindow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.AllocationWindow, 0)
	for _, w := range s.windows[assetID] {
		if domain.Overlaps(w.StartDate, w.EndDate, start, end) {
			result = append(result, w)
		}
	}
	domain.SortWindows(result)
	return result, nil
}

func (s *AllocationStore) GetByID(_ context.Context, id string) (*domain.AllocationWindow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.byID[id]
	if !ok {
		return nil, allocationRepo.ErrAllocationNotFound
	}
	return &w, nil
}

// Create сохраняет аренду. Как и UNIQUE(asset_id, period_id) в БД,
// отклоняет повторную аренду периода той же конструкции.
func (s *AllocationStore) Create(_ context.Context, window domain.AllocationWindow, periodIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, periodID := range periodIDs {
		if _, taken := s.allocated[assetPeriod{window.AssetID, periodID}]; taken {
			return fmt.Errorf("%w: asset=%s period=%s", allocationRepo.ErrPeriodAlreadyAllocated, window.AssetID, periodID)
		}
	}

	for _, periodID := range periodIDs {
		s.allocated[assetPeriod{window.AssetID, periodID}] = window.ID
	}
	s.windows[window.AssetID] = append(s.windows[window.AssetID], window)
	s.byID[window.ID] = window
	return nil
}
