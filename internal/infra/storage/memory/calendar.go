// Package memory хранит календарь и аренды в памяти процесса.
// Используется драйвером storage.driver = "memory" и в тестах.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	calendarRepo "github.com/m04kA/SMC-BillboardCalendar/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

// CalendarStore in-memory хранилище периодов. Периоды хранятся отсортированными по дате начала.
type CalendarStore struct {
	mu      sync.RWMutex
	periods []domain.CalendarPeriod
	byID    map[string]int
}

// NewCalendarStore создает пустое хранилище периодов
func NewCalendarStore() *CalendarStore {
	return &CalendarStore{byID: make(map[string]int)}
}

func (s *CalendarStore) FindByID(_ context.Context, id string) (*domain.CalendarPeriod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return nil, calendarRepo.ErrPeriodNotFound
	}
	p := s.periods[i]
	return &p, nil
}

func (s *CalendarStore) FindManyByID(_ context.Context, ids []string) ([]domain.CalendarPeriod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.CalendarPeriod, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if i, ok := s.byID[id]; ok {
			result = append(result, s.periods[i])
		}
	}
	domain.SortPeriods(result)
	return result, nil
}

func (s *CalendarStore) FindIntersecting(_ context.Context, start, end types.Date) ([]domain.CalendarPeriod, error) {
	return s.filter(func(p domain.CalendarPeriod) bool { return p.Intersects(start, end) }), nil
}

func (s *CalendarStore) FindContaining(_ context.Context, date types.Date) (*domain.CalendarPeriod, error) {
	found := s.filter(func(p domain.CalendarPeriod) bool { return p.Contains(date) })
	if len(found) == 0 {
		return nil, calendarRepo.ErrPeriodNotFound
	}
	return &found[0], nil
}

func (s *CalendarStore) FindByYear(_ context.Context, year int) ([]domain.CalendarPeriod, error) {
	return s.filter(func(p domain.CalendarPeriod) bool { return p.StartDate.Year() == year }), nil
}

func (s *CalendarStore) FindLastBefore(_ context.Context, before types.Date) (*domain.CalendarPeriod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// первый период с start_date >= before
	i := sort.Search(len(s.periods), func(i int) bool {
		return !s.periods[i].StartDate.Before(before)
	})
	if i == 0 {
		return nil, calendarRepo.ErrPeriodNotFound
	}
	p := s.periods[i-1]
	return &p, nil
}

// InsertBatch добавляет периоды атомарно: при конфликте ID или даты начала не добавляется ничего
func (s *CalendarStore) InsertBatch(_ context.Context, periods []domain.CalendarPeriod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	starts := make(map[string]struct{}, len(s.periods)+len(periods))
	for _, p := range s.periods {
		starts[p.StartDate.String()] = struct{}{}
	}
	ids := make(map[string]struct{}, len(periods))
	for _, p := range periods {
		if _, ok := s.byID[p.ID]; ok {
			return fmt.Errorf("%w: InsertBatch - id %s", calendarRepo.ErrDuplicatePeriod, p.ID)
		}
		if _, ok := ids[p.ID]; ok {
			return fmt.Errorf("%w: InsertBatch - id %s", calendarRepo.ErrDuplicatePeriod, p.ID)
		}
		if _, ok := starts[p.StartDate.String()]; ok {
			return fmt.Errorf("%w: InsertBatch - start %s", calendarRepo.ErrDuplicatePeriod, p.StartDate)
		}
		ids[p.ID] = struct{}{}
		starts[p.StartDate.String()] = struct{}{}
	}

	s.periods = append(s.periods, periods...)
	domain.SortPeriods(s.periods)
	for i, p := range s.periods {
		s.byID[p.ID] = i
	}
	return nil
}

func (s *CalendarStore) filter(keep func(domain.CalendarPeriod) bool) []domain.CalendarPeriod {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.CalendarPeriod, 0)
	for _, p := range s.periods {
		if keep(p) {
			result = append(result, p)
		}
	}
	return result
}
