package calendar

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	calendarRepo "github.com/m04kA/SMC-BillboardCalendar/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

// Service сервис би-недельного календаря.
// Не хранит состояния и только читает из хранилища периодов (кроме GenerateYear),
// поэтому безопасен для конкурентного использования.
type Service struct {
	periodRepo PeriodRepository
	recorder   Recorder
	logger     Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	periodRepo PeriodRepository,
	recorder Recorder,
	logger Logger,
) *Service {
	return &Service{
		periodRepo: periodRepo,
		recorder:   recorder,
		logger:     logger,
	}
}

// ResolveRangeFromPeriodIDs превращает набор ID периодов в общий диапазон дат.
// Порядок входных ID не важен, дубликаты схлопываются.
//
// Ошибки:
// - *EmptyInputError, если ids пуст
// - *NotFoundError со списком только отсутствующих ID
// - *ContinuityError, если найденные периоды не образуют непрерывную цепочку
func (s *Service) ResolveRangeFromPeriodIDs(ctx context.Context, ids []string) (*domain.ResolvedRange, error) {
	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		s.logger.Warn("ResolveRangeFromPeriodIDs: empty period id list")
		return nil, &EmptyInputError{}
	}

	periods, err := s.periodRepo.FindManyByID(ctx, unique)
	if err != nil {
		s.logger.Error("ResolveRangeFromPeriodIDs: repository error: %v", err)
		return nil, fmt.Errorf("%w: ResolveRangeFromPeriodIDs - repository error: %v", ErrInternal, err)
	}

	if missing := missingIDs(unique, periods); len(missing) > 0 {
		s.logger.Warn("ResolveRangeFromPeriodIDs: periods not found: %v", missing)
		return nil, &NotFoundError{IDs: missing}
	}

	domain.SortPeriods(periods)

	if err := ValidateContinuity(periods); err != nil {
		s.logger.Warn("ResolveRangeFromPeriodIDs: %v", err)
		return nil, err
	}

	first, last := periods[0], periods[len(periods)-1]
	s.logger.Info("ResolveRangeFromPeriodIDs: resolved %d periods to %s..%s", len(periods), first.StartDate, last.EndDate)

	return &domain.ResolvedRange{
		StartDate: first.StartDate,
		EndDate:   last.EndDate,
		PeriodIDs: domain.PeriodIDs(periods),
	}, nil
}

// ResolvePeriodContainingDate ищет период, содержащий дату.
// Если дата вне календаря, возвращает (nil, false, nil): решение о фатальности за вызывающим.
func (s *Service) ResolvePeriodContainingDate(ctx context.Context, date types.Date) (*domain.CalendarPeriod, bool, error) {
	period, err := s.periodRepo.FindContaining(ctx, date)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrPeriodNotFound) {
			s.logger.Info("ResolvePeriodContainingDate: no period contains %s", date)
			return nil, false, nil
		}
		s.logger.Error("ResolvePeriodContainingDate: repository error for date=%s: %v", date, err)
		return nil, false, fmt.Errorf("%w: ResolvePeriodContainingDate - repository error: %v", ErrInternal, err)
	}

	return period, true, nil
}

// GetPeriod получает период по ID
func (s *Service) GetPeriod(ctx context.Context, id string) (*domain.CalendarPeriod, error) {
	period, err := s.periodRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrPeriodNotFound) {
			return nil, &NotFoundError{IDs: []string{id}}
		}
		s.logger.Error("GetPeriod: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetPeriod - repository error: %v", ErrInternal, err)
	}
	return period, nil
}

// ListYear возвращает периоды, начинающиеся в указанном году
func (s *Service) ListYear(ctx context.Context, year int) ([]domain.CalendarPeriod, error) {
	if year < domain.MinCalendarYear || year > domain.MaxCalendarYear {
		return nil, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	periods, err := s.periodRepo.FindByYear(ctx, year)
	if err != nil {
		s.logger.Error("ListYear: repository error for year=%d: %v", year, err)
		return nil, fmt.Errorf("%w: ListYear - repository error: %v", ErrInternal, err)
	}

	domain.SortPeriods(periods)
	return periods, nil
}

// uniqueIDs убирает дубликаты, сохраняя порядок первого появления
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// missingIDs возвращает отсортированный список запрошенных ID, которых нет среди найденных
func missingIDs(requested []string, found []domain.CalendarPeriod) []string {
	present := make(map[string]struct{}, len(found))
	for _, p := range found {
		present[p.ID] = struct{}{}
	}

	missing := make([]string, 0)
	for _, id := range requested {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)
	return missing
}
