package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	calendarRepo "github.com/m04kA/SMC-BillboardCalendar/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

// IDGenerator создает внешний идентификатор периода
type IDGenerator func() string

// NewUUID генератор ID по умолчанию
func NewUUID() string {
	return uuid.NewString()
}

// GenerateYear строит цепочку би-недель для одного года.
//
// Без previous цепочка начинается 1 января. С previous она продолжается с previous.EndDate+1,
// и эта дата должна попадать в year. Периоды создаются, пока их начало лежит внутри year,
// поэтому последний период может заканчиваться в следующем году.
func GenerateYear(year int, previous *domain.CalendarPeriod, newID IDGenerator) ([]domain.CalendarPeriod, error) {
	if year < domain.MinCalendarYear || year > domain.MaxCalendarYear {
		return nil, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	if newID == nil {
		newID = NewUUID
	}

	start := types.NewDate(year, time.January, 1)
	if previous != nil {
		start = previous.NextStart()
		switch {
		case start.Year() > year:
			return nil, fmt.Errorf("%w: chain already covers %d (last period %s ends %s)",
				ErrYearAlreadyGenerated, year, previous.ID, previous.EndDate)
		case start.Year() < year:
			return nil, fmt.Errorf("%w: chain ends %s, generate %d first",
				ErrChainGap, previous.EndDate, start.Year())
		}
	}

	periods := make([]domain.CalendarPeriod, 0, 27)
	for start.Year() == year {
		periods = append(periods, domain.CalendarPeriod{
			ID:        newID(),
			StartDate: start,
			EndDate:   start.AddDays(domain.PeriodLengthDays - 1),
		})
		start = start.AddDays(domain.PeriodLengthDays)
	}

	if err := ValidateContinuity(periods); err != nil {
		return nil, err
	}

	return periods, nil
}

// GenerateYear генерирует и сохраняет календарь на год, продолжая существующую цепочку.
// При dryRun периоды только возвращаются, без записи.
//
// Это единственная операция сервиса с записью. Календарь append-only:
// год, в котором уже есть периоды, повторно не генерируется.
func (s *Service) GenerateYear(ctx context.Context, year int, dryRun bool) ([]domain.CalendarPeriod, error) {
	s.logger.Info("GenerateYear: year=%d dryRun=%t", year, dryRun)

	existing, err := s.periodRepo.FindByYear(ctx, year)
	if err != nil {
		s.logger.Error("GenerateYear: repository error for year=%d: %v", year, err)
		return nil, fmt.Errorf("%w: GenerateYear - find year: %v", ErrInternal, err)
	}
	if len(existing) > 0 {
		s.logger.Warn("GenerateYear: year=%d already has %d periods", year, len(existing))
		return nil, fmt.Errorf("%w: %d", ErrYearAlreadyGenerated, year)
	}

	var previous *domain.CalendarPeriod
	previous, err = s.periodRepo.FindLastBefore(ctx, types.NewDate(year, time.January, 1))
	if err != nil {
		if !errors.Is(err, calendarRepo.ErrPeriodNotFound) {
			s.logger.Error("GenerateYear: repository error for last period: %v", err)
			return nil, fmt.Errorf("%w: GenerateYear - find last: %v", ErrInternal, err)
		}
		previous = nil
	}

	periods, err := GenerateYear(year, previous, NewUUID)
	if err != nil {
		s.logger.Warn("GenerateYear: %v", err)
		return nil, err
	}

	first, last := periods[0], periods[len(periods)-1]

	// Следующий год мог быть создан раньше текущего
	conflicting, err := s.periodRepo.FindIntersecting(ctx, first.StartDate, last.EndDate)
	if err != nil {
		s.logger.Error("GenerateYear: repository error for intersecting periods: %v", err)
		return nil, fmt.Errorf("%w: GenerateYear - find intersecting: %v", ErrInternal, err)
	}
	if len(conflicting) > 0 {
		domain.SortPeriods(conflicting)
		c := conflicting[0]
		s.logger.Warn("GenerateYear: generated chain collides with existing period %s", c.ID)
		return nil, fmt.Errorf("%w: generated periods %s..%s overlap existing period %s [%s..%s]",
			ErrDiscontinuous, first.StartDate, last.EndDate, c.ID, c.StartDate, c.EndDate)
	}

	if dryRun {
		return periods, nil
	}

	if err := s.periodRepo.InsertBatch(ctx, periods); err != nil {
		s.logger.Error("GenerateYear: failed to insert %d periods: %v", len(periods), err)
		return nil, fmt.Errorf("%w: GenerateYear - insert: %v", ErrInternal, err)
	}

	s.logger.Info("GenerateYear: created %d periods for %d (%s..%s)", len(periods), year, first.StartDate, last.EndDate)
	return periods, nil
}
