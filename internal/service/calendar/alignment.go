package calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

// CheckAlignment сверяет произвольный диапазон [start, end] с календарем.
//
// Алгоритм:
//  1. Находим все периоды, пересекающие диапазон (p.start <= end AND p.end >= start).
//  2. Если пересечений нет - Aligned=false без предложения.
//  3. Сортируем по start_date, берем первый и последний.
//  4. Aligned, только если start == first.start, end == last.end и цепочка непрерывна.
//  5. Иначе предлагаем минимальный выровненный диапазон [first.start, last.end].
//
// Предложение никогда не сужает запрос, только расширяет до ближайших границ периодов.
// Диапазон внутри одного периода всегда получает предложение.
func (s *Service) CheckAlignment(ctx context.Context, start, end types.Date) (*domain.AlignmentResult, error) {
	result, _, err := s.align(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AlignedRange возвращает канонический диапазон для выровненного запроса.
// Для невыровненного диапазона возвращает (nil, result, nil) с предложением внутри result.
//
// Ошибки: *OutOfRangeError, если диапазон вне календаря; *ContinuityError при дыре в календаре.
func (s *Service) AlignedRange(ctx context.Context, start, end types.Date) (*domain.ResolvedRange, *domain.AlignmentResult, error) {
	result, continuityErr, err := s.align(ctx, start, end)
	if err != nil {
		return nil, nil, err
	}

	if len(result.PeriodIDs) == 0 {
		return nil, result, &OutOfRangeError{StartDate: start, EndDate: end}
	}
	if continuityErr != nil {
		return nil, result, continuityErr
	}
	if !result.Aligned {
		return nil, result, nil
	}

	return &domain.ResolvedRange{
		StartDate: start,
		EndDate:   end,
		PeriodIDs: result.PeriodIDs,
	}, result, nil
}

func (s *Service) align(ctx context.Context, start, end types.Date) (*domain.AlignmentResult, *ContinuityError, error) {
	if !(domain.DateRange{StartDate: start, EndDate: end}).IsValid() {
		s.logger.Warn("CheckAlignment: invalid range %s..%s", start, end)
		return nil, nil, fmt.Errorf("%w: %s..%s", ErrInvalidRange, start, end)
	}

	periods, err := s.periodRepo.FindIntersecting(ctx, start, end)
	if err != nil {
		s.logger.Error("CheckAlignment: repository error for %s..%s: %v", start, end, err)
		return nil, nil, fmt.Errorf("%w: CheckAlignment - repository error: %v", ErrInternal, err)
	}

	if len(periods) == 0 {
		s.logger.Info("CheckAlignment: range %s..%s is outside the calendar", start, end)
		s.record(false)
		return &domain.AlignmentResult{
			Aligned:   false,
			PeriodIDs: []string{},
			Message:   domain.MsgOutsideCalendar,
		}, nil, nil
	}

	domain.SortPeriods(periods)
	first, last := periods[0], periods[len(periods)-1]
	ids := domain.PeriodIDs(periods)

	result := &domain.AlignmentResult{
		PeriodIDs:  ids,
		Continuous: true,
	}

	var continuityErr *ContinuityError
	if err := ValidateContinuity(periods); err != nil {
		if !errors.As(err, &continuityErr) {
			return nil, nil, fmt.Errorf("%w: CheckAlignment - %v", ErrInternal, err)
		}
		s.logger.Warn("CheckAlignment: %v", err)
		result.Continuous = false
		result.Message = domain.MsgCalendarGap
	}

	boundariesMatch := start.Equal(first.StartDate) && end.Equal(last.EndDate)
	result.Aligned = boundariesMatch && result.Continuous

	if !boundariesMatch {
		result.Suggestion = &domain.AlignmentSuggestion{
			StartDate: first.StartDate,
			EndDate:   last.EndDate,
			PeriodIDs: ids,
		}
		if result.Message == "" {
			result.Message = domain.MsgNotAligned
		}
	}

	s.record(result.Aligned)
	s.logger.Info("CheckAlignment: %s..%s aligned=%t periods=%d", start, end, result.Aligned, len(ids))

	return result, continuityErr, nil
}

func (s *Service) record(aligned bool) {
	if s.recorder != nil {
		s.recorder.RecordAlignmentCheck(aligned)
	}
}
