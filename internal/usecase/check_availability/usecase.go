package check_availability

import (
	"context"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	"github.com/m04kA/SMC-BillboardCalendar/internal/service/availability"
)

// UseCase use case проверки доступности конструкции на би-недели
type UseCase struct {
	calendar     CalendarService
	availability AvailabilityService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendar CalendarService,
	availability AvailabilityService,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendar:     calendar,
		availability: availability,
		logger:       logger,
	}
}

// Execute выполняет use case проверки доступности.
//
// Ошибки календаря и сервиса доступности (*calendar.EmptyInputError, *calendar.NotFoundError,
// *calendar.ContinuityError, *calendar.OutOfRangeError) возвращаются без изменений.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: asset=%s, periods=%v, range=%s..%s",
		req.AssetID, req.PeriodIDs, req.StartDate, req.EndDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Набор периодов: резолв и проверка занятости делает сервис доступности
	if req.HasPeriods() {
		result, err := uc.availability.CheckPeriods(ctx, req.AssetID, req.PeriodIDs)
		if err != nil {
			uc.logger.Warn("CheckAvailability: failed to check periods for asset=%s: %v", req.AssetID, err)
			return nil, err
		}
		return uc.toResponse(req.AssetID, result), nil
	}

	// 3. Произвольный диапазон приводим к каноническому
	resolved, alignment, err := uc.calendar.AlignedRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Warn("CheckAvailability: failed to align range: %v", err)
		return nil, err
	}

	// Невыровненный диапазон - только предложение, без проверки занятости
	if resolved == nil {
		uc.logger.Info("CheckAvailability: range %s..%s is not aligned, suggestion=%t",
			req.StartDate, req.EndDate, alignment.HasSuggestion())
		return &Response{
			AssetID:    req.AssetID,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			PeriodIDs:  alignment.PeriodIDs,
			Aligned:    false,
			Suggestion: alignment.Suggestion,
			Message:    alignment.Message,
			Conflicts:  []domain.AllocationWindow{},
		}, nil
	}

	// 4. Проверка пересечений с существующими арендами
	result, err := uc.availability.CheckRange(ctx, req.AssetID, *resolved)
	if err != nil {
		uc.logger.Error("CheckAvailability: availability check failed for asset=%s: %v", req.AssetID, err)
		return nil, err
	}

	return uc.toResponse(req.AssetID, result), nil
}

func (uc *UseCase) toResponse(assetID string, result *availability.Availability) *Response {
	uc.logger.Info("CheckAvailability: asset=%s %s..%s available=%t conflicts=%d",
		assetID, result.Range.StartDate, result.Range.EndDate, result.Available, len(result.Conflicts))

	return &Response{
		AssetID:   assetID,
		StartDate: result.Range.StartDate,
		EndDate:   result.Range.EndDate,
		PeriodIDs: result.Range.PeriodIDs,
		Aligned:   true,
		Available: result.Available,
		Conflicts: result.Conflicts,
	}
}
