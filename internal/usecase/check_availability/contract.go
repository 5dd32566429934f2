package check_availability

import (
	"context"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	"github.com/m04kA/SMC-BillboardCalendar/internal/service/availability"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

// CalendarService интерфейс календаря би-недель
type CalendarService interface {
	AlignedRange(ctx context.Context, start, end types.Date) (*domain.ResolvedRange, *domain.AlignmentResult, error)
}

// AvailabilityService интерфейс проверки занятости конструкций
type AvailabilityService interface {
	CheckPeriods(ctx context.Context, assetID string, periodIDs []string) (*availability.Availability, error)
	CheckRange(ctx context.Context, assetID string, resolved domain.ResolvedRange) (*availability.Availability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
