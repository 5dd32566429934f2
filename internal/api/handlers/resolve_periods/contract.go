package resolve_periods

import (
	"context"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
)

type CalendarService interface {
	ResolveRangeFromPeriodIDs(ctx context.Context, ids []string) (*domain.ResolvedRange, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
