package get_period_by_date

import (
	"context"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

type CalendarService interface {
	ResolvePeriodContainingDate(ctx context.Context, date types.Date) (*domain.CalendarPeriod, bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
