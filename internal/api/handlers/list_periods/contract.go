package list_periods

import (
	"context"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
)

type CalendarService interface {
	ListYear(ctx context.Context, year int) ([]domain.CalendarPeriod, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
