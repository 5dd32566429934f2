package get_period

import (
	"context"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
)

type CalendarService interface {
	GetPeriod(ctx context.Context, id string) (*domain.CalendarPeriod, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
