package check_alignment

import (
	"context"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

type CalendarService interface {
	CheckAlignment(ctx context.Context, start, end types.Date) (*domain.AlignmentResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
