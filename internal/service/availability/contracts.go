package availability

import (
	"context"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

// AllocationRepository интерфейс хранилища аренд.
// FindOverlapping использует включительные границы: start_date <= end AND end_date >= start.
type AllocationRepository interface {
	FindOverlapping(ctx context.Context, assetID string, start, end types.Date) ([]domain.AllocationWindow, error)
}

// PeriodResolver превращает набор периодов в непрерывный диапазон дат
type PeriodResolver interface {
	ResolveRangeFromPeriodIDs(ctx context.Context, ids []string) (*domain.ResolvedRange, error)
}

// Recorder интерфейс для сбора метрик проверок доступности
type Recorder interface {
	RecordAvailabilityCheck(available bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
