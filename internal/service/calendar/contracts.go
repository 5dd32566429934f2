package calendar

import (
	"context"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

// PeriodRepository интерфейс хранилища би-недельных периодов.
// Все методы, возвращающие списки, сортируют периоды по start_date ASC.
type PeriodRepository interface {
	FindByID(ctx context.Context, id string) (*domain.CalendarPeriod, error)
	FindManyByID(ctx context.Context, ids []string) ([]domain.CalendarPeriod, error)
	FindIntersecting(ctx context.Context, start, end types.Date) ([]domain.CalendarPeriod, error)
	FindContaining(ctx context.Context, date types.Date) (*domain.CalendarPeriod, error)
	FindByYear(ctx context.Context, year int) ([]domain.CalendarPeriod, error)
	FindLastBefore(ctx context.Context, before types.Date) (*domain.CalendarPeriod, error)
	InsertBatch(ctx context.Context, periods []domain.CalendarPeriod) error
}

// Recorder интерфейс для сбора метрик проверок выравнивания
type Recorder interface {
	RecordAlignmentCheck(aligned bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
