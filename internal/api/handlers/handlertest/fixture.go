// Package handlertest собирает сервисы над in-memory хранилищами для тестов HTTP обработчиков.
package handlertest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	"github.com/m04kA/SMC-BillboardCalendar/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BillboardCalendar/internal/service/availability"
	"github.com/m04kA/SMC-BillboardCalendar/internal/service/calendar"
	checkAvailability "github.com/m04kA/SMC-BillboardCalendar/internal/usecase/check_availability"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/logger"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

// Fixture календарь P1..P3 с 2025-01-01 и аренда a1 конструкции board-1 на P1
type Fixture struct {
	Logger       *logger.Logger
	Calendar     *calendar.Service
	Availability *availability.Service
	UseCase      *checkAvailability.UseCase
}

func New(t *testing.T) *Fixture {
	t.Helper()
	ctx := context.Background()
	d := types.MustParseDate

	periods := memory.NewCalendarStore()
	require.NoError(t, periods.InsertBatch(ctx, []domain.CalendarPeriod{
		{ID: "P1", StartDate: d("2025-01-01"), EndDate: d("2025-01-14")},
		{ID: "P2", StartDate: d("2025-01-15"), EndDate: d("2025-01-28")},
		{ID: "P3", StartDate: d("2025-01-29"), EndDate: d("2025-02-11")},
	}))

	allocations := memory.NewAllocationStore()
	require.NoError(t, allocations.Create(ctx, domain.AllocationWindow{
		ID: "a1", AssetID: "board-1", StartDate: d("2025-01-01"), EndDate: d("2025-01-14"),
	}, []string{"P1"}))

	log := logger.Nop()
	calendarSvc := calendar.NewService(periods, nil, log)
	availabilitySvc := availability.NewService(allocations, calendarSvc, nil, log)

	return &Fixture{
		Logger:       log,
		Calendar:     calendarSvc,
		Availability: availabilitySvc,
		UseCase:      checkAvailability.NewUseCase(calendarSvc, availabilitySvc, log),
	}
}
