package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	"github.com/m04kA/SMC-BillboardCalendar/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BillboardCalendar/internal/service/calendar"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/logger"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/metrics"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

func d(s string) types.Date { return types.MustParseDate(s) }

type fixture struct {
	svc         *Service
	allocations *memory.AllocationStore
	metrics     *metrics.Metrics
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

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

	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	resolver := calendar.NewService(periods, nil, logger.Nop())

	return fixture{
		svc:         NewService(allocations, resolver, m, logger.Nop()),
		allocations: allocations,
		metrics:     m,
	}
}

// Границы хранятся включительно: общий день считается пересечением,
// соседние окна (конец D, начало D+1) не пересекаются.
func TestFindConflicts_BoundaryConvention(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		start         string
		end           string
		wantConflicts []string
	}{
		{"shares boundary day", "2025-01-14", "2025-01-20", []string{"a1"}},
		{"starts next day", "2025-01-15", "2025-01-28", []string{}},
		{"ends day before", "2024-12-20", "2024-12-31", []string{}},
		{"ends on start day", "2024-12-20", "2025-01-01", []string{"a1"}},
		{"inside", "2025-01-05", "2025-01-07", []string{"a1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts, err := f.svc.FindConflicts(ctx, domain.AllocationWindow{
				AssetID: "board-1", StartDate: d(tt.start), EndDate: d(tt.end),
			})
			require.NoError(t, err)

			ids := make([]string, 0, len(conflicts))
			for _, c := range conflicts {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantConflicts, ids)
		})
	}
}

func TestFindConflicts_OtherAssetIsFree(t *testing.T) {
	f := newFixture(t)

	conflicts, err := f.svc.FindConflicts(context.Background(), domain.AllocationWindow{
		AssetID: "board-2", StartDate: d("2025-01-01"), EndDate: d("2025-01-14"),
	})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflicts_InvalidWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.FindConflicts(ctx, domain.AllocationWindow{
		AssetID: "board-1", StartDate: d("2025-01-14"), EndDate: d("2025-01-14"),
	})
	assert.ErrorIs(t, err, ErrInvalidWindow)
	assert.ErrorIs(t, err, domain.ErrInvalidAllocationWindow, "доменная ошибка остается в цепочке")

	_, err = f.svc.FindConflicts(ctx, domain.AllocationWindow{
		StartDate: d("2025-01-01"), EndDate: d("2025-01-14"),
	})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

type failingRepo struct{}

func (failingRepo) FindOverlapping(context.Context, string, types.Date, types.Date) ([]domain.AllocationWindow, error) {
	return nil, errors.New("connection refused")
}

func TestFindConflicts_RepositoryError(t *testing.T) {
	svc := NewService(failingRepo{}, nil, nil, logger.Nop())

	_, err := svc.FindConflicts(context.Background(), domain.AllocationWindow{
		AssetID: "board-1", StartDate: d("2025-01-01"), EndDate: d("2025-01-14"),
	})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCheckPeriods(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	busy, err := f.svc.CheckPeriods(ctx, "board-1", []string{"P2", "P1"})
	require.NoError(t, err)
	assert.False(t, busy.Available)
	assert.Equal(t, []string{"P1", "P2"}, busy.Range.PeriodIDs)
	assert.Equal(t, "2025-01-01", busy.Range.StartDate.String())
	assert.Equal(t, "2025-01-28", busy.Range.EndDate.String())
	require.Len(t, busy.Conflicts, 1)
	assert.Equal(t, "a1", busy.Conflicts[0].ID)

	free, err := f.svc.CheckPeriods(ctx, "board-1", []string{"P2", "P3"})
	require.NoError(t, err)
	assert.True(t, free.Available)
	assert.Empty(t, free.Conflicts)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AvailabilityChecksTotal.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AvailabilityChecksTotal.WithLabelValues("false")))
}

func TestCheckPeriods_ResolverErrorsPassThrough(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckPeriods(ctx, "board-1", []string{"P1", "P3"})
	assert.ErrorIs(t, err, calendar.ErrDiscontinuous)

	_, err = f.svc.CheckPeriods(ctx, "board-1", []string{"P9"})
	var notFound *calendar.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, []string{"P9"}, notFound.IDs)

	_, err = f.svc.CheckPeriods(ctx, "board-1", nil)
	assert.ErrorIs(t, err, calendar.ErrEmptyInput)
}
