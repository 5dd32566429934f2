package calendar

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	"github.com/m04kA/SMC-BillboardCalendar/internal/infra/storage/schema"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

func d(s string) types.Date { return types.MustParseDate(s) }

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, schema.Apply(context.Background(), db, psqlbuilder.DialectSQLite))

	return NewRepository(db, psqlbuilder.DialectSQLite)
}

func seedPeriods(t *testing.T, repo *Repository) []domain.CalendarPeriod {
	t.Helper()

	periods := []domain.CalendarPeriod{
		{ID: "p1", StartDate: d("2025-01-01"), EndDate: d("2025-01-14")},
		{ID: "p2", StartDate: d("2025-01-15"), EndDate: d("2025-01-28")},
		{ID: "p3", StartDate: d("2025-01-29"), EndDate: d("2025-02-11")},
	}
	require.NoError(t, repo.InsertBatch(context.Background(), periods))
	return periods
}

func TestRepository_FindByID(t *testing.T) {
	repo := newTestRepository(t)
	seedPeriods(t, repo)
	ctx := context.Background()

	p, err := repo.FindByID(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", p.StartDate.String())
	assert.Equal(t, "2025-01-28", p.EndDate.String())

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrPeriodNotFound)
}

func TestRepository_FindManyByID(t *testing.T) {
	repo := newTestRepository(t)
	seedPeriods(t, repo)
	ctx := context.Background()

	periods, err := repo.FindManyByID(ctx, []string{"p3", "missing", "p1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p3"}, domain.PeriodIDs(periods))

	periods, err = repo.FindManyByID(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, periods)
}

func TestRepository_FindIntersecting(t *testing.T) {
	repo := newTestRepository(t)
	seedPeriods(t, repo)
	ctx := context.Background()

	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{"inside one period", "2025-01-03", "2025-01-05", []string{"p1"}},
		{"shared boundary day", "2025-01-14", "2025-01-15", []string{"p1", "p2"}},
		{"spans all", "2024-12-01", "2025-03-01", []string{"p1", "p2", "p3"}},
		{"before calendar", "2024-12-01", "2024-12-31", []string{}},
		{"after calendar", "2025-02-12", "2025-02-20", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods, err := repo.FindIntersecting(ctx, d(tt.start), d(tt.end))
			require.NoError(t, err)
			assert.Equal(t, tt.want, domain.PeriodIDs(periods))
		})
	}
}

func TestRepository_FindContaining(t *testing.T) {
	repo := newTestRepository(t)
	seedPeriods(t, repo)
	ctx := context.Background()

	p, err := repo.FindContaining(ctx, d("2025-01-28"))
	require.NoError(t, err)
	assert.Equal(t, "p2", p.ID)

	_, err = repo.FindContaining(ctx, d("2025-06-01"))
	assert.ErrorIs(t, err, ErrPeriodNotFound)
}

func TestRepository_FindByYearAndLastBefore(t *testing.T) {
	repo := newTestRepository(t)
	seedPeriods(t, repo)
	ctx := context.Background()

	periods, err := repo.FindByYear(ctx, 2025)
	require.NoError(t, err)
	assert.Len(t, periods, 3)

	periods, err = repo.FindByYear(ctx, 2026)
	require.NoError(t, err)
	assert.Empty(t, periods)

	last, err := repo.FindLastBefore(ctx, d("2026-01-01"))
	require.NoError(t, err)
	assert.Equal(t, "p3", last.ID)

	_, err = repo.FindLastBefore(ctx, d("2025-01-01"))
	assert.ErrorIs(t, err, ErrPeriodNotFound)
}

func TestRepository_InsertBatch_Duplicate(t *testing.T) {
	repo := newTestRepository(t)
	seedPeriods(t, repo)
	ctx := context.Background()

	err := repo.InsertBatch(ctx, []domain.CalendarPeriod{
		{ID: "p4", StartDate: d("2025-02-12"), EndDate: d("2025-02-25")},
		{ID: "p1", StartDate: d("2025-02-26"), EndDate: d("2025-03-11")},
	})
	assert.ErrorIs(t, err, ErrDuplicatePeriod)

	// батч откатывается целиком
	_, err = repo.FindByID(ctx, "p4")
	assert.ErrorIs(t, err, ErrPeriodNotFound)
}
