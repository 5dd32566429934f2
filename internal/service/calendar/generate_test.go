package calendar

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardCalendar/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/logger"
)

func sequentialIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%02d", prefix, n)
	}
}

func TestGenerateYear_FullYearIsContinuous(t *testing.T) {
	periods, err := GenerateYear(2025, nil, sequentialIDs("2025"))
	require.NoError(t, err)

	require.Len(t, periods, 27)
	assert.Equal(t, "2025-01-01", periods[0].StartDate.String())
	assert.Equal(t, "2025-01-14", periods[0].EndDate.String())
	assert.Equal(t, "2025-12-31", periods[26].StartDate.String())
	assert.Equal(t, "2026-01-13", periods[26].EndDate.String())

	for _, p := range periods {
		assert.True(t, p.IsValid(), "period %s spans %d days", p.ID, p.Span())
	}
	assert.NoError(t, ValidateContinuity(periods))
}

func TestGenerateYear_ContinuesPreviousChain(t *testing.T) {
	first, err := GenerateYear(2025, nil, sequentialIDs("2025"))
	require.NoError(t, err)
	last := first[len(first)-1]

	next, err := GenerateYear(2026, &last, sequentialIDs("2026"))
	require.NoError(t, err)

	assert.Equal(t, "2026-01-14", next[0].StartDate.String())
	assert.Len(t, next, 26)

	chain := append(append(first[:0:0], first...), next...)
	assert.NoError(t, ValidateContinuity(chain))
}

func TestGenerateYear_Errors(t *testing.T) {
	first, err := GenerateYear(2025, nil, nil)
	require.NoError(t, err)
	last := first[len(first)-1]

	_, err = GenerateYear(1999, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidYear)

	// цепочка обрывается в январе 2026, 2026 пропущен
	_, err = GenerateYear(2027, &last, nil)
	assert.ErrorIs(t, err, ErrChainGap)

	_, err = GenerateYear(2024, &last, nil)
	assert.ErrorIs(t, err, ErrYearAlreadyGenerated)
}

func TestService_GenerateYear(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCalendarStore()
	svc := NewService(store, nil, logger.Nop())

	dry, err := svc.GenerateYear(ctx, 2025, true)
	require.NoError(t, err)
	assert.Len(t, dry, 27)

	stored, err := store.FindByYear(ctx, 2025)
	require.NoError(t, err)
	assert.Empty(t, stored, "dry run must not write")

	_, err = svc.GenerateYear(ctx, 2025, false)
	require.NoError(t, err)
	_, err = svc.GenerateYear(ctx, 2026, false)
	require.NoError(t, err)

	_, err = svc.GenerateYear(ctx, 2025, false)
	assert.ErrorIs(t, err, ErrYearAlreadyGenerated)

	all, err := store.FindIntersecting(ctx, d("2025-01-01"), d("2026-12-31"))
	require.NoError(t, err)
	assert.Len(t, all, 53)
	assert.NoError(t, ValidateContinuity(all))
}

func TestService_GenerateYear_CollidesWithLaterYear(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCalendarStore()
	svc := NewService(store, nil, logger.Nop())

	_, err := svc.GenerateYear(ctx, 2026, false)
	require.NoError(t, err)

	// 2025 с 1 января заканчивается 2026-01-13 и наезжает на уже созданный 2026
	_, err = svc.GenerateYear(ctx, 2025, false)
	assert.ErrorIs(t, err, ErrDiscontinuous)
}
