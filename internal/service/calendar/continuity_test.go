package calendar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

func d(s string) types.Date { return types.MustParseDate(s) }

func period(id, start, end string) domain.CalendarPeriod {
	return domain.CalendarPeriod{ID: id, StartDate: d(start), EndDate: d(end)}
}

func TestValidateContinuity(t *testing.T) {
	p1 := period("p1", "2025-01-01", "2025-01-14")
	p2 := period("p2", "2025-01-15", "2025-01-28")
	p3 := period("p3", "2025-01-29", "2025-02-11")

	tests := []struct {
		name    string
		periods []domain.CalendarPeriod
		wantErr bool
		gap     bool
	}{
		{name: "empty", periods: nil},
		{name: "single", periods: []domain.CalendarPeriod{p2}},
		{name: "continuous", periods: []domain.CalendarPeriod{p1, p2, p3}},
		{name: "gap", periods: []domain.CalendarPeriod{p1, p3}, wantErr: true, gap: true},
		{
			name:    "overlap",
			periods: []domain.CalendarPeriod{p1, period("x", "2025-01-14", "2025-01-27")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContinuity(tt.periods)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var contErr *ContinuityError
			require.True(t, errors.As(err, &contErr))
			assert.ErrorIs(t, err, ErrDiscontinuous)
			assert.Equal(t, tt.gap, contErr.IsGap())
			assert.Equal(t, !tt.gap, contErr.IsOverlap())
		})
	}
}

func TestContinuityError_NamesBothPeriods(t *testing.T) {
	err := ValidateContinuity([]domain.CalendarPeriod{
		period("p1", "2025-01-01", "2025-01-14"),
		period("p3", "2025-01-29", "2025-02-11"),
	})
	require.Error(t, err)

	var contErr *ContinuityError
	require.True(t, errors.As(err, &contErr))
	assert.Equal(t, "p1", contErr.PreviousID)
	assert.Equal(t, "p3", contErr.NextID)
	assert.Equal(t, "2025-01-15", contErr.ExpectedStart.String())

	msg := err.Error()
	assert.Contains(t, msg, "p1 [2025-01-01..2025-01-14]")
	assert.Contains(t, msg, "p3 [2025-01-29..2025-02-11]")
	assert.Contains(t, msg, "gap")
}
