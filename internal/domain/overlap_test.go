package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

func d(s string) types.Date { return types.MustParseDate(s) }

func TestOverlaps_InclusiveBoundaries(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"shared boundary day overlaps", "2025-01-01", "2025-01-14", "2025-01-14", "2025-01-20", true},
		{"adjacent periods do not overlap", "2025-01-01", "2025-01-14", "2025-01-15", "2025-01-28", false},
		{"contained", "2025-01-01", "2025-01-14", "2025-01-05", "2025-01-06", true},
		{"containing", "2025-01-05", "2025-01-06", "2025-01-01", "2025-01-14", true},
		{"identical", "2025-01-01", "2025-01-14", "2025-01-01", "2025-01-14", true},
		{"b before a", "2025-02-01", "2025-02-14", "2025-01-01", "2025-01-31", false},
		{"single shared day at start", "2025-02-01", "2025-02-14", "2025-01-20", "2025-02-01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(d(tt.aStart), d(tt.aEnd), d(tt.bStart), d(tt.bEnd))
			assert.Equal(t, tt.want, got)
			// предикат симметричен
			assert.Equal(t, tt.want, Overlaps(d(tt.bStart), d(tt.bEnd), d(tt.aStart), d(tt.aEnd)))
		})
	}
}

func TestAllocationWindow_OverlapsWith(t *testing.T) {
	existing := AllocationWindow{ID: "a1", AssetID: "board-7", StartDate: d("2025-01-01"), EndDate: d("2025-01-14")}
	requested := AllocationWindow{AssetID: "board-7", StartDate: d("2025-01-14"), EndDate: d("2025-01-20")}

	assert.True(t, existing.OverlapsWith(requested))

	requested.AssetID = "board-8"
	assert.False(t, existing.OverlapsWith(requested), "different assets never overlap")
}

func TestAllocationWindow_Validate(t *testing.T) {
	ok := AllocationWindow{AssetID: "board-1", StartDate: d("2025-01-01"), EndDate: d("2025-01-14")}
	assert.NoError(t, ok.Validate())

	same := AllocationWindow{AssetID: "board-1", StartDate: d("2025-01-01"), EndDate: d("2025-01-01")}
	assert.ErrorIs(t, same.Validate(), ErrInvalidAllocationWindow)

	noAsset := AllocationWindow{StartDate: d("2025-01-01"), EndDate: d("2025-01-14")}
	assert.ErrorIs(t, noAsset.Validate(), ErrInvalidAllocationWindow)
}

func TestCalendarPeriod(t *testing.T) {
	p := CalendarPeriod{ID: "P1", StartDate: d("2025-01-01"), EndDate: d("2025-01-14")}

	assert.True(t, p.IsValid())
	assert.Equal(t, PeriodLengthDays, p.Span())
	assert.True(t, p.Contains(d("2025-01-01")))
	assert.True(t, p.Contains(d("2025-01-14")))
	assert.False(t, p.Contains(d("2025-01-15")))
	assert.True(t, p.Intersects(d("2024-12-20"), d("2025-01-01")))
	assert.False(t, p.Intersects(d("2025-01-15"), d("2025-01-20")))
	assert.Equal(t, d("2025-01-15"), p.NextStart())

	short := CalendarPeriod{ID: "P0", StartDate: d("2025-01-01"), EndDate: d("2025-01-07")}
	assert.False(t, short.IsValid())
}

func TestSortPeriods(t *testing.T) {
	periods := []CalendarPeriod{
		{ID: "P3", StartDate: d("2025-01-29"), EndDate: d("2025-02-11")},
		{ID: "P1", StartDate: d("2025-01-01"), EndDate: d("2025-01-14")},
		{ID: "P2", StartDate: d("2025-01-15"), EndDate: d("2025-01-28")},
	}

	SortPeriods(periods)

	assert.Equal(t, []string{"P1", "P2", "P3"}, PeriodIDs(periods))
}

func TestIsAdjacent(t *testing.T) {
	assert.True(t, IsAdjacent(d("2025-01-14"), d("2025-01-15")))
	assert.False(t, IsAdjacent(d("2025-01-14"), d("2025-01-14")))
	assert.False(t, IsAdjacent(d("2025-01-14"), d("2025-01-16")))
}

func TestDateRange_IsValid(t *testing.T) {
	assert.True(t, DateRange{StartDate: d("2025-01-01"), EndDate: d("2025-01-01")}.IsValid())
	assert.True(t, DateRange{StartDate: d("2025-01-01"), EndDate: d("2025-01-14")}.IsValid())
	assert.False(t, DateRange{StartDate: d("2025-01-14"), EndDate: d("2025-01-01")}.IsValid())
}
