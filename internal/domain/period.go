package domain

import (
	"sort"

	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

// CalendarPeriod represents one bi-week of the rental calendar.
// Both boundaries are inclusive: EndDate = StartDate + 13 days.
type CalendarPeriod struct {
	ID        string
	StartDate types.Date
	EndDate   types.Date
}

// Contains returns true if the date falls within [StartDate, EndDate]
func (p CalendarPeriod) Contains(date types.Date) bool {
	return !date.Before(p.StartDate) && !date.After(p.EndDate)
}

// Intersects returns true if the period shares at least one day with [start, end]
func (p CalendarPeriod) Intersects(start, end types.Date) bool {
	return Overlaps(p.StartDate, p.EndDate, start, end)
}

// Span returns the number of days covered by the period
func (p CalendarPeriod) Span() int {
	return p.StartDate.DaysUntil(p.EndDate) + 1
}

// IsValid returns true if the period has the fixed bi-week span
func (p CalendarPeriod) IsValid() bool {
	return !p.EndDate.Before(p.StartDate) && p.Span() == PeriodLengthDays
}

// NextStart returns the date on which the following period must start
func (p CalendarPeriod) NextStart() types.Date {
	return p.EndDate.AddDays(1)
}

// SortPeriods orders periods by StartDate ascending, ties broken by ID
func SortPeriods(periods []CalendarPeriod) {
	sort.SliceStable(periods, func(i, j int) bool {
		if c := periods[i].StartDate.Compare(periods[j].StartDate); c != 0 {
			return c < 0
		}
		return periods[i].ID < periods[j].ID
	})
}

// PeriodIDs returns ids in slice order
func PeriodIDs(periods []CalendarPeriod) []string {
	ids := make([]string, len(periods))
	for i, p := range periods {
		ids[i] = p.ID
	}
	return ids
}

// DateRange is an inclusive range of calendar dates
type DateRange struct {
	StartDate types.Date
	EndDate   types.Date
}

// IsValid returns true if StartDate <= EndDate
func (r DateRange) IsValid() bool {
	return !r.EndDate.Before(r.StartDate)
}

// ResolvedRange is a date range backed by an ordered chain of periods
type ResolvedRange struct {
	StartDate types.Date
	EndDate   types.Date
	PeriodIDs []string
}

// AlignmentSuggestion is the minimal calendar-aligned superset of a requested range
type AlignmentSuggestion struct {
	StartDate types.Date
	EndDate   types.Date
	PeriodIDs []string
}

// AlignmentResult is produced by the alignment check
type AlignmentResult struct {
	Aligned    bool
	PeriodIDs  []string
	Continuous bool
	Suggestion *AlignmentSuggestion // nil when Aligned or when no period intersects
	Message    string
}

// HasSuggestion returns true if a corrective range is available
func (r *AlignmentResult) HasSuggestion() bool {
	return r.Suggestion != nil
}
