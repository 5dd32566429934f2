package domain

import "github.com/m04kA/SMC-BillboardCalendar/pkg/types"

// Overlaps is the single overlap predicate used across the service.
//
// Stored end dates are inclusive. The predicate converts both ranges to
// half-open [start, end+1) and uses strict inequalities:
//
//	aStart < bEnd+1 && aEnd+1 > bStart
//
// Examples:
//   - [01-01..01-14] and [01-14..01-20] -> overlap (share 01-14)
//   - [01-01..01-14] and [01-15..01-28] -> no overlap (adjacent)
//
// Storage queries use the equivalent inclusive form:
// start_date <= :end AND end_date >= :start.
func Overlaps(aStart, aEnd, bStart, bEnd types.Date) bool {
	return aStart.Before(bEnd.AddDays(1)) && aEnd.AddDays(1).After(bStart)
}

// IsAdjacent returns true if b starts exactly one day after a ends
func IsAdjacent(aEnd, bStart types.Date) bool {
	return aEnd.AddDays(1).Equal(bStart)
}
