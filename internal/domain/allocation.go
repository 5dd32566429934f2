package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

// ErrInvalidAllocationWindow is returned when a window breaks StartDate < EndDate
var ErrInvalidAllocationWindow = errors.New("allocation window: start date must be before end date")

// AllocationWindow is the date range during which an asset is reserved.
// EndDate is inclusive, the same as CalendarPeriod.
type AllocationWindow struct {
	ID        string // empty for a prospective window
	AssetID   string
	StartDate types.Date
	EndDate   types.Date
}

// Validate checks the window invariant
func (w AllocationWindow) Validate() error {
	if w.AssetID == "" {
		return fmt.Errorf("%w: asset id is required", ErrInvalidAllocationWindow)
	}
	if !w.StartDate.Before(w.EndDate) {
		return fmt.Errorf("%w: %s..%s", ErrInvalidAllocationWindow, w.StartDate, w.EndDate)
	}
	return nil
}

// OverlapsWith applies the shared overlap predicate to windows of the same asset
func (w AllocationWindow) OverlapsWith(other AllocationWindow) bool {
	return w.AssetID == other.AssetID && Overlaps(w.StartDate, w.EndDate, other.StartDate, other.EndDate)
}

// SortWindows orders windows by StartDate ascending, ties broken by ID
func SortWindows(windows []AllocationWindow) {
	sort.SliceStable(windows, func(i, j int) bool {
		if c := windows[i].StartDate.Compare(windows[j].StartDate); c != 0 {
			return c < 0
		}
		return windows[i].ID < windows[j].ID
	})
}
