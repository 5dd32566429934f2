package resolve_periods

import (
	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
)

// ResolveRequest HTTP request model
type ResolveRequest struct {
	PeriodIDs []string `json:"periodIds"`
}

// ResolvedRangeResponse HTTP response model
type ResolvedRangeResponse struct {
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	PeriodIDs []string `json:"periodIds"`
}

// FromDomain конвертирует диапазон в HTTP response
func FromDomain(r *domain.ResolvedRange) *ResolvedRangeResponse {
	return &ResolvedRangeResponse{
		StartDate: r.StartDate.String(),
		EndDate:   r.EndDate.String(),
		PeriodIDs: r.PeriodIDs,
	}
}
