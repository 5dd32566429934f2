package get_period

import "github.com/m04kA/SMC-BillboardCalendar/internal/domain"

// PeriodResponse HTTP response model
type PeriodResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Days      int    `json:"days"`
}

func FromDomain(p *domain.CalendarPeriod) PeriodResponse {
	return PeriodResponse{
		ID:        p.ID,
		StartDate: p.StartDate.String(),
		EndDate:   p.EndDate.String(),
		Days:      p.StartDate.DaysUntil(p.EndDate) + 1,
	}
}
