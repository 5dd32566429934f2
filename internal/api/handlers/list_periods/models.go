package list_periods

import (
	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
)

// PeriodResponse би-неделя в HTTP ответе
type PeriodResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// PeriodListResponse HTTP response model
type PeriodListResponse struct {
	Year    int              `json:"year"`
	Periods []PeriodResponse `json:"periods"`
	Total   int              `json:"total"`
}

// FromDomainPeriod конвертирует период в HTTP модель
func FromDomainPeriod(p domain.CalendarPeriod) PeriodResponse {
	return PeriodResponse{
		ID:        p.ID,
		StartDate: p.StartDate.String(),
		EndDate:   p.EndDate.String(),
	}
}

// FromDomain конвертирует периоды года в HTTP response
func FromDomain(year int, periods []domain.CalendarPeriod) *PeriodListResponse {
	items := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		items[i] = FromDomainPeriod(p)
	}

	return &PeriodListResponse{
		Year:    year,
		Periods: items,
		Total:   len(items),
	}
}
