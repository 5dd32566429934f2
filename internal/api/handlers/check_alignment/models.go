package check_alignment

import (
	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
)

// AlignmentResponse HTTP response model
type AlignmentResponse struct {
	StartDate  string              `json:"startDate"`
	EndDate    string              `json:"endDate"`
	Aligned    bool                `json:"aligned"`
	Continuous bool                `json:"continuous"`
	PeriodIDs  []string            `json:"periodIds"`
	Suggestion *SuggestionResponse `json:"suggestion,omitempty"`
	Message    string              `json:"message,omitempty"`
}

// SuggestionResponse ближайший выровненный диапазон
type SuggestionResponse struct {
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	PeriodIDs []string `json:"periodIds"`
}

// FromSuggestion конвертирует предложение в HTTP модель (nil остается nil)
func FromSuggestion(s *domain.AlignmentSuggestion) *SuggestionResponse {
	if s == nil {
		return nil
	}
	return &SuggestionResponse{
		StartDate: s.StartDate.String(),
		EndDate:   s.EndDate.String(),
		PeriodIDs: s.PeriodIDs,
	}
}

// FromDomain конвертирует результат проверки в HTTP response
func FromDomain(startDate, endDate string, result *domain.AlignmentResult) *AlignmentResponse {
	ids := result.PeriodIDs
	if ids == nil {
		ids = []string{}
	}

	resp := &AlignmentResponse{
		StartDate:  startDate,
		EndDate:    endDate,
		Aligned:    result.Aligned,
		Continuous: result.Continuous,
		PeriodIDs:  ids,
		Message:    result.Message,
	}
	if result.HasSuggestion() {
		resp.Suggestion = FromSuggestion(result.Suggestion)
	}
	return resp
}
