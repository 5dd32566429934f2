package check_availability

import (
	"github.com/m04kA/SMC-BillboardCalendar/internal/api/handlers/check_alignment"
	checkAvailability "github.com/m04kA/SMC-BillboardCalendar/internal/usecase/check_availability"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

// AvailabilityRequest HTTP request model.
// Либо periodIds, либо пара startDate/endDate.
type AvailabilityRequest struct {
	PeriodIDs []string `json:"periodIds,omitempty"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *AvailabilityRequest) ToUseCaseRequest(assetID string) (*checkAvailability.Request, error) {
	req := &checkAvailability.Request{
		AssetID:   assetID,
		PeriodIDs: r.PeriodIDs,
	}

	if r.StartDate != "" {
		start, err := types.ParseDate(r.StartDate)
		if err != nil {
			return nil, err
		}
		req.StartDate = start
	}
	if r.EndDate != "" {
		end, err := types.ParseDate(r.EndDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = end
	}

	return req, nil
}

// ConflictResponse существующая аренда, пересекающаяся с запросом
type ConflictResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	AssetID    string                              `json:"assetId"`
	StartDate  string                              `json:"startDate"`
	EndDate    string                              `json:"endDate"`
	PeriodIDs  []string                            `json:"periodIds"`
	Aligned    bool                                `json:"aligned"`
	Suggestion *check_alignment.SuggestionResponse `json:"suggestion,omitempty"`
	Message    string                              `json:"message,omitempty"`
	Available  bool                                `json:"available"`
	Conflicts  []ConflictResponse                  `json:"conflicts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	conflicts := make([]ConflictResponse, len(resp.Conflicts))
	for i, c := range resp.Conflicts {
		conflicts[i] = ConflictResponse{
			ID:        c.ID,
			StartDate: c.StartDate.String(),
			EndDate:   c.EndDate.String(),
		}
	}

	ids := resp.PeriodIDs
	if ids == nil {
		ids = []string{}
	}

	return &AvailabilityResponse{
		AssetID:    resp.AssetID,
		StartDate:  resp.StartDate.String(),
		EndDate:    resp.EndDate.String(),
		PeriodIDs:  ids,
		Aligned:    resp.Aligned,
		Suggestion: check_alignment.FromSuggestion(resp.Suggestion),
		Message:    resp.Message,
		Available:  resp.Available,
		Conflicts:  conflicts,
	}
}
