package get_period_by_date

import (
	"net/http"

	"github.com/m04kA/SMC-BillboardCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

const (
	msgMissingDate    = "параметр date обязателен"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPeriodNotFound = "дата вне известного календаря"
)

// PeriodResponse HTTP response model
type PeriodResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/periods/containing?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /calendar/periods/containing - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := types.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /calendar/periods/containing - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	period, found, err := h.service.ResolvePeriodContainingDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /calendar/periods/containing - Failed to resolve date=%s: %v", date, err)
		handlers.RespondInternalError(w)
		return
	}
	if !found {
		h.logger.Warn("GET /calendar/periods/containing - No period for date=%s", date)
		handlers.RespondNotFound(w, msgPeriodNotFound)
		return
	}

	h.logger.Info("GET /calendar/periods/containing - date=%s period=%s", date, period.ID)
	handlers.RespondJSON(w, http.StatusOK, PeriodResponse{
		ID:        period.ID,
		StartDate: period.StartDate.String(),
		EndDate:   period.EndDate.String(),
	})
}
