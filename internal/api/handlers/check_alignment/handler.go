package check_alignment

import (
	"net/http"

	"github.com/m04kA/SMC-BillboardCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

const (
	msgMissingDates = "параметры start и end обязательны"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
)

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

// Handle GET /api/v1/calendar/alignment
// Query params: start (required, YYYY-MM-DD), end (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /calendar/alignment - Missing dates: start=%q end=%q", startStr, endStr)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	start, err := types.ParseDate(startStr)
	if err != nil {
		h.logger.Warn("GET /calendar/alignment - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	end, err := types.ParseDate(endStr)
	if err != nil {
		h.logger.Warn("GET /calendar/alignment - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CheckAlignment(r.Context(), start, end)
	if err != nil {
		if handlers.RespondCalendarError(w, err) {
			h.logger.Warn("GET /calendar/alignment - Rejected range %s..%s: %v", start, end, err)
			return
		}
		h.logger.Error("GET /calendar/alignment - Failed to check alignment %s..%s: %v", start, end, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendar/alignment - %s..%s aligned=%t", start, end, result.Aligned)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(start.String(), end.String(), result))
}
