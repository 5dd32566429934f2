package resolve_periods

import (
	"net/http"

	"github.com/m04kA/SMC-BillboardCalendar/internal/api/handlers"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /api/v1/calendar/periods/resolve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/periods/resolve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resolved, err := h.service.ResolveRangeFromPeriodIDs(r.Context(), req.PeriodIDs)
	if err != nil {
		if handlers.RespondCalendarError(w, err) {
			h.logger.Warn("POST /calendar/periods/resolve - Rejected periods %v: %v", req.PeriodIDs, err)
			return
		}
		h.logger.Error("POST /calendar/periods/resolve - Failed to resolve periods: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /calendar/periods/resolve - %s..%s periods=%d", resolved.StartDate, resolved.EndDate, len(resolved.PeriodIDs))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(resolved))
}
