package get_period

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BillboardCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-BillboardCalendar/internal/service/calendar"
)

const (
	msgInvalidPeriodID = "некорректный ID периода"
	msgNotFound        = "период не найден"
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

// Handle GET /api/v1/calendar/periods/{periodId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periodID := strings.TrimSpace(mux.Vars(r)["periodId"])
	if periodID == "" {
		h.logger.Warn("GET /calendar/periods/{id} - Empty period ID")
		handlers.RespondBadRequest(w, msgInvalidPeriodID)
		return
	}

	period, err := h.service.GetPeriod(r.Context(), periodID)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrPeriodsNotFound):
			h.logger.Warn("GET /calendar/periods/{id} - Period not found: period_id=%s", periodID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /calendar/periods/{id} - Failed to get period: period_id=%s, error=%v", periodID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/periods/{id} - Period retrieved: period_id=%s", periodID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(period))
}
