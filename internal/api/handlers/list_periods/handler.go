package list_periods

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BillboardCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
)

const (
	msgMissingYear = "параметр year обязателен"
	msgInvalidYear = "некорректный год"
)

type Handler struct {
	service CalendarService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/calendar/periods?year=YYYY
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, periods, ok := h.load(w, r, "GET /calendar/periods")
	if !ok {
		return
	}

	h.logger.Info("GET /calendar/periods - year=%d periods=%d", year, len(periods))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(year, periods))
}

// HandleICS GET /api/v1/calendar/periods.ics?year=YYYY
func (h *Handler) HandleICS(w http.ResponseWriter, r *http.Request) {
	year, periods, ok := h.load(w, r, "GET /calendar/periods.ics")
	if !ok {
		return
	}

	body := ToICS(year, periods, h.now().UTC())

	h.logger.Info("GET /calendar/periods.ics - year=%d periods=%d", year, len(periods))
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\"biweeks-"+strconv.Itoa(year)+".ics\"")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request, route string) (int, []domain.CalendarPeriod, bool) {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("%s - Missing year", route)
		handlers.RespondBadRequest(w, msgMissingYear)
		return 0, nil, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < domain.MinCalendarYear || year > domain.MaxCalendarYear {
		h.logger.Warn("%s - Invalid year: %q", route, yearStr)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return 0, nil, false
	}

	periods, err := h.service.ListYear(r.Context(), year)
	if err != nil {
		h.logger.Error("%s - Failed to list periods for year=%d: %v", route, year, err)
		handlers.RespondInternalError(w)
		return 0, nil, false
	}

	return year, periods, true
}
