package list_periods

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardCalendar/internal/api/handlers/handlertest"
)

func TestHandle_JSON(t *testing.T) {
	f := handlertest.New(t)
	h := NewHandler(f.Calendar, f.Logger)

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/periods?year=2025", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp PeriodListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, "P1", resp.Periods[0].ID)
	assert.Equal(t, "2025-01-14", resp.Periods[0].EndDate)

	w = httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/periods?year=2024", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Periods)
}

func TestHandle_BadYear(t *testing.T) {
	f := handlertest.New(t)
	h := NewHandler(f.Calendar, f.Logger)

	for _, q := range []string{"", "?year=abc", "?year=1900"} {
		w := httptest.NewRecorder()
		h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/periods"+q, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestHandleICS(t *testing.T) {
	f := handlertest.New(t)
	h := NewHandler(f.Calendar, f.Logger)
	h.now = func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) }

	w := httptest.NewRecorder()
	h.HandleICS(w, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/periods.ics?year=2025", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/calendar"))

	cal, err := ics.ParseCalendar(strings.NewReader(w.Body.String()))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "P1", events[0].Id())

	// DTEND в iCalendar исключающий: последний день P1 - 14 января
	assert.Equal(t, "20250101", events[0].GetProperty(ics.ComponentPropertyDtStart).Value)
	assert.Equal(t, "20250115", events[0].GetProperty(ics.ComponentPropertyDtEnd).Value)
}
