package get_period_by_date

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardCalendar/internal/api/handlers/handlertest"
)

func TestHandle(t *testing.T) {
	f := handlertest.New(t)
	h := NewHandler(f.Calendar, f.Logger)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantID     string
	}{
		{"first day", "?date=2025-01-15", http.StatusOK, "P2"},
		{"last day", "?date=2025-01-14", http.StatusOK, "P1"},
		{"outside", "?date=2026-06-01", http.StatusNotFound, ""},
		{"missing", "", http.StatusBadRequest, ""},
		{"malformed", "?date=2025-13-01", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/periods/containing"+tt.query, nil))

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantID == "" {
				return
			}
			var resp PeriodResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantID, resp.ID)
		})
	}
}
