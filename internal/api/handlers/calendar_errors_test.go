package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BillboardCalendar/internal/service/calendar"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

func TestRespondCalendarError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", &calendar.NotFoundError{IDs: []string{"x"}}, http.StatusNotFound},
		{"continuity", &calendar.ContinuityError{PreviousID: "a", NextID: "b"}, http.StatusUnprocessableEntity},
		{"out of range", &calendar.OutOfRangeError{}, http.StatusUnprocessableEntity},
		{"wrapped discontinuous", fmt.Errorf("%w: collision", calendar.ErrDiscontinuous), http.StatusUnprocessableEntity},
		{"empty", &calendar.EmptyInputError{}, http.StatusBadRequest},
		{"invalid range", calendar.ErrInvalidRange, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			require.True(t, RespondCalendarError(w, tt.err))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRespondCalendarError_Unrelated(t *testing.T) {
	w := httptest.NewRecorder()
	assert.False(t, RespondCalendarError(w, errors.New("db down")))
	assert.False(t, RespondCalendarError(w, calendar.ErrInternal))
}

func TestRespondCalendarError_NotFoundDetails(t *testing.T) {
	w := httptest.NewRecorder()
	RespondCalendarError(w, &calendar.NotFoundError{IDs: []string{"p7", "p9"}})

	var body struct {
		Error   string                `json:"error"`
		Details MissingPeriodsDetails `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"p7", "p9"}, body.Details.MissingIDs)
	assert.NotEmpty(t, body.Error)
}

func TestRespondCalendarError_ContinuityDetails(t *testing.T) {
	w := httptest.NewRecorder()
	RespondCalendarError(w, &calendar.ContinuityError{
		PreviousID:    "P1",
		PreviousStart: types.MustParseDate("2025-01-01"),
		PreviousEnd:   types.MustParseDate("2025-01-14"),
		NextID:        "P3",
		NextStart:     types.MustParseDate("2025-01-29"),
		NextEnd:       types.MustParseDate("2025-02-11"),
		ExpectedStart: types.MustParseDate("2025-01-15"),
	})

	var body struct {
		Details ContinuityDetails `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "gap", body.Details.Kind)
	assert.Equal(t, "P1", body.Details.PreviousID)
	assert.Equal(t, "2025-01-14", body.Details.PreviousEnd)
	assert.Equal(t, "2025-01-15", body.Details.ExpectedStart)
}
