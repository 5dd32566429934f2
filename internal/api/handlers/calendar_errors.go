package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BillboardCalendar/internal/service/calendar"
)

const (
	msgEmptyPeriods   = "необходимо выбрать хотя бы один период"
	msgInvalidRange   = "дата окончания раньше даты начала"
	msgPeriodsMissing = "периоды не найдены"
	msgDiscontinuous  = "выбранные периоды не образуют непрерывную цепочку"
	msgOutOfRange     = "диапазон вне известного календаря"
)

// MissingPeriodsDetails детали ответа 404 для неизвестных периодов
type MissingPeriodsDetails struct {
	MissingIDs []string `json:"missingIds"`
}

// ContinuityDetails детали ответа 422 при разрыве цепочки
type ContinuityDetails struct {
	Kind          string `json:"kind"`
	PreviousID    string `json:"previousId"`
	PreviousStart string `json:"previousStartDate"`
	PreviousEnd   string `json:"previousEndDate"`
	NextID        string `json:"nextId"`
	NextStart     string `json:"nextStartDate"`
	NextEnd       string `json:"nextEndDate"`
	ExpectedStart string `json:"expectedStartDate"`
}

// RangeDetails детали ответа 422 для диапазона вне календаря
type RangeDetails struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// RespondCalendarError отвечает на типизированную ошибку календаря.
// Возвращает false, если ошибка к календарю не относится и ответ не отправлен.
func RespondCalendarError(w http.ResponseWriter, err error) bool {
	var (
		notFound   *calendar.NotFoundError
		continuity *calendar.ContinuityError
		outOfRange *calendar.OutOfRangeError
	)

	switch {
	case errors.As(err, &notFound):
		RespondErrorWithDetails(w, http.StatusNotFound, msgPeriodsMissing, MissingPeriodsDetails{MissingIDs: notFound.IDs})

	case errors.As(err, &continuity):
		kind := "gap"
		if continuity.IsOverlap() {
			kind = "overlap"
		}
		RespondErrorWithDetails(w, http.StatusUnprocessableEntity, msgDiscontinuous, ContinuityDetails{
			Kind:          kind,
			PreviousID:    continuity.PreviousID,
			PreviousStart: continuity.PreviousStart.String(),
			PreviousEnd:   continuity.PreviousEnd.String(),
			NextID:        continuity.NextID,
			NextStart:     continuity.NextStart.String(),
			NextEnd:       continuity.NextEnd.String(),
			ExpectedStart: continuity.ExpectedStart.String(),
		})

	case errors.As(err, &outOfRange):
		RespondErrorWithDetails(w, http.StatusUnprocessableEntity, msgOutOfRange, RangeDetails{
			StartDate: outOfRange.StartDate.String(),
			EndDate:   outOfRange.EndDate.String(),
		})

	case errors.Is(err, calendar.ErrDiscontinuous):
		RespondError(w, http.StatusUnprocessableEntity, msgDiscontinuous)

	case errors.Is(err, calendar.ErrEmptyInput):
		RespondBadRequest(w, msgEmptyPeriods)

	case errors.Is(err, calendar.ErrInvalidRange):
		RespondBadRequest(w, msgInvalidRange)

	default:
		return false
	}

	return true
}
