package calendar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

var (
	// ErrEmptyInput возвращается, когда не передан ни один ID периода
	ErrEmptyInput = errors.New("calendar: at least one period id is required")

	// ErrPeriodsNotFound возвращается, когда часть периодов отсутствует в календаре
	ErrPeriodsNotFound = errors.New("calendar: periods not found")

	// ErrDiscontinuous возвращается при разрыве или наложении соседних периодов
	ErrDiscontinuous = errors.New("calendar: periods are not continuous")

	// ErrOutOfRange возвращается, когда диапазон не пересекает ни один период
	ErrOutOfRange = errors.New("calendar: range falls outside the known calendar")

	// ErrInvalidRange возвращается, когда дата окончания раньше даты начала
	ErrInvalidRange = errors.New("calendar: end date is before start date")

	// ErrInvalidYear возвращается при генерации календаря для недопустимого года
	ErrInvalidYear = errors.New("calendar: invalid calendar year")

	// ErrYearAlreadyGenerated возвращается, когда календарь на год уже создан
	ErrYearAlreadyGenerated = errors.New("calendar: year already generated")

	// ErrChainGap возвращается, когда генерация года оставит разрыв в цепочке периодов
	ErrChainGap = errors.New("calendar: generation would leave a gap in the period chain")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar: internal error")
)

// NotFoundError перечисляет отсутствующие ID периодов (только отсутствующие)
type NotFoundError struct {
	IDs []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("calendar: periods not found: %s", strings.Join(e.IDs, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrPeriodsNotFound }

// ContinuityError описывает разрыв или наложение между двумя соседними периодами
type ContinuityError struct {
	PreviousID    string
	PreviousStart types.Date
	PreviousEnd   types.Date
	NextID        string
	NextStart     types.Date
	NextEnd       types.Date
	ExpectedStart types.Date
}

func (e *ContinuityError) Error() string {
	kind := "gap"
	if e.IsOverlap() {
		kind = "overlap"
	}
	return fmt.Sprintf("calendar: %s between period %s [%s..%s] and period %s [%s..%s]: expected next start %s",
		kind,
		e.PreviousID, e.PreviousStart, e.PreviousEnd,
		e.NextID, e.NextStart, e.NextEnd,
		e.ExpectedStart)
}

func (e *ContinuityError) Unwrap() error { return ErrDiscontinuous }

// IsGap возвращает true, если между периодами есть пропущенные дни
func (e *ContinuityError) IsGap() bool { return e.NextStart.After(e.ExpectedStart) }

// IsOverlap возвращает true, если следующий период начинается до окончания предыдущего
func (e *ContinuityError) IsOverlap() bool { return e.NextStart.Before(e.ExpectedStart) }

// EmptyInputError возвращается при пустом списке ID
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string { return ErrEmptyInput.Error() }

func (e *EmptyInputError) Unwrap() error { return ErrEmptyInput }

// OutOfRangeError возвращается, когда диапазон не пересекает известный календарь
type OutOfRangeError struct {
	StartDate types.Date
	EndDate   types.Date
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("calendar: range %s..%s falls outside the known calendar", e.StartDate, e.EndDate)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// IsClientError возвращает true, если ошибка вызвана некорректными входными данными
func IsClientError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrPeriodsNotFound) ||
		errors.Is(err, ErrDiscontinuous) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrInvalidRange)
}
