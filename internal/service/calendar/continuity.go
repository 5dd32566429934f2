package calendar

import (
	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
)

// ValidateContinuity проверяет, что упорядоченные по start_date периоды образуют
// непрерывную цепочку: конец каждого периода ровно на день раньше начала следующего.
// Меньше двух периодов - цепочка валидна.
//
// Проверку нужно выполнять каждый раз, когда цепочка собирается из переданных извне ID:
// клиент может прислать неупорядоченное или разорванное подмножество.
func ValidateContinuity(periods []domain.CalendarPeriod) error {
	for i := 0; i+1 < len(periods); i++ {
		current, next := periods[i], periods[i+1]

		if !domain.IsAdjacent(current.EndDate, next.StartDate) {
			return &ContinuityError{
				PreviousID:    current.ID,
				PreviousStart: current.StartDate,
				PreviousEnd:   current.EndDate,
				NextID:        next.ID,
				NextStart:     next.StartDate,
				NextEnd:       next.EndDate,
				ExpectedStart: current.NextStart(),
			}
		}
	}

	return nil
}
