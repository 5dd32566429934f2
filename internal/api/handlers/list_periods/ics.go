package list_periods

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
)

const productID = "-//SMC//Billboard Calendar//RU"

// ToICS собирает календарь би-недель в формате iCalendar.
// Каждый период - событие на весь день; DTEND в iCalendar не включается, поэтому EndDate+1.
func ToICS(year int, periods []domain.CalendarPeriod, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(fmt.Sprintf("Би-недели %d", year))

	for i, p := range periods {
		event := cal.AddEvent(p.ID)
		event.SetDtStampTime(stamp)
		event.SetSummary(fmt.Sprintf("Би-неделя %d/%d", i+1, year))
		event.SetDescription(fmt.Sprintf("%s..%s", p.StartDate, p.EndDate))
		event.SetAllDayStartAt(p.StartDate.Time())
		event.SetAllDayEndAt(p.EndDate.AddDays(1).Time())
	}

	return cal.Serialize()
}
