package domain

// Calendar constants
const (
	PeriodLengthDays = 14 // bi-week
)

// Calendar generation bounds
const (
	MinCalendarYear = 2000
	MaxCalendarYear = 2100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Alignment messages
const (
	MsgOutsideCalendar = "range falls outside the known calendar"
	MsgNotAligned      = "range is not aligned to bi-week boundaries"
	MsgCalendarGap     = "intersecting periods are not continuous"
)
