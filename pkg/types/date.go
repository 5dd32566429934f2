package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// DateLayout формат календарной даты YYYY-MM-DD
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDateString возвращается при некорректном формате даты
	ErrInvalidDateString = errors.New("invalid date string format")

	// ErrUnsupportedDateSource возвращается, когда драйвер БД вернул неподдерживаемый тип
	ErrUnsupportedDateSource = errors.New("unsupported date source type")
)

// Date календарная дата без времени и часового пояса.
// Внутри хранится как полночь UTC, поэтому сравнение дат не зависит от DST.
type Date struct {
	t time.Time
}

// NewDate создает дату из года, месяца и дня
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf отбрасывает время и зону, сохраняя календарный день в зоне t
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate парсит строку формата YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	return Date{t: t}, nil
}

// MustParseDate как ParseDate, но паникует на ошибке. Только для тестов и констант.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// Compare возвращает -1, 0 или +1
func (d Date) Compare(other Date) int {
	switch {
	case d.t.Before(other.t):
		return -1
	case d.t.After(other.t):
		return 1
	default:
		return 0
	}
}

// DaysUntil количество дней от d до other (отрицательное, если other раньше)
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }
func (d Date) IsZero() bool      { return d.t.IsZero() }

// Time возвращает дату как полночь UTC
func (d Date) Time() time.Time { return d.t }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Value реализует driver.Valuer. В БД дата пишется строкой YYYY-MM-DD,
// это одинаково работает для DATE в PostgreSQL и TEXT в SQLite.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.t.Format(DateLayout), nil
}

// Scan реализует sql.Scanner
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		// pq возвращает DATE как полночь UTC, sqlite3 - как время в UTC
		*d = NewDate(v.UTC().Year(), v.UTC().Month(), v.UTC().Day())
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedDateSource, src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText реализует encoding.TextMarshaler (используется и в JSON)
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
