package domain

import (
	"fmt"
	"time"
)

// Date календарная дата рождения без времени и зоны
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// String формат DD-MM-YYYY, в котором дата показывается пользователю
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, int(d.Month), d.Year)
}

// ClockTime настенное время (часы 0-23, минуты 0-59)
type ClockTime struct {
	Hour   int
	Minute int
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// BirthInput данные рождения, собранные в диалоге
type BirthInput struct {
	Date  Date
	Time  ClockTime
	Place string
}

// UTCLayout формат UTCInstant
const UTCLayout = "2006-01-02T15:04:05Z"

// UTCInstant момент времени в UTC с точностью до секунды: YYYY-MM-DDTHH:MM:SSZ
type UTCInstant string

// NewUTCInstant форматирует t как UTCInstant
func NewUTCInstant(t time.Time) UTCInstant {
	return UTCInstant(t.UTC().Format(UTCLayout))
}

// Time разбирает UTCInstant обратно в time.Time
func (u UTCInstant) Time() (time.Time, error) {
	t, err := time.Parse(UTCLayout, string(u))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid utc instant %q: %w", string(u), err)
	}
	return t, nil
}

func (u UTCInstant) String() string {
	return string(u)
}
