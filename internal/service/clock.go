package service

import (
	"time"

	"github.com/dailydish/backend/internal/types"
)

// Clock supplies the daily pick engine's notion of "today". It is an
// interface so tests can pin the date.
type Clock interface {
	Now() time.Time
	// Weekday returns today's weekday, 1=Sunday..7=Saturday.
	Weekday() types.Weekday
	// DateKey returns today as YYYY-MM-DD.
	DateKey() string
	// DayOrdinal counts calendar days since the Unix epoch, in UTC.
	DayOrdinal() int
}

type systemClock struct{}

// NewSystemClock returns a Clock backed by the host's UTC time.
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (c systemClock) Weekday() types.Weekday {
	return types.WeekdayOf(c.Now())
}

func (c systemClock) DateKey() string {
	return DateKeyOf(c.Now())
}

func (c systemClock) DayOrdinal() int {
	return DayOrdinalOf(c.Now())
}

// DateKeyOf formats a time as the YYYY-MM-DD key stored with the daily pick.
func DateKeyOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DayOrdinalOf counts whole calendar days between the Unix epoch and t.
func DayOrdinalOf(t time.Time) int {
	utc := t.UTC()
	midnight := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return int(midnight.Unix() / 86400)
}
