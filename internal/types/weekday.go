package types

import "time"

// Weekday numbers the days of the week 1=Sunday .. 7=Saturday, matching the
// Gregorian calendar convention the mobile clients use.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeekdayOf converts a time.Time into the 1-based weekday numbering.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(int(t.Weekday()) + 1)
}

// Valid reports whether w is within the 1..7 range.
func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}
