package service

import "time"

// Clock supplies the current time.  Services derive "today" from it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the hotel's time zone.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// dateOf returns the calendar date of t in t's location as a UTC midnight,
// matching how DATE columns are scanned.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func today(c Clock) time.Time { return dateOf(c.Now()) }
