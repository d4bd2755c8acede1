package domain

import "time"

// BookingWindow defines which calendar dates accept new appointments:
// from today up to and including today + Months, where "today" is taken in
// Location
type BookingWindow struct {
	Location *time.Location
	Months   int
}

// NewBookingWindow creates a window; a nil location means UTC
func NewBookingWindow(loc *time.Location, months int) BookingWindow {
	if loc == nil {
		loc = time.UTC
	}
	return BookingWindow{Location: loc, Months: months}
}

// Today returns the current calendar date in the window's location as 00:00 UTC
func (w BookingWindow) Today(now time.Time) time.Time {
	local := now.In(w.Location)
	return DateOf(local)
}

// Bounds returns the first and last bookable dates
func (w BookingWindow) Bounds(now time.Time) (time.Time, time.Time) {
	first := w.Today(now)
	return first, first.AddDate(0, w.Months, 0)
}

// Contains reports whether date lies within the window (both ends inclusive)
func (w BookingWindow) Contains(date, now time.Time) bool {
	first, last := w.Bounds(now)
	d := DateOf(date)
	return !d.Before(first) && !d.After(last)
}

// DateOf truncates t to its calendar date, expressed as 00:00 UTC
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
