package domain

import (
	"time"

	"fisiohome_backend/platform/apperr"
)

// Window is a named booking time range used to filter the bookings view.
type Window string

const (
	WindowAll   Window = "all"
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// AllWindows lists the windows shown as bookings-view tabs.
var AllWindows = []Window{WindowAll, WindowToday, WindowWeek, WindowMonth}

// ParseWindow converts a raw string into a Window. Empty selects WindowAll.
func ParseWindow(raw string) (Window, error) {
	if raw == "" {
		return WindowAll, nil
	}
	w := Window(raw)
	switch w {
	case WindowAll, WindowToday, WindowWeek, WindowMonth:
		return w, nil
	}
	return "", apperr.Validation("unknown booking window: " + raw)
}

func (w Window) days() int {
	switch w {
	case WindowToday:
		return 1
	case WindowWeek:
		return 7
	case WindowMonth:
		return 30
	default:
		return 0
	}
}

// Contains reports whether a booking date falls inside the window
// [startOfToday, startOfToday + N days), evaluated at now. WindowAll
// contains every date.
func (w Window) Contains(bookingDate time.Time, now time.Time) bool {
	if w == WindowAll {
		return true
	}
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, w.days())
	return !bookingDate.Before(start) && bookingDate.Before(end)
}

// Imminent reports whether a booking is within the next 24 hours.
func Imminent(bookingDate time.Time, now time.Time) bool {
	diff := bookingDate.Sub(now)
	return diff > 0 && diff <= 24*time.Hour
}
