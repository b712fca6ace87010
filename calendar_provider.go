package main

import (
	"time"
)

// CalendarService is the capability surface the booking engine needs from the
// remote calendar. Tests substitute an in-memory fake; the real implementation
// lives in google_calendar.go.
type CalendarService interface {
	ListCalendars() ([]CalendarRef, error)
	CreateEvent(calendarID string, event *Event) (string, error)
	DeleteEvent(calendarID string, eventID string) error
}

// CalendarRef describes one calendar accessible to the authenticated account.
type CalendarRef struct {
	ID      string
	Summary string
	Primary bool
}

// Event is the provider-neutral payload mirroring a slot in the remote
// calendar.
type Event struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Attendees   []string
}
