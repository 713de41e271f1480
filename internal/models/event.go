package models

import "time"

// EventType classifies department events.
type EventType string

const (
	EventTypeWorkshop  EventType = "Workshop"
	EventTypeSeminar   EventType = "Seminar"
	EventTypeHackathon EventType = "Hackathon"
	EventTypeTraining  EventType = "Training"
	EventTypeWebinar   EventType = "Webinar"
)

// EventStatus tracks where an event is in its lifecycle.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "Upcoming"
	EventStatusOngoing   EventStatus = "Ongoing"
	EventStatusCompleted EventStatus = "Completed"
)

// RegistrationStatus records a student's attendance at an event.
type RegistrationStatus string

const (
	RegistrationRegistered RegistrationStatus = "Registered"
	RegistrationAttended   RegistrationStatus = "Attended"
	RegistrationNoShow     RegistrationStatus = "No-show"
)

// EventRegistration links a student to an event.
type EventRegistration struct {
	EventID      string             `db:"event_id" json:"-"`
	StudentID    string             `db:"student_id" json:"student_id"`
	Status       RegistrationStatus `db:"status" json:"status"`
	RegisteredAt time.Time          `db:"registered_at" json:"registered_at"`
}

// DepartmentEvent is a workshop, seminar or similar session students register for.
// MaxParticipants nil means no cap.
type DepartmentEvent struct {
	ID              string              `db:"id" json:"id"`
	Title           string              `db:"title" json:"title"`
	Description     string              `db:"description" json:"description,omitempty"`
	Type            EventType           `db:"type" json:"type"`
	Date            time.Time           `db:"event_date" json:"date"`
	Time            string              `db:"start_time" json:"time,omitempty"`
	Location        string              `db:"location" json:"location,omitempty"`
	OnlineLink      string              `db:"online_link" json:"online_link,omitempty"`
	MaxParticipants *int                `db:"max_participants" json:"max_participants,omitempty"`
	Status          EventStatus         `db:"status" json:"status"`
	Active          bool                `db:"active" json:"active"`
	PosterURL       string              `db:"poster_url" json:"poster_url,omitempty"`
	Registered      int                 `db:"registered" json:"registered"`
	Registrations   []EventRegistration `db:"-" json:"registered_students,omitempty"`
	CreatedAt       time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at" json:"updated_at"`
}

// Full reports whether the event has reached its participant cap.
func (e DepartmentEvent) Full() bool {
	return e.MaxParticipants != nil && e.Registered >= *e.MaxParticipants
}

// EventFilter narrows event listings.
type EventFilter struct {
	Status     EventStatus
	Type       EventType
	ActiveOnly bool
	Page       int
	PageSize   int
}
