// Package events carries domain events from services to subscribers that
// write notifications and drop stale caches.
package events

import (
	"context"
	"time"
)

// Type names a domain event.
type Type string

const (
	StudentCreated      Type = "student.created"
	StudentUpdated      Type = "student.updated"
	StudentsImported    Type = "students.imported"
	DriveAnnounced      Type = "drive.announced"
	DriveUpdated        Type = "drive.updated"
	DriveRemoved        Type = "drive.removed"
	JobPosted           Type = "job.posted"
	JobEnrolled         Type = "job.enrolled"
	CollegeAdded        Type = "college.added"
	CollegeUpdated      Type = "college.updated"
	CollegeRemoved      Type = "college.removed"
	DepartmentAdded     Type = "department.added"
	DepartmentUpdated   Type = "department.updated"
	DepartmentRemoved   Type = "department.removed"
	AnnouncementPosted  Type = "announcement.posted"
	EventCreated        Type = "event.created"
	EventUpdated        Type = "event.updated"
	EventRemoved        Type = "event.removed"
	EventRegistered     Type = "event.registered"
	MeetingScheduled    Type = "meeting.scheduled"
	CourseProgressSaved Type = "course.progress"
)

// Event is an immutable record of something that changed.
type Event struct {
	Type       Type              `json:"type"`
	EntityID   string            `json:"entity_id,omitempty"`
	Name       string            `json:"name,omitempty"`
	Attrs      map[string]string `json:"attrs,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// New stamps an event with the current time.
func New(t Type, entityID, name string, attrs map[string]string) Event {
	return Event{Type: t, EntityID: entityID, Name: name, Attrs: attrs, OccurredAt: time.Now().UTC()}
}

// Attr returns an attribute or the empty string.
func (e Event) Attr(key string) string {
	if e.Attrs == nil {
		return ""
	}
	return e.Attrs[key]
}

// Publisher accepts events without blocking the caller on delivery.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// Subscriber reacts to one event. Returning an error asks for a retry.
type Subscriber interface {
	Name() string
	Handle(ctx context.Context, event Event) error
}

// Discard drops every event.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(context.Context, Event) {}

// Recorder keeps published events in memory, mostly for tests and the CLI.
type Recorder struct {
	Events []Event
}

// Publish implements Publisher.
func (r *Recorder) Publish(_ context.Context, event Event) {
	r.Events = append(r.Events, event)
}

// Types lists the recorded event types in order.
func (r *Recorder) Types() []Type {
	out := make([]Type, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Type
	}
	return out
}
