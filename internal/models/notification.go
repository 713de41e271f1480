package models

import "time"

// NotificationType categorises notifications for the UI.
type NotificationType string

const (
	NotificationTypeJob          NotificationType = "job"
	NotificationTypeMeeting      NotificationType = "meeting"
	NotificationTypeAnnouncement NotificationType = "announcement"
	NotificationTypeEnrollment   NotificationType = "enrollment"
	NotificationTypeCollege      NotificationType = "college"
	NotificationTypeDepartment   NotificationType = "department"
)

// Notification is a user-facing message derived from a domain event.
type Notification struct {
	ID        string           `db:"id" json:"id"`
	Title     string           `db:"title" json:"title"`
	Message   string           `db:"message" json:"message"`
	Type      NotificationType `db:"type" json:"type"`
	Read      bool             `db:"read" json:"read"`
	CreatedAt time.Time        `db:"created_at" json:"timestamp"`
}

// NotificationFilter narrows notification listings.
type NotificationFilter struct {
	UnreadOnly bool
	Page       int
	PageSize   int
}
