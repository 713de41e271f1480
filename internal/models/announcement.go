package models

import "time"

// AnnouncementPriority ranks staff announcements.
type AnnouncementPriority string

const (
	AnnouncementPriorityHigh   AnnouncementPriority = "high"
	AnnouncementPriorityMedium AnnouncementPriority = "medium"
	AnnouncementPriorityLow    AnnouncementPriority = "low"
)

// Announcement is a broadcast written by placement staff.
type Announcement struct {
	ID        string               `db:"id" json:"id"`
	Title     string               `db:"title" json:"title"`
	Content   string               `db:"content" json:"content"`
	Priority  AnnouncementPriority `db:"priority" json:"priority"`
	Date      time.Time            `db:"published_on" json:"date"`
	CreatedBy string               `db:"created_by" json:"created_by,omitempty"`
	CreatedAt time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt time.Time            `db:"updated_at" json:"updated_at"`
}

// AnnouncementFilter narrows announcement listings.
type AnnouncementFilter struct {
	Priority AnnouncementPriority
	Page     int
	PageSize int
}
