package events

import (
	"context"
	"fmt"

	"github.com/ajs-hub/placement-api/internal/models"
)

// Attribute keys used by publishers.
const (
	AttrCompany  = "company"
	AttrRole     = "role"
	AttrTitle    = "title"
	AttrStudent  = "student"
	AttrAccepted = "accepted"
	AttrRejected = "rejected"
	AttrDate     = "date"
	AttrTime     = "time"
)

type notificationCreator interface {
	Create(ctx context.Context, notification *models.Notification) error
}

// NotificationWriter turns events into user-facing notifications.
type NotificationWriter struct {
	repo notificationCreator
}

// NewNotificationWriter constructs a NotificationWriter.
func NewNotificationWriter(repo notificationCreator) *NotificationWriter {
	return &NotificationWriter{repo: repo}
}

// Name implements Subscriber.
func (w *NotificationWriter) Name() string { return "notifications" }

// Handle implements Subscriber. Events without a notification are ignored.
func (w *NotificationWriter) Handle(ctx context.Context, event Event) error {
	notification, ok := NotificationFor(event)
	if !ok {
		return nil
	}
	return w.repo.Create(ctx, notification)
}

// NotificationFor maps an event to the notification shown to users.
func NotificationFor(event Event) (*models.Notification, bool) {
	n := &models.Notification{CreatedAt: event.OccurredAt}
	switch event.Type {
	case DepartmentAdded:
		n.Title, n.Type = "Department Added", models.NotificationTypeDepartment
		n.Message = fmt.Sprintf("%s department has been created", event.Name)
	case DepartmentUpdated:
		n.Title, n.Type = "Department Updated", models.NotificationTypeDepartment
		n.Message = "Department information has been updated"
	case DepartmentRemoved:
		n.Title, n.Type = "Department Removed", models.NotificationTypeDepartment
		n.Message = fmt.Sprintf("%s department has been removed", event.Name)
	case CollegeAdded:
		n.Title, n.Type = "College Added", models.NotificationTypeCollege
		n.Message = fmt.Sprintf("%s has been registered", event.Name)
	case CollegeUpdated:
		n.Title, n.Type = "College Updated", models.NotificationTypeCollege
		n.Message = "College information has been updated"
	case CollegeRemoved:
		n.Title, n.Type = "College Removed", models.NotificationTypeCollege
		n.Message = fmt.Sprintf("%s has been removed", event.Name)
	case JobPosted:
		n.Title, n.Type = "New Job Posted", models.NotificationTypeJob
		n.Message = fmt.Sprintf("%s at %s", event.Attr(AttrTitle), event.Attr(AttrCompany))
	case DriveAnnounced:
		n.Title, n.Type = "Drive Announced", models.NotificationTypeJob
		n.Message = fmt.Sprintf("%s - %s", event.Attr(AttrCompany), event.Attr(AttrRole))
	case JobEnrolled:
		n.Title, n.Type = "Job Enrollment", models.NotificationTypeEnrollment
		n.Message = "Successfully enrolled in job"
		if title := event.Attr(AttrTitle); title != "" {
			n.Message = fmt.Sprintf("Successfully enrolled in %s", title)
		}
	case AnnouncementPosted:
		n.Title, n.Type = "New Announcement", models.NotificationTypeAnnouncement
		n.Message = event.Name
	case MeetingScheduled:
		n.Title, n.Type = "New Meeting Scheduled", models.NotificationTypeMeeting
		n.Message = fmt.Sprintf("%s on %s at %s", event.Name, event.Attr(AttrDate), event.Attr(AttrTime))
	case EventCreated:
		n.Title, n.Type = "Event Created", models.NotificationTypeMeeting
		n.Message = event.Name
	case EventRegistered:
		n.Title, n.Type = "Event Registration", models.NotificationTypeEnrollment
		n.Message = fmt.Sprintf("Registered for %s", event.Attr(AttrTitle))
	case StudentsImported:
		n.Title, n.Type = "Students Imported", models.NotificationTypeAnnouncement
		n.Message = fmt.Sprintf("%s students imported, %s rejected", event.Attr(AttrAccepted), event.Attr(AttrRejected))
	default:
		return nil, false
	}
	return n, true
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context, pattern string) error
}

// CacheInvalidator drops cached read models after any change.
type CacheInvalidator struct {
	cache    cacheInvalidator
	patterns []string
}

// NewCacheInvalidator constructs a CacheInvalidator for the given key patterns.
func NewCacheInvalidator(cache cacheInvalidator, patterns ...string) *CacheInvalidator {
	return &CacheInvalidator{cache: cache, patterns: patterns}
}

// Name implements Subscriber.
func (c *CacheInvalidator) Name() string { return "cache" }

// Handle implements Subscriber.
func (c *CacheInvalidator) Handle(ctx context.Context, _ Event) error {
	for _, pattern := range c.patterns {
		if err := c.cache.Invalidate(ctx, pattern); err != nil {
			return err
		}
	}
	return nil
}
