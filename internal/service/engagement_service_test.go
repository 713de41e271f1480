package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajs-hub/placement-api/internal/events"
	"github.com/ajs-hub/placement-api/internal/models"
)

func TestAnnouncementServiceCreateDefaults(t *testing.T) {
	store := seededStore(t)
	recorder := &events.Recorder{}
	svc := NewAnnouncementService(store.Announcements(), nil, recorder, nil)
	ctx := context.Background()

	item, err := svc.Create(ctx, models.AnnouncementRequest{Title: " Pre-placement talk ", Content: "Infosys on Friday"}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "Pre-placement talk", item.Title)
	assert.Equal(t, models.AnnouncementPriorityMedium, item.Priority)
	assert.Equal(t, "admin-1", item.CreatedBy)
	assert.False(t, item.Date.IsZero())

	updated, err := svc.Update(ctx, item.ID, models.AnnouncementRequest{Title: "Pre-placement talk", Content: "Moved", Priority: "HIGH", Date: "2025-11-01"})
	require.NoError(t, err)
	assert.Equal(t, models.AnnouncementPriorityHigh, updated.Priority)
	assert.Equal(t, "2025-11-01", updated.Date.Format("2006-01-02"))

	high, page, err := svc.List(ctx, models.AnnouncementFilter{Priority: "High"})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, item.ID, high[0].ID)

	assert.Equal(t, []events.Type{events.AnnouncementPosted}, recorder.Types())
	notification, ok := events.NotificationFor(recorder.Events[0])
	require.True(t, ok)
	assert.Equal(t, "Pre-placement talk", notification.Message)
}

func TestAnnouncementServiceValidates(t *testing.T) {
	store := seededStore(t)
	svc := NewAnnouncementService(store.Announcements(), nil, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.AnnouncementRequest{Title: "T", Content: "C", Priority: "urgent"}, "")
	requireAppError(t, err, http.StatusBadRequest)
	_, err = svc.Create(ctx, models.AnnouncementRequest{Title: "T", Content: "C", Date: "05/10/2025"}, "")
	requireAppError(t, err, http.StatusBadRequest)
	_, err = svc.Create(ctx, models.AnnouncementRequest{Content: "C"}, "")
	requireAppError(t, err, http.StatusBadRequest)
	requireAppError(t, svc.Delete(ctx, "missing"), http.StatusNotFound)
}

func TestEventServiceRegister(t *testing.T) {
	store := seededStore(t)
	recorder := &events.Recorder{}
	svc := NewEventService(store.Events(), store.Students(), nil, recorder, nil)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "e1", "2")
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationRegistered, reg.Status)

	_, err = svc.Register(ctx, "e1", "2")
	requireAppError(t, err, http.StatusConflict)
	_, err = svc.Register(ctx, "e3", "2")
	requireAppError(t, err, http.StatusBadRequest)
	_, err = svc.Register(ctx, "e1", "missing")
	requireAppError(t, err, http.StatusNotFound)
	_, err = svc.Register(ctx, "missing", "2")
	requireAppError(t, err, http.StatusNotFound)
	_, err = svc.Register(ctx, "e1", " ")
	requireAppError(t, err, http.StatusBadRequest)

	event, err := svc.Get(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 3, event.Registered)

	assert.Equal(t, []events.Type{events.EventRegistered}, recorder.Types())
	assert.Equal(t, "2", recorder.Events[0].Attr(events.AttrStudent))
	notification, ok := events.NotificationFor(recorder.Events[0])
	require.True(t, ok)
	assert.Equal(t, "Registered for AI Workshop 2025", notification.Message)
}

func TestEventServiceCapacity(t *testing.T) {
	store := seededStore(t)
	svc := NewEventService(store.Events(), store.Students(), nil, nil, nil)
	ctx := context.Background()

	event, err := svc.Create(ctx, models.EventRequest{Title: "Mock Interviews", Type: models.EventTypeTraining, Date: "2025-12-01",
		Time: "14:30", MaxParticipants: models.IntPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusUpcoming, event.Status)
	assert.True(t, event.Active)

	_, err = svc.Register(ctx, event.ID, "1")
	require.NoError(t, err)
	_, err = svc.Register(ctx, event.ID, "2")
	appErr := requireAppError(t, err, http.StatusConflict)
	assert.Equal(t, "event is full", appErr.Message)

	_, err = svc.Update(ctx, "e1", models.EventRequest{Title: "AI Workshop 2025", Type: models.EventTypeWorkshop, Date: "2025-11-10",
		MaxParticipants: models.IntPtr(1)})
	requireAppError(t, err, http.StatusConflict)
}

func TestEventServiceLifecycleAndAttendance(t *testing.T) {
	store := seededStore(t)
	recorder := &events.Recorder{}
	svc := NewEventService(store.Events(), store.Students(), nil, recorder, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.EventRequest{Title: "Bad", Type: "Party", Date: "2025-12-01"})
	requireAppError(t, err, http.StatusBadRequest)

	inactive := false
	updated, err := svc.Update(ctx, "e2", models.EventRequest{Title: "Placement Bootcamp", Type: models.EventTypeTraining,
		Date: "2025-10-20", Status: models.EventStatusCompleted, Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusCompleted, updated.Status)
	assert.False(t, updated.Active)

	require.NoError(t, svc.MarkAttendance(ctx, "e2", "5", models.RegistrationStatusRequest{Status: models.RegistrationNoShow}))
	requireAppError(t, svc.MarkAttendance(ctx, "e2", "9", models.RegistrationStatusRequest{Status: models.RegistrationAttended}), http.StatusNotFound)
	requireAppError(t, svc.MarkAttendance(ctx, "e2", "5", models.RegistrationStatusRequest{Status: "Late"}), http.StatusBadRequest)

	event, err := svc.Get(ctx, "e2")
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationNoShow, event.Registrations[1].Status)

	require.NoError(t, svc.Delete(ctx, "e2"))
	requireAppError(t, svc.Delete(ctx, "e2"), http.StatusNotFound)
	assert.Equal(t, []events.Type{events.EventUpdated, events.EventRemoved}, recorder.Types())
}

func TestMeetingServiceSchedule(t *testing.T) {
	store := seededStore(t)
	recorder := &events.Recorder{}
	svc := NewMeetingService(store.Meetings(), nil, recorder, nil)
	ctx := context.Background()

	meeting, err := svc.Schedule(ctx, models.MeetingRequest{Title: "Alumni Talk", Date: "2025-11-02", Time: "3:00 PM", Location: "Hall B", Attendees: 60})
	require.NoError(t, err)
	assert.NotEmpty(t, meeting.ID)

	_, err = svc.Schedule(ctx, models.MeetingRequest{Title: "No date", Time: "3:00 PM", Location: "Hall B"})
	requireAppError(t, err, http.StatusBadRequest)

	meetings, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, meetings, 4)

	require.Len(t, recorder.Events, 1)
	notification, ok := events.NotificationFor(recorder.Events[0])
	require.True(t, ok)
	assert.Equal(t, "New Meeting Scheduled", notification.Title)
	assert.Equal(t, "Alumni Talk on 2025-11-02 at 3:00 PM", notification.Message)

	require.NoError(t, svc.Cancel(ctx, meeting.ID))
	requireAppError(t, svc.Cancel(ctx, meeting.ID), http.StatusNotFound)
}

func TestCourseServiceProgress(t *testing.T) {
	store := seededStore(t)
	recorder := &events.Recorder{}
	svc := NewCourseService(store.Courses(), store.Students(), nil, recorder, nil)
	ctx := context.Background()

	course, err := svc.Create(ctx, models.CourseRequest{Name: "Mock GD", SkillsCovered: []string{" Communication ", "Leadership"}})
	require.NoError(t, err)
	assert.Equal(t, 4, course.DurationWeeks)
	assert.Equal(t, models.CourseStatusActive, course.Status)
	assert.Equal(t, []string{"Communication", "Leadership"}, []string(course.SkillsCovered))

	enrollment, err := svc.UpdateProgress(ctx, course.ID, "3", models.CourseProgressRequest{Progress: models.IntPtr(45), Grade: "b+"})
	require.NoError(t, err)
	assert.Equal(t, "B+", enrollment.Grade)
	_, err = svc.UpdateProgress(ctx, course.ID, "3", models.CourseProgressRequest{Progress: models.IntPtr(100)})
	require.NoError(t, err)

	got, err := svc.Get(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, got.Enrolled, 1)
	assert.Equal(t, 100, got.Enrolled[0].Progress)

	_, err = svc.UpdateProgress(ctx, course.ID, "3", models.CourseProgressRequest{Progress: models.IntPtr(101)})
	requireAppError(t, err, http.StatusBadRequest)
	_, err = svc.UpdateProgress(ctx, course.ID, "3", models.CourseProgressRequest{})
	requireAppError(t, err, http.StatusBadRequest)
	_, err = svc.UpdateProgress(ctx, course.ID, "missing", models.CourseProgressRequest{Progress: models.IntPtr(10)})
	requireAppError(t, err, http.StatusNotFound)
	_, err = svc.UpdateProgress(ctx, "missing", "3", models.CourseProgressRequest{Progress: models.IntPtr(10)})
	requireAppError(t, err, http.StatusNotFound)

	updated, err := svc.Update(ctx, "c3", models.CourseRequest{Name: "Web Development Basics", DurationWeeks: 12, Status: models.CourseStatusActive})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.DurationWeeks)
	assert.Equal(t, 2, updated.EnrolledCount)

	assert.Equal(t, []events.Type{events.CourseProgressSaved, events.CourseProgressSaved}, recorder.Types())
}
