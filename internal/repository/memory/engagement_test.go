package memory

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajs-hub/placement-api/internal/models"
	"github.com/ajs-hub/placement-api/internal/repository"
)

func TestAnnouncementRepositoryNewestFirst(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	items, total, err := store.Announcements().List(ctx, models.AnnouncementFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "New Job Postings Available", items[0].Title)

	items, total, err = store.Announcements().List(ctx, models.AnnouncementFilter{Priority: models.AnnouncementPriorityMedium})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "2", items[0].ID)

	require.NoError(t, store.Announcements().Delete(ctx, "2"))
	assert.ErrorIs(t, store.Announcements().Delete(ctx, "2"), sql.ErrNoRows)
}

func TestEventRepositoryRegistrationRules(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()
	events := store.Events()

	event, err := events.FindByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 2, event.Registered)
	require.Len(t, event.Registrations, 2)

	listed, _, err := events.List(ctx, models.EventFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "e3", listed[0].ID)
	assert.Nil(t, listed[0].Registrations)

	require.NoError(t, events.Register(ctx, &models.EventRegistration{EventID: "e1", StudentID: "7"}))
	assert.ErrorIs(t, events.Register(ctx, &models.EventRegistration{EventID: "e1", StudentID: "7"}), repository.ErrDuplicateKey)

	capped := &models.DepartmentEvent{Title: "Mock Interviews", Type: models.EventTypeTraining, MaxParticipants: models.IntPtr(1),
		Status: models.EventStatusUpcoming, Active: true}
	require.NoError(t, events.Create(ctx, capped))
	require.NoError(t, events.Register(ctx, &models.EventRegistration{EventID: capped.ID, StudentID: "1"}))
	assert.ErrorIs(t, events.Register(ctx, &models.EventRegistration{EventID: capped.ID, StudentID: "2"}), repository.ErrCapacityReached)

	require.NoError(t, events.UpdateRegistration(ctx, "e1", "7", models.RegistrationAttended))
	assert.ErrorIs(t, events.UpdateRegistration(ctx, "e1", "99", models.RegistrationAttended), sql.ErrNoRows)

	event, err = events.FindByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 3, event.Registered)
	assert.Equal(t, models.RegistrationAttended, event.Registrations[2].Status)
}

func TestEventRepositoryUpdateKeepsRegistrations(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	event, err := store.Events().FindByID(ctx, "e2")
	require.NoError(t, err)
	event.Registrations = nil
	event.Status = models.EventStatusCompleted
	require.NoError(t, store.Events().Update(ctx, event))

	event, err = store.Events().FindByID(ctx, "e2")
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusCompleted, event.Status)
	assert.Len(t, event.Registrations, 2)
}

func TestMeetingRepositoryInDateOrder(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()

	meetings, err := store.Meetings().List(ctx)
	require.NoError(t, err)
	require.Len(t, meetings, 3)
	assert.Equal(t, "Placement Drive Briefing", meetings[0].Title)
	assert.Equal(t, "Resume Workshop", meetings[2].Title)
}

func TestCourseRepositorySaveProgressUpserts(t *testing.T) {
	store := seeded(t)
	ctx := context.Background()
	courses := store.Courses()

	require.NoError(t, courses.SaveProgress(ctx, &models.CourseEnrollment{CourseID: "c2", StudentID: "4", Progress: 75, Grade: "B"}))
	require.NoError(t, courses.SaveProgress(ctx, &models.CourseEnrollment{CourseID: "c2", StudentID: "9", Progress: 10}))
	assert.ErrorIs(t, courses.SaveProgress(ctx, &models.CourseEnrollment{CourseID: "nope", StudentID: "1"}), sql.ErrNoRows)

	course, err := courses.FindByID(ctx, "c2")
	require.NoError(t, err)
	assert.Equal(t, 4, course.EnrolledCount)
	assert.Equal(t, 75, course.Enrolled[2].Progress)
	assert.Equal(t, "B", course.Enrolled[2].Grade)

	active, err := courses.List(ctx, models.CourseFilter{Status: models.CourseStatusActive})
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Aptitude Training", active[0].Name)
	assert.Equal(t, 4, active[0].EnrolledCount)
	assert.Nil(t, active[0].Enrolled)
}
