package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajs-hub/placement-api/internal/events"
	"github.com/ajs-hub/placement-api/internal/models"
)

func TestAnnouncementRoutes(t *testing.T) {
	app := newTestApp(t, appOptions{})

	rec := app.do(http.MethodGet, "/api/v1/announcements", roleStudent, "1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.Announcement
	env := decode(t, rec, &items)
	require.Len(t, items, 2)
	assert.Equal(t, models.AnnouncementPriorityHigh, items[0].Priority)
	assert.Equal(t, 2, env.Pagination.TotalCount)

	rec = app.do(http.MethodPost, "/api/v1/announcements", roleStudent, "1", `{"title":"x","content":"y"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.do(http.MethodPost, "/api/v1/announcements", roleDepartment, "", `{"title":"x","content":"y","priority":"urgent"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(http.MethodPost, "/api/v1/announcements", roleDepartment, "", `{"title":"Resume deadline","content":"Upload by Friday","priority":"high","date":"2025-10-12"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created models.Announcement
	decode(t, rec, &created)
	assert.Equal(t, "test-user", created.CreatedBy)

	rec = app.do(http.MethodGet, "/api/v1/announcements?priority=high", roleStudent, "1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &items)
	require.Len(t, items, 2)
	assert.Equal(t, created.ID, items[0].ID)

	rec = app.do(http.MethodDelete, "/api/v1/announcements/"+created.ID, roleAdmin, "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = app.do(http.MethodGet, "/api/v1/announcements/"+created.ID, roleAdmin, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, []events.Type{events.AnnouncementPosted}, app.events.Types())
	assert.Len(t, app.audit.FilterMessage("audit").All(), 2)
}

func TestEventRegistrationRoutes(t *testing.T) {
	app := newTestApp(t, appOptions{})

	rec := app.do(http.MethodPost, "/api/v1/events/e1/register", roleStudent, "2", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var reg models.EventRegistration
	decode(t, rec, &reg)
	assert.Equal(t, "2", reg.StudentID)
	assert.Equal(t, models.RegistrationRegistered, reg.Status)

	rec = app.do(http.MethodPost, "/api/v1/events/e1/register", roleStudent, "2", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = app.do(http.MethodPost, "/api/v1/events/e1/register", roleStudent, "2", `{"student_id":"4"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.do(http.MethodPost, "/api/v1/events/e1/register", roleDepartment, "", `{"student_id":"4"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.do(http.MethodPost, "/api/v1/events/e3/register", roleAdmin, "", `{"student_id":"6"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(http.MethodPost, "/api/v1/events/e1/register", roleAdmin, "", `{"student_id":"6"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = app.do(http.MethodPut, "/api/v1/events/e1/registrations/6", roleStudent, "6", `{"status":"Attended"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = app.do(http.MethodPut, "/api/v1/events/e1/registrations/6", roleDepartment, "", `{"status":"Attended"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.do(http.MethodGet, "/api/v1/events/e1", roleStudent, "2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var event models.DepartmentEvent
	decode(t, rec, &event)
	assert.Equal(t, 4, event.Registered)
	require.Len(t, event.Registrations, 4)
	assert.Equal(t, models.RegistrationAttended, event.Registrations[3].Status)

	assert.Equal(t, []events.Type{events.EventRegistered, events.EventRegistered}, app.events.Types())
}

func TestEventCrudRoutes(t *testing.T) {
	app := newTestApp(t, appOptions{})

	rec := app.do(http.MethodGet, "/api/v1/events?active=true", roleStudent, "1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.DepartmentEvent
	decode(t, rec, &items)
	assert.Len(t, items, 2)

	body := `{"title":"Cloud Seminar","type":"Seminar","date":"2025-12-03","time":"15:00","online_link":"https://meet.example.com/cloud","max_participants":80}`
	rec = app.do(http.MethodPost, "/api/v1/events", roleStudent, "1", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = app.do(http.MethodPost, "/api/v1/events", roleDepartment, "", `{"title":"Bad","type":"Seminar","date":"2025-12-03","time":"3pm"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(http.MethodPost, "/api/v1/events", roleDepartment, "", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created models.DepartmentEvent
	decode(t, rec, &created)
	assert.Equal(t, models.EventStatusUpcoming, created.Status)
	require.NotNil(t, created.MaxParticipants)
	assert.Equal(t, 80, *created.MaxParticipants)

	rec = app.do(http.MethodPut, "/api/v1/events/"+created.ID, roleAdmin, "", `{"title":"Cloud Seminar","type":"Seminar","date":"2025-12-04","status":"Ongoing"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &created)
	assert.Equal(t, models.EventStatusOngoing, created.Status)

	rec = app.do(http.MethodDelete, "/api/v1/events/"+created.ID, roleAdmin, "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = app.do(http.MethodGet, "/api/v1/events/"+created.ID, roleAdmin, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, []events.Type{events.EventCreated, events.EventUpdated, events.EventRemoved}, app.events.Types())
}

func TestMeetingRoutes(t *testing.T) {
	app := newTestApp(t, appOptions{})

	rec := app.do(http.MethodPost, "/api/v1/meetings", roleDepartment, "", `{"title":"Mock Interview Prep","date":"2025-10-30","time":"4:00 PM","location":"Room 12","attendees":20}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var meeting models.Meeting
	decode(t, rec, &meeting)

	rec = app.do(http.MethodGet, "/api/v1/meetings", roleStudent, "1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var meetings []models.Meeting
	decode(t, rec, &meetings)
	require.Len(t, meetings, 4)
	assert.Equal(t, meeting.ID, meetings[3].ID)

	rec = app.do(http.MethodDelete, "/api/v1/meetings/"+meeting.ID, roleStudent, "1", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = app.do(http.MethodDelete, "/api/v1/meetings/"+meeting.ID, roleAdmin, "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, []events.Type{events.MeetingScheduled}, app.events.Types())
}

func TestCourseProgressRoutes(t *testing.T) {
	app := newTestApp(t, appOptions{})

	rec := app.do(http.MethodPut, "/api/v1/courses/c2/progress/4", roleDepartment, "", `{"progress":80,"grade":"a"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var enrollment models.CourseEnrollment
	decode(t, rec, &enrollment)
	assert.Equal(t, 80, enrollment.Progress)
	assert.Equal(t, "A", enrollment.Grade)

	rec = app.do(http.MethodPut, "/api/v1/courses/c2/progress/4", roleDepartment, "", `{"progress":120}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = app.do(http.MethodPut, "/api/v1/courses/c2/progress/4", roleStudent, "4", `{"progress":100}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.do(http.MethodGet, "/api/v1/courses/c2", roleStudent, "4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var course models.Course
	decode(t, rec, &course)
	require.Len(t, course.Enrolled, 1)
	assert.Equal(t, 80, course.Enrolled[0].Progress)
	assert.Equal(t, 3, course.EnrolledCount)

	rec = app.do(http.MethodGet, "/api/v1/courses/c2", roleAdmin, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &course)
	assert.Len(t, course.Enrolled, 3)

	rec = app.do(http.MethodPost, "/api/v1/courses", roleAdmin, "", `{"name":"System Design","skills_covered":["Scalability"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	decode(t, rec, &course)
	assert.Equal(t, 4, course.DurationWeeks)

	rec = app.do(http.MethodGet, "/api/v1/courses?status=Active", roleStudent, "1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var courses []models.Course
	decode(t, rec, &courses)
	assert.Len(t, courses, 3)
}
