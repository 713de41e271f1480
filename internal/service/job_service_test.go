package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajs-hub/placement-api/internal/events"
	"github.com/ajs-hub/placement-api/internal/models"
	"github.com/ajs-hub/placement-api/internal/repository/memory"
)

func newJobService(t *testing.T) (*JobService, *memory.Store, *events.Recorder) {
	t.Helper()
	store := seededStore(t)
	recorder := &events.Recorder{}
	return NewJobService(store.Jobs(), store.Students(), nil, recorder, NewMetricsService(), nil), store, recorder
}

func TestJobServiceCreate(t *testing.T) {
	svc, _, recorder := newJobService(t)

	job, err := svc.Create(context.Background(), models.JobRequest{
		Title:       "Backend Intern",
		Company:     "Acme",
		Type:        "Internship",
		Deadline:    "2026-01-31",
		Eligibility: []string{"Degree Required", "Good communication"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, 0, job.Applicants)
	require.NotNil(t, job.Deadline)
	assert.Equal(t, "2026-01-31", job.Deadline.Format(dateLayout))

	require.Len(t, recorder.Events, 1)
	assert.Equal(t, events.JobPosted, recorder.Events[0].Type)
	assert.Equal(t, "Backend Intern", recorder.Events[0].Attr(events.AttrTitle))
	assert.Equal(t, "Acme", recorder.Events[0].Attr(events.AttrCompany))
}

func TestJobServiceCreateValidates(t *testing.T) {
	svc, _, recorder := newJobService(t)

	_, err := svc.Create(context.Background(), models.JobRequest{Title: "X", Company: "Y", Type: "Contract"})
	requireAppError(t, err, http.StatusBadRequest)

	_, err = svc.Create(context.Background(), models.JobRequest{Title: "X", Company: "Y", Deadline: "31-01-2026"})
	requireAppError(t, err, http.StatusBadRequest)
	assert.Empty(t, recorder.Events)
}

func TestJobServiceCheckStudent(t *testing.T) {
	svc, store, _ := newJobService(t)
	ctx := context.Background()

	check, err := svc.CheckStudent(ctx, "1", "1")
	require.NoError(t, err)
	assert.False(t, check.Eligible)
	assert.Equal(t, []string{"10th Math > 75%", "12th Math > 85%", "12th CS > 80%"}, check.Unmet)

	// only unrecognised requirements
	check, err = svc.CheckStudent(ctx, "4", "13")
	require.NoError(t, err)
	assert.True(t, check.Eligible)
	assert.Empty(t, check.Unmet)

	student, err := store.Students().FindByID(ctx, "2")
	require.NoError(t, err)
	student.TwelfthMath = models.Float64Ptr(92)
	require.NoError(t, store.Students().Update(ctx, student))
	check, err = svc.CheckStudent(ctx, "3", "2")
	require.NoError(t, err)
	assert.True(t, check.Eligible)

	_, err = svc.CheckStudent(ctx, "99", "1")
	requireAppError(t, err, http.StatusNotFound)
	_, err = svc.CheckStudent(ctx, "1", "99")
	requireAppError(t, err, http.StatusNotFound)
}

func TestJobServiceEnrollIncrementsCounters(t *testing.T) {
	svc, store, recorder := newJobService(t)
	ctx := context.Background()

	enrollment, err := svc.Enroll(ctx, "2", "1")
	require.NoError(t, err)
	assert.Equal(t, 19, enrollment.Applicants)
	assert.Equal(t, 3, enrollment.EnrolledJobs)

	job, _ := store.Jobs().FindByID(ctx, "2")
	assert.Equal(t, 19, job.Applicants)
	student, _ := store.Students().FindByID(ctx, "1")
	assert.Equal(t, 3, student.EnrolledJobs)

	require.Len(t, recorder.Events, 1)
	assert.Equal(t, events.JobEnrolled, recorder.Events[0].Type)
	assert.Equal(t, "Data Analyst", recorder.Events[0].Attr(events.AttrTitle))

	_, err = svc.Enroll(ctx, "2", "")
	requireAppError(t, err, http.StatusBadRequest)
	_, err = svc.Enroll(ctx, "404", "1")
	requireAppError(t, err, http.StatusNotFound)
}
