package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajs-hub/placement-api/internal/events"
	"github.com/ajs-hub/placement-api/internal/models"
)

func newDriveService(t *testing.T) (*DriveService, *events.Recorder, *MetricsService) {
	t.Helper()
	store := seededStore(t)
	recorder := &events.Recorder{}
	metrics := NewMetricsService()
	return NewDriveService(store.Drives(), store.Students(), nil, nil, recorder, metrics, nil), recorder, metrics
}

func TestDriveServiceEligibilityCountsMatches(t *testing.T) {
	svc, _, metrics := newDriveService(t)
	ctx := context.Background()

	tests := []struct {
		id       string
		eligible int
	}{
		{"d1", 0},
		{"d2", 5},
		{"d3", 1},
	}
	for _, tt := range tests {
		listing, err := svc.Eligibility(ctx, tt.id)
		require.NoError(t, err)
		assert.Equal(t, 20, listing.Total, tt.id)
		assert.Equal(t, tt.eligible, listing.Eligible, tt.id)
		assert.Equal(t, "1", listing.Results[0].Student.ID)
	}
	assert.Equal(t, uint64(60), metrics.Snapshot().EligibilityEvaluations)

	listing, err := svc.Eligibility(ctx, "d3")
	require.NoError(t, err)
	for _, r := range listing.Results {
		if r.Eligible {
			assert.Equal(t, "Neha Verma", r.Student.Name)
		}
	}

	_, err = svc.Eligibility(ctx, "missing")
	requireAppError(t, err, http.StatusNotFound)
}

func TestDriveServiceCreateDefaultsAndEvents(t *testing.T) {
	svc, recorder, _ := newDriveService(t)

	drive, err := svc.Create(context.Background(), models.DriveRequest{
		Company:   "Wipro",
		Role:      "Project Engineer",
		CTCLpa:    3.5,
		DriveDate: "2026-02-10",
		Deadline:  "2026-02-01",
		Criteria:  models.DriveCriteria{MinGraduation: models.Float64Ptr(65)},
	})
	require.NoError(t, err)
	assert.Equal(t, models.DriveStatusAnnounced, drive.Status)
	assert.Equal(t, "2026-02-01", drive.Deadline.Format(dateLayout))

	require.Len(t, recorder.Events, 1)
	assert.Equal(t, events.DriveAnnounced, recorder.Events[0].Type)
	assert.Equal(t, "Wipro", recorder.Events[0].Attr(events.AttrCompany))
	assert.Equal(t, "Project Engineer", recorder.Events[0].Attr(events.AttrRole))
}

func TestDriveServiceRejectsInvalidPayloads(t *testing.T) {
	svc, _, _ := newDriveService(t)
	ctx := context.Background()

	base := models.DriveRequest{Company: "X", Role: "Y", DriveDate: "2026-02-10"}

	late := base
	late.Deadline = "2026-03-01"
	_, err := svc.Create(ctx, late)
	requireAppError(t, err, http.StatusBadRequest)

	badDate := base
	badDate.DriveDate = "10/02/2026"
	_, err = svc.Create(ctx, badDate)
	requireAppError(t, err, http.StatusBadRequest)

	badCriteria := base
	badCriteria.Criteria.MinTenth = models.Float64Ptr(120)
	_, err = svc.Create(ctx, badCriteria)
	requireAppError(t, err, http.StatusBadRequest)

	from, to := 2026, 2025
	years := base
	years.Criteria.GradYearFrom, years.Criteria.GradYearTo = &from, &to
	_, err = svc.Create(ctx, years)
	requireAppError(t, err, http.StatusBadRequest)
}

func TestDriveServiceUpdateKeepsStatus(t *testing.T) {
	svc, recorder, _ := newDriveService(t)

	drive, err := svc.Update(context.Background(), "d2", models.DriveRequest{Company: "TCS", Role: "Digital", DriveDate: "2025-11-28"})
	require.NoError(t, err)
	assert.Equal(t, models.DriveStatusOpen, drive.Status)
	assert.Equal(t, "Digital", drive.Role)
	assert.Equal(t, []events.Type{events.DriveUpdated}, recorder.Types())
}

func TestDriveServiceDelete(t *testing.T) {
	svc, recorder, _ := newDriveService(t)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "d1"))
	_, err := svc.Get(ctx, "d1")
	requireAppError(t, err, http.StatusNotFound)
	requireAppError(t, svc.Delete(ctx, "d1"), http.StatusNotFound)
	assert.Equal(t, []events.Type{events.DriveRemoved}, recorder.Types())
}

func TestDriveServiceExportCSV(t *testing.T) {
	svc, _, _ := newDriveService(t)

	file, err := svc.Export(context.Background(), "d3", "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(file.Filename, "google_step_internship_eligibility_"))
	assert.True(t, strings.HasSuffix(file.Filename, ".csv"))

	body := string(file.Payload)
	assert.Contains(t, body, "Name,Enrollment Number,Eligible")
	assert.Contains(t, body, "Neha Verma,ENG20220047,Yes")
	assert.Contains(t, body, "Riya Sharma,ENG20220045,No")

	_, err = svc.Export(context.Background(), "d3", "docx")
	requireAppError(t, err, http.StatusBadRequest)
}
