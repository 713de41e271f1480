package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ajs-hub/placement-api/internal/models"
)

func sampleListing() *models.DriveEligibility {
	return &models.DriveEligibility{
		Drive: models.Drive{ID: "d9", Company: "Acme Corp", Role: "SDE/1"},
		Total: 2, Eligible: 1,
		Results: []models.EligibilityResult{
			{Student: models.Student{Name: "Riya Sharma", EnrollmentNumber: "ENG1"}, Eligible: true},
			{Student: models.Student{Name: "Arjun Mehta", EnrollmentNumber: "ENG2"}, Eligible: false},
		},
	}
}

func TestExportServiceFormats(t *testing.T) {
	svc := NewExportService(nil)
	assert.Equal(t, []string{"csv", "pdf", "xlsx"}, svc.Formats())
}

func TestExportServiceCSV(t *testing.T) {
	svc := NewExportService(nil)
	svc.now = func() time.Time { return time.Date(2025, 11, 20, 9, 30, 0, 0, time.UTC) }

	file, err := svc.DriveEligibility(sampleListing(), "CSV")
	require.NoError(t, err)
	assert.Equal(t, "acme_corp_sde-1_eligibility_20251120_093000.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, "Name,Enrollment Number,Eligible\nRiya Sharma,ENG1,Yes\nArjun Mehta,ENG2,No\n", string(file.Payload))
}

func TestExportServicePDF(t *testing.T) {
	file, err := NewExportService(nil).DriveEligibility(sampleListing(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Payload, []byte("%PDF")))
}

func TestExportServiceXLSX(t *testing.T) {
	file, err := NewExportService(nil).DriveEligibility(sampleListing(), "xlsx")
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(file.Payload))
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows(book.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Enrollment Number", "Eligible"}, rows[0])
	assert.Equal(t, []string{"Arjun Mehta", "ENG2", "No"}, rows[2])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "drive", sanitizeFilename("  "))
	assert.Equal(t, "a-b-c", sanitizeFilename("A/B:C"))
}
