package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ajs-hub/placement-api/internal/models"
	appErrors "github.com/ajs-hub/placement-api/pkg/errors"
	"github.com/ajs-hub/placement-api/pkg/export"
)

// Export formats accepted by the eligibility download.
const (
	ExportFormatCSV  = "csv"
	ExportFormatPDF  = "pdf"
	ExportFormatXLSX = "xlsx"
)

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders eligibility listings into downloadable files.
type ExportService struct {
	renderers map[string]export.Renderer
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService constructs an ExportService with the CSV, PDF and XLSX renderers.
// Extra renderers replace the defaults for their extension.
func NewExportService(logger *zap.Logger, renderers ...export.Renderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &ExportService{
		renderers: map[string]export.Renderer{},
		logger:    logger,
		now:       time.Now,
	}
	defaults := []export.Renderer{export.NewCSVExporter(), export.NewPDFExporter(), export.NewXLSXExporter()}
	for _, r := range append(defaults, renderers...) {
		svc.renderers[r.Extension()] = r
	}
	return svc
}

// Formats lists the supported format names.
func (s *ExportService) Formats() []string {
	formats := make([]string, 0, len(s.renderers))
	for ext := range s.renderers {
		formats = append(formats, ext)
	}
	sort.Strings(formats)
	return formats
}

// DriveEligibility renders one row per student with name, enrollment number
// and a Yes/No eligibility column.
func (s *ExportService) DriveEligibility(listing *models.DriveEligibility, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q (use %s)", format, strings.Join(s.Formats(), ", ")))
	}

	dataset := eligibilityDataset(listing)
	payload, err := renderer.Render(dataset)
	if err != nil {
		s.logger.Error("render eligibility export", zap.String("drive_id", listing.Drive.ID), zap.String("format", format), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &ExportFile{
		Filename:    fmt.Sprintf("%s_eligibility_%s.%s", sanitizeFilename(listing.Drive.Company+"_"+listing.Drive.Role), s.now().UTC().Format("20060102_150405"), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Payload:     payload,
	}, nil
}

func eligibilityDataset(listing *models.DriveEligibility) export.Dataset {
	rows := make([]map[string]string, 0, len(listing.Results))
	for _, result := range listing.Results {
		eligible := "No"
		if result.Eligible {
			eligible = "Yes"
		}
		rows = append(rows, map[string]string{
			"Name":              result.Student.Name,
			"Enrollment Number": result.Student.EnrollmentNumber,
			"Eligible":          eligible,
		})
	}
	return export.Dataset{
		Title:   fmt.Sprintf("%s - %s eligibility", listing.Drive.Company, listing.Drive.Role),
		Headers: []string{"Name", "Enrollment Number", "Eligible"},
		Rows:    rows,
	}
}

func sanitizeFilename(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "drive"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "\"", "")
	result := strings.ToLower(replacer.Replace(raw))
	if len(result) > 100 {
		return result[:100]
	}
	return result
}
