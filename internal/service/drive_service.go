package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ajs-hub/placement-api/internal/eligibility"
	"github.com/ajs-hub/placement-api/internal/events"
	"github.com/ajs-hub/placement-api/internal/models"
	appErrors "github.com/ajs-hub/placement-api/pkg/errors"
)

type driveRepository interface {
	List(ctx context.Context, filter models.DriveFilter) ([]models.Drive, int, error)
	FindByID(ctx context.Context, id string) (*models.Drive, error)
	Create(ctx context.Context, drive *models.Drive) error
	Update(ctx context.Context, drive *models.Drive) error
	Delete(ctx context.Context, id string) error
}

type rosterReader interface {
	All(ctx context.Context) ([]models.Student, error)
}

// DriveService manages campus drives and evaluates their criteria against the roster.
type DriveService struct {
	repo      driveRepository
	students  rosterReader
	exporter  *ExportService
	validator *validator.Validate
	publisher events.Publisher
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewDriveService constructs a DriveService.
func NewDriveService(repo driveRepository, students rosterReader, exporter *ExportService, validate *validator.Validate, publisher events.Publisher, metrics *MetricsService, logger *zap.Logger) *DriveService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if exporter == nil {
		exporter = NewExportService(logger)
	}
	return &DriveService{
		repo:      repo,
		students:  students,
		exporter:  exporter,
		validator: validate,
		publisher: publisherOrDiscard(publisher),
		metrics:   metrics,
		logger:    logger,
	}
}

// List returns drives with pagination.
func (s *DriveService) List(ctx context.Context, filter models.DriveFilter) ([]models.Drive, *models.Pagination, error) {
	drives, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list drives")
	}
	return drives, paginate(filter.Page, filter.PageSize, total), nil
}

// Get returns a drive by ID.
func (s *DriveService) Get(ctx context.Context, id string) (*models.Drive, error) {
	drive, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "drive not found", "failed to get drive")
	}
	return drive, nil
}

// Create announces a new drive.
func (s *DriveService) Create(ctx context.Context, req models.DriveRequest) (*models.Drive, error) {
	drive := &models.Drive{}
	if err := s.apply(req, drive); err != nil {
		return nil, err
	}
	if drive.Status == "" {
		drive.Status = models.DriveStatusAnnounced
	}
	if err := s.repo.Create(ctx, drive); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create drive")
	}
	s.publisher.Publish(ctx, events.New(events.DriveAnnounced, drive.ID, drive.Company, map[string]string{
		events.AttrCompany: drive.Company,
		events.AttrRole:    drive.Role,
	}))
	return drive, nil
}

// Update edits a drive.
func (s *DriveService) Update(ctx context.Context, id string, req models.DriveRequest) (*models.Drive, error) {
	drive, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "drive not found", "failed to get drive")
	}
	status := drive.Status
	if err := s.apply(req, drive); err != nil {
		return nil, err
	}
	if drive.Status == "" {
		drive.Status = status
	}
	if err := s.repo.Update(ctx, drive); err != nil {
		return nil, storeError(err, "drive not found", "failed to update drive")
	}
	s.publisher.Publish(ctx, events.New(events.DriveUpdated, drive.ID, drive.Company, map[string]string{
		events.AttrCompany: drive.Company,
		events.AttrRole:    drive.Role,
	}))
	return drive, nil
}

// Delete removes a drive.
func (s *DriveService) Delete(ctx context.Context, id string) error {
	drive, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return storeError(err, "drive not found", "failed to get drive")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "drive not found", "failed to delete drive")
	}
	s.publisher.Publish(ctx, events.New(events.DriveRemoved, id, drive.Company, nil))
	return nil
}

// Eligibility evaluates the drive criteria against every student, in roster order.
func (s *DriveService) Eligibility(ctx context.Context, id string) (*models.DriveEligibility, error) {
	drive, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "drive not found", "failed to get drive")
	}
	students, err := s.students.All(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}

	start := time.Now()
	results := eligibility.EvaluateAll(eligibility.Structured{Criteria: drive.Criteria}, students)
	s.metrics.RecordEvaluations(eligibility.ModeStructured, len(results))

	listing := &models.DriveEligibility{Drive: *drive, Total: len(results), Results: results}
	for _, r := range results {
		if r.Eligible {
			listing.Eligible++
		}
	}
	s.logger.Debug("drive eligibility evaluated",
		zap.String("drive_id", id),
		zap.Int("students", listing.Total),
		zap.Int("eligible", listing.Eligible),
		zap.Duration("took", time.Since(start)),
	)
	return listing, nil
}

// Export renders the drive eligibility listing in the requested format.
func (s *DriveService) Export(ctx context.Context, id, format string) (*ExportFile, error) {
	listing, err := s.Eligibility(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.exporter.DriveEligibility(listing, format)
}

func (s *DriveService) apply(req models.DriveRequest, drive *models.Drive) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "invalid drive payload")
	}
	driveDate, err := parseDate(req.DriveDate)
	if err != nil || driveDate == nil {
		return appErrors.Clone(appErrors.ErrValidation, "drive_date must be YYYY-MM-DD")
	}
	deadline, err := parseDate(req.Deadline)
	if err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "deadline must be YYYY-MM-DD")
	}
	if deadline != nil && deadline.After(*driveDate) {
		return appErrors.Clone(appErrors.ErrValidation, "deadline must not be after the drive date")
	}
	if c := req.Criteria; c.GradYearFrom != nil && c.GradYearTo != nil && *c.GradYearFrom > *c.GradYearTo {
		return appErrors.Clone(appErrors.ErrValidation, "grad_year_from must not be after grad_year_to")
	}

	drive.Company = req.Company
	drive.Role = req.Role
	drive.CTCLpa = req.CTCLpa
	drive.DriveDate = *driveDate
	drive.Deadline = deadline
	drive.Description = req.Description
	drive.Criteria = req.Criteria
	drive.Status = req.Status
	return nil
}
