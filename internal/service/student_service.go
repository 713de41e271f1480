package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ajs-hub/placement-api/internal/events"
	"github.com/ajs-hub/placement-api/internal/models"
	"github.com/ajs-hub/placement-api/internal/repository"
	"github.com/ajs-hub/placement-api/internal/roster"
	appErrors "github.com/ajs-hub/placement-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error)
	All(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	FindByEnrollment(ctx context.Context, enrollment string) (*models.Student, error)
	ExistsByEnrollment(ctx context.Context, enrollment string, excludeID string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
}

// StudentService handles student use-cases, including roster uploads.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	publisher events.Publisher
	metrics   *MetricsService
	logger    *zap.Logger

	// importMu keeps roster runs single-writer so duplicate checks see every
	// row committed before them.
	importMu sync.Mutex
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, publisher events.Publisher, metrics *MetricsService, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, publisher: publisherOrDiscard(publisher), metrics: metrics, logger: logger}
}

// List returns students and pagination metadata.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, *models.Pagination, error) {
	students, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, paginate(filter.Page, filter.PageSize, total), nil
}

// All returns the full roster in creation order.
func (s *StudentService) All(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.All(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	return students, nil
}

// Get returns a student by ID.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "student not found", "failed to get student")
	}
	return student, nil
}

// GetByEnrollment returns a student by enrollment number, ignoring case.
func (s *StudentService) GetByEnrollment(ctx context.Context, enrollment string) (*models.Student, error) {
	if strings.TrimSpace(enrollment) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "enrollment number is required")
	}
	student, err := s.repo.FindByEnrollment(ctx, enrollment)
	if err != nil {
		return nil, storeError(err, "student not found", "failed to get student")
	}
	return student, nil
}

// Create validates and persists a new student.
func (s *StudentService) Create(ctx context.Context, req models.StudentRequest) (*models.Student, error) {
	req = normalizeStudentRequest(req)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid student payload")
	}
	exists, err := s.repo.ExistsByEnrollment(ctx, req.EnrollmentNumber, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check enrollment number")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicateEnrollment, "enrollment number already exists")
	}

	student := &models.Student{}
	req.Apply(student)
	if err := s.repo.Create(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, appErrors.Clone(appErrors.ErrDuplicateEnrollment, "enrollment number already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}
	s.publisher.Publish(ctx, events.New(events.StudentCreated, student.ID, student.Name, nil))
	return student, nil
}

// Update modifies an existing student's profile.
func (s *StudentService) Update(ctx context.Context, id string, req models.StudentRequest) (*models.Student, error) {
	req = normalizeStudentRequest(req)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid student payload")
	}
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "student not found", "failed to get student")
	}
	exists, err := s.repo.ExistsByEnrollment(ctx, req.EnrollmentNumber, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check enrollment number")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicateEnrollment, "enrollment number already exists")
	}

	req.Apply(student)
	if err := s.repo.Update(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, appErrors.Clone(appErrors.ErrDuplicateEnrollment, "enrollment number already exists")
		}
		return nil, storeError(err, "student not found", "failed to update student")
	}
	s.publisher.Publish(ctx, events.New(events.StudentUpdated, student.ID, student.Name, nil))
	return student, nil
}

// ImportRoster loads students from an uploaded .csv or .xlsx file. Batch-level
// problems (no data rows, missing headers, unreadable workbook) reject the whole
// upload before anything is written; row-level problems are reported in the outcome.
func (s *StudentService) ImportRoster(ctx context.Context, filename string, file io.Reader) (*roster.Outcome, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".csv" && ext != ".txt" && ext != ".xlsx" && ext != "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported roster format %q", ext))
	}

	s.importMu.Lock()
	defer s.importMu.Unlock()

	isDuplicate := func(enrollment string) bool {
		exists, err := s.repo.ExistsByEnrollment(ctx, enrollment, "")
		if err != nil {
			s.logger.Warn("enrollment lookup failed during import", zap.String("enrollment_number", enrollment), zap.Error(err))
			return false
		}
		return exists
	}
	create := func(student *models.Student) error {
		if err := s.repo.Create(ctx, student); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return errors.New(roster.ReasonDuplicate)
			}
			s.logger.Error("roster row not saved", zap.String("enrollment_number", student.EnrollmentNumber), zap.Error(err))
			return errors.New("could not save student")
		}
		return nil
	}

	var (
		outcome *roster.Outcome
		err     error
	)
	if ext == ".xlsx" {
		outcome, err = roster.ImportWorkbook(file, isDuplicate, create)
	} else {
		var raw []byte
		raw, err = io.ReadAll(file)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to read roster file")
		}
		outcome, err = roster.Import(string(raw), isDuplicate, create)
	}
	if err != nil {
		s.logger.Info("roster rejected", zap.String("filename", filename), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrImportRejected.Code, appErrors.ErrImportRejected.Status, err.Error())
	}

	s.metrics.RecordRosterImport(outcome.Accepted, outcome.Rejected)
	s.logger.Info("roster imported",
		zap.String("filename", filename),
		zap.Int("accepted", outcome.Accepted),
		zap.Int("rejected", outcome.Rejected),
	)
	s.publisher.Publish(ctx, events.New(events.StudentsImported, "", filename, map[string]string{
		events.AttrAccepted: strconv.Itoa(outcome.Accepted),
		events.AttrRejected: strconv.Itoa(outcome.Rejected),
	}))
	return outcome, nil
}

func normalizeStudentRequest(req models.StudentRequest) models.StudentRequest {
	req.EnrollmentNumber = strings.TrimSpace(req.EnrollmentNumber)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Department = strings.TrimSpace(req.Department)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Branch = strings.TrimSpace(req.Branch)
	return req
}
