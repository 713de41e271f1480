package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ajs-hub/placement-api/internal/events"
	"github.com/ajs-hub/placement-api/internal/models"
	appErrors "github.com/ajs-hub/placement-api/pkg/errors"
)

type departmentRepository interface {
	List(ctx context.Context, filter models.DepartmentFilter) ([]models.Department, error)
	FindByID(ctx context.Context, id string) (*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id string) error
}

type collegeLookup interface {
	FindByID(ctx context.Context, id string) (*models.College, error)
}

// DepartmentService manages departments within colleges.
type DepartmentService struct {
	repo      departmentRepository
	colleges  collegeLookup
	validator *validator.Validate
	publisher events.Publisher
	logger    *zap.Logger
}

// NewDepartmentService constructs a DepartmentService. colleges may be nil,
// in which case college ids are stored unchecked.
func NewDepartmentService(repo departmentRepository, colleges collegeLookup, validate *validator.Validate, publisher events.Publisher, logger *zap.Logger) *DepartmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepartmentService{repo: repo, colleges: colleges, validator: validate, publisher: publisherOrDiscard(publisher), logger: logger}
}

// List returns departments, optionally for one college.
func (s *DepartmentService) List(ctx context.Context, filter models.DepartmentFilter) ([]models.Department, error) {
	departments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list departments")
	}
	return departments, nil
}

// Get returns a department by id.
func (s *DepartmentService) Get(ctx context.Context, id string) (*models.Department, error) {
	department, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "department not found", "failed to get department")
	}
	return department, nil
}

// Create adds a department. Status defaults to Active.
func (s *DepartmentService) Create(ctx context.Context, req models.DepartmentRequest) (*models.Department, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}
	department := &models.Department{Status: models.TenantStatusActive}
	applyDepartment(department, req)
	if err := s.repo.Create(ctx, department); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create department")
	}
	s.publisher.Publish(ctx, events.New(events.DepartmentAdded, department.ID, department.Name, nil))
	return department, nil
}

// Update edits a department.
func (s *DepartmentService) Update(ctx context.Context, id string, req models.DepartmentRequest) (*models.Department, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}
	department, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "department not found", "failed to get department")
	}
	applyDepartment(department, req)
	if err := s.repo.Update(ctx, department); err != nil {
		return nil, storeError(err, "department not found", "failed to update department")
	}
	s.publisher.Publish(ctx, events.New(events.DepartmentUpdated, department.ID, department.Name, nil))
	return department, nil
}

// Delete removes a department.
func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	department, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return storeError(err, "department not found", "failed to get department")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "department not found", "failed to delete department")
	}
	s.publisher.Publish(ctx, events.New(events.DepartmentRemoved, department.ID, department.Name, nil))
	return nil
}

func (s *DepartmentService) validate(ctx context.Context, req models.DepartmentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "invalid department payload")
	}
	if req.CollegeID == "" || s.colleges == nil {
		return nil
	}
	if _, err := s.colleges.FindByID(ctx, req.CollegeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrValidation, "college not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get college")
	}
	return nil
}

func applyDepartment(department *models.Department, req models.DepartmentRequest) {
	department.CollegeID = strings.TrimSpace(req.CollegeID)
	department.Name = strings.TrimSpace(req.Name)
	department.HOD = strings.TrimSpace(req.HOD)
	department.Email = strings.TrimSpace(req.Email)
	department.Phone = strings.TrimSpace(req.Phone)
	department.Students = req.Students
	department.ActiveJobs = req.ActiveJobs
	if req.Status != "" {
		department.Status = req.Status
	}
}
