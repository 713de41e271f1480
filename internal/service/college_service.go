package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ajs-hub/placement-api/internal/events"
	"github.com/ajs-hub/placement-api/internal/models"
	appErrors "github.com/ajs-hub/placement-api/pkg/errors"
)

type collegeRepository interface {
	List(ctx context.Context) ([]models.College, error)
	FindByID(ctx context.Context, id string) (*models.College, error)
	Create(ctx context.Context, college *models.College) error
	Update(ctx context.Context, college *models.College) error
	Delete(ctx context.Context, id string) error
}

// CollegeService manages tenant colleges.
type CollegeService struct {
	repo      collegeRepository
	validator *validator.Validate
	publisher events.Publisher
	logger    *zap.Logger
}

// NewCollegeService constructs a CollegeService.
func NewCollegeService(repo collegeRepository, validate *validator.Validate, publisher events.Publisher, logger *zap.Logger) *CollegeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollegeService{repo: repo, validator: validate, publisher: publisherOrDiscard(publisher), logger: logger}
}

// List returns all colleges ordered by name.
func (s *CollegeService) List(ctx context.Context) ([]models.College, error) {
	colleges, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list colleges")
	}
	return colleges, nil
}

// Get returns a college by id.
func (s *CollegeService) Get(ctx context.Context, id string) (*models.College, error) {
	college, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "college not found", "failed to get college")
	}
	return college, nil
}

// Create registers a college. Plan defaults to Standard and status to Active.
func (s *CollegeService) Create(ctx context.Context, req models.CollegeRequest) (*models.College, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid college payload")
	}
	college := &models.College{Plan: models.CollegePlanStandard, Status: models.TenantStatusActive}
	applyCollege(college, req)
	if err := s.repo.Create(ctx, college); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create college")
	}
	s.publisher.Publish(ctx, events.New(events.CollegeAdded, college.ID, college.Name, nil))
	return college, nil
}

// Update edits a college. Empty plan or status keep their current values.
func (s *CollegeService) Update(ctx context.Context, id string, req models.CollegeRequest) (*models.College, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid college payload")
	}
	college, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "college not found", "failed to get college")
	}
	applyCollege(college, req)
	if err := s.repo.Update(ctx, college); err != nil {
		return nil, storeError(err, "college not found", "failed to update college")
	}
	s.publisher.Publish(ctx, events.New(events.CollegeUpdated, college.ID, college.Name, nil))
	return college, nil
}

// Delete removes a college.
func (s *CollegeService) Delete(ctx context.Context, id string) error {
	college, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return storeError(err, "college not found", "failed to get college")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "college not found", "failed to delete college")
	}
	s.publisher.Publish(ctx, events.New(events.CollegeRemoved, college.ID, college.Name, nil))
	return nil
}

func applyCollege(college *models.College, req models.CollegeRequest) {
	college.Name = strings.TrimSpace(req.Name)
	college.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	college.Domain = strings.ToLower(strings.TrimSpace(req.Domain))
	college.Contact = strings.TrimSpace(req.Contact)
	if req.Plan != "" {
		college.Plan = req.Plan
	}
	if req.Status != "" {
		college.Status = req.Status
	}
	college.Departments = req.Departments
	college.Students = req.Students
	college.Jobs = req.Jobs
}
