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

const defaultCourseWeeks = 4

type courseRepository interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	SaveProgress(ctx context.Context, enrollment *models.CourseEnrollment) error
}

// CourseService manages training courses and student progress through them.
type CourseService struct {
	repo      courseRepository
	students  studentLookup
	validator *validator.Validate
	publisher events.Publisher
	logger    *zap.Logger
}

// NewCourseService constructs a CourseService.
func NewCourseService(repo courseRepository, students studentLookup, validate *validator.Validate, publisher events.Publisher, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, students: students, validator: validate, publisher: publisherOrDiscard(publisher), logger: logger}
}

// List returns courses by name.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	courses, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// Get returns a course with every student's progress.
func (s *CourseService) Get(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "course not found", "failed to get course")
	}
	return course, nil
}

// Create adds a course. Duration defaults to four weeks and status to Active.
func (s *CourseService) Create(ctx context.Context, req models.CourseRequest) (*models.Course, error) {
	course := &models.Course{Status: models.CourseStatusActive}
	if err := s.apply(course, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	return course, nil
}

// Update edits a course and keeps its enrollments.
func (s *CourseService) Update(ctx context.Context, id string, req models.CourseRequest) (*models.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "course not found", "failed to get course")
	}
	if err := s.apply(course, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, course); err != nil {
		return nil, storeError(err, "course not found", "failed to update course")
	}
	return course, nil
}

// UpdateProgress records a student's progress, enrolling them on first use.
func (s *CourseService) UpdateProgress(ctx context.Context, courseID, studentID string, req models.CourseProgressRequest) (*models.CourseEnrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "progress must be between 0 and 100")
	}
	course, err := s.repo.FindByID(ctx, courseID)
	if err != nil {
		return nil, storeError(err, "course not found", "failed to get course")
	}
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "student not found", "failed to get student")
	}
	enrollment := &models.CourseEnrollment{
		CourseID:  course.ID,
		StudentID: student.ID,
		Progress:  *req.Progress,
		Grade:     strings.ToUpper(strings.TrimSpace(req.Grade)),
	}
	if err := s.repo.SaveProgress(ctx, enrollment); err != nil {
		return nil, storeError(err, "course not found", "failed to save course progress")
	}
	s.publisher.Publish(ctx, events.New(events.CourseProgressSaved, course.ID, course.Name, map[string]string{events.AttrStudent: student.ID}))
	return enrollment, nil
}

func (s *CourseService) apply(course *models.Course, req models.CourseRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "invalid course payload")
	}
	course.Name = strings.TrimSpace(req.Name)
	course.Description = strings.TrimSpace(req.Description)
	course.DurationWeeks = req.DurationWeeks
	if course.DurationWeeks == 0 {
		course.DurationWeeks = defaultCourseWeeks
	}
	skills := make([]string, 0, len(req.SkillsCovered))
	for _, skill := range req.SkillsCovered {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}
	course.SkillsCovered = skills
	if req.Status != "" {
		course.Status = req.Status
	}
	return nil
}
