package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ajs-hub/placement-api/internal/eligibility"
	"github.com/ajs-hub/placement-api/internal/events"
	"github.com/ajs-hub/placement-api/internal/models"
	appErrors "github.com/ajs-hub/placement-api/pkg/errors"
)

type jobRepository interface {
	List(ctx context.Context, filter models.JobFilter) ([]models.Job, int, error)
	FindByID(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, job *models.Job) error
	IncrementApplicants(ctx context.Context, id string) error
}

type enrollmentCounter interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
	IncrementEnrolledJobs(ctx context.Context, id string) error
}

// JobCheck is the Mode B verdict of one student for one job.
type JobCheck struct {
	JobID     string   `json:"job_id"`
	StudentID string   `json:"student_id"`
	Eligible  bool     `json:"eligible"`
	Unmet     []string `json:"unmet"`
}

// Enrollment reports the counters after a successful enrollment.
type Enrollment struct {
	JobID        string `json:"job_id"`
	StudentID    string `json:"student_id"`
	Applicants   int    `json:"applicants"`
	EnrolledJobs int    `json:"enrolled_jobs"`
}

// JobService manages job postings whose eligibility is written as requirement strings.
type JobService struct {
	repo      jobRepository
	students  enrollmentCounter
	validator *validator.Validate
	publisher events.Publisher
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewJobService constructs a JobService.
func NewJobService(repo jobRepository, students enrollmentCounter, validate *validator.Validate, publisher events.Publisher, metrics *MetricsService, logger *zap.Logger) *JobService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobService{repo: repo, students: students, validator: validate, publisher: publisherOrDiscard(publisher), metrics: metrics, logger: logger}
}

// List returns job postings with pagination.
func (s *JobService) List(ctx context.Context, filter models.JobFilter) ([]models.Job, *models.Pagination, error) {
	jobs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list jobs")
	}
	return jobs, paginate(filter.Page, filter.PageSize, total), nil
}

// Get returns one job posting.
func (s *JobService) Get(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "job not found", "failed to get job")
	}
	return job, nil
}

// Create posts a job. Requirement strings the evaluator cannot check are
// accepted but logged, since they never block a student.
func (s *JobService) Create(ctx context.Context, req models.JobRequest) (*models.Job, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid job payload")
	}
	deadline, err := parseDate(req.Deadline)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "deadline must be YYYY-MM-DD")
	}
	job := &models.Job{
		Title:       strings.TrimSpace(req.Title),
		Company:     strings.TrimSpace(req.Company),
		Type:        req.Type,
		Department:  strings.TrimSpace(req.Department),
		Deadline:    deadline,
		Eligibility: req.Eligibility,
	}
	for _, requirement := range job.Eligibility {
		if !eligibility.Recognized(requirement) {
			s.logger.Warn("job requirement is not evaluated", zap.String("title", job.Title), zap.String("requirement", requirement))
		}
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create job")
	}
	s.publisher.Publish(ctx, events.New(events.JobPosted, job.ID, job.Title, map[string]string{
		events.AttrTitle:   job.Title,
		events.AttrCompany: job.Company,
	}))
	return job, nil
}

// CheckStudent evaluates the job's requirement strings for one student.
func (s *JobService) CheckStudent(ctx context.Context, jobID, studentID string) (*JobCheck, error) {
	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return nil, storeError(err, "job not found", "failed to get job")
	}
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "student not found", "failed to get student")
	}
	result := eligibility.Evaluate(eligibility.StringRules{Requirements: job.Eligibility}, *student)
	s.metrics.RecordEvaluations(eligibility.ModeStringRules, 1)
	return &JobCheck{JobID: job.ID, StudentID: student.ID, Eligible: result.Eligible, Unmet: result.Unmet}, nil
}

// Enroll registers a student's application: the student's enrolled job count
// and the job's applicant count both go up by one.
func (s *JobService) Enroll(ctx context.Context, jobID, studentID string) (*Enrollment, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student_id is required")
	}
	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return nil, storeError(err, "job not found", "failed to get job")
	}
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "student not found", "failed to get student")
	}
	if err := s.students.IncrementEnrolledJobs(ctx, student.ID); err != nil {
		return nil, storeError(err, "student not found", "failed to record enrollment")
	}
	if err := s.repo.IncrementApplicants(ctx, job.ID); err != nil {
		return nil, storeError(err, "job not found", "failed to record enrollment")
	}
	s.logger.Info("student enrolled", zap.String("job_id", job.ID), zap.String("student_id", student.ID))
	s.publisher.Publish(ctx, events.New(events.JobEnrolled, job.ID, student.Name, map[string]string{
		events.AttrTitle:   job.Title,
		events.AttrStudent: student.ID,
	}))
	return &Enrollment{
		JobID:        job.ID,
		StudentID:    student.ID,
		Applicants:   job.Applicants + 1,
		EnrolledJobs: student.EnrolledJobs + 1,
	}, nil
}
