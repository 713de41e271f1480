package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ajs-hub/placement-api/internal/models"
)

const jobColumns = "id, title, company, type, department, deadline, applicants, eligibility, created_at, updated_at"

// JobRepository persists job postings.
type JobRepository struct {
	db *sqlx.DB
}

// NewJobRepository constructs a JobRepository.
func NewJobRepository(db *sqlx.DB) *JobRepository {
	return &JobRepository{db: db}
}

// List returns job postings ordered by deadline.
func (r *JobRepository) List(ctx context.Context, filter models.JobFilter) ([]models.Job, int, error) {
	args := []interface{}{}
	conditions := []string{"1=1"}
	if filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(department) = $%d", len(args)+1))
		args = append(args, strings.ToLower(filter.Department))
	}
	if filter.Search != "" {
		idx := len(args) + 1
		conditions = append(conditions, fmt.Sprintf("(LOWER(title) LIKE $%d OR LOWER(company) LIKE $%d)", idx, idx))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}
	where := "WHERE " + strings.Join(conditions, " AND ")
	_, size, offset := PageBounds(filter.Page, filter.PageSize)

	query := fmt.Sprintf("SELECT %s FROM jobs %s ORDER BY deadline ASC NULLS LAST, id LIMIT %d OFFSET %d", jobColumns, where, size, offset)
	var jobs []models.Job
	if err := r.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM jobs "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}
	return jobs, total, nil
}

// FindByID fetches a job posting.
func (r *JobRepository) FindByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := r.db.GetContext(ctx, &job, "SELECT "+jobColumns+" FROM jobs WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &job, nil
}

// Create inserts a job posting.
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now
	if job.Eligibility == nil {
		job.Eligibility = []string{}
	}
	const query = `INSERT INTO jobs (id, title, company, type, department, deadline, applicants, eligibility, created_at, updated_at)
        VALUES (:id, :title, :company, :type, :department, :deadline, :applicants, :eligibility, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, job); err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

// IncrementApplicants bumps the applicant counter of a job.
func (r *JobRepository) IncrementApplicants(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE jobs SET applicants = applicants + 1, updated_at = $2 WHERE id = $1`, id, time.Now().UTC())
	return expectOne(res, err, "increment applicants")
}

// Count returns the number of job postings.
func (r *JobRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM jobs"); err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return total, nil
}
