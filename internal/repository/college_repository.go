package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ajs-hub/placement-api/internal/models"
)

const collegeColumns = "id, name, code, domain, contact, plan, status, departments, students, jobs, created_at, updated_at"

// CollegeRepository persists tenant colleges.
type CollegeRepository struct {
	db *sqlx.DB
}

// NewCollegeRepository constructs a CollegeRepository.
func NewCollegeRepository(db *sqlx.DB) *CollegeRepository {
	return &CollegeRepository{db: db}
}

// List returns all colleges by name.
func (r *CollegeRepository) List(ctx context.Context) ([]models.College, error) {
	var colleges []models.College
	if err := r.db.SelectContext(ctx, &colleges, "SELECT "+collegeColumns+" FROM colleges ORDER BY name, id"); err != nil {
		return nil, fmt.Errorf("list colleges: %w", err)
	}
	return colleges, nil
}

// FindByID fetches a college.
func (r *CollegeRepository) FindByID(ctx context.Context, id string) (*models.College, error) {
	var college models.College
	if err := r.db.GetContext(ctx, &college, "SELECT "+collegeColumns+" FROM colleges WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &college, nil
}

// Create inserts a college.
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	if college.ID == "" {
		college.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if college.CreatedAt.IsZero() {
		college.CreatedAt = now
	}
	college.UpdatedAt = now
	const query = `INSERT INTO colleges (id, name, code, domain, contact, plan, status, departments, students, jobs, created_at, updated_at)
        VALUES (:id, :name, :code, :domain, :contact, :plan, :status, :departments, :students, :jobs, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, college); err != nil {
		return fmt.Errorf("create college: %w", err)
	}
	return nil
}

// Update modifies a college.
func (r *CollegeRepository) Update(ctx context.Context, college *models.College) error {
	college.UpdatedAt = time.Now().UTC()
	const query = `UPDATE colleges SET name = :name, code = :code, domain = :domain, contact = :contact, plan = :plan, status = :status,
        departments = :departments, students = :students, jobs = :jobs, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, college)
	return expectOne(res, err, "update college")
}

// Delete removes a college.
func (r *CollegeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM colleges WHERE id = $1", id)
	return expectOne(res, err, "delete college")
}

// Count returns the number of colleges.
func (r *CollegeRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM colleges"); err != nil {
		return 0, fmt.Errorf("count colleges: %w", err)
	}
	return total, nil
}
