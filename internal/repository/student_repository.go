package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ajs-hub/placement-api/internal/models"
)

const studentColumns = `id, enrollment_number, name, email, phone, department, branch, cgpa, tenth_percent, twelfth_percent,
        graduation_percent, graduation_period, education_gap_years, backlogs, past_backlogs, skills, resume_url, blacklisted,
        enrolled_jobs, tenth_math, twelfth_math, twelfth_cs, has_degree, created_at, updated_at`

// StudentSorts maps accepted sort keys to columns.
var StudentSorts = map[string]string{
	"name":              "name",
	"enrollment_number": "enrollment_number",
	"cgpa":              "cgpa",
	"created_at":        "created_at",
}

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns students matching the provided filters.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error) {
	args := []interface{}{}
	conditions := []string{"1=1"}

	if filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(department) = $%d", len(args)+1))
		args = append(args, strings.ToLower(filter.Department))
	}
	if filter.Search != "" {
		idx := len(args) + 1
		conditions = append(conditions, fmt.Sprintf("(LOWER(name) LIKE $%d OR LOWER(enrollment_number) LIKE $%d OR LOWER(email) LIKE $%d)", idx, idx, idx))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}
	where := "WHERE " + strings.Join(conditions, " AND ")

	column, ok := StudentSorts[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "ASC"
	}
	_, size, offset := PageBounds(filter.Page, filter.PageSize)

	query := fmt.Sprintf("SELECT %s FROM students %s ORDER BY %s %s, id LIMIT %d OFFSET %d", studentColumns, where, column, order, size, offset)
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list students: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM students "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}
	return students, total, nil
}

// All returns every student in creation order.
func (r *StudentRepository) All(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, "SELECT "+studentColumns+" FROM students ORDER BY created_at, id"); err != nil {
		return nil, fmt.Errorf("all students: %w", err)
	}
	return students, nil
}

// FindByID fetches a student by ID.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	if err := r.db.GetContext(ctx, &student, "SELECT "+studentColumns+" FROM students WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByEnrollment fetches a student by enrollment number ignoring case.
func (r *StudentRepository) FindByEnrollment(ctx context.Context, enrollment string) (*models.Student, error) {
	var student models.Student
	query := "SELECT " + studentColumns + " FROM students WHERE LOWER(enrollment_number) = LOWER($1)"
	if err := r.db.GetContext(ctx, &student, query, strings.TrimSpace(enrollment)); err != nil {
		return nil, err
	}
	return &student, nil
}

// ExistsByEnrollment checks if an enrollment number is taken, optionally excluding an ID.
func (r *StudentRepository) ExistsByEnrollment(ctx context.Context, enrollment string, excludeID string) (bool, error) {
	query := "SELECT 1 FROM students WHERE LOWER(enrollment_number) = LOWER($1)"
	args := []interface{}{strings.TrimSpace(enrollment)}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check enrollment: %w", err)
	}
	return true, nil
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
	}
	student.UpdatedAt = now
	if student.Skills == nil {
		student.Skills = []string{}
	}
	const query = `INSERT INTO students (id, enrollment_number, name, email, phone, department, branch, cgpa, tenth_percent, twelfth_percent,
        graduation_percent, graduation_period, education_gap_years, backlogs, past_backlogs, skills, resume_url, blacklisted,
        enrolled_jobs, tenth_math, twelfth_math, twelfth_cs, has_degree, created_at, updated_at)
        VALUES (:id, :enrollment_number, :name, :email, :phone, :department, :branch, :cgpa, :tenth_percent, :twelfth_percent,
        :graduation_percent, :graduation_period, :education_gap_years, :backlogs, :past_backlogs, :skills, :resume_url, :blacklisted,
        :enrolled_jobs, :tenth_math, :twelfth_math, :twelfth_cs, :has_degree, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update modifies an existing student.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	student.UpdatedAt = time.Now().UTC()
	if student.Skills == nil {
		student.Skills = []string{}
	}
	const query = `UPDATE students SET enrollment_number = :enrollment_number, name = :name, email = :email, phone = :phone,
        department = :department, branch = :branch, cgpa = :cgpa, tenth_percent = :tenth_percent, twelfth_percent = :twelfth_percent,
        graduation_percent = :graduation_percent, graduation_period = :graduation_period, education_gap_years = :education_gap_years,
        backlogs = :backlogs, past_backlogs = :past_backlogs, skills = :skills, resume_url = :resume_url, blacklisted = :blacklisted,
        tenth_math = :tenth_math, twelfth_math = :twelfth_math, twelfth_cs = :twelfth_cs, has_degree = :has_degree, updated_at = :updated_at
        WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, student)
	if isUniqueViolation(err) {
		return ErrDuplicateKey
	}
	return expectOne(res, err, "update student")
}

// IncrementEnrolledJobs bumps the enrolled job counter of a student.
func (r *StudentRepository) IncrementEnrolledJobs(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE students SET enrolled_jobs = enrolled_jobs + 1, updated_at = $2 WHERE id = $1`, id, time.Now().UTC())
	return expectOne(res, err, "increment enrolled jobs")
}

// Count returns the number of students.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM students"); err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return total, nil
}
