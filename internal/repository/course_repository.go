package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ajs-hub/placement-api/internal/models"
)

const courseColumns = `id, name, description, duration_weeks, skills_covered, status, created_at, updated_at,
    (SELECT COUNT(*) FROM course_enrollments ce WHERE ce.course_id = courses.id) AS enrolled_count`

// CourseRepository persists training courses and student progress.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns courses by name.
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	query, args := "SELECT "+courseColumns+" FROM courses", []interface{}{}
	if filter.Status != "" {
		query += " WHERE status = $1"
		args = append(args, filter.Status)
	}
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query+" ORDER BY name, id", args...); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindByID fetches a course with its enrollments.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := r.db.GetContext(ctx, &course, "SELECT "+courseColumns+" FROM courses WHERE id = $1", id); err != nil {
		return nil, err
	}
	const query = "SELECT course_id, student_id, progress, grade, updated_at FROM course_enrollments WHERE course_id = $1 ORDER BY student_id"
	if err := r.db.SelectContext(ctx, &course.Enrolled, query, id); err != nil {
		return nil, fmt.Errorf("list course enrollments: %w", err)
	}
	return &course, nil
}

// Create inserts a course and any enrollments it carries.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if course.CreatedAt.IsZero() {
		course.CreatedAt = now
	}
	course.UpdatedAt = now
	if course.SkillsCovered == nil {
		course.SkillsCovered = pq.StringArray{}
	}
	course.EnrolledCount = len(course.Enrolled)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create course: %w", err)
	}
	const query = `INSERT INTO courses (id, name, description, duration_weeks, skills_covered, status, created_at, updated_at)
        VALUES (:id, :name, :description, :duration_weeks, :skills_covered, :status, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, query, course); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("create course: %w", err)
	}
	for i := range course.Enrolled {
		enrollment := &course.Enrolled[i]
		enrollment.CourseID = course.ID
		if enrollment.UpdatedAt.IsZero() {
			enrollment.UpdatedAt = now
		}
		if _, err := tx.NamedExecContext(ctx, upsertProgress, enrollment); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("create course enrollment: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create course: %w", err)
	}
	return nil
}

// Update modifies a course.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	course.UpdatedAt = time.Now().UTC()
	const query = `UPDATE courses SET name = :name, description = :description, duration_weeks = :duration_weeks,
        skills_covered = :skills_covered, status = :status, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, course)
	return expectOne(res, err, "update course")
}

const upsertProgress = `INSERT INTO course_enrollments (course_id, student_id, progress, grade, updated_at)
    VALUES (:course_id, :student_id, :progress, :grade, :updated_at)
    ON CONFLICT (course_id, student_id) DO UPDATE SET progress = EXCLUDED.progress, grade = EXCLUDED.grade, updated_at = EXCLUDED.updated_at`

// SaveProgress enrolls the student if needed and stores their progress.
func (r *CourseRepository) SaveProgress(ctx context.Context, enrollment *models.CourseEnrollment) error {
	enrollment.UpdatedAt = time.Now().UTC()
	if _, err := r.db.NamedExecContext(ctx, upsertProgress, enrollment); err != nil {
		return fmt.Errorf("save course progress: %w", err)
	}
	return nil
}
