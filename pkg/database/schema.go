package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema creates the tables used by the postgres store. Statements are
// idempotent so Migrate can run on every start.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id TEXT PRIMARY KEY,
		enrollment_number TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		department TEXT NOT NULL,
		branch TEXT NOT NULL DEFAULT '',
		cgpa DOUBLE PRECISION,
		tenth_percent DOUBLE PRECISION,
		twelfth_percent DOUBLE PRECISION,
		graduation_percent DOUBLE PRECISION,
		graduation_period TEXT NOT NULL DEFAULT '',
		education_gap_years DOUBLE PRECISION,
		backlogs INTEGER,
		past_backlogs INTEGER,
		skills TEXT[] NOT NULL DEFAULT '{}',
		resume_url TEXT NOT NULL DEFAULT '',
		blacklisted BOOLEAN NOT NULL DEFAULT FALSE,
		enrolled_jobs INTEGER NOT NULL DEFAULT 0,
		tenth_math DOUBLE PRECISION,
		twelfth_math DOUBLE PRECISION,
		twelfth_cs DOUBLE PRECISION,
		has_degree BOOLEAN,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS students_enrollment_lower_idx ON students (LOWER(enrollment_number))`,
	`CREATE TABLE IF NOT EXISTS drives (
		id TEXT PRIMARY KEY,
		company TEXT NOT NULL,
		role TEXT NOT NULL,
		ctc_lpa DOUBLE PRECISION NOT NULL DEFAULT 0,
		drive_date TIMESTAMPTZ NOT NULL,
		deadline TIMESTAMPTZ,
		description TEXT NOT NULL DEFAULT '',
		criteria JSONB NOT NULL DEFAULT '{}',
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		company TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT '',
		department TEXT NOT NULL DEFAULT '',
		deadline TIMESTAMPTZ,
		applicants INTEGER NOT NULL DEFAULT 0,
		eligibility TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		type TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS colleges (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		code TEXT NOT NULL,
		domain TEXT NOT NULL DEFAULT '',
		contact TEXT NOT NULL DEFAULT '',
		plan TEXT NOT NULL,
		status TEXT NOT NULL,
		departments INTEGER NOT NULL DEFAULT 0,
		students INTEGER NOT NULL DEFAULT 0,
		jobs INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS departments (
		id TEXT PRIMARY KEY,
		college_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		hod TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		students INTEGER NOT NULL DEFAULT 0,
		active_jobs INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS announcements (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		priority TEXT NOT NULL,
		published_on DATE NOT NULL,
		created_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL,
		event_date DATE NOT NULL,
		start_time TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		online_link TEXT NOT NULL DEFAULT '',
		max_participants INTEGER,
		status TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		poster_url TEXT NOT NULL DEFAULT '',
		registered INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS event_registrations (
		event_id TEXT NOT NULL REFERENCES events (id) ON DELETE CASCADE,
		student_id TEXT NOT NULL,
		status TEXT NOT NULL,
		registered_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (event_id, student_id)
	)`,
	`CREATE TABLE IF NOT EXISTS meetings (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		meeting_date DATE NOT NULL,
		start_time TEXT NOT NULL,
		location TEXT NOT NULL,
		attendees INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		duration_weeks INTEGER NOT NULL DEFAULT 4,
		skills_covered TEXT[] NOT NULL DEFAULT '{}',
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS course_enrollments (
		course_id TEXT NOT NULL REFERENCES courses (id) ON DELETE CASCADE,
		student_id TEXT NOT NULL,
		progress INTEGER NOT NULL DEFAULT 0 CHECK (progress BETWEEN 0 AND 100),
		grade TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (course_id, student_id)
	)`,
}

// Migrate applies the schema inside one transaction.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migrate: %w", err)
	}
	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migrate statement %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migrate: %w", err)
	}
	return nil
}
