package models

import (
	"time"

	"github.com/lib/pq"
)

// CourseStatus marks whether a training course is running.
type CourseStatus string

const (
	CourseStatusActive    CourseStatus = "Active"
	CourseStatusInactive  CourseStatus = "Inactive"
	CourseStatusCompleted CourseStatus = "Completed"
)

// CourseEnrollment is one student's progress (0-100) through a course.
type CourseEnrollment struct {
	CourseID  string    `db:"course_id" json:"-"`
	StudentID string    `db:"student_id" json:"student_id"`
	Progress  int       `db:"progress" json:"progress"`
	Grade     string    `db:"grade" json:"grade,omitempty"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Course is a placement training programme.
type Course struct {
	ID            string             `db:"id" json:"id"`
	Name          string             `db:"name" json:"name"`
	Description   string             `db:"description" json:"description"`
	DurationWeeks int                `db:"duration_weeks" json:"duration_weeks"`
	SkillsCovered pq.StringArray     `db:"skills_covered" json:"skills_covered"`
	Status        CourseStatus       `db:"status" json:"status"`
	EnrolledCount int                `db:"enrolled_count" json:"enrolled_count"`
	Enrolled      []CourseEnrollment `db:"-" json:"enrolled,omitempty"`
	CreatedAt     time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `db:"updated_at" json:"updated_at"`
}

// CourseFilter narrows course listings.
type CourseFilter struct {
	Status CourseStatus
}
