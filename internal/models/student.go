package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

// Student represents a learner registered with a department.
//
// Optional academic figures are pointers so an unknown value can be told apart
// from a recorded zero.
type Student struct {
	ID                string         `db:"id" json:"id"`
	EnrollmentNumber  string         `db:"enrollment_number" json:"enrollment_number,omitempty"`
	Name              string         `db:"name" json:"name"`
	Email             string         `db:"email" json:"email"`
	Phone             string         `db:"phone" json:"phone,omitempty"`
	Department        string         `db:"department" json:"department"`
	Branch            string         `db:"branch" json:"branch,omitempty"`
	CGPA              *float64       `db:"cgpa" json:"cgpa,omitempty"`
	TenthPercent      *float64       `db:"tenth_percent" json:"tenth_percent,omitempty"`
	TwelfthPercent    *float64       `db:"twelfth_percent" json:"twelfth_percent,omitempty"`
	GraduationPercent *float64       `db:"graduation_percent" json:"graduation_percent,omitempty"`
	GraduationPeriod  string         `db:"graduation_period" json:"graduation_period,omitempty"`
	EducationGapYears *float64       `db:"education_gap_years" json:"education_gap_years,omitempty"`
	Backlogs          *int           `db:"backlogs" json:"backlogs,omitempty"`
	PastBacklogs      *int           `db:"past_backlogs" json:"past_backlogs,omitempty"`
	Skills            pq.StringArray `db:"skills" json:"skills,omitempty"`
	ResumeURL         string         `db:"resume_url" json:"resume_url,omitempty"`
	Blacklisted       bool           `db:"blacklisted" json:"blacklisted"`
	EnrolledJobs      int            `db:"enrolled_jobs" json:"enrolled_jobs"`
	TenthMath         *float64       `db:"tenth_math" json:"tenth_math,omitempty"`
	TwelfthMath       *float64       `db:"twelfth_math" json:"twelfth_math,omitempty"`
	TwelfthCS         *float64       `db:"twelfth_cs" json:"twelfth_cs,omitempty"`
	HasDegree         *bool          `db:"has_degree" json:"has_degree,omitempty"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}

// StudentFilter encapsulates allowed search parameters for listing students.
type StudentFilter struct {
	Search     string
	Department string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

// EnrollmentKey normalises an enrollment number for uniqueness checks.
func EnrollmentKey(enrollment string) string {
	return strings.ToLower(strings.TrimSpace(enrollment))
}

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 { return &v }

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool { return &v }
