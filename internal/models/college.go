package models

import "time"

// CollegePlan is the subscription tier of a tenant college.
type CollegePlan string

const (
	CollegePlanStandard   CollegePlan = "Standard"
	CollegePlanPremium    CollegePlan = "Premium"
	CollegePlanEnterprise CollegePlan = "Enterprise"
)

// TenantStatus marks colleges and departments as active or not.
type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "Active"
	TenantStatusInactive TenantStatus = "Inactive"
)

// College is a tenant institution on the platform.
type College struct {
	ID          string       `db:"id" json:"id"`
	Name        string       `db:"name" json:"name"`
	Code        string       `db:"code" json:"code"`
	Domain      string       `db:"domain" json:"domain"`
	Contact     string       `db:"contact" json:"contact"`
	Plan        CollegePlan  `db:"plan" json:"plan"`
	Status      TenantStatus `db:"status" json:"status"`
	Departments int          `db:"departments" json:"departments"`
	Students    int          `db:"students" json:"students"`
	Jobs        int          `db:"jobs" json:"jobs"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}

// Department is an academic unit belonging to a college.
type Department struct {
	ID         string       `db:"id" json:"id"`
	CollegeID  string       `db:"college_id" json:"college_id"`
	Name       string       `db:"name" json:"name"`
	HOD        string       `db:"hod" json:"hod"`
	Email      string       `db:"email" json:"email"`
	Phone      string       `db:"phone" json:"phone,omitempty"`
	Students   int          `db:"students" json:"students"`
	ActiveJobs int          `db:"active_jobs" json:"active_jobs"`
	Status     TenantStatus `db:"status" json:"status"`
	CreatedAt  time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time    `db:"updated_at" json:"updated_at"`
}

// DepartmentFilter narrows department listings.
type DepartmentFilter struct {
	CollegeID string
}
