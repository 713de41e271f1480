package models

import (
	"time"

	"github.com/lib/pq"
)

// Job is a posting whose eligibility is written as human-readable requirement strings.
type Job struct {
	ID          string         `db:"id" json:"id"`
	Title       string         `db:"title" json:"title"`
	Company     string         `db:"company" json:"company"`
	Type        string         `db:"type" json:"type"`
	Department  string         `db:"department" json:"department"`
	Deadline    *time.Time     `db:"deadline" json:"deadline,omitempty"`
	Applicants  int            `db:"applicants" json:"applicants"`
	Eligibility pq.StringArray `db:"eligibility" json:"eligibility"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// JobFilter narrows job listings.
type JobFilter struct {
	Search     string
	Department string
	Page       int
	PageSize   int
}
