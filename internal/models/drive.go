package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DriveStatus enumerates campus drive lifecycle states.
type DriveStatus string

const (
	DriveStatusAnnounced DriveStatus = "Announced"
	DriveStatusOpen      DriveStatus = "Open"
	DriveStatusClosed    DriveStatus = "Closed"
	DriveStatusCompleted DriveStatus = "Completed"
)

// DriveLocation describes how a drive is conducted.
type DriveLocation string

const (
	DriveLocationOnCampus DriveLocation = "On-Campus"
	DriveLocationVirtual  DriveLocation = "Virtual"
)

// DriveCriteria holds the admission thresholds attached to a campus drive.
// A nil field imposes no constraint.
type DriveCriteria struct {
	MinTenth             *float64      `json:"min_tenth,omitempty" validate:"omitempty,gte=0,lte=100"`
	MinTwelfth           *float64      `json:"min_twelfth,omitempty" validate:"omitempty,gte=0,lte=100"`
	MinGraduation        *float64      `json:"min_graduation,omitempty" validate:"omitempty,gte=0,lte=100"`
	GradYearFrom         *int          `json:"grad_year_from,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	GradYearTo           *int          `json:"grad_year_to,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	MaxEducationGapYears *float64      `json:"max_education_gap_years,omitempty" validate:"omitempty,gte=0"`
	AllowActiveBacklog   *bool         `json:"allow_active_backlog,omitempty"`
	AllowPastBacklog     *bool         `json:"allow_past_backlog,omitempty"`
	RequiredSkills       []string      `json:"required_skills,omitempty" validate:"omitempty,dive,required"`
	Location             DriveLocation `json:"location,omitempty" validate:"omitempty,oneof=On-Campus Virtual"`
	ResumeRequired       *bool         `json:"resume_required,omitempty"`
}

// Value implements driver.Valuer so criteria persist as JSONB.
func (c DriveCriteria) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner.
func (c *DriveCriteria) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*c = DriveCriteria{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported criteria type %T", src)
	}
	return json.Unmarshal(raw, c)
}

// Drive is a campus recruitment event run by a company.
type Drive struct {
	ID          string        `db:"id" json:"id"`
	Company     string        `db:"company" json:"company"`
	Role        string        `db:"role" json:"role"`
	CTCLpa      float64       `db:"ctc_lpa" json:"ctc_lpa"`
	DriveDate   time.Time     `db:"drive_date" json:"drive_date"`
	Deadline    *time.Time    `db:"deadline" json:"deadline,omitempty"`
	Description string        `db:"description" json:"description,omitempty"`
	Criteria    DriveCriteria `db:"criteria" json:"criteria"`
	Status      DriveStatus   `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// DriveFilter narrows drive listings.
type DriveFilter struct {
	Search   string
	Status   DriveStatus
	Page     int
	PageSize int
}

// EligibilityResult pairs a student with the verdict for one rule.
type EligibilityResult struct {
	Student  Student  `json:"student"`
	Eligible bool     `json:"eligible"`
	Unmet    []string `json:"unmet,omitempty"`
}

// DriveEligibility is the Mode A verdict of every student for one drive.
type DriveEligibility struct {
	Drive    Drive               `json:"drive"`
	Total    int                 `json:"total"`
	Eligible int                 `json:"eligible"`
	Results  []EligibilityResult `json:"results"`
}
