// Package roster turns uploaded student rosters into student records.
package roster

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ajs-hub/placement-api/internal/models"
)

// Column names recognised in the header row.
const (
	ColumnEnrollmentNumber = "enrollment_number"
	ColumnName             = "name"
	ColumnEmail            = "email"
	ColumnDepartment       = "department"
	ColumnBranch           = "branch"
	ColumnPhone            = "phone"
	ColumnCGPA             = "cgpa"
	ColumnBacklogs         = "backlogs"
	ColumnSkills           = "skills"
)

// RequiredColumns must all appear in the header, spelled exactly.
var RequiredColumns = []string{ColumnEnrollmentNumber, ColumnName, ColumnEmail, ColumnDepartment}

// Row rejection reasons.
const (
	ReasonMissingRequired = "missing required field"
	ReasonDuplicate       = "duplicate enrollment number"
)

var (
	// ErrNoData is returned when the payload has no data row after the header.
	ErrNoData = errors.New("roster has no data")
	// ErrMissingHeaders is returned when a required column is absent from the header.
	ErrMissingHeaders = errors.New("roster missing required headers")
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// byteOrderMark is written by spreadsheet tools at the start of UTF-8 exports.
const byteOrderMark = "\ufeff"

// DuplicateFunc reports whether an enrollment number is already taken.
type DuplicateFunc func(enrollmentNumber string) bool

// CreateFunc commits one accepted student. It may fill in store-assigned
// fields such as the ID, which are kept in Outcome.Created.
type CreateFunc func(student *models.Student) error

// RowError records why a data row was rejected. Row is 1-based and counts the header.
type RowError struct {
	Row              int    `json:"row"`
	EnrollmentNumber string `json:"enrollment_number,omitempty"`
	Reason           string `json:"reason"`
}

// Outcome summarises one import run.
type Outcome struct {
	Accepted int              `json:"accepted"`
	Rejected int              `json:"rejected"`
	Created  []models.Student `json:"created"`
	Errors   []RowError       `json:"errors"`
}

// Import parses comma-separated text whose first non-blank line is the header.
// Quoting is not supported, so values must not contain commas.
func Import(text string, isDuplicate DuplicateFunc, create CreateFunc) (*Outcome, error) {
	text = strings.TrimPrefix(text, byteOrderMark)
	lines := lineBreak.Split(text, -1)
	rows := make([]tableRow, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, tableRow{number: i + 1, cells: strings.Split(line, ",")})
	}
	return importRows(rows, isDuplicate, create)
}

// ImportTable runs the import over rows that are already split into cells,
// such as the rows of a spreadsheet. Rows whose cells are all empty are
// skipped and never counted.
func ImportTable(table [][]string, isDuplicate DuplicateFunc, create CreateFunc) (*Outcome, error) {
	rows := make([]tableRow, 0, len(table))
	for i, cells := range table {
		if strings.TrimSpace(strings.Join(cells, "")) == "" {
			continue
		}
		rows = append(rows, tableRow{number: i + 1, cells: cells})
	}
	return importRows(rows, isDuplicate, create)
}

type tableRow struct {
	number int
	cells  []string
}

func importRows(rows []tableRow, isDuplicate DuplicateFunc, create CreateFunc) (*Outcome, error) {
	if len(rows) < 2 {
		return nil, ErrNoData
	}

	index := make(map[string]int, len(rows[0].cells))
	for i, header := range rows[0].cells {
		name := strings.TrimSpace(strings.TrimPrefix(header, byteOrderMark))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	var missing []string
	for _, column := range RequiredColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingHeaders, strings.Join(missing, ","))
	}

	outcome := &Outcome{Created: make([]models.Student, 0, len(rows)-1), Errors: make([]RowError, 0)}
	for _, row := range rows[1:] {
		cells := row.cells
		get := func(column string) string {
			idx, ok := index[column]
			if !ok || idx >= len(cells) {
				return ""
			}
			return strings.TrimSpace(cells[idx])
		}
		enrollment := get(ColumnEnrollmentNumber)

		reject := func(reason string) {
			outcome.Rejected++
			outcome.Errors = append(outcome.Errors, RowError{Row: row.number, EnrollmentNumber: enrollment, Reason: reason})
		}

		student := models.Student{
			EnrollmentNumber: enrollment,
			Name:             get(ColumnName),
			Email:            get(ColumnEmail),
			Department:       get(ColumnDepartment),
		}
		if student.EnrollmentNumber == "" || student.Name == "" || student.Email == "" || student.Department == "" {
			reject(ReasonMissingRequired)
			continue
		}
		if isDuplicate != nil && isDuplicate(enrollment) {
			reject(ReasonDuplicate)
			continue
		}

		student.Branch = get(ColumnBranch)
		student.Phone = get(ColumnPhone)
		student.CGPA = parseFloat(get(ColumnCGPA))
		student.Backlogs = parseInt(get(ColumnBacklogs))
		student.Skills = splitSkills(get(ColumnSkills))
		student.EnrolledJobs = 0

		if create != nil {
			if err := create(&student); err != nil {
				reject(err.Error())
				continue
			}
		}
		outcome.Accepted++
		outcome.Created = append(outcome.Created, student)
	}
	return outcome, nil
}

func parseFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func parseInt(raw string) *int {
	v := parseFloat(raw)
	if v == nil || *v != float64(int(*v)) {
		return nil
	}
	n := int(*v)
	return &n
}

func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "|")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	if len(skills) == 0 {
		return nil
	}
	return skills
}
