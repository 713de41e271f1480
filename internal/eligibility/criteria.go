// Package eligibility decides which students qualify for a drive or job.
//
// Two rule shapes exist: structured thresholds attached to campus drives and
// human-readable requirement strings attached to job postings. Each has its own
// evaluator; Rule ties them together for callers that hold either.
package eligibility

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ajs-hub/placement-api/internal/models"
)

// Result is the verdict for one student against one rule.
type Result struct {
	Eligible bool     `json:"eligible"`
	Unmet    []string `json:"unmet"`
}

// EvaluateCriteria reports whether the student satisfies every criterion that
// is present. Absent criteria are satisfied; absent student figures count as 0.
func EvaluateCriteria(student models.Student, criteria models.DriveCriteria) bool {
	return CheckCriteria(student, criteria).Eligible
}

// CheckCriteria evaluates the same rules as EvaluateCriteria and also lists the
// criteria the student failed, in a fixed order.
func CheckCriteria(student models.Student, criteria models.DriveCriteria) Result {
	unmet := make([]string, 0)

	if criteria.MinGraduation != nil && graduationScore(student) < *criteria.MinGraduation {
		unmet = append(unmet, fmt.Sprintf("Minimum graduation %s%%", formatNumber(*criteria.MinGraduation)))
	}
	if criteria.MinTenth != nil && floatOrZero(student.TenthPercent) < *criteria.MinTenth {
		unmet = append(unmet, fmt.Sprintf("Minimum 10th %s%%", formatNumber(*criteria.MinTenth)))
	}
	if criteria.MinTwelfth != nil && floatOrZero(student.TwelfthPercent) < *criteria.MinTwelfth {
		unmet = append(unmet, fmt.Sprintf("Minimum 12th %s%%", formatNumber(*criteria.MinTwelfth)))
	}
	if criteria.MaxEducationGapYears != nil && floatOrZero(student.EducationGapYears) > *criteria.MaxEducationGapYears {
		unmet = append(unmet, fmt.Sprintf("Education gap at most %s years", formatNumber(*criteria.MaxEducationGapYears)))
	}
	if criteria.AllowActiveBacklog != nil && !*criteria.AllowActiveBacklog && intOrZero(student.Backlogs) != 0 {
		unmet = append(unmet, "No active backlogs")
	}
	if criteria.AllowPastBacklog != nil && !*criteria.AllowPastBacklog && intOrZero(student.PastBacklogs) != 0 {
		unmet = append(unmet, "No past backlogs")
	}
	if missing := missingSkills(student.Skills, criteria.RequiredSkills); len(missing) > 0 {
		unmet = append(unmet, "Required skills: "+strings.Join(missing, ", "))
	}

	return Result{Eligible: len(unmet) == 0, Unmet: unmet}
}

// graduationScore falls back to CGPA on a 0-10 scale when no percentage is recorded.
func graduationScore(student models.Student) float64 {
	if student.GraduationPercent != nil {
		return *student.GraduationPercent
	}
	if student.CGPA != nil {
		return *student.CGPA * 10
	}
	return 0
}

func missingSkills(have, required []string) []string {
	if len(required) == 0 {
		return nil
	}
	owned := make(map[string]struct{}, len(have))
	for _, skill := range have {
		owned[strings.ToLower(skill)] = struct{}{}
	}
	var missing []string
	for _, skill := range required {
		if _, ok := owned[strings.ToLower(skill)]; !ok {
			missing = append(missing, skill)
		}
	}
	return missing
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
