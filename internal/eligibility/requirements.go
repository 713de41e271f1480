package eligibility

import (
	"strings"

	"github.com/ajs-hub/placement-api/internal/models"
)

type requirementRule struct {
	pattern string
	failed  func(models.Student) bool
}

// requirementRules are matched by substring. Requirement text that matches none
// of them is treated as satisfied.
var requirementRules = []requirementRule{
	{pattern: "10th Math > 75%", failed: func(s models.Student) bool { return floatOrZero(s.TenthMath) <= 75 }},
	{pattern: "12th Math > 85%", failed: func(s models.Student) bool { return floatOrZero(s.TwelfthMath) <= 85 }},
	{pattern: "12th CS > 80%", failed: func(s models.Student) bool { return floatOrZero(s.TwelfthCS) <= 80 }},
	{pattern: "Degree Required", failed: func(s models.Student) bool { return s.HasDegree == nil || !*s.HasDegree }},
}

// EvaluateRequirementStrings checks a job's free-text requirements against the
// student profile. Unmet keeps the order of the requirements given.
func EvaluateRequirementStrings(student models.Student, requirements []string) Result {
	unmet := make([]string, 0)
	for _, requirement := range requirements {
		for _, rule := range requirementRules {
			if strings.Contains(requirement, rule.pattern) && rule.failed(student) {
				unmet = append(unmet, requirement)
				break
			}
		}
	}
	return Result{Eligible: len(unmet) == 0, Unmet: unmet}
}

// Recognized reports whether a requirement string is checked by any rule.
func Recognized(requirement string) bool {
	for _, rule := range requirementRules {
		if strings.Contains(requirement, rule.pattern) {
			return true
		}
	}
	return false
}
