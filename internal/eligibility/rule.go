package eligibility

import "github.com/ajs-hub/placement-api/internal/models"

// Mode labels the evaluator a Rule dispatches to.
type Mode string

const (
	ModeStructured  Mode = "structured"
	ModeStringRules Mode = "string_rules"
)

// Rule is either a Structured criteria set or a list of StringRules.
type Rule interface {
	Mode() Mode
	evaluate(student models.Student) Result
}

// Structured wraps drive criteria.
type Structured struct {
	Criteria models.DriveCriteria
}

// Mode implements Rule.
func (Structured) Mode() Mode { return ModeStructured }

func (r Structured) evaluate(student models.Student) Result {
	return CheckCriteria(student, r.Criteria)
}

// StringRules wraps job requirement strings.
type StringRules struct {
	Requirements []string
}

// Mode implements Rule.
func (StringRules) Mode() Mode { return ModeStringRules }

func (r StringRules) evaluate(student models.Student) Result {
	return EvaluateRequirementStrings(student, r.Requirements)
}

// Evaluate applies the rule to one student.
func Evaluate(rule Rule, student models.Student) Result {
	if rule == nil {
		return Result{Eligible: true, Unmet: []string{}}
	}
	return rule.evaluate(student)
}

// EvaluateAll applies the rule to every student, keeping input order.
func EvaluateAll(rule Rule, students []models.Student) []models.EligibilityResult {
	results := make([]models.EligibilityResult, 0, len(students))
	for _, student := range students {
		res := Evaluate(rule, student)
		results = append(results, models.EligibilityResult{Student: student, Eligible: res.Eligible, Unmet: res.Unmet})
	}
	return results
}
