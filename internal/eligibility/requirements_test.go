package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajs-hub/placement-api/internal/models"
)

func TestEvaluateRequirementStringsReportsUnmetInOrder(t *testing.T) {
	student := models.Student{TenthMath: models.Float64Ptr(70)}

	result := EvaluateRequirementStrings(student, []string{"10th Math > 75%", "Degree Required"})

	assert.False(t, result.Eligible)
	assert.Equal(t, []string{"10th Math > 75%", "Degree Required"}, result.Unmet)
}

func TestEvaluateRequirementStringsThresholdsAreStrict(t *testing.T) {
	tests := []struct {
		name        string
		student     models.Student
		requirement string
		eligible    bool
	}{
		{"tenth at threshold", models.Student{TenthMath: models.Float64Ptr(75)}, "10th Math > 75%", false},
		{"tenth above", models.Student{TenthMath: models.Float64Ptr(75.5)}, "10th Math > 75%", true},
		{"twelfth math at threshold", models.Student{TwelfthMath: models.Float64Ptr(85)}, "12th Math > 85%", false},
		{"twelfth math above", models.Student{TwelfthMath: models.Float64Ptr(90)}, "12th Math > 85%", true},
		{"twelfth cs missing", models.Student{}, "12th CS > 80%", false},
		{"twelfth cs above", models.Student{TwelfthCS: models.Float64Ptr(81)}, "12th CS > 80%", true},
		{"degree present", models.Student{HasDegree: models.BoolPtr(true)}, "Degree Required", true},
		{"degree false", models.Student{HasDegree: models.BoolPtr(false)}, "Degree Required", false},
		{"substring match", models.Student{}, "Must have: Degree Required (any stream)", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateRequirementStrings(tt.student, []string{tt.requirement})
			assert.Equal(t, tt.eligible, result.Eligible)
		})
	}
}

func TestEvaluateRequirementStringsIgnoresUnrecognizedText(t *testing.T) {
	students := []models.Student{
		{},
		{CGPA: models.Float64Ptr(5), Backlogs: models.IntPtr(4)},
		{TenthMath: models.Float64Ptr(99), HasDegree: models.BoolPtr(true)},
	}
	for _, student := range students {
		result := EvaluateRequirementStrings(student, []string{"Portfolio Required", "CGPA > 8.0", "No active backlogs"})
		assert.True(t, result.Eligible)
		assert.Empty(t, result.Unmet)
	}
}

func TestEvaluateRequirementStringsEmptyList(t *testing.T) {
	result := EvaluateRequirementStrings(models.Student{}, nil)
	assert.True(t, result.Eligible)
	assert.NotNil(t, result.Unmet)
}

func TestRecognized(t *testing.T) {
	assert.True(t, Recognized("12th CS > 80%"))
	assert.False(t, Recognized("CGPA > 7.0"))
}

func TestEvaluateDispatchesByVariant(t *testing.T) {
	student := models.Student{Name: "A", GraduationPercent: models.Float64Ptr(50), TenthMath: models.Float64Ptr(90)}

	structured := Structured{Criteria: models.DriveCriteria{MinGraduation: models.Float64Ptr(60)}}
	assert.Equal(t, ModeStructured, structured.Mode())
	assert.False(t, Evaluate(structured, student).Eligible)

	strings := StringRules{Requirements: []string{"10th Math > 75%"}}
	assert.Equal(t, ModeStringRules, strings.Mode())
	assert.True(t, Evaluate(strings, student).Eligible)

	assert.True(t, Evaluate(nil, student).Eligible)
}

func TestEvaluateAllKeepsOrder(t *testing.T) {
	students := fixtureStudents()
	results := EvaluateAll(Structured{Criteria: models.DriveCriteria{AllowActiveBacklog: models.BoolPtr(false)}}, students)

	assert.Len(t, results, len(students))
	for i, res := range results {
		assert.Equal(t, students[i].ID, res.Student.ID)
	}
	assert.True(t, results[0].Eligible)
	assert.False(t, results[1].Eligible)
	assert.False(t, results[2].Eligible)
	assert.True(t, results[3].Eligible)
}
