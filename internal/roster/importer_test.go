package roster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajs-hub/placement-api/internal/eligibility"
	"github.com/ajs-hub/placement-api/internal/models"
)

type recorder struct {
	existing map[string]bool
	created  []models.Student
	failOn   string
}

func newRecorder(existing ...string) *recorder {
	r := &recorder{existing: map[string]bool{}}
	for _, e := range existing {
		r.existing[models.EnrollmentKey(e)] = true
	}
	return r
}

func (r *recorder) isDuplicate(enrollment string) bool {
	return r.existing[models.EnrollmentKey(enrollment)]
}

func (r *recorder) create(student *models.Student) error {
	if r.failOn != "" && student.EnrollmentNumber == r.failOn {
		return errors.New("store unavailable")
	}
	student.ID = "id-" + student.EnrollmentNumber
	r.created = append(r.created, *student)
	r.existing[models.EnrollmentKey(student.EnrollmentNumber)] = true
	return nil
}

func TestImportAcceptsValidRows(t *testing.T) {
	rec := newRecorder()
	text := "enrollment_number,name,email,department\nE1,A,a@x,CSE\nE2,B,b@x,ECE"

	outcome, err := Import(text, rec.isDuplicate, rec.create)
	require.NoError(t, err)

	assert.Equal(t, 2, outcome.Accepted)
	assert.Equal(t, 0, outcome.Rejected)
	assert.Empty(t, outcome.Errors)
	require.Len(t, rec.created, 2)
	assert.Equal(t, "E1", rec.created[0].EnrollmentNumber)
	assert.Equal(t, "ECE", rec.created[1].Department)
	assert.Equal(t, 0, rec.created[0].EnrolledJobs)
	assert.Equal(t, "id-E1", outcome.Created[0].ID)
}

func TestImportRejectsExistingEnrollment(t *testing.T) {
	rec := newRecorder("e1")
	text := "enrollment_number,name,email,department\nE1,A,a@x,CSE"

	outcome, err := Import(text, rec.isDuplicate, rec.create)
	require.NoError(t, err)

	assert.Equal(t, 0, outcome.Accepted)
	assert.Equal(t, 1, outcome.Rejected)
	assert.Empty(t, rec.created)
	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, RowError{Row: 2, EnrollmentNumber: "E1", Reason: ReasonDuplicate}, outcome.Errors[0])
}

func TestImportRejectsRepeatWithinFile(t *testing.T) {
	rec := newRecorder()
	text := "enrollment_number,name,email,department\nE1,A,a@x,CSE\ne1,A again,a2@x,CSE"

	outcome, err := Import(text, rec.isDuplicate, rec.create)
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Accepted)
	assert.Equal(t, 1, outcome.Rejected)
	assert.Len(t, rec.created, 1)
}

func TestImportHeaderOnlyIsNoData(t *testing.T) {
	rec := newRecorder()
	for _, text := range []string{
		"enrollment_number,name,email,department",
		"enrollment_number,name,email,department\n\n   \n",
		"",
	} {
		outcome, err := Import(text, rec.isDuplicate, rec.create)
		assert.ErrorIs(t, err, ErrNoData)
		assert.Nil(t, outcome)
	}
	assert.Empty(t, rec.created)
}

func TestImportMissingHeadersNamesColumns(t *testing.T) {
	rec := newRecorder()
	text := "enrollment_number,name\nE1,A"

	_, err := Import(text, rec.isDuplicate, rec.create)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingHeaders))
	assert.Contains(t, err.Error(), "email,department")
	assert.Empty(t, rec.created)
}

func TestImportSkipsBlankLinesAndKeepsLineNumbers(t *testing.T) {
	rec := newRecorder()
	text := "\r\nenrollment_number,name,email,department\r\n\r\nE1,A,a@x,CSE\r\n,,,\r\n"

	outcome, err := Import(text, rec.isDuplicate, rec.create)
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Accepted)
	assert.Equal(t, 1, outcome.Rejected)
	require.Len(t, outcome.Errors, 1)
	assert.Equal(t, 5, outcome.Errors[0].Row)
	assert.Equal(t, ReasonMissingRequired, outcome.Errors[0].Reason)
}

func TestImportParsesOptionalColumns(t *testing.T) {
	rec := newRecorder()
	text := "department, email ,name,enrollment_number,cgpa,backlogs,skills,phone,branch\n" +
		"CSE,a@x,A,E1,8.4,0,Python| SQL |,999,AI\n" +
		"CSE,b@x,B,E2,abc,two,,,\n" +
		"CSE,c@x,C,E3"

	outcome, err := Import(text, rec.isDuplicate, rec.create)
	require.NoError(t, err)
	require.Equal(t, 3, outcome.Accepted)

	first := rec.created[0]
	require.NotNil(t, first.CGPA)
	assert.Equal(t, 8.4, *first.CGPA)
	require.NotNil(t, first.Backlogs)
	assert.Equal(t, 0, *first.Backlogs)
	assert.Equal(t, []string{"Python", "SQL"}, []string(first.Skills))
	assert.Equal(t, "999", first.Phone)
	assert.Equal(t, "AI", first.Branch)

	second := rec.created[1]
	assert.Nil(t, second.CGPA)
	assert.Nil(t, second.Backlogs)
	assert.Nil(t, second.Skills)

	third := rec.created[2]
	assert.Equal(t, "E3", third.EnrollmentNumber)
	assert.Nil(t, third.CGPA)
}

func TestImportCreateFailureRejectsRow(t *testing.T) {
	rec := newRecorder()
	rec.failOn = "E2"
	text := "enrollment_number,name,email,department\nE1,A,a@x,CSE\nE2,B,b@x,CSE\nE3,C,c@x,CSE"

	outcome, err := Import(text, rec.isDuplicate, rec.create)
	require.NoError(t, err)

	assert.Equal(t, 2, outcome.Accepted)
	assert.Equal(t, 1, outcome.Rejected)
	assert.Equal(t, "store unavailable", outcome.Errors[0].Reason)
	assert.Equal(t, 3, outcome.Accepted+outcome.Rejected)
}

func TestImportTableSkipsEmptyRows(t *testing.T) {
	rec := newRecorder()
	table := [][]string{
		{"enrollment_number", "name", "email", "department"},
		{},
		{"", "", "", ""},
		{"E1", "A", "a@x", "CSE"},
	}

	outcome, err := ImportTable(table, rec.isDuplicate, rec.create)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Accepted)
	assert.Equal(t, 0, outcome.Rejected)
}

func TestImportWithoutCallbacks(t *testing.T) {
	outcome, err := Import("enrollment_number,name,email,department\nE1,A,a@x,CSE", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Accepted)
	assert.Len(t, outcome.Created, 1)
}

func TestImportStripsByteOrderMark(t *testing.T) {
	rec := newRecorder()
	text := "\ufeffenrollment_number,name,email,department\r\nE9,A,a@x,CSE\r\n"

	outcome, err := Import(text, rec.isDuplicate, rec.create)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Accepted)
	assert.Equal(t, "E9", rec.created[0].EnrollmentNumber)

	table := [][]string{
		{"\ufeffenrollment_number", "name", "email", "department"},
		{"E10", "B", "b@x", "ECE"},
	}
	outcome, err = ImportTable(table, rec.isDuplicate, rec.create)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Accepted)
}

func TestImportedStudentsMeetEmptyCriteria(t *testing.T) {
	rec := newRecorder()
	text := "enrollment_number,name,email,department\n" +
		"E1,A,a@x,CSE\n" +
		"E2,B,b@x,ECE\n" +
		"E3,C,c@x,MECH"

	outcome, err := Import(text, rec.isDuplicate, rec.create)
	require.NoError(t, err)
	require.Equal(t, 3, outcome.Accepted)

	results := eligibility.EvaluateAll(eligibility.Structured{}, outcome.Created)
	require.Len(t, results, 3)
	for _, res := range results {
		assert.True(t, res.Eligible, res.Student.EnrollmentNumber)
		assert.Empty(t, res.Unmet)
	}
}
