package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRoster = `enrollment_number,name,email,department,cgpa,backlogs,skills
ENG1,Riya Sharma,riya@x.edu,CSE,8.7,0,Python|SQL
ENG2,Arjun Mehta,arjun@x.edu,CSE,7.9,1,Java|DSA
eng1,Riya Again,riya2@x.edu,CSE,8.7,0,Python
,No Enrollment,none@x.edu,CSE,,,
`

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestValidateReportsRejectedRows(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"validate", writeRoster(t, sampleRoster)}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.Contains(t, out, "duplicate enrollment number")
	assert.Contains(t, out, "missing required field")
	assert.Contains(t, out, "2 accepted, 2 rejected")
}

func TestEligibilityAppliesFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := writeRoster(t, sampleRoster)
	code := run([]string{"eligibility", path, "--min-graduation", "75", "--no-active-backlog", "--skills", "python"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.Contains(t, out, "Riya Sharma")
	assert.Contains(t, out, "Arjun Mehta")
	assert.Contains(t, out, "1 of 2 students eligible")
	assert.Contains(t, out, "2 rows skipped")

	stdout.Reset()
	code = run([]string{"eligibility", "--only-eligible", "--skills", "python", path}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.NotContains(t, stdout.String(), "Arjun Mehta")
}

func TestEligibilityWithoutFlagsAcceptsEveryone(t *testing.T) {
	var stdout, stderr bytes.Buffer
	roster := "enrollment_number,name,email,department\nE1,A,a@x,CSE\nE2,B,b@x,ECE\nE3,C,c@x,MECH\n"
	code := run([]string{"eligibility", writeRoster(t, roster)}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "3 of 3 students eligible")
	assert.NotContains(t, stdout.String(), "rows skipped")
}

func TestRunRejectsBadInvocations(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"frobnicate"}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"validate"}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"validate", filepath.Join(t.TempDir(), "missing.csv")}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"validate", writeRoster(t, "enrollment_number,name\n")}, &stdout, &stderr))
}
