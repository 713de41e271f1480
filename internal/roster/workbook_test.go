package roster

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportWorkbook(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"enrollment_number", "name", "email", "department", "cgpa"},
		{"E1", "A", "a@x", "CSE", "8.1"},
		{"E2", "", "b@x", "CSE", ""},
	})
	rec := newRecorder()

	outcome, err := ImportWorkbook(buf, rec.isDuplicate, rec.create)
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Accepted)
	assert.Equal(t, 1, outcome.Rejected)
	require.Len(t, rec.created, 1)
	require.NotNil(t, rec.created[0].CGPA)
	assert.Equal(t, 8.1, *rec.created[0].CGPA)
	assert.Equal(t, 3, outcome.Errors[0].Row)
}

func TestImportWorkbookHeaderOnly(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{{"enrollment_number", "name", "email", "department"}})

	_, err := ImportWorkbook(buf, nil, nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestReadWorkbookRejectsGarbage(t *testing.T) {
	_, err := ReadWorkbook(strings.NewReader("not a workbook"))
	assert.Error(t, err)
}
