package roster

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook returns the rows of the first sheet of an XLSX workbook.
func ReadWorkbook(reader io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoData
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// ImportWorkbook reads the first sheet of an XLSX workbook and imports it.
func ImportWorkbook(reader io.Reader, isDuplicate DuplicateFunc, create CreateFunc) (*Outcome, error) {
	rows, err := ReadWorkbook(reader)
	if err != nil {
		return nil, err
	}
	return ImportTable(rows, isDuplicate, create)
}
