package extractor

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// maxColumns guards against pathological sheets.
const maxColumns = 1000

// ExcelExtractor reads every non-empty cell into its own field. The first
// row is treated as headers, so a field is named "Sheet!Header#row". Columns
// without a header fall back to the cell reference.
type ExcelExtractor struct{}

func (e *ExcelExtractor) Extract(reader io.Reader) (map[string]string, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	fields := make(map[string]string)
	for _, sheet := range f.GetSheetList() {
		rows, err := f.Rows(sheet)
		if err != nil {
			continue
		}

		var headers []string
		rowIdx := 0
		for rows.Next() {
			rowIdx++
			row, err := rows.Columns()
			if err != nil {
				break
			}
			if rowIdx == 1 {
				headers = row
				continue
			}

			for colIdx, cell := range row {
				if colIdx >= maxColumns {
					break
				}
				if strings.TrimSpace(cell) == "" {
					continue
				}
				fields[cellField(sheet, headers, colIdx, rowIdx)] = cell
			}
		}
		rows.Close()
	}

	return fields, nil
}

func cellField(sheet string, headers []string, col, row int) string {
	if col < len(headers) && strings.TrimSpace(headers[col]) != "" {
		return fmt.Sprintf("%s!%s#%d", sheet, strings.TrimSpace(headers[col]), row)
	}
	ref, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		ref = fmt.Sprintf("C%dR%d", col+1, row)
	}
	return fmt.Sprintf("%s!%s", sheet, ref)
}
