package source

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelLoader reads the first column of a worksheet.
type ExcelLoader struct {
	Path  string
	Sheet string
}

func (l *ExcelLoader) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", l.Path, err)
	}
	defer f.Close()

	sheet := l.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", l.Path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, l.Path, err)
	}

	values := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			values = append(values, "")
			continue
		}
		values = append(values, row[0])
	}

	return values, nil
}
