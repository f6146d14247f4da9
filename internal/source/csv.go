package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// CSVLoader reads the first field of every record. Records may have any
// number of fields.
type CSVLoader struct {
	Path  string
	Comma rune
}

func (l *CSVLoader) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", l.Path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if l.Comma != 0 {
		r.Comma = l.Comma
	}
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", l.Path, err)
	}

	values := make([]string, 0, len(records))
	for i, record := range records {
		value := ""
		if len(record) > 0 {
			value = record[0]
		}
		if i == 0 {
			value = strings.TrimPrefix(value, utf8BOM)
		}
		values = append(values, value)
	}

	return values, nil
}
