package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Loader returns the first-column values of a tabular source.
type Loader interface {
	Load(ctx context.Context) ([]string, error)
}

type Options struct {
	// Sheet selects a worksheet in a workbook. Empty means the first sheet.
	Sheet string
}

var ErrUnsupportedFormat = errors.New("unsupported input format")

const utf8BOM = "\ufeff"

// ForPath picks a loader from the file extension.
func ForPath(path string, opts Options) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return &ExcelLoader{Path: path, Sheet: opts.Sheet}, nil
	case ".csv":
		return &CSVLoader{Path: path, Comma: ','}, nil
	case ".tsv":
		return &CSVLoader{Path: path, Comma: '\t'}, nil
	case ".html", ".htm":
		return &HTMLLoader{Path: path}, nil
	case ".txt", ".list":
		return &TextLoader{Path: path}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Load is a shorthand for ForPath followed by Load.
func Load(ctx context.Context, path string, opts Options) ([]string, error) {
	loader, err := ForPath(path, opts)
	if err != nil {
		return nil, err
	}
	return loader.Load(ctx)
}
