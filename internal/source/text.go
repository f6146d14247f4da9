package source

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// TextLoader reads one row per line.
type TextLoader struct {
	Path string
}

func (l *TextLoader) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("open text %s: %w", l.Path, err)
	}
	defer f.Close()

	var values []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if len(values) == 0 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		values = append(values, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read text %s: %w", l.Path, err)
	}

	return values, nil
}
