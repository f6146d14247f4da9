package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Values of the exported <prefix>_STATUS variable.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// ErrNoEnvFile is returned by EnvSink when no file path is set.
var ErrNoEnvFile = errors.New("env file path is empty")

// EnvSink appends CI variables to an env file such as $GITHUB_ENV. Each
// variable name starts with Prefix followed by an underscore. Multi-line
// values use the NAME<<DELIMITER heredoc form.
type EnvSink struct {
	Path   string
	Prefix string
}

// Variables returns the exported names and values in a stable order.
func (s EnvSink) Variables(r Report) [][2]string {
	status := StatusPassed
	if r.Failed() {
		status = StatusFailed
	}

	return [][2]string{
		{s.Prefix + "_STATUS", status},
		{s.Prefix + "_FAILED_COUNT", strconv.Itoa(len(r.Failures))},
		{s.Prefix + "_CHECKED_AT", r.Timestamp()},
		{s.Prefix + "_FAILURE_DETAILS", strings.TrimSuffix(r.Message(), "\n")},
	}
}

func (s EnvSink) Publish(_ context.Context, r Report) error {
	if s.Path == "" {
		return ErrNoEnvFile
	}

	var sb strings.Builder
	for _, kv := range s.Variables(r) {
		writeVariable(&sb, kv[0], kv[1])
	}

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open env file: %w", err)
	}

	if _, err := f.WriteString(sb.String()); err != nil {
		f.Close()
		return fmt.Errorf("write env file: %w", err)
	}
	return f.Close()
}

func writeVariable(sb *strings.Builder, name, value string) {
	if !strings.ContainsAny(value, "\r\n") {
		fmt.Fprintf(sb, "%s=%s\n", name, value)
		return
	}

	delim := heredocDelimiter(value)
	fmt.Fprintf(sb, "%s<<%s\n%s\n%s\n", name, delim, value, delim)
}

// heredocDelimiter picks a delimiter that does not occur as a line of value.
func heredocDelimiter(value string) string {
	lines := strings.Split(value, "\n")
	for i := 0; ; i++ {
		delim := "EOF"
		if i > 0 {
			delim = "EOF_" + strconv.Itoa(i)
		}
		clash := false
		for _, line := range lines {
			if strings.TrimRight(line, "\r") == delim {
				clash = true
				break
			}
		}
		if !clash {
			return delim
		}
	}
}
