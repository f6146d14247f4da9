package report

import (
	"strings"
	"time"

	"github.com/angeloszaimis/availability-checker/internal/checker"
)

// TimeLayout formats report timestamps as a local ISO date-time.
const TimeLayout = "2006-01-02T15:04:05"

const linePrefix = "DOWN | "

// Failure is one target that never answered below 400 or was malformed.
type Failure struct {
	URL    string
	Reason string
}

// String renders the failure as "url | reason".
func (f Failure) String() string {
	return f.URL + " | " + f.Reason
}

// Report is the outcome of one run.
type Report struct {
	Results   []checker.Result
	Failures  []Failure
	CheckedAt time.Time
}

// New collects the failed results, keeping their order.
func New(results []checker.Result, checkedAt time.Time) Report {
	r := Report{
		Results:   results,
		CheckedAt: checkedAt,
	}
	for _, res := range results {
		if res.OK {
			continue
		}
		r.Failures = append(r.Failures, Failure{URL: res.URL, Reason: res.Reason()})
	}
	return r
}

// Failed reports whether any target is down or malformed.
func (r Report) Failed() bool {
	return len(r.Failures) > 0
}

// Lines renders every failure as "DOWN | url | reason".
func (r Report) Lines() []string {
	lines := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		lines = append(lines, linePrefix+f.String())
	}
	return lines
}

// Message joins the lines, each terminated by a newline. It is empty when
// nothing failed.
func (r Report) Message() string {
	var sb strings.Builder
	for _, line := range r.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Timestamp formats CheckedAt with TimeLayout.
func (r Report) Timestamp() string {
	return r.CheckedAt.Format(TimeLayout)
}
