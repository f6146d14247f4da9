package checker

import (
	"fmt"
	"time"
)

// FailureKind classifies why a target was reported down.
type FailureKind string

const (
	// FailureNone marks a successful result.
	FailureNone FailureKind = ""
	// InvalidURLFormat marks a target without an http:// or https:// prefix.
	// No request is made for it.
	InvalidURLFormat FailureKind = "InvalidUrlFormat"
	// UnreachableAfterRetries marks a target that never answered below 400
	// within the attempt budget.
	UnreachableAfterRetries FailureKind = "UnreachableAfterRetries"
)

// NoStatus is the status code recorded when no response was ever received.
const NoStatus = -1

// ReasonInvalidURL is the reason reported for targets without an http(s) scheme.
const ReasonInvalidURL = "Invalid URL format"

// Result is the outcome of checking one target.
type Result struct {
	URL        string
	OK         bool
	StatusCode int
	Kind       FailureKind
	Attempts   int
	Duration   time.Duration
	LastError  string
}

// Reason renders the failure the way report lines carry it. It is empty for
// successful results.
func (r Result) Reason() string {
	switch r.Kind {
	case InvalidURLFormat:
		return ReasonInvalidURL
	case UnreachableAfterRetries:
		return StatusReason(r.StatusCode)
	default:
		return ""
	}
}

// StatusReason formats the reason for a target that never answered below 400.
func StatusReason(code int) string {
	return fmt.Sprintf("Status: %d", code)
}
