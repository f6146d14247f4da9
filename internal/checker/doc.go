// Package checker probes target URLs for HTTP availability.
//
// Targets are checked one at a time. Each target gets a fixed number of GET
// attempts with a fixed pause between them; a response below 400 is a
// success. Every target yields exactly one Result, whether it was malformed,
// reachable or unreachable, and the run never stops early on a failure.
package checker
