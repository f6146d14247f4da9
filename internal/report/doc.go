// Package report turns check results into a Failure Report and publishes it
// through pluggable sinks.
//
// A report is failed when at least one target never answered below 400 or
// was malformed. Each failure renders as one line:
//
//	DOWN | https://down.example | Status: 503
//
// Sinks decide where that text goes: the console, an alert file picked up by
// CI mailers, variables exported to the CI job environment, or a YAML
// document with every result. Multi publishes to several sinks at once.
package report
