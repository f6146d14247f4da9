// Package config loads the checker configuration from an optional YAML file,
// AVAILABILITY_* environment variables and command-line flags, then validates
// it. It covers the input source, the retry policy, the report sinks and
// logging.
package config
