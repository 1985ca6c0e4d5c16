package polyline

import "fmt"

// ConfigError reports a missing or out-of-range configuration value. It is
// returned before any computation runs.
type ConfigError struct {
	// Param names the offending configuration field.
	Param string
	// Reason describes the constraint that was violated.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Param, e.Reason)
}

func configErrorf(param, format string, args ...any) error {
	return &ConfigError{Param: param, Reason: fmt.Sprintf(format, args...)}
}

// ComputeError reports that a strategy completed but produced an empty or
// degenerate result. Partial results are never returned alongside it.
type ComputeError struct {
	// Op names the operation that failed, e.g. "optimize" or "offset".
	Op string
	// Reason describes the degenerate outcome.
	Reason string
}

func (e *ComputeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
