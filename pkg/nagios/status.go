// Package nagios implements the monitoring-plugin output contract: check
// statuses with their conventional exit codes, threshold ranges in the
// standard alerting syntax, and the single status line with performance
// data that a monitoring supervisor parses.
package nagios

// Status is the outcome of one check run. The integer values are the
// standard monitoring-plugin exit codes.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

// String returns the conventional uppercase label for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code the supervisor expects for the
// status. Anything out of range maps to UNKNOWN.
func (s Status) ExitCode() int {
	if s < StatusOK || s > StatusUnknown {
		return int(StatusUnknown)
	}
	return int(s)
}
