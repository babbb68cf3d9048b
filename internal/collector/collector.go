// Package collector obtains the raw swap summary the check evaluates,
// either by running the system swap utility or by reading kernel counters
// directly.
package collector

import "context"

// Source produces the raw swap summary for one check run.
type Source interface {
	// Summary returns swap usage in the tabular layout of swapinfo -k:
	// a header line followed by one row per swap device.
	Summary(ctx context.Context) (string, error)

	// Name identifies the source in log output.
	Name() string
}
