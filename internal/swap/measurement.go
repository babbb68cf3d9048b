package swap

import (
	"fmt"
	"strings"
)

// Measurement identifies which aggregated counter the check evaluates and
// reports.
type Measurement int

const (
	TotalSwapBlocks Measurement = iota
	UsedSwapBlocks
	AvailableSwapBlocks
	SwapUsage
)

var measurementNames = [...]string{
	TotalSwapBlocks:     "total_swap_blocks",
	UsedSwapBlocks:      "used_swap_blocks",
	AvailableSwapBlocks: "available_swap_blocks",
	SwapUsage:           "swap_usage",
}

// ParseMeasurement resolves a measurement name as given on the command
// line. The match is exact and case-sensitive.
func ParseMeasurement(name string) (Measurement, error) {
	for i, n := range measurementNames {
		if n == name {
			return Measurement(i), nil
		}
	}
	return 0, fmt.Errorf("invalid measurement %q: must be one of %s", name, MeasurementNames())
}

// MeasurementNames returns the valid measurement names joined for use in
// error and usage text.
func MeasurementNames() string {
	return strings.Join(measurementNames[:], ", ")
}

func (m Measurement) String() string {
	if m < 0 || int(m) >= len(measurementNames) {
		return "unknown"
	}
	return measurementNames[m]
}

// Unit returns the perfdata unit of measure for the metric, kB for the
// block counters and % for usage.
func (m Measurement) Unit() string {
	if m == SwapUsage {
		return "%"
	}
	return "kB"
}

// Select extracts the counter this measurement evaluates.
func (m Measurement) Select(c Counters) uint64 {
	switch m {
	case TotalSwapBlocks:
		return c.TotalBlocks
	case UsedSwapBlocks:
		return c.UsedBlocks
	case AvailableSwapBlocks:
		return c.AvailBlocks
	case SwapUsage:
		return c.UsagePercent
	}
	return 0
}
