package nagios

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Range is a threshold range in the standard monitoring syntax. A bare
// number is an upper bound with an implied lower bound of zero; "min:max",
// "min:" and ":max" bound one or both sides; "~" stands for negative
// infinity; a leading "@" inverts the range so values inside it alert
// instead of values outside it.
type Range struct {
	spec   string
	min    float64
	max    float64
	inside bool
}

// ParseRange parses a range specification, keeping the original text for
// performance-data output.
func ParseRange(spec string) (*Range, error) {
	if spec == "" {
		return nil, fmt.Errorf("empty threshold range")
	}

	r := &Range{spec: spec, min: 0, max: math.Inf(1)}
	s := spec
	if strings.HasPrefix(s, "@") {
		r.inside = true
		s = s[1:]
	}
	if s == "" {
		return nil, fmt.Errorf("invalid threshold range %q", spec)
	}

	var minPart, maxPart string
	if i := strings.Index(s, ":"); i >= 0 {
		minPart, maxPart = s[:i], s[i+1:]
	} else {
		// A bare value is the upper bound.
		maxPart = s
	}

	switch minPart {
	case "":
		// Implied zero.
	case "~":
		r.min = math.Inf(-1)
	default:
		v, err := strconv.ParseFloat(minPart, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid threshold range %q", spec)
		}
		r.min = v
	}

	if maxPart != "" {
		v, err := strconv.ParseFloat(maxPart, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid threshold range %q", spec)
		}
		r.max = v
	}

	if r.min > r.max {
		return nil, fmt.Errorf("invalid threshold range %q: start must not exceed end", spec)
	}
	return r, nil
}

// Check reports whether the value breaches the range: outside [min,max]
// normally, inside it when the range was negated with "@".
func (r *Range) Check(value float64) bool {
	if r.inside {
		return value >= r.min && value <= r.max
	}
	return value < r.min || value > r.max
}

// String returns the specification text the range was parsed from.
func (r *Range) String() string {
	return r.spec
}

// Threshold pairs the optional warning and critical ranges of a check.
type Threshold struct {
	Warning  *Range
	Critical *Range
}

// Evaluate maps a value to a status: CRITICAL if it breaches the critical
// range, otherwise WARNING if it breaches the warning range, otherwise OK.
// Absent ranges never breach.
func (t Threshold) Evaluate(value float64) Status {
	if t.Critical != nil && t.Critical.Check(value) {
		return StatusCritical
	}
	if t.Warning != nil && t.Warning.Check(value) {
		return StatusWarning
	}
	return StatusOK
}
