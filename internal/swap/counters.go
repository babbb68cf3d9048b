// Package swap models the data the check operates on: the column totals
// aggregated from the OS swap summary and the measurements derived from
// them.
package swap

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Counters holds the running totals of the four numeric columns of the
// swap summary. Every field is a plain column sum over the matched rows,
// including UsagePercent.
type Counters struct {
	TotalBlocks  uint64 // 1K-blocks column
	UsedBlocks   uint64 // Used column
	AvailBlocks  uint64 // Avail column
	UsagePercent uint64 // Capacity column, without the % sign
}

// summaryRow matches one device row of the summary output: four numeric
// fields separated by whitespace with the last immediately followed by a
// percent sign at end of line. Empty captures parse as zero.
var summaryRow = regexp.MustCompile(`(\d*)\s+(\d*)\s+(\d*)\s+(\d*)%$`)

// strictRow is the full shape a device row must have under strict
// validation: a device name and four complete numeric columns.
var strictRow = regexp.MustCompile(`^\S+\s+\d+\s+\d+\s+\d+\s+\d+%$`)

// Aggregate sums the numeric columns of every summary row in raw into one
// Counters. Lines that do not match the row pattern (headers, blanks) are
// skipped silently, and output with no matching rows yields all-zero
// counters. With strict enabled, a line ending in % that is not a
// well-formed device row is an error, as is output containing no device
// rows at all.
func Aggregate(raw string, strict bool) (Counters, error) {
	var counts Counters
	matched := 0

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		m := summaryRow.FindStringSubmatch(line)
		if m == nil {
			if strict && strings.HasSuffix(line, "%") {
				return Counters{}, fmt.Errorf("malformed device row %q", line)
			}
			continue
		}
		if strict && !strictRow.MatchString(line) {
			return Counters{}, fmt.Errorf("malformed device row %q", line)
		}

		counts.TotalBlocks += parseColumn(m[1])
		counts.UsedBlocks += parseColumn(m[2])
		counts.AvailBlocks += parseColumn(m[3])
		counts.UsagePercent += parseColumn(m[4])
		matched++
	}

	if strict && matched == 0 {
		return Counters{}, fmt.Errorf("no device rows in swap summary")
	}
	return counts, nil
}

// parseColumn converts one captured column to a count; an empty capture is
// zero.
func parseColumn(s string) uint64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
