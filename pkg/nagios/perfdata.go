package nagios

import (
	"fmt"
	"strconv"
	"strings"
)

// PerfData is one performance-data entry: a labeled value with its unit of
// measure and the original threshold specifications it was judged against.
type PerfData struct {
	Label    string
	Value    float64
	UOM      string
	Warning  string
	Critical string
}

// String renders the entry as label=value[UOM];warn;crit, trimming empty
// trailing parts. Labels containing spaces or quotes are single-quoted.
func (p PerfData) String() string {
	label := p.Label
	if strings.ContainsAny(label, " '=\"") {
		label = "'" + strings.ReplaceAll(label, "'", "''") + "'"
	}
	value := strconv.FormatFloat(p.Value, 'f', -1, 64)
	s := fmt.Sprintf("%s=%s%s;%s;%s", label, value, p.UOM, p.Warning, p.Critical)
	return strings.TrimRight(s, ";")
}
