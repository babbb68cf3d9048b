package nagios

import "strings"

// Result is the terminal outcome of one check run: everything the
// supervisor reads from stdout, plus the exit code that accompanies it.
type Result struct {
	Name    string
	Status  Status
	Message string
	Perf    []PerfData
}

// String renders the single status line: "NAME STATUS - message | perfdata".
// The perfdata section is omitted when there are no entries.
func (r Result) String() string {
	var b strings.Builder
	if r.Name != "" {
		b.WriteString(r.Name)
		b.WriteString(" ")
	}
	b.WriteString(r.Status.String())
	if r.Message != "" {
		b.WriteString(" - ")
		b.WriteString(r.Message)
	}
	if len(r.Perf) > 0 {
		entries := make([]string, 0, len(r.Perf))
		for _, p := range r.Perf {
			entries = append(entries, p.String())
		}
		b.WriteString(" | ")
		b.WriteString(strings.Join(entries, " "))
	}
	return b.String()
}

// ShortName derives the conventional display name from a plugin binary
// name: the "check_" prefix is dropped and the remainder uppercased, so
// "check_swap" becomes "SWAP".
func ShortName(plugin string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.ToLower(plugin), "check_"))
}
