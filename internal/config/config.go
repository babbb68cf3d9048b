// Package config parses the command line the check is invoked with,
// merges defaults from an extra-opts file, and configures logging.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/monify-labs/check_swap/internal/collector"
	"github.com/monify-labs/check_swap/internal/swap"
)

const (
	// PluginName is the canonical binary name of the check.
	PluginName = "check_swap"

	// DefaultTimeout bounds one whole check run.
	DefaultTimeout = 15 * time.Second
)

// Build info (injected at build time via ldflags)
var (
	Version   = "1.0.2"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Options holds one parsed invocation of the check.
type Options struct {
	Warning        string
	Critical       string
	Measurement    string
	TimeoutSeconds int
	Verbose        int
	Swapinfo       string
	Source         string
	Strict         bool
	ExtraOpts      string

	ShowHelp    bool
	ShowVersion bool

	flags *flag.FlagSet
}

// Parse reads the command line into Options. args holds the arguments
// after the program name.
func Parse(args []string) (*Options, error) {
	o := &Options{}

	fs := flag.NewFlagSet(PluginName, flag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)

	fs.StringVarP(&o.Warning, "warning", "w", "", "warning threshold `RANGE`")
	fs.StringVarP(&o.Critical, "critical", "c", "", "critical threshold `RANGE`")
	fs.StringVarP(&o.Measurement, "measurement", "m", "", "measurement to evaluate, one of "+swap.MeasurementNames())
	fs.IntVarP(&o.TimeoutSeconds, "timeout", "t", int(DefaultTimeout/time.Second), "abort the whole check after `SECONDS`")
	fs.CountVarP(&o.Verbose, "verbose", "v", "increase diagnostic output, repeatable")
	fs.StringVarP(&o.Swapinfo, "swapinfo", "s", collector.DefaultSwapinfoPath, "`PATH` of the swapinfo binary")
	fs.StringVar(&o.Source, "source", "command", "collect via the swap utility or kernel counters (command, native)")
	fs.BoolVar(&o.Strict, "strict", false, "reject summary output with malformed device rows")
	fs.StringVar(&o.ExtraOpts, "extra-opts", "", "read defaults from `[SECTION@]FILE`")
	fs.BoolVarP(&o.ShowVersion, "version", "V", false, "print version and exit")
	fs.BoolVarP(&o.ShowHelp, "help", "h", false, "print this help and exit")

	o.flags = fs

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Help and version short-circuit the run, so skip validation.
	if o.ShowHelp || o.ShowVersion {
		return o, nil
	}

	if o.ExtraOpts != "" {
		if err := o.applyExtraOpts(fs); err != nil {
			return nil, err
		}
	}

	return o, o.validate()
}

// applyExtraOpts merges option defaults from a YAML file into any flag
// the command line did not set. The argument names a section and file as
// SECTION@FILE, with the section defaulting to the plugin name.
func (o *Options) applyExtraOpts(fs *flag.FlagSet) error {
	section := PluginName
	file := o.ExtraOpts
	if i := strings.IndexByte(o.ExtraOpts, '@'); i >= 0 {
		if i > 0 {
			section = o.ExtraOpts[:i]
		}
		file = o.ExtraOpts[i+1:]
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("cannot read extra-opts file: %w", err)
	}

	var sections map[string]map[string]any
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return fmt.Errorf("cannot parse extra-opts file %s: %w", file, err)
	}

	opts, ok := sections[section]
	if !ok {
		return fmt.Errorf("extra-opts file %s has no %s section", file, section)
	}

	for key, raw := range opts {
		f := fs.Lookup(key)
		if f == nil {
			return fmt.Errorf("unknown option %q in extra-opts section %s", key, section)
		}
		if f.Changed {
			continue // command line wins
		}
		if err := fs.Set(key, fmt.Sprintf("%v", raw)); err != nil {
			return fmt.Errorf("extra-opts option %s: %w", key, err)
		}
	}
	return nil
}

func (o *Options) validate() error {
	if o.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", o.TimeoutSeconds)
	}
	switch o.Source {
	case "command", "native":
	default:
		return fmt.Errorf("invalid source %q: must be command or native", o.Source)
	}
	return nil
}

// Timeout returns the run deadline for this invocation.
func (o *Options) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds) * time.Second
}

// SetupLogging maps the verbosity count onto logrus levels. Diagnostics
// go to stderr so stdout stays reserved for the status line.
func (o *Options) SetupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	levels := []log.Level{log.WarnLevel, log.InfoLevel, log.DebugLevel, log.TraceLevel}
	v := o.Verbose
	if v >= len(levels) {
		v = len(levels) - 1
	}
	log.SetLevel(levels[v])
}

// Usage renders the help text for the flag surface.
func (o *Options) Usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s -m MEASUREMENT [-w RANGE] [-c RANGE] [options]\n\n", PluginName)
	b.WriteString("Aggregates swap usage across devices and checks one measurement\n")
	b.WriteString("against Nagios threshold ranges.\n\n")
	b.WriteString("Options:\n")
	b.WriteString(o.flags.FlagUsages())
	b.WriteString("\nSee https://www.monitoring-plugins.org/doc/guidelines.html#THRESHOLDFORMAT\n")
	b.WriteString("for the threshold range syntax.\n")
	return b.String()
}

// VersionLine renders the one-line version banner.
func VersionLine() string {
	return fmt.Sprintf("%s v%s (commit %s, built %s)", PluginName, Version, Commit, BuildDate)
}
