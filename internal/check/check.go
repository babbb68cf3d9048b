// Package check wires collection, aggregation and threshold evaluation
// into one plugin run.
package check

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/monify-labs/check_swap/internal/collector"
	"github.com/monify-labs/check_swap/internal/config"
	"github.com/monify-labs/check_swap/internal/swap"
	"github.com/monify-labs/check_swap/pkg/nagios"
)

// Check evaluates one swap measurement against threshold ranges.
type Check struct {
	opts   *config.Options
	source collector.Source
	name   string
}

// New builds a check from parsed options, collecting from the source the
// options select.
func New(opts *config.Options) *Check {
	var src collector.Source
	if opts.Source == "native" {
		src = collector.NewNativeSource()
	} else {
		src = collector.NewCommandSource(opts.Swapinfo)
	}
	return NewWithSource(opts, src)
}

// NewWithSource builds a check that collects from src.
func NewWithSource(opts *config.Options, src collector.Source) *Check {
	return &Check{
		opts:   opts,
		source: src,
		name:   nagios.ShortName(config.PluginName),
	}
}

// Run executes the whole pipeline under the configured deadline. Every
// failure is folded into an UNKNOWN result, so the caller only has to
// print the result and exit with its code.
func (c *Check) Run() *nagios.Result {
	ctx, cancel := context.WithTimeout(context.Background(), c.opts.Timeout())
	defer cancel()

	done := make(chan *nagios.Result, 1)
	go func() {
		done <- c.run(ctx)
	}()

	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		return c.timeoutResult()
	}
}

func (c *Check) run(ctx context.Context) *nagios.Result {
	if c.opts.Measurement == "" {
		return c.unknownf("missing required option -m/--measurement; must be one of %s", swap.MeasurementNames())
	}
	measurement, err := swap.ParseMeasurement(c.opts.Measurement)
	if err != nil {
		return c.unknownf("%v", err)
	}

	threshold, err := parseThreshold(c.opts.Warning, c.opts.Critical)
	if err != nil {
		return c.unknownf("%v", err)
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		if desc, err := collector.HostDescription(ctx); err == nil {
			log.Debugf("[CHECK] running on %s", desc)
		}
	}

	log.Infof("[CHECK] collecting swap summary from %s", c.source.Name())

	raw, err := c.source.Summary(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return c.timeoutResult()
		}
		return c.unknownf("%v", err)
	}
	log.Tracef("[CHECK] raw summary:\n%s", raw)

	counts, err := swap.Aggregate(raw, c.opts.Strict)
	if err != nil {
		return c.unknownf("%v", err)
	}
	log.Debugf("[CHECK] aggregated counters: total=%d used=%d avail=%d usage=%d%%",
		counts.TotalBlocks, counts.UsedBlocks, counts.AvailBlocks, counts.UsagePercent)

	value := measurement.Select(counts)
	status := threshold.Evaluate(float64(value))

	// A clean reading with nothing to compare it against cannot be
	// called OK.
	if status == nagios.StatusOK && threshold.Warning == nil && threshold.Critical == nil {
		status = nagios.StatusUnknown
	}

	return &nagios.Result{
		Name:    c.name,
		Status:  status,
		Message: fmt.Sprintf("%d%s %s", value, measurement.Unit(), measurement),
		Perf: []nagios.PerfData{{
			Label:    measurement.String(),
			Value:    float64(value),
			UOM:      measurement.Unit(),
			Warning:  c.opts.Warning,
			Critical: c.opts.Critical,
		}},
	}
}

// parseThreshold builds the threshold pair from the raw range specs. An
// empty spec means no bound of that severity.
func parseThreshold(warning, critical string) (nagios.Threshold, error) {
	var th nagios.Threshold
	if warning != "" {
		r, err := nagios.ParseRange(warning)
		if err != nil {
			return th, fmt.Errorf("warning: %w", err)
		}
		th.Warning = r
	}
	if critical != "" {
		r, err := nagios.ParseRange(critical)
		if err != nil {
			return th, fmt.Errorf("critical: %w", err)
		}
		th.Critical = r
	}
	return th, nil
}

func (c *Check) unknownf(format string, args ...any) *nagios.Result {
	return &nagios.Result{
		Name:    c.name,
		Status:  nagios.StatusUnknown,
		Message: fmt.Sprintf(format, args...),
	}
}

func (c *Check) timeoutResult() *nagios.Result {
	return c.unknownf("plugin timed out after %s", c.opts.Timeout())
}
