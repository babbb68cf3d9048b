package collector

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/mem"
	log "github.com/sirupsen/logrus"
)

// NativeSource collects swap usage from the kernel via gopsutil instead
// of shelling out. It renders the counters in the tabular layout the
// swap utility prints so both sources feed the same parser.
type NativeSource struct{}

// NewNativeSource returns a source backed by kernel counters.
func NewNativeSource() *NativeSource {
	return &NativeSource{}
}

func (s *NativeSource) Name() string {
	return "native"
}

// Summary reads per-device swap usage and falls back to the system-wide
// totals when the platform cannot enumerate swap devices.
func (s *NativeSource) Summary(ctx context.Context) (string, error) {
	var b strings.Builder
	b.WriteString("Device 1K-blocks Used Avail Capacity\n")

	devices, err := mem.SwapDevicesWithContext(ctx)
	if err == nil && len(devices) > 0 {
		for _, dev := range devices {
			writeRow(&b, dev.Name, dev.UsedBytes, dev.FreeBytes)
		}
		return b.String(), nil
	}
	if err != nil {
		log.Debugf("[NATIVE] swap device enumeration unavailable: %v", err)
	}

	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("reading swap counters: %w", err)
	}
	writeRow(&b, "swap", swap.Used, swap.Free)
	return b.String(), nil
}

// writeRow appends one device row with sizes converted to 1K blocks.
func writeRow(b *strings.Builder, name string, usedBytes, freeBytes uint64) {
	totalKB := (usedBytes + freeBytes) / 1024
	usedKB := usedBytes / 1024
	availKB := freeBytes / 1024

	capacity := uint64(0)
	if totalKB > 0 {
		capacity = usedKB * 100 / totalKB
	}

	fmt.Fprintf(b, "%s %d %d %d %d%%\n", name, totalKB, usedKB, availKB, capacity)
}
