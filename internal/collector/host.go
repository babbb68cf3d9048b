package collector

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/host"
)

// HostDescription reports the platform the check runs on, for diagnostic
// logging.
func HostDescription(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s (%s, kernel %s)",
		info.Platform, info.PlatformVersion, info.OS, info.KernelVersion), nil
}
