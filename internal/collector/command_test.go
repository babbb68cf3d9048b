package collector

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript drops an executable shell script into dir and returns its
// path.
func writeScript(t *testing.T, dir, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures need a POSIX shell")
	}

	path := filepath.Join(dir, "swapinfo")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755)
	require.NoError(t, err)
	return path
}

func TestCommandSourceSummary(t *testing.T) {
	path := writeScript(t, t.TempDir(), `cat <<EOF
Device          1K-blocks     Used    Avail Capacity
/dev/da0p3        4194304      512  4193792     0%
EOF
`)

	out, err := NewCommandSource(path).Summary(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out, "/dev/da0p3")
	assert.Contains(t, out, "4194304")
}

func TestCommandSourcePassesSummaryFlag(t *testing.T) {
	path := writeScript(t, t.TempDir(), `echo "args $*"`)

	out, err := NewCommandSource(path).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "args -k\n", out)
}

func TestCommandSourceReportsExitStatus(t *testing.T) {
	path := writeScript(t, t.TempDir(), "echo 'swapinfo: kvm_open: /dev/mem: No such file' >&2\nexit 3\n")

	_, err := NewCommandSource(path).Summary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exited with status 3")
}

func TestCommandSourceEmptyOutput(t *testing.T) {
	path := writeScript(t, t.TempDir(), "exit 0\n")

	_, err := NewCommandSource(path).Summary(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoUsableData))
}

func TestCommandSourceWhitespaceOnlyOutput(t *testing.T) {
	path := writeScript(t, t.TempDir(), `printf '   \n\t\n'`)

	_, err := NewCommandSource(path).Summary(context.Background())
	assert.True(t, errors.Is(err, ErrNoUsableData))
}

func TestCommandSourceTimeout(t *testing.T) {
	path := writeScript(t, t.TempDir(), "sleep 10\n")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := NewCommandSource(path).Summary(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestCommandSourceMissingBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swapinfo")

	_, err := NewCommandSource(path).Summary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestCommandSourceDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := NewCommandSource(dir).Summary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a regular file")
}

func TestCommandSourceNotExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("execute bits are not a thing on windows")
	}

	path := filepath.Join(t.TempDir(), "swapinfo")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o644))

	_, err := NewCommandSource(path).Summary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not executable")
}

func TestCommandSourceName(t *testing.T) {
	assert.Equal(t, "/usr/sbin/swapinfo -k", NewCommandSource(DefaultSwapinfoPath).Name())
}
