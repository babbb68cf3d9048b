package collector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DefaultSwapinfoPath is where the BSD swap reporting utility normally
// lives.
const DefaultSwapinfoPath = "/usr/sbin/swapinfo"

// summaryFlag makes swapinfo report sizes in 1K blocks.
const summaryFlag = "-k"

// ErrNoUsableData reports that the swap utility produced no summary
// output to aggregate.
var ErrNoUsableData = errors.New("no usable data in swap summary output")

// CommandSource collects the swap summary by executing the system swap
// utility.
type CommandSource struct {
	// Path is the location of the swapinfo binary.
	Path string
}

// NewCommandSource returns a source that runs the swap utility at path.
func NewCommandSource(path string) *CommandSource {
	return &CommandSource{Path: path}
}

// Name returns the command line the source runs.
func (s *CommandSource) Name() string {
	return s.Path + " " + summaryFlag
}

// Summary runs the swap utility and returns its standard output. The
// binary is validated before any subprocess is spawned, and the context
// deadline kills a hanging utility.
func (s *CommandSource) Summary(ctx context.Context) (string, error) {
	if err := s.validate(); err != nil {
		return "", err
	}

	log.Debugf("[EXEC] running %s %s", s.Path, summaryFlag)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.Path, summaryFlag)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				log.Debugf("[EXEC] stderr: %s", msg)
			}
			return "", fmt.Errorf("%s exited with status %d", s.Path, exitErr.ExitCode())
		}
		return "", fmt.Errorf("running %s: %w", s.Path, err)
	}

	out := stdout.String()
	log.Debugf("[EXEC] read %d bytes of summary output", len(out))

	if strings.TrimSpace(out) == "" {
		return "", ErrNoUsableData
	}
	return out, nil
}

// validate checks that the utility exists, is a regular file and carries
// an execute bit.
func (s *CommandSource) validate() error {
	info, err := os.Stat(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("swap utility %s does not exist", s.Path)
		}
		return fmt.Errorf("swap utility %s: %w", s.Path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("swap utility %s is not a regular file", s.Path)
	}
	if info.Mode().Perm()&0111 == 0 {
		return fmt.Errorf("swap utility %s is not executable", s.Path)
	}
	return nil
}
