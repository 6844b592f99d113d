package oscommand

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
)

// Launcher implements the ProcessLauncher interface by executing scripts
// directly, without an intermediate shell.
type Launcher struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewLauncher creates a launcher wired to the current process's standard streams.
func NewLauncher() ports.ProcessLauncher {
	return NewLauncherWithStreams(os.Stdin, os.Stdout, os.Stderr)
}

// NewLauncherWithStreams creates a launcher wired to the given streams.
func NewLauncherWithStreams(stdin io.Reader, stdout, stderr io.Writer) ports.ProcessLauncher {
	return &Launcher{stdin: stdin, stdout: stdout, stderr: stderr}
}

// Run implements the ports.ProcessLauncher interface. A child that exits
// with a non-zero status is not an error; its status is returned as-is.
func (l *Launcher) Run(path string, args []string, env []string) (int, error) {
	cmd := exec.Command(path, args...)
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		// Killed by a signal.
		return 128 + signalNumber(exitErr), nil
	}
	return -1, fmt.Errorf("failed to start %s: %w", path, err)
}
