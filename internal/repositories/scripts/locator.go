package scripts

import (
	"fmt"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/script"
	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
	"github.com/spf13/afero"
)

// ExecutableMode is applied to scripts found without any execute bit.
const ExecutableMode = 0o755

// Locator implements ports.ScriptLocator over an ordered list of directories.
type Locator struct {
	fs        afero.Fs
	locations []script.Location
}

// NewLocator creates a new script locator. The order of locations is the
// search priority; at least one location is required.
func NewLocator(fs afero.Fs, locations []script.Location) (ports.ScriptLocator, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem cannot be nil")
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("at least one script location is required")
	}
	return &Locator{fs: fs, locations: append([]script.Location(nil), locations...)}, nil
}

// Locate implements the ports.ScriptLocator interface.
func (l *Locator) Locate(command string) (script.Candidate, bool) {
	if !isPlainCommandName(command) {
		return script.Candidate{}, false
	}
	for _, loc := range l.locations {
		path := loc.PathFor(command)
		if isRegularFile(l.fs, path) {
			return script.Candidate{Command: command, Path: path, Source: loc.Source}, true
		}
	}
	return script.Candidate{}, false
}

// Enumerate implements the ports.ScriptLocator interface.
func (l *Locator) Enumerate() []script.Candidate {
	return EnumerateCandidates(l.fs, l.locations)
}

// ExpectedPath implements the ports.ScriptLocator interface.
func (l *Locator) ExpectedPath(command string) string {
	return l.locations[0].PathFor(command)
}

// EnsureExecutable implements the ports.ScriptLocator interface.
func (l *Locator) EnsureExecutable(path string) error {
	info, err := l.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat script %s: %w", path, err)
	}
	if info.Mode().Perm()&0o111 != 0 {
		return nil
	}
	if err := l.fs.Chmod(path, ExecutableMode); err != nil {
		return fmt.Errorf("failed to make %s executable: %w", path, err)
	}
	return nil
}

var _ ports.ScriptLocator = (*Locator)(nil)
