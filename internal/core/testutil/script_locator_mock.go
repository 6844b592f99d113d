package testutil

import (
	"path/filepath"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/script"
	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
)

// MockScriptLocator is a mock implementation of ports.ScriptLocator.
type MockScriptLocator struct {
	LocateFunc           func(command string) (script.Candidate, bool)
	EnumerateFunc        func() []script.Candidate
	ExpectedPathFunc     func(command string) string
	EnsureExecutableFunc func(path string) error

	// LocateCalls keeps track of the commands passed to Locate.
	LocateCalls []string
	// EnsureExecutableCalls keeps track of the paths passed to EnsureExecutable.
	EnsureExecutableCalls []string
}

func (m *MockScriptLocator) Locate(command string) (script.Candidate, bool) {
	m.LocateCalls = append(m.LocateCalls, command)
	if m.LocateFunc != nil {
		return m.LocateFunc(command)
	}
	return script.Candidate{}, false
}

func (m *MockScriptLocator) Enumerate() []script.Candidate {
	if m.EnumerateFunc != nil {
		return m.EnumerateFunc()
	}
	return nil
}

func (m *MockScriptLocator) ExpectedPath(command string) string {
	if m.ExpectedPathFunc != nil {
		return m.ExpectedPathFunc(command)
	}
	return filepath.Join("/usr/local/bin", "ngenctl-"+command)
}

func (m *MockScriptLocator) EnsureExecutable(path string) error {
	m.EnsureExecutableCalls = append(m.EnsureExecutableCalls, path)
	if m.EnsureExecutableFunc != nil {
		return m.EnsureExecutableFunc(path)
	}
	return nil
}

var _ ports.ScriptLocator = (*MockScriptLocator)(nil)

// NewStaticScriptLocator returns a locator that finds exactly the given
// command -> path entries, all reported as system scripts.
func NewStaticScriptLocator(scripts map[string]string) *MockScriptLocator {
	return &MockScriptLocator{
		LocateFunc: func(command string) (script.Candidate, bool) {
			path, ok := scripts[command]
			if !ok {
				return script.Candidate{}, false
			}
			return script.Candidate{Command: command, Path: path, Source: script.SourceSystem}, true
		},
	}
}
