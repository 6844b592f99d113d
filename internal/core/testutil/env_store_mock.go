package testutil

import (
	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
)

// MockEnvStore is a mock implementation of ports.EnvStore.
type MockEnvStore struct {
	LoadFunc func() (map[string]string, error)
	SaveFunc func(env map[string]string) error
}

func (m *MockEnvStore) Load() (map[string]string, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return map[string]string{}, nil // Default: no env file entries
}

func (m *MockEnvStore) Save(env map[string]string) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(env)
	}
	return nil
}

func (m *MockEnvStore) Location() string {
	return "~/.ngenctl/.env"
}

var _ ports.EnvStore = (*MockEnvStore)(nil)

// NewInMemoryEnvStore returns a MockEnvStore backed by the given entries.
// Save replaces the entries returned by later Load calls.
func NewInMemoryEnvStore(initial map[string]string) *MockEnvStore {
	current := copyEnv(initial)
	return &MockEnvStore{
		LoadFunc: func() (map[string]string, error) { return copyEnv(current), nil },
		SaveFunc: func(env map[string]string) error {
			current = copyEnv(env)
			return nil
		},
	}
}

func copyEnv(env map[string]string) map[string]string {
	out := make(map[string]string, len(env))
	for k, v := range env {
		out[k] = v
	}
	return out
}
