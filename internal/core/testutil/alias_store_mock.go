package testutil

import (
	"errors"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/alias"
	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
)

// MockAliasStore is a mock implementation of ports.AliasStore for testing.
type MockAliasStore struct {
	LoadFunc     func() alias.Mapping
	SaveFunc     func(aliases alias.Mapping) error
	LocationFunc func() string

	// SaveCalls records every mapping passed to Save.
	SaveCalls []alias.Mapping
}

func (m *MockAliasStore) Load() alias.Mapping {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return alias.Mapping{}
}

func (m *MockAliasStore) Save(aliases alias.Mapping) error {
	m.SaveCalls = append(m.SaveCalls, aliases.Clone())
	if m.SaveFunc != nil {
		return m.SaveFunc(aliases)
	}
	return errors.New("MockAliasStore: SaveFunc not implemented")
}

func (m *MockAliasStore) Location() string {
	if m.LocationFunc != nil {
		return m.LocationFunc()
	}
	return "~/.ngenctl/alias.json"
}

var _ ports.AliasStore = (*MockAliasStore)(nil)

// NewInMemoryAliasStore returns a MockAliasStore backed by the given mapping.
// Save replaces the mapping returned by later Load calls.
func NewInMemoryAliasStore(initial alias.Mapping) *MockAliasStore {
	current := initial.Clone()
	m := &MockAliasStore{}
	m.LoadFunc = func() alias.Mapping { return current.Clone() }
	m.SaveFunc = func(aliases alias.Mapping) error {
		current = aliases.Clone()
		return nil
	}
	return m
}
