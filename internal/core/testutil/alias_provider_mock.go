package testutil

import (
	"github.com/AntonioJCosta/ngenctl/internal/core/domain/alias"
	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
)

// MockAliasProvider is a mock implementation of ports.AliasProvider.
type MockAliasProvider struct {
	GetAliasesFunc func() ([]alias.Alias, error)
}

func (m *MockAliasProvider) GetAliases() ([]alias.Alias, error) {
	if m.GetAliasesFunc != nil {
		return m.GetAliasesFunc()
	}
	return nil, nil // Default behavior
}

var _ ports.AliasProvider = (*MockAliasProvider)(nil)
