package ports

import "github.com/AntonioJCosta/ngenctl/internal/core/domain/alias"

// AliasResolver expands command names through an alias mapping.
type AliasResolver interface {
	// Resolve returns the fully expanded text for name, or name itself when it is
	// not an alias or when expansion runs into a cycle.
	Resolve(name string, aliases alias.Mapping) string

	// Expand is like Resolve but reports a cycle as an error instead of falling back.
	Expand(name string, aliases alias.Mapping) (string, error)
}
