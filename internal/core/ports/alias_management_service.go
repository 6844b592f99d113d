package ports

import "github.com/AntonioJCosta/ngenctl/internal/core/domain/alias"

// ImportResult summarizes an alias import.
type ImportResult struct {
	Added       []string
	Overwritten []string
	Skipped     []string
	Invalid     []string
}

// AliasManagementService defines the contract for managing user aliases.
type AliasManagementService interface {
	// SetAlias creates or replaces an alias. It returns true if the alias was
	// newly created and false if an existing definition was replaced.
	SetAlias(name, expansion string) (bool, error)

	// RemoveAlias deletes an alias. Removing an unknown alias is an error.
	RemoveAlias(name string) error

	// ListAliases returns every stored alias.
	ListAliases() alias.Mapping

	// ResolveAlias returns the expansion of name, or an error if it is unknown
	// or takes part in a cycle.
	ResolveAlias(name string) (string, error)

	// ImportAliases merges aliases from provider into the store in one save.
	ImportAliases(provider AliasProvider, overwrite bool) (ImportResult, error)

	// StoreLocation returns where aliases are persisted.
	StoreLocation() string
}
