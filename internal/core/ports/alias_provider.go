package ports

import "github.com/AntonioJCosta/ngenctl/internal/core/domain/alias"

// AliasProvider defines the interface for sourcing aliases from an external
// list, like a YAML file handed to "alias import".
type AliasProvider interface {
	GetAliases() ([]alias.Alias, error)
}
