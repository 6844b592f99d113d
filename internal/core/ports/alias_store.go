package ports

import "github.com/AntonioJCosta/ngenctl/internal/core/domain/alias"

/*
AliasStore persists the whole alias mapping. This is a driven port,
implemented by a repository adapter.
*/
type AliasStore interface {
	/*
	   Load returns the persisted mapping. A missing store is created empty and
	   a malformed one is reported as a warning; both yield an empty mapping.
	*/
	Load() alias.Mapping

	// Save replaces the persisted mapping with aliases.
	Save(aliases alias.Mapping) error

	// Location returns where the mapping is stored, for display.
	Location() string
}
