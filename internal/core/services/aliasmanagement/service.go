package aliasmanagement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/alias"
	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
)

var (
	// ErrInvalidAliasName is returned when a name cannot be used as an alias.
	ErrInvalidAliasName = errors.New("invalid alias name")
	// ErrAliasNotFound is returned when an operation targets an undefined alias.
	ErrAliasNotFound = errors.New("alias not found")
)

type service struct {
	store    ports.AliasStore
	resolver ports.AliasResolver
	reserved map[string]bool
}

// NewService creates a new alias management service.
// reservedNames are command names that aliases may not shadow (the CLI builtins).
// It panics if store or resolver is nil.
func NewService(store ports.AliasStore, resolver ports.AliasResolver, reservedNames ...string) ports.AliasManagementService {
	if store == nil {
		panic("aliasStore cannot be nil")
	}
	if resolver == nil {
		panic("aliasResolver cannot be nil")
	}
	reserved := make(map[string]bool, len(reservedNames))
	for _, name := range reservedNames {
		reserved[name] = true
	}
	return &service{store: store, resolver: resolver, reserved: reserved}
}

// SetAlias creates or replaces an alias and persists the whole mapping.
// It returns true if the alias was newly created.
func (s *service) SetAlias(name, expansion string) (bool, error) {
	if err := s.validateName(name); err != nil {
		return false, err
	}

	aliases := s.store.Load()
	_, existed := aliases[name]
	aliases[name] = strings.TrimSpace(expansion)

	if err := s.store.Save(aliases); err != nil {
		return false, fmt.Errorf("failed to save alias '%s': %w", name, err)
	}
	return !existed, nil
}

// RemoveAlias deletes an alias and persists the remaining mapping.
func (s *service) RemoveAlias(name string) error {
	aliases := s.store.Load()
	if !aliases.Has(name) {
		return fmt.Errorf("%w: '%s'", ErrAliasNotFound, name)
	}
	delete(aliases, name)

	if err := s.store.Save(aliases); err != nil {
		return fmt.Errorf("failed to remove alias '%s': %w", name, err)
	}
	return nil
}

// ListAliases returns every stored alias.
func (s *service) ListAliases() alias.Mapping {
	return s.store.Load()
}

// ResolveAlias expands name through the stored mapping.
func (s *service) ResolveAlias(name string) (string, error) {
	aliases := s.store.Load()
	if !aliases.Has(name) {
		return "", fmt.Errorf("%w: '%s'", ErrAliasNotFound, name)
	}
	expanded, err := s.resolver.Expand(name, aliases)
	if err != nil {
		return "", fmt.Errorf("failed to resolve alias '%s': %w", name, err)
	}
	return expanded, nil
}

// ImportAliases merges aliases from provider into the store. Existing names are
// skipped unless overwrite is set. Nothing is written when nothing changed.
func (s *service) ImportAliases(provider ports.AliasProvider, overwrite bool) (ports.ImportResult, error) {
	var result ports.ImportResult
	if provider == nil {
		return result, fmt.Errorf("alias provider is not configured")
	}

	incoming, err := provider.GetAliases()
	if err != nil {
		return result, fmt.Errorf("failed to load aliases to import: %w", err)
	}

	aliases := s.store.Load()
	result = s.mergeImported(aliases, incoming, overwrite)

	if len(result.Added) == 0 && len(result.Overwritten) == 0 {
		return result, nil
	}
	if err := s.store.Save(aliases); err != nil {
		return ports.ImportResult{}, fmt.Errorf("failed to save imported aliases: %w", err)
	}
	return result, nil
}

// StoreLocation returns where the aliases are persisted.
func (s *service) StoreLocation() string {
	return s.store.Location()
}
