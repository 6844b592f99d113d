package aliasresolution

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/alias"
	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
	"github.com/charmbracelet/log"
)

// ErrAliasCycle is wrapped by CycleError.
var ErrAliasCycle = errors.New("circular alias")

// CycleError reports that expanding Name reached Repeated a second time.
type CycleError struct {
	Name     string
	Repeated string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular alias detected involving '%s' while resolving '%s'", e.Repeated, e.Name)
}

func (e *CycleError) Unwrap() error { return ErrAliasCycle }

type service struct {
	logger *log.Logger
}

// NewService creates a new alias resolver.
// It panics if logger is nil.
func NewService(logger *log.Logger) ports.AliasResolver {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &service{logger: logger}
}

// Resolve implements ports.AliasResolver. A cycle is logged as a warning and
// the original name is returned so the caller dispatches it literally.
func (s *service) Resolve(name string, aliases alias.Mapping) string {
	expanded, err := s.Expand(name, aliases)
	if err != nil {
		s.logger.Warn("alias expansion abandoned", "alias", name, "err", err)
		return name
	}
	return expanded
}

// Expand implements ports.AliasResolver.
func (s *service) Expand(name string, aliases alias.Mapping) (string, error) {
	if !aliases.Has(name) {
		return name, nil
	}
	expanded, err := expand(name, aliases, visitedSet{})
	if err != nil {
		var cycle *CycleError
		if errors.As(err, &cycle) {
			cycle.Name = name
		}
		return "", err
	}
	return expanded, nil
}

// expand walks the alias graph depth-first. visited is copied before being
// extended so sibling calls never observe each other's marks.
func expand(name string, aliases alias.Mapping, visited visitedSet) (string, error) {
	visited = visited.with(name)
	expansion := aliases[name]

	first, rest := splitFirstToken(expansion)
	if first == "" || !aliases.Has(first) {
		return expansion, nil
	}
	if visited.has(first) {
		return "", &CycleError{Repeated: first}
	}

	resolved, err := expand(first, aliases, visited)
	if err != nil {
		return "", err
	}
	if rest == "" {
		return resolved, nil
	}
	return resolved + " " + rest, nil
}

// splitFirstToken returns the first whitespace-delimited token and the
// remainder with surrounding whitespace removed.
func splitFirstToken(s string) (first, rest string) {
	trimmed := strings.TrimFunc(s, alias.IsSeparator)
	idx := strings.IndexFunc(trimmed, alias.IsSeparator)
	if idx < 0 {
		return trimmed, ""
	}
	return trimmed[:idx], strings.TrimFunc(trimmed[idx:], alias.IsSeparator)
}
