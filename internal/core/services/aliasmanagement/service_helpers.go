package aliasmanagement

import (
	"fmt"
	"regexp"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/alias"
	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
)

// validAliasNameRegex keeps alias names usable as a single command token and as
// part of a script file name.
var validAliasNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// validateName checks the rules an alias name must satisfy before it is stored.
func (s *service) validateName(name string) error {
	// Rule: Alias must be at least 1 character long.
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidAliasName)
	}
	// Rule: Alias must be a single token of safe characters.
	if !validAliasNameRegex.MatchString(name) {
		return fmt.Errorf("%w: '%s' may only contain letters, digits, '.', '_' and '-'", ErrInvalidAliasName, name)
	}
	// Rule: Alias must not shadow a builtin command.
	if s.reserved[name] {
		return fmt.Errorf("%w: '%s' is a builtin command", ErrInvalidAliasName, name)
	}
	return nil
}

// mergeImported applies incoming aliases to aliases in order and reports what happened to each.
func (s *service) mergeImported(aliases alias.Mapping, incoming []alias.Alias, overwrite bool) ports.ImportResult {
	var result ports.ImportResult
	for _, a := range incoming {
		if err := s.validateName(a.Name); err != nil {
			result.Invalid = append(result.Invalid, a.Name)
			continue
		}
		current, exists := aliases[a.Name]
		switch {
		case !exists:
			result.Added = append(result.Added, a.Name)
		case current == a.Command:
			result.Skipped = append(result.Skipped, a.Name)
			continue
		case !overwrite:
			result.Skipped = append(result.Skipped, a.Name)
			continue
		default:
			result.Overwritten = append(result.Overwritten, a.Name)
		}
		aliases[a.Name] = a.Command
	}
	return result
}
