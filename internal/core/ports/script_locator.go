package ports

import "github.com/AntonioJCosta/ngenctl/internal/core/domain/script"

/*
ScriptLocator finds dispatchable scripts across the fixed, ordered list of
candidate locations.
*/
type ScriptLocator interface {
	// Locate returns the first existing regular file for command. found is false
	// when no location has one; that is not an error.
	Locate(command string) (candidate script.Candidate, found bool)

	// Enumerate lists every script found in any location, first location winning.
	Enumerate() []script.Candidate

	// ExpectedPath returns the highest-priority path a script for command would have.
	ExpectedPath(command string) string

	// EnsureExecutable grants execute permission to path if it has none.
	EnsureExecutable(path string) error
}
