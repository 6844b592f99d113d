package dispatch

import (
	"errors"
	"fmt"
)

var (
	// ErrCommandNotFound is wrapped by CommandNotFoundError.
	ErrCommandNotFound = errors.New("command not found")
	// ErrEmptyExpansion is returned when an alias expands to no command at all.
	ErrEmptyExpansion = errors.New("alias expands to an empty command")
	// ErrExecution is wrapped by ExecutionError.
	ErrExecution = errors.New("execution error")
)

// CommandNotFoundError reports that no alias or script matched Command.
type CommandNotFoundError struct {
	Command      string
	ExpectedPath string
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("command '%s' not found (expected script at: %s)", e.Command, e.ExpectedPath)
}

func (e *CommandNotFoundError) Unwrap() error { return ErrCommandNotFound }

// ExecutionError reports that a located script could not be prepared or started.
type ExecutionError struct {
	Path string
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("error executing %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrExecution and the underlying cause.
func (e *ExecutionError) Unwrap() []error { return []error{ErrExecution, e.Err} }
