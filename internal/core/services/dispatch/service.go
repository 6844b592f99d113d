package dispatch

import (
	"fmt"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/params"
	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
	"github.com/charmbracelet/log"
)

// FailureStatus is the exit status reported for every failure that is not a
// child's own exit status.
const FailureStatus = 1

// ParamEnvPrefix prefixes the environment variables carrying parsed --param values.
const ParamEnvPrefix = "NGENCTL_PARAM_"

// Options configures a dispatcher.
type Options struct {
	// ParamCommands lists the commands whose arguments go through --param parsing.
	ParamCommands []string
}

type service struct {
	aliases  ports.AliasStore
	resolver ports.AliasResolver
	locator  ports.ScriptLocator
	launcher ports.ProcessLauncher
	env      ports.EnvStore // Can be nil if no env file is configured.
	logger   *log.Logger

	paramCommands map[string]bool
}

// NewService creates a new dispatcher.
// It panics if any dependency other than envStore is nil.
func NewService(
	aliasStore ports.AliasStore,
	resolver ports.AliasResolver,
	locator ports.ScriptLocator,
	launcher ports.ProcessLauncher,
	envStore ports.EnvStore,
	logger *log.Logger,
	opts Options,
) ports.Dispatcher {
	if aliasStore == nil {
		panic("aliasStore cannot be nil")
	}
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	if locator == nil {
		panic("locator cannot be nil")
	}
	if launcher == nil {
		panic("launcher cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	paramCommands := make(map[string]bool, len(opts.ParamCommands))
	for _, c := range opts.ParamCommands {
		paramCommands[c] = true
	}
	return &service{
		aliases:       aliasStore,
		resolver:      resolver,
		locator:       locator,
		launcher:      launcher,
		env:           envStore,
		logger:        logger,
		paramCommands: paramCommands,
	}
}

/*
Dispatch resolves command through the alias store, locates its script, builds
the argument vector and runs it, returning the child's exit status.

Every failure before the child runs returns FailureStatus together with an
error; a child that exits non-zero is not an error.
*/
func (s *service) Dispatch(command string, args []string) (int, error) {
	command, args, err := s.expandAlias(command, args)
	if err != nil {
		return FailureStatus, err
	}

	var paramEnv []string
	if s.paramCommands[command] {
		parsed, remaining, err := params.Parse(args)
		if err != nil {
			return FailureStatus, fmt.Errorf("invalid arguments for '%s': %w", command, err)
		}
		args = remaining
		paramEnv = paramEnvironment(parsed)
		s.logger.Debug("parsed parameters", "command", command, "keys", parsed.Keys())
	}

	candidate, found := s.locator.Locate(command)
	if !found {
		return FailureStatus, &CommandNotFoundError{
			Command:      command,
			ExpectedPath: s.locator.ExpectedPath(command),
		}
	}
	s.logger.Debug("located script", "command", command, "path", candidate.Path, "source", candidate.Source)

	if err := s.locator.EnsureExecutable(candidate.Path); err != nil {
		return FailureStatus, &ExecutionError{Path: candidate.Path, Err: err}
	}

	env := append(s.envFileEntries(), paramEnv...)
	s.logger.Debug("executing", "path", candidate.Path, "args", args)

	status, err := s.launcher.Run(candidate.Path, args, env)
	if err != nil {
		return FailureStatus, &ExecutionError{Path: candidate.Path, Err: err}
	}
	return status, nil
}
