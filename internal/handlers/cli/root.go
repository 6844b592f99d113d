package cli

import (
	"fmt"

	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
	"github.com/spf13/cobra"
)

// BuiltinCommands are handled by ngenctl itself and can never name an alias.
var BuiltinCommands = []string{"alias", "commands", "env", "help", "version"}

// AliasProviderFactory opens the alias list at path for "alias import".
type AliasProviderFactory func(path string) (ports.AliasProvider, error)

// Dependencies are the services the command tree is built on.
type Dependencies struct {
	Dispatcher       ports.Dispatcher
	Aliases          ports.AliasManagementService
	Locator          ports.ScriptLocator
	Env              ports.EnvStore
	NewAliasProvider AliasProviderFactory
}

func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ngenctl <command> [args...]",
		Short: "ngenctl runs ngenctl-<command> scripts and user-defined aliases.",
		Long: `ngenctl resolves <command> through your aliases, finds the matching
ngenctl-<command> script in the system or bundled script directory and runs it
with the remaining arguments, exiting with the script's own status.`,
		Args: cobra.ArbitraryArgs,
		// Everything after the command name belongs to the script.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.Dispatcher == nil && cmd.Name() == "ngenctl" {
				return fmt.Errorf("dispatcher not initialized")
			}
			if deps.Aliases == nil && (cmd.Name() == "alias" || cmd.HasParent() && cmd.Parent().Name() == "alias") {
				return fmt.Errorf("alias management service not initialized for command %s", cmd.Name())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, args, version, deps)
		},
	}

	rootCmd.AddCommand(NewAliasCommand(deps.Aliases, deps.NewAliasProvider))
	rootCmd.AddCommand(NewCommandsCommand(deps.Locator, deps.Aliases))
	rootCmd.AddCommand(NewEnvCommand(deps.Env))
	rootCmd.AddCommand(NewVersionCommand(version))

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, args []string, version string, deps Dependencies) error {
	if len(args) == 0 {
		printUsageWithCommands(cmd, deps)
		return &ExitError{Code: 1}
	}

	switch args[0] {
	case "-h", "--help":
		return cmd.Help()
	case "-V", "--version":
		printVersion(cmd, version)
		return nil
	}

	status, err := deps.Dispatcher.Dispatch(args[0], args[1:])
	if err != nil {
		reportDispatchError(cmd.ErrOrStderr(), err)
		return &ExitError{Code: status}
	}
	if status != 0 {
		return &ExitError{Code: status}
	}
	return nil
}

// NewVersionCommand creates the 'version' subcommand.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ngenctl version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd, version)
		},
	}
}

func printVersion(cmd *cobra.Command, version string) {
	fmt.Fprintf(cmd.OutOrStdout(), "ngenctl version %s\n", version)
}
