package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/ngenctl/internal/adapters/aliasimport"
	"github.com/AntonioJCosta/ngenctl/internal/adapters/oscommand"
	"github.com/AntonioJCosta/ngenctl/internal/config"
	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
	"github.com/AntonioJCosta/ngenctl/internal/core/services/aliasmanagement"
	"github.com/AntonioJCosta/ngenctl/internal/core/services/aliasresolution"
	"github.com/AntonioJCosta/ngenctl/internal/core/services/dispatch"
	"github.com/AntonioJCosta/ngenctl/internal/handlers/cli"
	"github.com/AntonioJCosta/ngenctl/internal/handlers/ui"
	"github.com/AntonioJCosta/ngenctl/internal/logging"
	"github.com/AntonioJCosta/ngenctl/internal/repositories/aliasstore"
	"github.com/AntonioJCosta/ngenctl/internal/repositories/envfile"
	"github.com/AntonioJCosta/ngenctl/internal/repositories/scripts"
	"github.com/spf13/afero"
)

// Version is set at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	fs := afero.NewOsFs()

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: could not determine home directory: %v", err)))
		return 1
	}

	cfg, err := config.Load(fs, config.Paths{
		Home:          home,
		ExecutableDir: executableDir(),
		ConfigFile:    os.Getenv(config.ConfigFileEnv),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor("Error: "+err.Error()))
		return 1
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor("Error: "+err.Error()))
		return 1
	}
	if cfg.ConfigFile != "" {
		logger.Debug("loaded config", "path", cfg.ConfigFile)
	}

	aliasStore, err := aliasstore.NewJSONStore(fs, cfg.AliasFile, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing alias store: %v\n", err)
		return 1
	}

	// envStore stays nil when no env file is configured.
	var envStore ports.EnvStore
	if cfg.EnvFile != "" {
		envStore, err = envfile.NewStore(fs, cfg.EnvFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing env file: %v\n", err)
			return 1
		}
	}

	locator, err := scripts.NewLocator(fs, cfg.Locations())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing script locator: %v\n", err)
		return 1
	}

	resolver := aliasresolution.NewService(logger)
	dispatcher := dispatch.NewService(aliasStore, resolver, locator, oscommand.NewLauncher(), envStore, logger,
		dispatch.Options{ParamCommands: cfg.ParamCommands})
	aliasManagementSvc := aliasmanagement.NewService(aliasStore, resolver, cli.BuiltinCommands...)

	rootCmd := cli.NewRootCommand(Version, cli.Dependencies{
		Dispatcher: dispatcher,
		Aliases:    aliasManagementSvc,
		Locator:    locator,
		Env:        envStore,
		NewAliasProvider: func(path string) (ports.AliasProvider, error) {
			return aliasimport.NewYAMLProvider(fs, path)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		fmt.Fprintln(os.Stderr, ui.ErrorColor("Error: "+err.Error()))
		return 1
	}
	return 0
}

// executableDir returns the directory of the running binary with symlinks
// resolved, so bundled scripts are found next to the real install location.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
