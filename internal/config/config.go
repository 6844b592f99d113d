/*
Package config loads ngenctl settings from defaults, an optional YAML file and
NGENCTL_* environment variables, in increasing order of precedence.
*/
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/script"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "ngenctl"
	// EnvPrefix prefixes every environment override, e.g. NGENCTL_SCRIPT_PREFIX.
	EnvPrefix = "NGENCTL"
	// ConfigFileEnv names the variable that points at an alternative config file.
	ConfigFileEnv = "NGENCTL_CONFIG"
	// StateDirName is the per-user directory under $HOME.
	StateDirName = ".ngenctl"
	// ConfigFileName is the config file inside StateDirName.
	ConfigFileName = "config.yaml"
)

// Config holds the resolved settings.
type Config struct {
	SystemScriptDir  string   `mapstructure:"system_script_dir"`
	BundledScriptDir string   `mapstructure:"bundled_script_dir"`
	ScriptPrefix     string   `mapstructure:"script_prefix"`
	AliasFile        string   `mapstructure:"alias_file"`
	EnvFile          string   `mapstructure:"env_file"`
	ParamCommands    []string `mapstructure:"param_commands"`
	LogLevel         string   `mapstructure:"log_level"`

	// ConfigFile is the file the settings were read from, empty when none was.
	ConfigFile string `mapstructure:"-"`
}

// Paths carries the process-specific locations defaults are derived from.
type Paths struct {
	Home          string
	ExecutableDir string
	// ConfigFile overrides the default config file location when set.
	ConfigFile string
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig(paths Paths) *Config {
	bundled := ""
	if paths.ExecutableDir != "" {
		bundled = filepath.Join(paths.ExecutableDir, "scripts")
	}
	return &Config{
		SystemScriptDir:  "/usr/local/bin",
		BundledScriptDir: bundled,
		ScriptPrefix:     AppName + "-",
		AliasFile:        filepath.Join(paths.Home, StateDirName, "alias.json"),
		EnvFile:          filepath.Join(paths.Home, StateDirName, ".env"),
		ParamCommands:    []string{"build"},
		LogLevel:         "warn",
	}
}

/*
Load resolves the configuration. A missing config file is not an error, but
one that exists and cannot be parsed is.
*/
func Load(fs afero.Fs, paths Paths) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)

	defaults := DefaultConfig(paths)
	v.SetDefault("system_script_dir", defaults.SystemScriptDir)
	v.SetDefault("bundled_script_dir", defaults.BundledScriptDir)
	v.SetDefault("script_prefix", defaults.ScriptPrefix)
	v.SetDefault("alias_file", defaults.AliasFile)
	v.SetDefault("env_file", defaults.EnvFile)
	v.SetDefault("param_commands", defaults.ParamCommands)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := paths.ConfigFile
	if configFile == "" {
		configFile = filepath.Join(paths.Home, StateDirName, ConfigFileName)
	}

	resolvedPath := ""
	exists, err := afero.Exists(fs, configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to check config file %s: %w", configFile, err)
	}
	if exists {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		resolvedPath = configFile
	} else if paths.ConfigFile != "" {
		return nil, fmt.Errorf("config file not found: %s", paths.ConfigFile)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.ConfigFile = resolvedPath

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.SystemScriptDir == "" && c.BundledScriptDir == "" {
		return fmt.Errorf("invalid config: at least one script directory must be set")
	}
	if c.AliasFile == "" {
		return fmt.Errorf("invalid config: alias_file cannot be empty")
	}
	if strings.ContainsAny(c.ScriptPrefix, `/\`) {
		return fmt.Errorf("invalid config: script_prefix %q cannot contain a path separator", c.ScriptPrefix)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: log_level: %w", err)
	}
	return nil
}

// Locations returns the script directories in search order: system first, then bundled.
func (c *Config) Locations() []script.Location {
	var locations []script.Location
	if c.SystemScriptDir != "" {
		locations = append(locations, script.Location{Source: script.SourceSystem, Dir: c.SystemScriptDir, Prefix: c.ScriptPrefix})
	}
	if c.BundledScriptDir != "" {
		locations = append(locations, script.Location{Source: script.SourceBundled, Dir: c.BundledScriptDir, Prefix: c.ScriptPrefix})
	}
	return locations
}
