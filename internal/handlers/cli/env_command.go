package cli

import (
	"fmt"
	"sort"

	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
	"github.com/AntonioJCosta/ngenctl/internal/handlers/ui"
	"github.com/AntonioJCosta/ngenctl/internal/repositories/envfile"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const maskedValue = "********"

// NewEnvCommand creates the 'env' command group.
func NewEnvCommand(envStore ports.EnvStore) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Manage variables passed to every script.",
		Long: `Variables stored here are added to the environment of every script ngenctl
runs. A variable already set in your shell takes precedence.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if envStore == nil {
				return fmt.Errorf("env file is not configured")
			}
			return nil
		},
	}

	cmd.AddCommand(newEnvListCommand(envStore))
	cmd.AddCommand(newEnvSetCommand(envStore))
	cmd.AddCommand(newEnvUnsetCommand(envStore))
	return cmd
}

func newEnvListCommand(envStore ports.EnvStore) *cobra.Command {
	var showSecrets bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored variables.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEnvListCmd(cmd, envStore, showSecrets)
		},
	}
	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "Print values of tokens and passwords instead of masking them.")
	return cmd
}

func runEnvListCmd(cmd *cobra.Command, envStore ports.EnvStore, showSecrets bool) error {
	env, err := envStore.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(env) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No variables stored in %s.", envStore.Location())))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Variables (%s):", envStore.Location())))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "Value"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, key := range sortedKeys(env) {
		value := env[key]
		if !showSecrets && envfile.IsSecretKey(key) && value != "" {
			value = maskedValue
		}
		table.Append([]string{key, value})
	}
	table.Render()
	return nil
}

func newEnvSetCommand(envStore ports.EnvStore) *cobra.Command {
	return &cobra.Command{
		Use:     "set KEY=VALUE [KEY=VALUE...]",
		Short:   "Store one or more variables.",
		Example: "  ngenctl env set JENKINS_URL=https://ci.example.com JENKINS_USER=me",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvSetCmd(cmd, envStore, args)
		},
	}
}

func runEnvSetCmd(cmd *cobra.Command, envStore ports.EnvStore, args []string) error {
	updates := make(map[string]string, len(args))
	order := make([]string, 0, len(args))
	for _, arg := range args {
		key, value, err := envfile.ParseAssignment(arg)
		if err != nil {
			return err
		}
		if _, dup := updates[key]; !dup {
			order = append(order, key)
		}
		updates[key] = value
	}

	env, err := envStore.Load()
	if err != nil {
		return err
	}
	if env == nil {
		env = make(map[string]string, len(updates))
	}
	for key, value := range updates {
		env[key] = value
	}
	if err := envStore.Save(env); err != nil {
		return err
	}

	for _, key := range order {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.SuccessColor("Set"), key)
	}
	return nil
}

func newEnvUnsetCommand(envStore ports.EnvStore) *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY [KEY...]",
		Short: "Remove stored variables.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvUnsetCmd(cmd, envStore, args)
		},
	}
}

func runEnvUnsetCmd(cmd *cobra.Command, envStore ports.EnvStore, keys []string) error {
	env, err := envStore.Load()
	if err != nil {
		return err
	}

	var removed []string
	for _, key := range keys {
		if _, ok := env[key]; !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningColor(fmt.Sprintf("Warning: '%s' is not set", key)))
			continue
		}
		delete(env, key)
		removed = append(removed, key)
	}
	if len(removed) == 0 {
		return nil
	}
	if err := envStore.Save(env); err != nil {
		return err
	}
	for _, key := range removed {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.SuccessColor("Removed"), key)
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
