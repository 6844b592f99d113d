package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
	"github.com/AntonioJCosta/ngenctl/internal/core/services/aliasresolution"
	"github.com/AntonioJCosta/ngenctl/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAliasCommand creates the 'alias' command group.
func NewAliasCommand(aliasService ports.AliasManagementService, newProvider AliasProviderFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Manage ngenctl aliases.",
		Long: `Aliases map a name to a command line. The first word of an expansion may
itself be an alias; the rest is kept as fixed arguments ahead of whatever
is typed after the alias.`,
	}

	cmd.AddCommand(newAliasListCommand(aliasService))
	cmd.AddCommand(newAliasSetCommand(aliasService))
	cmd.AddCommand(newAliasUnsetCommand(aliasService))
	cmd.AddCommand(newAliasResolveCommand(aliasService))
	cmd.AddCommand(newAliasImportCommand(aliasService, newProvider))
	return cmd
}

func newAliasListCommand(aliasService ports.AliasManagementService) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List aliases and what they resolve to.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAliasListCmd(cmd, aliasService)
		},
	}
}

func runAliasListCmd(cmd *cobra.Command, aliasService ports.AliasManagementService) error {
	out := cmd.OutOrStdout()
	aliases := aliasService.ListAliases()
	if len(aliases) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases defined in %s.", aliasService.StoreLocation())))
		return nil
	}

	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Aliases (%s):", aliasService.StoreLocation())))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Alias", "Expansion", "Resolves To"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, name := range names {
		table.Append([]string{name, aliases[name], describeResolution(aliasService, name)})
	}
	table.Render()
	return nil
}

func describeResolution(aliasService ports.AliasManagementService, name string) string {
	resolved, err := aliasService.ResolveAlias(name)
	if errors.Is(err, aliasresolution.ErrAliasCycle) {
		return "(circular)"
	}
	if err != nil {
		return "(error)"
	}
	return resolved
}

func newAliasSetCommand(aliasService ports.AliasManagementService) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <command> [args...]",
		Short: "Create or replace an alias.",
		Example: `  ngenctl alias set r rancher
  ngenctl alias set b build --param ENV=dev`,
		// The expansion is stored verbatim, flags included.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}
			if len(args) < 2 {
				return fmt.Errorf("usage: ngenctl alias set <name> <command> [args...]")
			}
			return runAliasSetCmd(cmd, aliasService, args[0], strings.Join(args[1:], " "))
		},
	}
}

func runAliasSetCmd(cmd *cobra.Command, aliasService ports.AliasManagementService, name, expansion string) error {
	out := cmd.OutOrStdout()
	created, err := aliasService.SetAlias(name, expansion)
	if err != nil {
		return err
	}

	verb := "updated"
	if created {
		verb = "created"
	}
	fmt.Fprintf(out, "%s %s %s %s\n",
		ui.SuccessColor("Alias"), ui.AliasNameColor(name), ui.SuccessColor(verb+":"), ui.AliasCmdColor(strings.TrimSpace(expansion)))

	if _, err := aliasService.ResolveAlias(name); errors.Is(err, aliasresolution.ErrAliasCycle) {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningColor(fmt.Sprintf(
			"Warning: '%s' is part of a circular alias definition and will run as the plain command '%s'.", name, name)))
	}
	return nil
}

func newAliasUnsetCommand(aliasService ports.AliasManagementService) *cobra.Command {
	return &cobra.Command{
		Use:     "unset <name>",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete an alias.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := aliasService.RemoveAlias(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.SuccessColor("Removed alias"), ui.AliasNameColor(args[0]))
			return nil
		},
	}
}

func newAliasResolveCommand(aliasService ports.AliasManagementService) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <name>",
		Short: "Print the command line an alias expands to.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := aliasService.ResolveAlias(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resolved)
			return nil
		},
	}
}

func newAliasImportCommand(aliasService ports.AliasManagementService, newProvider AliasProviderFactory) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import aliases from a YAML list.",
		Long: `Reads a YAML list of entries such as

  - alias: r
    command: rancher

and adds them to your aliases. Existing aliases are kept unless --overwrite is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasImportCmd(cmd, aliasService, newProvider, args[0], overwrite)
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing aliases that have a different definition.")
	return cmd
}

func runAliasImportCmd(
	cmd *cobra.Command,
	aliasService ports.AliasManagementService,
	newProvider AliasProviderFactory,
	path string,
	overwrite bool,
) error {
	if newProvider == nil {
		return fmt.Errorf("alias import is not available")
	}
	provider, err := newProvider(path)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}

	result, err := aliasService.ImportAliases(provider, overwrite)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Imported into %s: %d added, %d overwritten, %d skipped.",
		aliasService.StoreLocation(), len(result.Added), len(result.Overwritten), len(result.Skipped))))
	if len(result.Skipped) > 0 && !overwrite {
		fmt.Fprintln(out, ui.DetailColor("Skipped existing: "+strings.Join(result.Skipped, ", ")+" (use --overwrite to replace)"))
	}
	if len(result.Invalid) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningColor("Ignored invalid alias names: "+strings.Join(result.Invalid, ", ")))
	}
	return nil
}
