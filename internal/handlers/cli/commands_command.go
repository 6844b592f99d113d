package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/script"
	"github.com/AntonioJCosta/ngenctl/internal/core/ports"
	"github.com/AntonioJCosta/ngenctl/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCommandsCommand creates the 'commands' subcommand.
func NewCommandsCommand(locator ports.ScriptLocator, aliasService ports.AliasManagementService) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the commands ngenctl can dispatch.",
		Long: `Lists every ngenctl-<command> script found in the script directories and
every alias, with where each one comes from. Aliases take precedence over
scripts of the same name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommandsCmd(cmd, locator, aliasService)
		},
	}
}

func runCommandsCmd(cmd *cobra.Command, locator ports.ScriptLocator, aliasService ports.AliasManagementService) error {
	if locator == nil {
		return fmt.Errorf("script locator not initialized")
	}
	out := cmd.OutOrStdout()

	rows := availableCommands(locator, aliasService)
	if len(rows) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No commands found."))
		fmt.Fprintln(out, ui.DetailColor("Scripts are looked up as "+locator.ExpectedPath("<command>")))
		return nil
	}
	renderCommandTable(out, rows)
	return nil
}

type commandRow struct {
	Name   string
	Source script.Source
	Target string
}

// availableCommands merges scripts and aliases into one sorted list. An alias
// replaces a script of the same name since dispatch consults aliases first.
// Names taken by builtin subcommands are left out: they never reach dispatch.
func availableCommands(locator ports.ScriptLocator, aliasService ports.AliasManagementService) []commandRow {
	byName := make(map[string]commandRow)
	if locator != nil {
		for _, c := range locator.Enumerate() {
			if isBuiltin(c.Command) {
				continue
			}
			byName[c.Command] = commandRow{Name: c.Command, Source: c.Source, Target: c.Path}
		}
	}
	if aliasService != nil {
		for name, expansion := range aliasService.ListAliases() {
			if isBuiltin(name) {
				continue
			}
			byName[name] = commandRow{Name: name, Source: script.SourceAlias, Target: expansion}
		}
	}

	rows := make([]commandRow, 0, len(byName))
	for _, row := range byName {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

func isBuiltin(name string) bool {
	for _, builtin := range BuiltinCommands {
		if name == builtin {
			return true
		}
	}
	return false
}

func renderCommandTable(w io.Writer, rows []commandRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Command", "Source", "Runs"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, row := range rows {
		table.Append([]string{row.Name, string(row.Source), row.Target})
	}
	table.Render()
}
