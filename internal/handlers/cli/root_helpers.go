package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/ngenctl/internal/core/domain/params"
	"github.com/AntonioJCosta/ngenctl/internal/core/services/dispatch"
	"github.com/AntonioJCosta/ngenctl/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// ExitError carries the status the process should exit with. It is never printed.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func reportDispatchError(w io.Writer, err error) {
	var notFound *dispatch.CommandNotFoundError
	switch {
	case errors.As(err, &notFound):
		fmt.Fprintln(w, ui.ErrorColor(fmt.Sprintf("Error: Unknown command '%s'", notFound.Command)))
		fmt.Fprintln(w, ui.DetailColor("Expected script at: "+notFound.ExpectedPath))
		fmt.Fprintln(w, ui.InfoColor("Run 'ngenctl commands' to see what is available."))
	case errors.Is(err, params.ErrMalformedParam):
		fmt.Fprintln(w, ui.ErrorColor("Error: "+err.Error()))
		fmt.Fprintln(w, ui.InfoColor("Parameters take the form --param KEY=VALUE [KEY=VALUE...] or --param=KEY=VALUE."))
	default:
		fmt.Fprintln(w, ui.ErrorColor("Error: "+err.Error()))
	}
}

func printUsageWithCommands(cmd *cobra.Command, deps Dependencies) {
	out := cmd.ErrOrStderr()
	fmt.Fprint(out, cmd.UsageString())
	fmt.Fprintln(out)

	rows := availableCommands(deps.Locator, deps.Aliases)
	if len(rows) == 0 {
		fmt.Fprintln(out, ui.WarningColor("No commands available."))
		if deps.Locator != nil {
			fmt.Fprintln(out, ui.DetailColor("Scripts are looked up as "+deps.Locator.ExpectedPath("<command>")))
		}
		return
	}
	fmt.Fprintln(out, ui.HeaderColor("Available commands:"))
	renderCommandTable(out, rows)
}
