package cli

import (
	"github.com/alexanderramin/dealdesk/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Deals service.DealService

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms and the board TUI require one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "dealdesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dealdesk",
		Short: "Mortgage pipeline tracker and follow-up scheduler",
	}

	root.AddCommand(
		newDealCmd(app),
		newNeedsCmd(app),
		newTodayCmd(app),
		newBoardCmd(app),
	)

	return root
}
