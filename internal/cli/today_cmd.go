package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's follow-ups and outstanding borrower needs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			due := app.Deals.DueToday(ctx)
			openNeeds := app.Deals.OpenNeeds(ctx)
			counts := app.Deals.Counts(ctx)

			fmt.Println(formatter.FormatDashboard(due, openNeeds, counts, time.Now()))
			return nil
		},
	}
}
