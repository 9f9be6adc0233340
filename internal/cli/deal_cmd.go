package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/service"
	"github.com/spf13/cobra"
)

func newDealCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Manage deals",
	}

	cmd.AddCommand(
		newDealAddCmd(app),
		newDealListCmd(app),
		newDealInspectCmd(app),
		newDealUpdateCmd(app),
		newDealMoveCmd(app),
		newDealFollowUpCmd(app),
		newDealRemoveCmd(app),
	)

	return cmd
}

func newDealAddCmd(app *App) *cobra.Command {
	var name, dealType, referral, stage, notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new deal",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := service.CreateDealInput{
				Name:     name,
				Type:     domain.DealType(dealType),
				Referral: referral,
				Stage:    domain.Stage(stage),
				Notes:    notes,
			}

			// No flags on a terminal: collect the deal interactively.
			if name == "" && app.IsInteractive != nil && app.IsInteractive() {
				if err := runDealForm(&input); err != nil {
					return err
				}
			}

			deal, err := app.Deals.Create(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Printf("Created deal %s [%s] in %s\n", deal.Name, formatter.TruncID(deal.ID), deal.Stage.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Deal name")
	cmd.Flags().StringVar(&dealType, "type", "", "Deal type (Purchase or Refinance)")
	cmd.Flags().StringVar(&referral, "referral", "", "Referral source")
	cmd.Flags().StringVar(&stage, "stage", "", "Initial stage (defaults to active_lead)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func newDealListCmd(app *App) *cobra.Command {
	var stageStr, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			today := time.Now()

			if stageStr == "" {
				deals := app.Deals.List(ctx)
				if search != "" {
					deals = matchDeals(deals, search)
				}
				if len(deals) == 0 {
					if search != "" {
						fmt.Printf("No deals matching %q.\n", search)
					} else {
						fmt.Println("No deals yet.")
					}
					return nil
				}
				fmt.Println(formatter.FormatDealList("All Deals", deals, today, true))
				return nil
			}

			stage, err := domain.ParseStage(stageStr)
			if err != nil {
				return fmt.Errorf("unknown stage %q: %w", stageStr, err)
			}
			deals := app.Deals.FilterByStage(ctx, stage, search)
			if len(deals) == 0 {
				fmt.Printf("No deals in %s.\n", stage.Label())
				return nil
			}
			fmt.Println(formatter.FormatDealList(stage.Label(), deals, today, false))
			return nil
		},
	}

	cmd.Flags().StringVar(&stageStr, "stage", "", "Filter by stage")
	cmd.Flags().StringVar(&search, "search", "", "Substring match on name or referral")

	return cmd
}

// matchDeals filters by case-insensitive substring on name or referral.
func matchDeals(deals []domain.Deal, query string) []domain.Deal {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return deals
	}
	var matched []domain.Deal
	for _, d := range deals {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Referral), q) {
			matched = append(matched, d)
		}
	}
	return matched
}

func newDealInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show deal details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			deal, err := app.Deals.Get(ctx, id)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatDealDetail(deal, app.Deals.NextDue(deal), time.Now()))
			return nil
		},
	}
}

func newDealUpdateCmd(app *App) *cobra.Command {
	var name, dealType, referral, notes string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Edit a deal's name, type, referral, or notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			current, err := app.Deals.Get(ctx, id)
			if err != nil {
				return err
			}

			input := service.UpdateDealInput{
				Name:     current.Name,
				Type:     current.Type,
				Referral: current.Referral,
				Notes:    current.Notes,
			}
			if cmd.Flags().Changed("name") {
				input.Name = name
			}
			if cmd.Flags().Changed("type") {
				input.Type = domain.DealType(dealType)
			}
			if cmd.Flags().Changed("referral") {
				input.Referral = referral
			}
			if cmd.Flags().Changed("notes") {
				input.Notes = notes
			}

			updated, err := app.Deals.Update(ctx, id, input)
			if err != nil {
				return err
			}
			fmt.Printf("Updated deal %s\n", updated.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Deal name")
	cmd.Flags().StringVar(&dealType, "type", "", "Deal type (Purchase or Refinance)")
	cmd.Flags().StringVar(&referral, "referral", "", "Referral source")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func newDealMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move ID STAGE",
		Short: "Move a deal to another pipeline stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			stage, err := domain.ParseStage(args[1])
			if err != nil {
				return fmt.Errorf("unknown stage %q: %w", args[1], err)
			}

			deal, err := app.Deals.MoveStage(ctx, id, stage)
			if err != nil {
				return err
			}
			fmt.Printf("Moved %s to %s\n", deal.Name, stage.Label())
			return nil
		},
	}
}

func newDealFollowUpCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "followup ID",
		Aliases: []string{"done"},
		Short:   "Mark today's follow-up as done",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}

			deal, err := app.Deals.MarkFollowedUp(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Marked %s as followed up\n", deal.Name)
			if next := app.Deals.NextDue(deal); next != nil {
				fmt.Printf("Next due %s\n", formatter.HumanDate(*next))
			}
			return nil
		},
	}
}

func newDealRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a deal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			deal, err := app.Deals.Get(ctx, id)
			if err != nil {
				return err
			}

			app.Deals.Delete(ctx, id)
			fmt.Printf("Deleted deal %s\n", deal.Name)
			return nil
		},
	}
}
