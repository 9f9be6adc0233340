package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newNeedsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "needs",
		Short: "Manage a deal's borrower needs checklist",
	}

	cmd.AddCommand(
		newNeedsListCmd(app),
		newNeedsAddCmd(app),
		newNeedsToggleCmd(app),
		newNeedsRemoveCmd(app),
	)

	return cmd
}

func newNeedsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list DEAL",
		Short: "List a deal's needs items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			deal, err := getDeal(ctx, app, args[0])
			if err != nil {
				return err
			}

			if len(deal.NeedsList) == 0 {
				fmt.Printf("No needs items for %s.\n", deal.Name)
				return nil
			}
			fmt.Println(formatter.Bold(deal.Name))
			for i, item := range deal.NeedsList {
				mark := "[ ]"
				if item.Done {
					mark = "[x]"
				}
				fmt.Printf("  %2d %s %s\n", i+1, mark, item.Text)
			}
			return nil
		},
	}
}

func newNeedsAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add DEAL TEXT...",
		Short: "Add a needs item",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			deal, err := getDeal(ctx, app, args[0])
			if err != nil {
				return err
			}

			text := strings.Join(args[1:], " ")
			updated, err := app.Deals.AddNeed(ctx, deal.ID, text)
			if err != nil {
				return err
			}
			fmt.Printf("Added %q to %s (%d items)\n", strings.TrimSpace(text), updated.Name, len(updated.NeedsList))
			return nil
		},
	}
}

func newNeedsToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle DEAL ITEM",
		Short: "Toggle a needs item done/undone by list position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			deal, err := getDeal(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveNeedsItem(deal.NeedsList, args[1])
			if err != nil {
				return err
			}

			updated, err := app.Deals.ToggleNeed(ctx, deal.ID, itemID)
			if err != nil {
				return err
			}
			for _, item := range updated.NeedsList {
				if item.ID == itemID {
					state := "open"
					if item.Done {
						state = "done"
					}
					fmt.Printf("Marked %q as %s\n", item.Text, state)
				}
			}
			return nil
		},
	}
}

func newNeedsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove DEAL ITEM",
		Short: "Remove a needs item by list position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			deal, err := getDeal(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveNeedsItem(deal.NeedsList, args[1])
			if err != nil {
				return err
			}

			if _, err := app.Deals.RemoveNeed(ctx, deal.ID, itemID); err != nil {
				return err
			}
			fmt.Println("Removed needs item")
			return nil
		},
	}
}

func getDeal(ctx context.Context, app *App, input string) (domain.Deal, error) {
	id, err := resolveDealID(ctx, app, input)
	if err != nil {
		return domain.Deal{}, err
	}
	return app.Deals.Get(ctx, id)
}

// resolveNeedsItem accepts a 1-based list position (as shown by "needs
// list") or an item ID prefix.
func resolveNeedsItem(items []domain.NeedsItem, input string) (string, error) {
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(items) {
			return "", fmt.Errorf("item %d out of range (1-%d)", n, len(items))
		}
		return items[n-1].ID, nil
	}

	var matches []string
	for _, item := range items {
		if strings.HasPrefix(item.ID, input) {
			matches = append(matches, item.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("needs item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("needs item %q is ambiguous (%d matches)", input, len(matches))
	}
}
