package cli

import (
	"strings"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// dealdeskHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func dealdeskHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateDealName(s string) error {
	if strings.TrimSpace(s) == "" {
		return domain.ErrEmptyName
	}
	return nil
}

// runDealForm collects a new deal interactively and fills the input.
func runDealForm(input *service.CreateDealInput) error {
	var name, dealType, stage, referral, notes string

	typeOptions := make([]huh.Option[string], 0, len(domain.DealTypes))
	for _, t := range domain.DealTypes {
		typeOptions = append(typeOptions, huh.NewOption(string(t), string(t)))
	}
	stageOptions := make([]huh.Option[string], 0, len(domain.Stages))
	for _, s := range domain.Stages {
		stageOptions = append(stageOptions, huh.NewOption(s.Label(), string(s)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Deal Name").
				Placeholder("Smith Purchase").
				Value(&name).
				Validate(validateDealName),
			huh.NewSelect[string]().
				Title("Type").
				Options(typeOptions...).
				Value(&dealType),
			huh.NewSelect[string]().
				Title("Stage").
				Options(stageOptions...).
				Value(&stage),
			huh.NewInput().
				Title("Referred By (optional)").
				Value(&referral),
			huh.NewText().
				Title("Notes (optional)").
				Value(&notes),
		),
	).WithTheme(dealdeskHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	input.Name = name
	input.Type = domain.DealType(dealType)
	input.Stage = domain.Stage(stage)
	input.Referral = referral
	input.Notes = notes
	return nil
}
