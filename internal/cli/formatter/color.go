package formatter

import (
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#8ec07c")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StageStyle returns the accent style for a pipeline stage.
func StageStyle(stage domain.Stage) lipgloss.Style {
	switch stage {
	case domain.StageActiveLead:
		return StyleBlue
	case domain.StageOldLead:
		return StylePurple
	case domain.StagePreApproval:
		return StyleYellow
	case domain.StageActiveDeal:
		return StyleGreen
	case domain.StageClosedDeal:
		return StyleDim
	default:
		return StyleFg
	}
}

// StagePill returns a colored stage label such as "Pre-Approvals".
func StagePill(stage domain.Stage) string {
	return StageStyle(stage).Render(stage.Label())
}

// DueBadge marks a deal that needs follow-up today.
func DueBadge() string {
	return StyleYellow.Render("● due")
}
