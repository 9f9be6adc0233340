package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/reminder"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Browse the pipeline interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("board requires an interactive terminal")
			}
			p := tea.NewProgram(newBoardModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}

// boardLoadedMsg signals that pipeline data has been loaded.
type boardLoadedMsg struct {
	deals  []domain.Deal
	counts map[domain.Stage]int
	err    error
}

// boardModel shows one pipeline stage at a time, with the other stages as
// tabs along the top.
type boardModel struct {
	app      *App
	stageIdx int
	cursor   int
	deals    []domain.Deal
	counts   map[domain.Stage]int
	loading  bool
	err      error
	status   string
	width    int
	height   int
	quitting bool
}

func newBoardModel(app *App) boardModel {
	return boardModel{app: app, loading: true}
}

func (m boardModel) stage() domain.Stage {
	return domain.Stages[m.stageIdx]
}

func (m boardModel) shortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "stage")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "deal")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "followed up")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "advance stage")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.load()
}

func (m boardModel) load() tea.Cmd {
	app := m.app
	stage := m.stage()
	return func() tea.Msg {
		ctx := context.Background()
		deals := app.Deals.FilterByStage(ctx, stage, "")
		counts := app.Deals.Counts(ctx)
		return boardLoadedMsg{deals: deals, counts: counts}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case boardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.deals = msg.deals
		m.counts = msg.counts
		if m.cursor >= len(m.deals) {
			m.cursor = max(len(m.deals)-1, 0)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "left", "h":
		if m.stageIdx > 0 {
			m.stageIdx--
			m.cursor = 0
			m.status = ""
			m.loading = true
			return m, m.load()
		}
	case "right", "l":
		if m.stageIdx < len(domain.Stages)-1 {
			m.stageIdx++
			m.cursor = 0
			m.status = ""
			m.loading = true
			return m, m.load()
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.deals)-1 {
			m.cursor++
		}

	case "f":
		if m.cursor < len(m.deals) {
			deal := m.deals[m.cursor]
			m.status = fmt.Sprintf("Marked %s as followed up", deal.Name)
			return m, m.markFollowedUp(deal.ID)
		}

	case "m":
		if m.cursor < len(m.deals) {
			deal := m.deals[m.cursor]
			if next, ok := nextStage(deal.Stage); ok {
				m.status = fmt.Sprintf("Moved %s to %s", deal.Name, next.Label())
				return m, m.moveStage(deal.ID, next)
			}
			m.status = fmt.Sprintf("%s is already closed", deal.Name)
		}

	case "r":
		m.status = ""
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m boardModel) markFollowedUp(id string) tea.Cmd {
	app := m.app
	stage := m.stage()
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := app.Deals.MarkFollowedUp(ctx, id); err != nil {
			return boardLoadedMsg{err: err}
		}
		return boardLoadedMsg{
			deals:  app.Deals.FilterByStage(ctx, stage, ""),
			counts: app.Deals.Counts(ctx),
		}
	}
}

func (m boardModel) moveStage(id string, to domain.Stage) tea.Cmd {
	app := m.app
	stage := m.stage()
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := app.Deals.MoveStage(ctx, id, to); err != nil {
			return boardLoadedMsg{err: err}
		}
		return boardLoadedMsg{
			deals:  app.Deals.FilterByStage(ctx, stage, ""),
			counts: app.Deals.Counts(ctx),
		}
	}
}

// nextStage returns the stage a deal advances to, in display order.
func nextStage(s domain.Stage) (domain.Stage, bool) {
	for i, stage := range domain.Stages {
		if stage == s && i < len(domain.Stages)-1 {
			return domain.Stages[i+1], true
		}
	}
	return "", false
}

func (m boardModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderTabs())

	switch {
	case m.loading:
		sections = append(sections, "\n  "+formatter.Dim("Loading deals..."))
	case m.err != nil:
		sections = append(sections, "\n  "+formatter.StyleRed.Render("Error: "+m.err.Error()))
	case len(m.deals) == 0:
		sections = append(sections, "\n  "+formatter.Dim("No deals in "+m.stage().Label()+"."))
	default:
		sections = append(sections, m.renderDeals())
	}

	sections = append(sections, m.renderStatusBar())
	return strings.Join(sections, "\n")
}

func (m boardModel) renderTabs() string {
	var tabs []string
	for i, stage := range domain.Stages {
		label := stage.Label()
		if m.counts != nil {
			label = fmt.Sprintf("%s (%d)", label, m.counts[stage])
		}
		if i == m.stageIdx {
			tabs = append(tabs, formatter.StageStyle(stage).Bold(true).Underline(true).Render(label))
		} else {
			tabs = append(tabs, formatter.Dim(label))
		}
	}
	header := formatter.StyleHeader.Render("dealdesk") + "  " + strings.Join(tabs, "  ")
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return header + "\n" + sep
}

func (m boardModel) renderDeals() string {
	today := time.Now()
	var b strings.Builder
	b.WriteString("\n")
	for i, deal := range m.deals {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		line := cursor + formatter.StyleBold.Render(deal.Name)
		line += " " + formatter.Dim(string(deal.Type))
		if deal.Referral != "" {
			line += " " + formatter.Dim("via "+deal.Referral)
		}
		if open := deal.OpenNeedsCount(); open > 0 {
			line += " " + formatter.StylePurple.Render(fmt.Sprintf("%d needs", open))
		}
		if reminder.IsDueToday(deal, today) {
			line += " " + formatter.DueBadge()
		} else if next := reminder.NextDue(deal, today); next != nil {
			line += " " + formatter.Dim("next "+formatter.RelativeDateFrom(*next, today))
		}

		if m.width > 0 {
			line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (m boardModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.shortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	bar := strings.Join(hints, "  ")
	if m.status != "" {
		bar = formatter.StyleGreen.Render(m.status) + "  " + bar
	}
	return sep + "\n" + bar
}
