package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/needs"
	"github.com/alexanderramin/dealdesk/internal/reminder"
)

// FormatDealList renders a deal table for one stage (or mixed stages
// when withStage is set) inside a bordered box.
func FormatDealList(title string, deals []domain.Deal, today time.Time, withStage bool) string {
	headers := []string{"ID", "NAME", "REFERRED BY", "TYPE", "CREATED", "NEEDS", ""}
	if withStage {
		headers = []string{"ID", "NAME", "STAGE", "TYPE", "CREATED", "NEEDS", ""}
	}

	rows := make([][]string, 0, len(deals))
	for _, d := range deals {
		dueMark := ""
		if reminder.IsDueToday(d, today) {
			dueMark = DueBadge()
		}
		open := ""
		if n := d.OpenNeedsCount(); n > 0 {
			open = StyleRed.Render(fmt.Sprintf("%d open", n))
		}
		third := orDash(d.Referral)
		if withStage {
			third = StagePill(d.Stage)
		}
		rows = append(rows, []string{
			Dim(TruncID(d.ID)),
			Bold(d.Name),
			third,
			string(d.Type),
			HumanDate(d.CreatedAt),
			open,
			dueMark,
		})
	}

	return RenderBox(title, RenderTable(headers, rows))
}

// FormatDealDetail renders a single deal card: metadata on top, the
// needs checklist below with open items before completed ones.
func FormatDealDetail(deal domain.Deal, nextDue *time.Time, today time.Time) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(deal.Name) + "\n")
	b.WriteString(StagePill(deal.Stage) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("TYPE     "), string(deal.Type)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("REFERRAL "), orDash(deal.Referral)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("CREATED  "), HumanDate(deal.CreatedAt)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("IN STAGE "), fmt.Sprintf("since %s", HumanDate(deal.StageEnteredAt))))

	rule := reminder.RuleForStage(deal.Stage)
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("CADENCE  "), rule.Label))

	if deal.LastFollowUp != nil {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("FOLLOWED "), HumanDate(*deal.LastFollowUp)))
	}
	switch {
	case reminder.IsDueToday(deal, today):
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("NEXT DUE "), StyleYellow.Render("today")))
	case nextDue != nil:
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim("NEXT DUE "), RelativeDateFrom(*nextDue, today)))
	}

	if deal.Notes != "" {
		b.WriteString("\n" + Dim("NOTES") + "\n" + deal.Notes + "\n")
	}

	if len(deal.NeedsList) > 0 {
		b.WriteString("\n" + StyleHeader.Render("BORROWER NEEDS") + "\n")
		for _, item := range needs.DisplayOrder(deal) {
			if item.Done {
				b.WriteString(Dim(fmt.Sprintf("  [x] %s\n", item.Text)))
			} else {
				b.WriteString(fmt.Sprintf("  [ ] %s\n", StyleFg.Render(item.Text)))
			}
		}
	}

	return RenderBox("", b.String())
}

// FormatDashboard renders the day view: follow-ups due today, deals with
// outstanding borrower needs, and per-stage totals.
func FormatDashboard(due, openNeeds []domain.Deal, counts map[domain.Stage]int, today time.Time) string {
	var sections []string

	var pills []string
	for _, stage := range domain.Stages {
		pills = append(pills, fmt.Sprintf("%s %s", StageStyle(stage).Render(fmt.Sprintf("%d", counts[stage])), Dim(stage.Label())))
	}
	sections = append(sections, strings.Join(pills, Dim("  ·  ")))

	var b strings.Builder
	b.WriteString(StyleHeader.Render("TODAY'S FOLLOW-UPS") + "\n")
	if len(due) == 0 {
		b.WriteString(Dim("Nothing due today.") + "\n")
	}
	for _, d := range due {
		rule := reminder.RuleForStage(d.Stage)
		b.WriteString(fmt.Sprintf("  %s %s  %s  %s\n", DueBadge(), Bold(d.Name), StagePill(d.Stage), Dim(rule.Label)))
	}
	sections = append(sections, b.String())

	var n strings.Builder
	n.WriteString(StyleHeader.Render("OUTSTANDING BORROWER NEEDS") + "\n")
	if len(openNeeds) == 0 {
		n.WriteString(Dim("All clear.") + "\n")
	}
	for _, d := range openNeeds {
		n.WriteString(fmt.Sprintf("  %s\n", Bold(d.Name)))
		for _, item := range needs.OpenItems(d) {
			n.WriteString(fmt.Sprintf("    %s %s\n", StyleRed.Render("•"), item.Text))
		}
	}
	sections = append(sections, n.String())

	title := fmt.Sprintf("%s, %s", today.Weekday(), HumanDate(today))
	return RenderBox(title, strings.Join(sections, "\n"))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dim("--")
	}
	return s
}
