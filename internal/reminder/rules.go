package reminder

import (
	"time"

	"github.com/alexanderramin/dealdesk/internal/domain"
)

type RuleKind string

const (
	KindNone     RuleKind = "none"
	KindWeekly   RuleKind = "weekly"
	KindInterval RuleKind = "interval"
)

// Rule is the follow-up policy attached to a pipeline stage. Exactly one
// of the kind-specific fields is meaningful: DaysOfWeek for weekly rules,
// IntervalDays for interval rules.
type Rule struct {
	Kind         RuleKind
	DaysOfWeek   []time.Weekday
	IntervalDays int
	Label        string
}

// RuleForStage returns the follow-up policy for a stage. The switch is
// exhaustive over the pipeline enum; unknown stages get the none rule.
func RuleForStage(stage domain.Stage) Rule {
	switch stage {
	case domain.StageActiveLead:
		return Rule{
			Kind:       KindWeekly,
			DaysOfWeek: []time.Weekday{time.Monday, time.Thursday},
			Label:      "Follow up every Mon & Thu",
		}
	case domain.StageOldLead, domain.StagePreApproval:
		return Rule{
			Kind:         KindInterval,
			IntervalDays: 30,
			Label:        "Follow up every 30 days",
		}
	case domain.StageActiveDeal, domain.StageClosedDeal:
		return Rule{Kind: KindNone, Label: "No scheduled follow-up"}
	default:
		return Rule{Kind: KindNone, Label: "No scheduled follow-up"}
	}
}
