package domain

type Stage string

const (
	StageActiveLead  Stage = "active_lead"
	StageOldLead     Stage = "old_lead"
	StagePreApproval Stage = "pre_approval"
	StageActiveDeal  Stage = "active_deal"
	StageClosedDeal  Stage = "closed_deal"
)

// Stages lists all pipeline stages in display order.
var Stages = []Stage{
	StageActiveLead,
	StageOldLead,
	StagePreApproval,
	StageActiveDeal,
	StageClosedDeal,
}

// ValidStages is the canonical set of accepted stage strings.
var ValidStages = map[Stage]bool{
	StageActiveLead:  true,
	StageOldLead:     true,
	StagePreApproval: true,
	StageActiveDeal:  true,
	StageClosedDeal:  true,
}

// Label returns the human-readable name for a stage.
func (s Stage) Label() string {
	switch s {
	case StageActiveLead:
		return "Active Leads"
	case StageOldLead:
		return "Old Leads"
	case StagePreApproval:
		return "Pre-Approvals"
	case StageActiveDeal:
		return "Active Deals"
	case StageClosedDeal:
		return "Closed Deals"
	default:
		return string(s)
	}
}

// ParseStage validates a stage string and returns the typed stage.
func ParseStage(s string) (Stage, error) {
	stage := Stage(s)
	if !ValidStages[stage] {
		return "", ErrInvalidStage
	}
	return stage, nil
}

type DealType string

const (
	TypePurchase  DealType = "Purchase"
	TypeRefinance DealType = "Refinance"
)

// DealTypes lists all accepted deal types.
var DealTypes = []DealType{TypePurchase, TypeRefinance}

// ParseDealType validates a deal type string and returns the typed value.
func ParseDealType(s string) (DealType, error) {
	switch DealType(s) {
	case TypePurchase:
		return TypePurchase, nil
	case TypeRefinance:
		return TypeRefinance, nil
	default:
		return "", ErrInvalidDealType
	}
}
