package domain

import "time"

// Deal is a mortgage deal moving through the pipeline.
type Deal struct {
	ID       string
	Name     string
	Type     DealType
	Referral string
	Notes    string

	Stage Stage

	// StageEnteredAt is reset on every stage transition and anchors
	// interval reminders and lead auto-aging.
	StageEnteredAt time.Time

	// LastFollowUp, when set, takes precedence over StageEnteredAt as
	// the interval reminder anchor.
	LastFollowUp *time.Time

	NeedsList []NeedsItem

	CreatedAt time.Time
}

// NeedsItem is one outstanding borrower request tracked against a deal.
type NeedsItem struct {
	ID      string
	Text    string
	Done    bool
	AddedAt time.Time
}

// Clone returns a deep copy so engine operations can return new deal
// values without aliasing the caller's needs list.
func (d Deal) Clone() Deal {
	out := d
	if d.LastFollowUp != nil {
		t := *d.LastFollowUp
		out.LastFollowUp = &t
	}
	if d.NeedsList != nil {
		out.NeedsList = make([]NeedsItem, len(d.NeedsList))
		copy(out.NeedsList, d.NeedsList)
	}
	return out
}

// OpenNeedsCount returns the number of unfinished needs items.
func (d Deal) OpenNeedsCount() int {
	n := 0
	for _, item := range d.NeedsList {
		if !item.Done {
			n++
		}
	}
	return n
}
