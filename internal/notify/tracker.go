// Package notify decides how the community view reacts to unread counters
// going up: a transient banner for groups the viewer is not looking at, an
// immediate mark-read for the group that is open.
package notify

import "time"

// BannerDuration is how long a banner stays visible.
const BannerDuration = 4 * time.Second

// Group is the part of a chat group the tracker looks at.
type Group struct {
	ID          string
	Name        string
	UnreadCount int
}

// Banner is a transient notice about new activity in a group.
type Banner struct {
	GroupID string
	Text    string
}

// BannerText formats the notice shown for a group.
func BannerText(groupName string) string {
	return "New message in " + groupName
}

// Decision is the outcome of one Observe call.
type Decision struct {
	Banners  []Banner
	MarkRead []string
}

// Empty reports whether the decision asks for nothing.
func (d Decision) Empty() bool {
	return len(d.Banners) == 0 && len(d.MarkRead) == 0
}

// Tracker remembers the unread counters of the previous snapshot. It is not
// safe for concurrent use.
type Tracker struct {
	prev map[string]int
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe compares groups against the previous snapshot and stores groups as
// the new one. openGroupID is the group the viewer has open, or "".
// Groups absent from the previous snapshot never produce anything.
func (t *Tracker) Observe(groups []Group, openGroupID string) Decision {
	var d Decision
	next := make(map[string]int, len(groups))
	for _, g := range groups {
		next[g.ID] = g.UnreadCount
		before, seen := t.prev[g.ID]
		if !seen || g.UnreadCount <= before {
			continue
		}
		if g.ID == openGroupID {
			d.MarkRead = append(d.MarkRead, g.ID)
			continue
		}
		d.Banners = append(d.Banners, Banner{GroupID: g.ID, Text: BannerText(g.Name)})
	}
	t.prev = next
	return d
}

// Acknowledge records that groupID was marked read, so the next increase
// is measured from zero.
func (t *Tracker) Acknowledge(groupID string) {
	if _, seen := t.prev[groupID]; seen {
		t.prev[groupID] = 0
	}
}

// Reset forgets the previous snapshot. The next Observe is treated as the
// first one.
func (t *Tracker) Reset() {
	t.prev = nil
}
