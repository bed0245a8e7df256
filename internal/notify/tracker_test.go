package notify

import "testing"

func seed() []Group {
	return []Group{
		{ID: "A", Name: "Youth Ministry (Harare)", UnreadCount: 2},
		{ID: "B", Name: "Men of Valor", UnreadCount: 0},
	}
}

func TestFirstSnapshotTriggersNothing(t *testing.T) {
	tr := NewTracker()
	if d := tr.Observe(seed(), ""); !d.Empty() {
		t.Errorf("first observe = %+v, want empty", d)
	}
}

func TestIncreaseInOpenGroupMarksRead(t *testing.T) {
	tr := NewTracker()
	tr.Observe(seed(), "B")

	next := seed()
	next[1].UnreadCount = 1
	d := tr.Observe(next, "B")
	if len(d.Banners) != 0 {
		t.Errorf("banners = %+v, want none", d.Banners)
	}
	if len(d.MarkRead) != 1 || d.MarkRead[0] != "B" {
		t.Errorf("mark read = %v, want [B]", d.MarkRead)
	}
}

func TestIncreaseInOtherGroupBanners(t *testing.T) {
	tests := []struct {
		name string
		open string
	}{
		{"another group open", "A"},
		{"no group open", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			tr.Observe(seed(), tt.open)

			next := seed()
			next[1].UnreadCount = 1
			d := tr.Observe(next, tt.open)
			if len(d.MarkRead) != 0 {
				t.Errorf("mark read = %v, want none", d.MarkRead)
			}
			if len(d.Banners) != 1 || d.Banners[0].Text != "New message in Men of Valor" {
				t.Errorf("banners = %+v", d.Banners)
			}
		})
	}
}

func TestAcknowledgedGroupRaisesOnNextMessage(t *testing.T) {
	tests := []struct {
		name     string
		open     string
		banners  int
		markRead int
	}{
		{"group open", "A", 0, 1},
		{"group closed", "", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			tr.Observe(seed(), tt.open)
			tr.Acknowledge("A")

			// A was at 2 before the mark-read; one new message brings it to 1.
			next := seed()
			next[0].UnreadCount = 1
			d := tr.Observe(next, tt.open)
			if len(d.Banners) != tt.banners || len(d.MarkRead) != tt.markRead {
				t.Errorf("observe = %+v, want %d banners and %d mark-reads", d, tt.banners, tt.markRead)
			}
		})
	}
}

func TestAcknowledgeUnknownGroup(t *testing.T) {
	tr := NewTracker()
	tr.Acknowledge("A")
	if d := tr.Observe(seed(), ""); !d.Empty() {
		t.Errorf("observe = %+v, want empty", d)
	}
}

func TestDecreaseAndNewGroupsIgnored(t *testing.T) {
	tr := NewTracker()
	tr.Observe(seed(), "")

	next := []Group{
		{ID: "A", Name: "Youth Ministry (Harare)", UnreadCount: 0},
		{ID: "B", Name: "Men of Valor", UnreadCount: 0},
		{ID: "C", Name: "Bible Study", UnreadCount: 5},
	}
	if d := tr.Observe(next, ""); !d.Empty() {
		t.Errorf("observe = %+v, want empty", d)
	}

	// C is now part of the snapshot, so a further increase counts.
	next[2].UnreadCount = 6
	if d := tr.Observe(next, ""); len(d.Banners) != 1 || d.Banners[0].GroupID != "C" {
		t.Errorf("banners = %+v, want one for C", d.Banners)
	}
}

func TestSnapshotAdvances(t *testing.T) {
	tr := NewTracker()
	tr.Observe(seed(), "")

	next := seed()
	next[0].UnreadCount = 3
	tr.Observe(next, "")
	if d := tr.Observe(next, ""); !d.Empty() {
		t.Errorf("unchanged snapshot produced %+v", d)
	}

	tr.Reset()
	next[0].UnreadCount = 9
	if d := tr.Observe(next, ""); !d.Empty() {
		t.Errorf("observe after reset = %+v, want empty", d)
	}
}
