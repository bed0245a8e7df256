package simulate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matheus3301/flock/internal/bus"
	"github.com/matheus3301/flock/internal/store"
)

type fixedGroups struct {
	groups []store.Group
	err    error
	calls  int
}

func (f *fixedGroups) ListGroups() ([]store.Group, error) {
	f.calls++
	return f.groups, f.err
}

// seqRand returns the queued values in order, then zeros.
type seqRand struct{ vals []int }

func (r *seqRand) IntN(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v % n
}

func TestTickEmptyGroupsIsNoop(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe(10, "inbound.")
	defer unsub()

	s := New(&fixedGroups{}, b, &seqRand{}, time.Second, nil)
	if msg := s.Tick(); msg != nil {
		t.Fatalf("Tick() = %+v, want nil", msg)
	}
	select {
	case evt := <-ch:
		t.Errorf("unexpected event %s", evt.Kind)
	default:
	}
}

func TestTickListErrorIsNoop(t *testing.T) {
	s := New(&fixedGroups{err: errors.New("closed")}, bus.New(), &seqRand{}, time.Second, nil)
	if msg := s.Tick(); msg != nil {
		t.Errorf("Tick() = %+v, want nil", msg)
	}
}

func TestTickPublishesInboundMessage(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe(10, "inbound.")
	defer unsub()

	lister := &fixedGroups{groups: []store.Group{{ID: "g1"}, {ID: "g2"}, {ID: "g3"}}}
	s := New(lister, b, &seqRand{vals: []int{1, 3, 4}}, time.Second, nil)
	s.now = func() time.Time { return time.UnixMilli(42) }

	msg := s.Tick()
	if msg == nil {
		t.Fatal("Tick() = nil")
	}
	if msg.GroupID != "g2" || msg.SenderName != "Chipo" || msg.Body != "Amen!" {
		t.Errorf("msg = %+v", msg)
	}
	if msg.SenderID != SenderID || msg.IsMe || msg.Timestamp != 42 || msg.ID == "" {
		t.Errorf("msg = %+v", msg)
	}

	select {
	case evt := <-ch:
		if evt.Kind != bus.KindInboundMessage {
			t.Errorf("kind = %s", evt.Kind)
		}
		got, ok := evt.Payload.(store.Message)
		if !ok || got.ID != msg.ID {
			t.Errorf("payload = %#v", evt.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}
}

func TestTickReadsGroupsLive(t *testing.T) {
	lister := &fixedGroups{}
	s := New(lister, bus.New(), &seqRand{}, time.Second, nil)

	if s.Tick() != nil {
		t.Fatal("fired with no groups")
	}
	lister.groups = []store.Group{{ID: "new"}}
	msg := s.Tick()
	if msg == nil || msg.GroupID != "new" {
		t.Errorf("Tick() after group added = %+v", msg)
	}
	if lister.calls != 2 {
		t.Errorf("ListGroups calls = %d, want 2", lister.calls)
	}
}

func TestStartStop(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe(10, "inbound.")
	defer unsub()

	s := New(&fixedGroups{groups: []store.Group{{ID: "g1"}}}, b, NewRand(7), 10*time.Millisecond, nil)
	s.Start(context.Background())

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
	s.Stop()
	s.Stop()
}

func TestNewRandSeeded(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 5; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("same seed diverged: %d != %d", x, y)
		}
	}
}
