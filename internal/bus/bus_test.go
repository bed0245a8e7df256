package bus

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe(10, "chat.")
	defer unsub()

	b.Publish(NewEvent(KindGroupUpdated, "g1"))

	select {
	case evt := <-ch:
		if evt.Kind != KindGroupUpdated {
			t.Errorf("got kind %q, want %q", evt.Kind, KindGroupUpdated)
		}
		if evt.Payload != "g1" {
			t.Errorf("payload = %v, want g1", evt.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestMultiplePrefixes(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe(10, "chat.", "message.")
	defer unsub()

	b.Publish(NewEvent(KindPrayerAdded, nil))
	b.Publish(NewEvent(KindMessageReceived, nil))
	b.Publish(NewEvent(KindGroupRead, nil))

	var got []string
	for i := 0; i < 2; i++ {
		select {
		case evt := <-ch:
			got = append(got, evt.Kind)
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for event")
		}
	}
	if got[0] != KindMessageReceived || got[1] != KindGroupRead {
		t.Errorf("got %v, want [%s %s]", got, KindMessageReceived, KindGroupRead)
	}

	select {
	case evt := <-ch:
		t.Errorf("unexpected event: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe(10, "session.")
	unsub()
	unsub() // second call is harmless

	b.Publish(NewEvent(KindStatusChanged, nil))

	select {
	case evt := <-ch:
		t.Errorf("received event after unsubscribe: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
	if n := b.Subscribers(); n != 0 {
		t.Errorf("Subscribers() = %d, want 0", n)
	}
}

func TestDropOnFullBuffer(t *testing.T) {
	b := New()
	var dropped []string
	b.OnDrop(func(evt Event) { dropped = append(dropped, evt.Kind) })

	ch, unsub := b.Subscribe(1, "note.")
	defer unsub()

	b.Publish(NewEvent(KindNoteAdded, nil))
	b.Publish(NewEvent(KindNoteDeleted, nil))

	evt := <-ch
	if evt.Kind != KindNoteAdded {
		t.Errorf("got %q, want %q", evt.Kind, KindNoteAdded)
	}
	if len(dropped) != 1 || dropped[0] != KindNoteDeleted {
		t.Errorf("dropped = %v, want [%s]", dropped, KindNoteDeleted)
	}
}

func TestNamespace(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{KindGroupUpdated, "chat."},
		{KindInboundMessage, "inbound."},
		{"bare", "bare"},
	}
	for _, tt := range tests {
		if got := (Event{Kind: tt.kind}).Namespace(); got != tt.want {
			t.Errorf("Namespace(%q) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
