package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matheus3301/flock/internal/bus"
	"github.com/matheus3301/flock/internal/store"
)

func testDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.OpenSeeded()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestEngineIngestMessage(t *testing.T) {
	db := testDB(t)
	b := bus.New()
	e := NewEngine(db, b, nil)

	ch, unsub := b.Subscribe(10, "message.", "chat.")
	defer unsub()

	stored, err := e.IngestMessage(store.Message{GroupID: "g2", SenderID: "simulated", SenderName: "Sister Rudo", Body: "Amen!"})
	if err != nil {
		t.Fatal(err)
	}
	if stored.ID == "" {
		t.Error("stored message has no id")
	}

	g, err := db.GetGroup("g2")
	if err != nil {
		t.Fatal(err)
	}
	if g.UnreadCount != 1 || g.LastMessage != "Sister Rudo: Amen!" {
		t.Errorf("group = %+v", g)
	}

	wantKinds := []string{bus.KindMessageReceived, bus.KindGroupUpdated}
	for _, want := range wantKinds {
		select {
		case evt := <-ch:
			if evt.Kind != want {
				t.Errorf("kind = %s, want %s", evt.Kind, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func TestEngineUnknownGroup(t *testing.T) {
	e := NewEngine(testDB(t), bus.New(), nil)
	_, err := e.IngestMessage(store.Message{GroupID: "deleted", SenderName: "x", Body: "y"})
	if !errors.Is(err, store.ErrGroupNotFound) {
		t.Errorf("err = %v, want ErrGroupNotFound", err)
	}
}

func TestEngineConsumesBus(t *testing.T) {
	db := testDB(t)
	b := bus.New()
	e := NewEngine(db, b, nil)

	updates, unsub := b.Subscribe(10, "chat.")
	defer unsub()

	e.Start(context.Background())
	defer e.Stop()

	b.Publish(bus.NewEvent(bus.KindInboundMessage, store.Message{GroupID: "g3", SenderName: "Chipo", Body: "Who is leading intercession today?"}))
	b.Publish(bus.NewEvent(bus.KindInboundMessage, "not a message"))

	select {
	case evt := <-updates:
		if evt.Payload != "g3" {
			t.Errorf("payload = %v, want g3", evt.Payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("engine never applied the inbound message")
	}

	g, err := db.GetGroup("g3")
	if err != nil {
		t.Fatal(err)
	}
	if g.UnreadCount != 2 {
		t.Errorf("unread = %d, want 2", g.UnreadCount)
	}
}
