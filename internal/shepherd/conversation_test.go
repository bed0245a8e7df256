package shepherd

import (
	"context"
	"errors"
	"testing"
)

// blockingAsker returns its reply only once released.
type blockingAsker struct {
	started chan struct{}
	release chan string
}

func (b *blockingAsker) GetGuidance(context.Context, string) string {
	close(b.started)
	return <-b.release
}

func TestGreeting(t *testing.T) {
	want := "Peace be with you, Tinashe. I am your digital spiritual guide. How is your spirit today? You can ask me for a verse, prayer, or guidance."
	if got := Greeting("Tinashe Moyo"); got != want {
		t.Errorf("Greeting() = %q", got)
	}
}

func TestConversationAskWithFailingGateway(t *testing.T) {
	g := NewGateway(&fakeCompleter{err: errors.New("offline")}, nil, nil)
	changes := 0
	c := NewConversation(g, "Tinashe Moyo", func() { changes++ })

	if !c.Ask(context.Background(), "Pray for me") {
		t.Fatal("Ask() = false")
	}
	turns := c.Turns()
	if len(turns) != 3 {
		t.Fatalf("turns = %d, want 3", len(turns))
	}
	if turns[1].Role != RoleUser || turns[2].Role != RoleGuide || turns[2].Content != GuidanceFailed {
		t.Errorf("turns = %+v", turns)
	}
	if c.Loading() {
		t.Error("still loading after reply")
	}
	if changes != 2 {
		t.Errorf("onChange called %d times, want 2", changes)
	}
}

func TestConversationBlankIsNoop(t *testing.T) {
	c := NewConversation(NewGateway(&fakeCompleter{}, nil, nil), "Tinashe", nil)
	if c.Ask(context.Background(), "   ") {
		t.Error("blank Ask() = true")
	}
	if n := len(c.Turns()); n != 1 {
		t.Errorf("turns = %d, want only the greeting", n)
	}
}

func TestConversationIgnoresLateReply(t *testing.T) {
	asker := &blockingAsker{started: make(chan struct{}), release: make(chan string)}
	c := NewConversation(asker, "Tinashe", nil)

	done := make(chan bool)
	go func() { done <- c.Ask(context.Background(), "Is God with me?") }()

	<-asker.started
	if !c.Loading() {
		t.Error("not loading while the reply is outstanding")
	}
	c.Close()
	asker.release <- "Yes, always."

	if <-done {
		t.Error("late reply was appended")
	}
	turns := c.Turns()
	if len(turns) != 2 || turns[len(turns)-1].Role != RoleUser {
		t.Errorf("turns = %+v", turns)
	}
	if c.Loading() {
		t.Error("closed conversation reports loading")
	}
}
