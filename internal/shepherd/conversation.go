package shepherd

import (
	"context"
	"strings"
	"sync"
)

// Role identifies who spoke a turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleGuide Role = "ai"
)

type Turn struct {
	Role    Role
	Content string
}

// Asker is anything that can answer a guidance question, usually a Gateway
// or an RPC client.
type Asker interface {
	GetGuidance(ctx context.Context, text string) string
}

// Greeting is the opening turn addressed to the user by first name.
func Greeting(userName string) string {
	first := userName
	if fields := strings.Fields(userName); len(fields) > 0 {
		first = fields[0]
	}
	return "Peace be with you, " + first + ". I am your digital spiritual guide. " +
		"How is your spirit today? You can ask me for a verse, prayer, or guidance."
}

// Conversation is the client side of a chat with the shepherd. It is safe
// for concurrent use; replies that arrive after Close are dropped.
type Conversation struct {
	asker    Asker
	onChange func()

	mu      sync.Mutex
	turns   []Turn
	pending int
	closed  bool
}

// NewConversation starts a conversation with the greeting turn. onChange,
// if set, is called after every change outside the lock.
func NewConversation(asker Asker, userName string, onChange func()) *Conversation {
	return &Conversation{
		asker:    asker,
		onChange: onChange,
		turns:    []Turn{{Role: RoleGuide, Content: Greeting(userName)}},
	}
}

// Ask sends text and blocks until the reply is appended. It reports whether
// a reply was appended; blank text and closed conversations do nothing.
func (c *Conversation) Ask(ctx context.Context, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	c.turns = append(c.turns, Turn{Role: RoleUser, Content: text})
	c.pending++
	c.mu.Unlock()
	c.changed()

	reply := c.asker.GetGuidance(ctx, text)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	c.turns = append(c.turns, Turn{Role: RoleGuide, Content: reply})
	c.pending--
	c.mu.Unlock()
	c.changed()
	return true
}

// Turns returns a copy of the transcript.
func (c *Conversation) Turns() []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Loading reports whether a reply is outstanding.
func (c *Conversation) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending > 0 && !c.closed
}

// Close discards any replies still in flight.
func (c *Conversation) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func (c *Conversation) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}
