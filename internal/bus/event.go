package bus

import "time"

// Event kinds published by the daemon. Subscribers filter on prefixes such
// as "chat." or "message.".
const (
	KindInboundMessage  = "inbound.message"
	KindGroupCreated    = "chat.group_created"
	KindGroupUpdated    = "chat.group_updated"
	KindGroupRead       = "chat.group_read"
	KindContactUpdated  = "chat.contact_updated"
	KindMessageSent     = "message.sent"
	KindMessageReceived = "message.received"
	KindPrayerAdded     = "prayer.added"
	KindPrayerUpdated   = "prayer.updated"
	KindPrayerDeleted   = "prayer.deleted"
	KindNoteAdded       = "note.added"
	KindNoteDeleted     = "note.deleted"
	KindStatusChanged   = "session.status_changed"
)

// Event represents a domain event published on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// NewEvent stamps an event with the current time.
func NewEvent(kind string, payload any) Event {
	return Event{Kind: kind, Timestamp: time.Now(), Payload: payload}
}

// Namespace returns the part of Kind up to and including the first dot.
func (e Event) Namespace() string {
	for i := 0; i < len(e.Kind); i++ {
		if e.Kind[i] == '.' {
			return e.Kind[:i+1]
		}
	}
	return e.Kind
}
