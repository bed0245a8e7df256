package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// VideoPreview is the summary text used for messages carrying a video.
const VideoPreview = "📹 Video"

const messageColumns = `id, group_id, sender_id, sender_name, body, video_ref, is_me, timestamp`

func scanMessage(sc interface{ Scan(...any) error }) (Message, error) {
	var m Message
	err := sc.Scan(&m.ID, &m.GroupID, &m.SenderID, &m.SenderName, &m.Body, &m.VideoRef, &m.IsMe, &m.Timestamp)
	return m, err
}

func preview(m *Message) string {
	if m.VideoRef != "" {
		return VideoPreview
	}
	return m.Body
}

func groupExists(q queryRower, groupID string) (bool, error) {
	var n int
	if err := q.QueryRow(`SELECT COUNT(*) FROM chat_groups WHERE id = ?`, groupID).Scan(&n); err != nil {
		return false, fmt.Errorf("lookup group: %w", err)
	}
	return n > 0, nil
}

// SendMessage appends a message from the local user to a group, makes it
// the group's last message and clears the unread counter. A message with
// blank text and no video creates nothing and returns nil.
func (db *DB) SendMessage(groupID, text, videoRef string) (*Message, error) {
	videoRef = strings.TrimSpace(videoRef)
	if strings.TrimSpace(text) == "" && videoRef == "" {
		return nil, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ok, err := groupExists(tx, groupID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrGroupNotFound
	}
	self, err := selfUser(tx)
	if err != nil {
		return nil, err
	}

	m := Message{
		ID:         uuid.NewString(),
		GroupID:    groupID,
		SenderID:   self.ID,
		SenderName: self.Name,
		Body:       text,
		VideoRef:   videoRef,
		IsMe:       true,
		Timestamp:  db.nowMillis(),
	}
	if err := insertMessage(tx, &m); err != nil {
		return nil, err
	}
	_, err = tx.Exec(`UPDATE chat_groups SET last_message = ?, last_message_at = ?, unread_count = 0 WHERE id = ?`,
		"You: "+preview(&m), m.Timestamp, groupID)
	if err != nil {
		return nil, fmt.Errorf("update group: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &m, nil
}

// ReceiveMessage appends an inbound message from another member and bumps
// the group's unread counter by one. Missing id and timestamp are filled in.
func (db *DB) ReceiveMessage(msg Message) (*Message, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ok, err := groupExists(tx, msg.GroupID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrGroupNotFound
	}

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp == 0 {
		msg.Timestamp = db.nowMillis()
	}
	msg.IsMe = false
	if err := insertMessage(tx, &msg); err != nil {
		return nil, err
	}
	_, err = tx.Exec(`UPDATE chat_groups SET last_message = ?, last_message_at = ?, unread_count = unread_count + 1 WHERE id = ?`,
		msg.SenderName+": "+preview(&msg), msg.Timestamp, msg.GroupID)
	if err != nil {
		return nil, fmt.Errorf("update group: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &msg, nil
}

func insertMessage(tx *sql.Tx, m *Message) error {
	_, err := tx.Exec(`INSERT INTO messages (id, group_id, sender_id, sender_name, body, video_ref, is_me, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.GroupID, m.SenderID, m.SenderName, m.Body, m.VideoRef, boolInt(m.IsMe), m.Timestamp)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// ListMessages returns the most recent messages of a group, oldest first.
// A non-positive limit defaults to 50.
func (db *DB) ListMessages(groupID string, limit int) ([]Message, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`SELECT `+messageColumns+` FROM (
			SELECT seq, `+messageColumns+` FROM messages
			WHERE group_id = ?
			ORDER BY timestamp DESC, seq DESC
			LIMIT ?
		) ORDER BY timestamp ASC, seq ASC`, groupID, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return collectMessages(rows)
}

// SearchMessages finds messages whose text contains query, newest first.
// An empty groupID searches every group.
func (db *DB) SearchMessages(query, groupID string, limit int) ([]Message, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	pattern := "%" + likeEscaper.Replace(query) + "%"
	rows, err := db.Query(`SELECT `+messageColumns+` FROM messages
		WHERE body LIKE ? ESCAPE '\' AND (? = '' OR group_id = ?)
		ORDER BY timestamp DESC, seq DESC
		LIMIT ?`, pattern, groupID, groupID, limit)
	if err != nil {
		return nil, fmt.Errorf("search messages: %w", err)
	}
	return collectMessages(rows)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func collectMessages(rows *sql.Rows) ([]Message, error) {
	defer func() { _ = rows.Close() }()
	var msgs []Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
