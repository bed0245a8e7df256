package store

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const groupColumns = `id, name, type, image, last_message, last_message_at, unread_count`

func scanGroup(sc interface{ Scan(...any) error }) (Group, error) {
	var g Group
	var typ string
	err := sc.Scan(&g.ID, &g.Name, &typ, &g.Image, &g.LastMessage, &g.LastMessageAt, &g.UnreadCount)
	g.Type = GroupType(typ)
	return g, err
}

// ListGroups returns all groups in display order, newest created first.
func (db *DB) ListGroups() ([]Group, error) {
	rows, err := db.Query(`SELECT ` + groupColumns + ` FROM chat_groups ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	var groups []Group
	index := make(map[string]int)
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan group: %w", err)
		}
		index[g.ID] = len(groups)
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	_ = rows.Close()

	// The rows above must be closed before this query: the store has one
	// connection.
	members, err := db.Query(`SELECT group_id, member_id FROM group_members ORDER BY group_id, position`)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer func() { _ = members.Close() }()
	for members.Next() {
		var gid, mid string
		if err := members.Scan(&gid, &mid); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		if i, ok := index[gid]; ok {
			groups[i].Members = append(groups[i].Members, mid)
		}
	}
	return groups, members.Err()
}

// GetGroup returns a group by id, or nil if it does not exist.
func (db *DB) GetGroup(id string) (*Group, error) {
	g, err := scanGroup(db.QueryRow(`SELECT `+groupColumns+` FROM chat_groups WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	g.Members, err = db.groupMembers(id)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (db *DB) groupMembers(groupID string) ([]string, error) {
	rows, err := db.Query(`SELECT member_id FROM group_members WHERE group_id = ? ORDER BY position`, groupID)
	if err != nil {
		return nil, fmt.Errorf("group members: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var members []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		members = append(members, id)
	}
	return members, rows.Err()
}

// CreateGroup creates a general group owned by the local user and places it
// first in the list. The local user is always the first member; memberIDs
// follow in order with duplicates dropped. A blank name creates nothing and
// returns nil.
func (db *DB) CreateGroup(name string, memberIDs []string) (*Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	self, err := selfUser(tx)
	if err != nil {
		return nil, err
	}

	var position int
	if err := tx.QueryRow(`SELECT COALESCE(MIN(position), 1) - 1 FROM chat_groups`).Scan(&position); err != nil {
		return nil, fmt.Errorf("group position: %w", err)
	}

	g := Group{
		ID:            uuid.NewString(),
		Name:          name,
		Type:          GroupGeneral,
		Image:         "https://picsum.photos/seed/" + url.PathEscape(name) + "/100/100",
		LastMessage:   "Group created",
		LastMessageAt: db.nowMillis(),
		Members:       []string{self.ID},
	}
	seen := map[string]bool{self.ID: true}
	for _, id := range memberIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		g.Members = append(g.Members, id)
	}

	_, err = tx.Exec(`INSERT INTO chat_groups (id, name, type, image, last_message, last_message_at, unread_count, position)
		VALUES (?, ?, ?, ?, ?, ?, 0, ?)`,
		g.ID, g.Name, string(g.Type), g.Image, g.LastMessage, g.LastMessageAt, position)
	if err != nil {
		return nil, fmt.Errorf("insert group: %w", err)
	}
	for i, id := range g.Members {
		if _, err := tx.Exec(`INSERT INTO group_members (group_id, member_id, position) VALUES (?, ?, ?)`, g.ID, id, i); err != nil {
			return nil, fmt.Errorf("insert member: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &g, nil
}

// MarkGroupAsRead clears the unread counter of a group. Unknown groups are
// ignored.
func (db *DB) MarkGroupAsRead(groupID string) error {
	if _, err := db.Exec(`UPDATE chat_groups SET unread_count = 0 WHERE id = ?`, groupID); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}
