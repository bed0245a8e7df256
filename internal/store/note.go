package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GeneralNoteTitle is the title of notes not tied to any sermon or song.
const GeneralNoteTitle = "General Note"

// AddNote stores a note at the top of the notebook. A missing title is
// derived from the sermon or song the note is scoped to. Blank content
// creates nothing and returns nil.
func (db *DB) AddNote(note Note) (*Note, error) {
	if strings.TrimSpace(note.Content) == "" {
		return nil, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n := Note{
		ID:        uuid.NewString(),
		SermonID:  strings.TrimSpace(note.SermonID),
		Title:     strings.TrimSpace(note.Title),
		Content:   note.Content,
		CreatedAt: db.nowMillis(),
	}
	if n.Title == "" {
		n.Title = GeneralNoteTitle
		if n.SermonID != "" {
			var title string
			err := tx.QueryRow(`SELECT title FROM sermons WHERE id = ?
				UNION ALL SELECT title FROM songs WHERE id = ? LIMIT 1`, n.SermonID, n.SermonID).Scan(&title)
			if err == nil {
				n.Title = "Notes: " + title
			}
		}
	}
	_, err = tx.Exec(`INSERT INTO notes (id, sermon_id, title, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		n.ID, n.SermonID, n.Title, n.Content, n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &n, nil
}

// DeleteNote removes a note and reports whether it existed.
func (db *DB) DeleteNote(id string) (bool, error) {
	res, err := db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete note: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// ListNotes returns notes newest first. A non-empty sermonID restricts the
// result to notes scoped to it.
func (db *DB) ListNotes(sermonID string) ([]Note, error) {
	rows, err := db.Query(`SELECT id, sermon_id, title, content, created_at FROM notes
		WHERE ? = '' OR sermon_id = ?
		ORDER BY seq DESC`, sermonID, sermonID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.SermonID, &n.Title, &n.Content, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
