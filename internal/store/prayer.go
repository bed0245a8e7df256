package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const prayerColumns = `id, content, is_private, author, author_id, prayed_count, status, created_at`

func scanPrayer(sc interface{ Scan(...any) error }) (PrayerRequest, error) {
	var p PrayerRequest
	var status string
	err := sc.Scan(&p.ID, &p.Content, &p.IsPrivate, &p.Author, &p.AuthorID, &p.PrayedCount, &status, &p.CreatedAt)
	p.Status = PrayerStatus(status)
	return p, err
}

// ListPrayerRequests returns the prayer wall, newest first.
func (db *DB) ListPrayerRequests() ([]PrayerRequest, error) {
	rows, err := db.Query(`SELECT ` + prayerColumns + ` FROM prayer_requests ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list prayers: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []PrayerRequest
	for rows.Next() {
		p, err := scanPrayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prayer: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetPrayerRequest returns a request by id, or nil if it does not exist.
func (db *DB) GetPrayerRequest(id string) (*PrayerRequest, error) {
	p, err := scanPrayer(db.QueryRow(`SELECT `+prayerColumns+` FROM prayer_requests WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get prayer: %w", err)
	}
	return &p, nil
}

// AddPrayerRequest puts a request authored by the local user at the top of
// the wall. Only Content, IsPrivate and Author are taken from req; an empty
// Author becomes the local user's name. Blank content creates nothing and
// returns nil.
func (db *DB) AddPrayerRequest(req PrayerRequest) (*PrayerRequest, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
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
	p := PrayerRequest{
		ID:        uuid.NewString(),
		Content:   content,
		IsPrivate: req.IsPrivate,
		Author:    strings.TrimSpace(req.Author),
		AuthorID:  self.ID,
		Status:    PrayerActive,
		CreatedAt: db.nowMillis(),
	}
	if p.Author == "" {
		p.Author = self.Name
	}
	_, err = tx.Exec(`INSERT INTO prayer_requests (id, content, is_private, author, author_id, prayed_count, status, created_at)
		VALUES (?, ?, ?, ?, ?, 0, ?, ?)`,
		p.ID, p.Content, boolInt(p.IsPrivate), p.Author, p.AuthorID, string(p.Status), p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert prayer: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &p, nil
}

// DeletePrayerRequest removes a request and reports whether it existed.
func (db *DB) DeletePrayerRequest(id string) (bool, error) {
	res, err := db.Exec(`DELETE FROM prayer_requests WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete prayer: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// TogglePrayerStatus flips a request between active and answered. Only
// requests authored by the local user change; it reports whether one did.
func (db *DB) TogglePrayerStatus(id string) (bool, error) {
	res, err := db.Exec(`UPDATE prayer_requests
		SET status = CASE status WHEN 'active' THEN 'answered' ELSE 'active' END
		WHERE id = ? AND author_id = (SELECT id FROM users WHERE is_self = 1)`, id)
	if err != nil {
		return false, fmt.Errorf("toggle prayer: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// PrayFor records one more prayer for a request.
func (db *DB) PrayFor(id string) (bool, error) {
	res, err := db.Exec(`UPDATE prayer_requests SET prayed_count = prayed_count + 1 WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("pray for: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
