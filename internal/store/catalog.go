package store

import (
	"database/sql"
	"errors"
	"fmt"
)

func selfUser(q queryRower) (*User, error) {
	var u User
	err := q.QueryRow(`SELECT id, name, avatar, tier, church_branch, sanctity_points, streak_days
		FROM users WHERE is_self = 1`).
		Scan(&u.ID, &u.Name, &u.Avatar, &u.Tier, &u.ChurchBranch, &u.SanctityPoints, &u.StreakDays)
	if err != nil {
		return nil, fmt.Errorf("local user: %w", err)
	}
	return &u, nil
}

// Profile returns the local user.
func (db *DB) Profile() (*User, error) {
	return selfUser(db)
}

const sermonColumns = `id, title, preacher, series, thumbnail, video_url, date, views, is_live, transcript`

func scanSermon(sc interface{ Scan(...any) error }) (Sermon, error) {
	var s Sermon
	err := sc.Scan(&s.ID, &s.Title, &s.Preacher, &s.Series, &s.Thumbnail, &s.VideoURL, &s.Date, &s.Views, &s.IsLive, &s.Transcript)
	return s, err
}

// ListSermons returns the sermon catalog, most recent first.
func (db *DB) ListSermons() ([]Sermon, error) {
	rows, err := db.Query(`SELECT ` + sermonColumns + ` FROM sermons ORDER BY date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list sermons: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []Sermon
	for rows.Next() {
		s, err := scanSermon(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sermon: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetSermon returns a sermon by id, or nil if it does not exist.
func (db *DB) GetSermon(id string) (*Sermon, error) {
	s, err := scanSermon(db.QueryRow(`SELECT `+sermonColumns+` FROM sermons WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get sermon: %w", err)
	}
	return &s, nil
}

func (db *DB) ListSongs() ([]Song, error) {
	rows, err := db.Query(`SELECT id, title, artist, album, thumbnail, video_url, duration, likes FROM songs ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []Song
	for rows.Next() {
		var s Song
		if err := rows.Scan(&s.ID, &s.Title, &s.Artist, &s.Album, &s.Thumbnail, &s.VideoURL, &s.Duration, &s.Likes); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (db *DB) ListShorts() ([]ShortVideo, error) {
	rows, err := db.Query(`SELECT id, url, description, creator, likes, shares, type FROM shorts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list shorts: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []ShortVideo
	for rows.Next() {
		var v ShortVideo
		if err := rows.Scan(&v.ID, &v.URL, &v.Description, &v.Creator, &v.Likes, &v.Shares, &v.Type); err != nil {
			return nil, fmt.Errorf("scan short: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Stats counts groups, messages, unread messages, prayers and notes.
func (db *DB) Stats() (Stats, error) {
	var s Stats
	err := db.QueryRow(`SELECT
		(SELECT COUNT(*) FROM chat_groups),
		(SELECT COUNT(*) FROM messages),
		(SELECT COALESCE(SUM(unread_count), 0) FROM chat_groups),
		(SELECT COUNT(*) FROM prayer_requests),
		(SELECT COUNT(*) FROM notes)`).Scan(&s.Groups, &s.Messages, &s.Unread, &s.Prayers, &s.Notes)
	if err != nil {
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	return s, nil
}
