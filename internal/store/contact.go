package store

import "fmt"

// ListContacts returns the reference contact list.
func (db *DB) ListContacts() ([]Contact, error) {
	rows, err := db.Query(`SELECT id, name, avatar, status, church_branch, request_pending
		FROM contacts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []Contact
	for rows.Next() {
		var c Contact
		var status string
		if err := rows.Scan(&c.ID, &c.Name, &c.Avatar, &status, &c.ChurchBranch, &c.RequestPending); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		c.Status = ContactStatus(status)
		out = append(out, c)
	}
	return out, rows.Err()
}

// SendFriendRequest marks a friend request to a contact as pending. It
// reports whether the contact exists.
func (db *DB) SendFriendRequest(contactID string) (bool, error) {
	res, err := db.Exec(`UPDATE contacts SET request_pending = 1 WHERE id = ?`, contactID)
	if err != nil {
		return false, fmt.Errorf("friend request: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
