package store

import "errors"

// ErrGroupNotFound is returned when an operation targets a group that does
// not exist.
var ErrGroupNotFound = errors.New("group not found")

// GroupType classifies a chat group.
type GroupType string

const (
	GroupMinistry GroupType = "ministry"
	GroupCell     GroupType = "cell_group"
	GroupGeneral  GroupType = "general"
)

// Group is a chat group with its denormalized summary.
type Group struct {
	ID            string
	Name          string
	Type          GroupType
	Image         string
	LastMessage   string
	LastMessageAt int64
	UnreadCount   int
	Members       []string
}

// Message is a single chat message. Messages are immutable once stored.
type Message struct {
	ID         string
	GroupID    string
	SenderID   string
	SenderName string
	Body       string
	VideoRef   string
	IsMe       bool
	Timestamp  int64
}

// ContactStatus is the presence of a contact.
type ContactStatus string

const (
	ContactOnline  ContactStatus = "online"
	ContactOffline ContactStatus = "offline"
)

type Contact struct {
	ID             string
	Name           string
	Avatar         string
	Status         ContactStatus
	ChurchBranch   string
	RequestPending bool
}

// PrayerStatus is the state of a prayer request.
type PrayerStatus string

const (
	PrayerActive   PrayerStatus = "active"
	PrayerAnswered PrayerStatus = "answered"
)

// AnonymousAuthor is the display name used for anonymous prayer requests.
const AnonymousAuthor = "Anonymous"

// PrayerRequest is an entry on the prayer wall. Author is the display name
// and may be AnonymousAuthor; AuthorID always names the real author.
type PrayerRequest struct {
	ID          string
	Content     string
	IsPrivate   bool
	Author      string
	AuthorID    string
	PrayedCount int
	Status      PrayerStatus
	CreatedAt   int64
}

// Note is a personal note, optionally scoped to a sermon or song.
type Note struct {
	ID        string
	SermonID  string
	Title     string
	Content   string
	CreatedAt int64
}

// User is the local member profile.
type User struct {
	ID             string
	Name           string
	Avatar         string
	Tier           string
	ChurchBranch   string
	SanctityPoints int
	StreakDays     int
}

type Sermon struct {
	ID         string
	Title      string
	Preacher   string
	Series     string
	Thumbnail  string
	VideoURL   string
	Date       string
	Views      int
	IsLive     bool
	Transcript string
}

type Song struct {
	ID        string
	Title     string
	Artist    string
	Album     string
	Thumbnail string
	VideoURL  string
	Duration  string
	Likes     int
}

type ShortVideo struct {
	ID          string
	URL         string
	Description string
	Creator     string
	Likes       int
	Shares      int
	Type        string
}

// Stats holds the row counts reported by the session status.
type Stats struct {
	Groups   int
	Messages int
	Unread   int
	Prayers  int
	Notes    int
}
