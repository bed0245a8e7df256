package flockv1

// Group is a chat group as seen by clients.
type Group struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Image           string   `json:"image,omitempty"`
	LastMessage     string   `json:"last_message"`
	LastMessageAtMs int64    `json:"last_message_at_ms"`
	UnreadCount     int32    `json:"unread_count"`
	Members         []string `json:"members"`
}

type Message struct {
	ID          string `json:"id"`
	GroupID     string `json:"group_id"`
	SenderID    string `json:"sender_id"`
	SenderName  string `json:"sender_name"`
	Text        string `json:"text"`
	VideoRef    string `json:"video_ref,omitempty"`
	IsMe        bool   `json:"is_me"`
	TimestampMs int64  `json:"timestamp_ms"`
}

type Contact struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Avatar         string `json:"avatar,omitempty"`
	Status         string `json:"status"`
	ChurchBranch   string `json:"church_branch"`
	RequestPending bool   `json:"request_pending"`
}

type PrayerRequest struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	IsPrivate   bool   `json:"is_private"`
	Author      string `json:"author"`
	AuthorID    string `json:"author_id"`
	PrayedCount int32  `json:"prayed_count"`
	Status      string `json:"status"`
	CreatedAtMs int64  `json:"created_at_ms"`
}

type Note struct {
	ID          string `json:"id"`
	SermonID    string `json:"sermon_id,omitempty"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	CreatedAtMs int64  `json:"created_at_ms"`
}

type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Avatar         string `json:"avatar,omitempty"`
	Tier           string `json:"tier"`
	ChurchBranch   string `json:"church_branch"`
	SanctityPoints int32  `json:"sanctity_points"`
	StreakDays     int32  `json:"streak_days"`
}

type Sermon struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Preacher      string `json:"preacher"`
	Series        string `json:"series"`
	Thumbnail     string `json:"thumbnail,omitempty"`
	VideoURL      string `json:"video_url,omitempty"`
	Date          string `json:"date"`
	Views         int32  `json:"views"`
	IsLive        bool   `json:"is_live"`
	HasTranscript bool   `json:"has_transcript"`
}

type Song struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Album     string `json:"album"`
	Thumbnail string `json:"thumbnail,omitempty"`
	VideoURL  string `json:"video_url,omitempty"`
	Duration  string `json:"duration"`
	Likes     int32  `json:"likes"`
}

type ShortVideo struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Creator     string `json:"creator"`
	Likes       int32  `json:"likes"`
	Shares      int32  `json:"shares"`
	Type        string `json:"type"`
}

type StoryPage struct {
	Text     string `json:"text"`
	ImageURL string `json:"image_url"`
}

type KidsStory struct {
	Title string       `json:"title"`
	Pages []*StoryPage `json:"pages"`
}

// EventEnvelope carries one daemon event to a watching client.
type EventEnvelope struct {
	EventID          string   `json:"event_id"`
	Session          string   `json:"session"`
	OccurredAtUnixMs int64    `json:"occurred_at_unix_ms"`
	Kind             string   `json:"kind"`
	GroupID          string   `json:"group_id,omitempty"`
	Message          *Message `json:"message,omitempty"`
}

// SessionService

type GetSessionStatusRequest struct{}

type GetSessionStatusResponse struct {
	Session      string `json:"session"`
	Status       string `json:"status"`
	UptimeMs     int64  `json:"uptime_ms"`
	GroupCount   int32  `json:"group_count"`
	MessageCount int32  `json:"message_count"`
	UnreadCount  int32  `json:"unread_count"`
	PrayerCount  int32  `json:"prayer_count"`
	NoteCount    int32  `json:"note_count"`
	AIAvailable  bool   `json:"ai_available"`
	SimulationOn bool   `json:"simulation_on"`
	Profile      *User  `json:"profile,omitempty"`
}

// ChatService

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type GetGroupRequest struct {
	GroupID string `json:"group_id"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type CreateGroupRequest struct {
	Name      string   `json:"name"`
	MemberIDs []string `json:"member_ids"`
}

// CreateGroupResponse has a nil Group when the name was blank.
type CreateGroupResponse struct {
	Group *Group `json:"group,omitempty"`
}

type MarkGroupAsReadRequest struct {
	GroupID string `json:"group_id"`
}

type MarkGroupAsReadResponse struct{}

type ListContactsRequest struct{}

type ListContactsResponse struct {
	Contacts []*Contact `json:"contacts"`
}

type SendFriendRequestRequest struct {
	ContactID string `json:"contact_id"`
}

type SendFriendRequestResponse struct {
	Contact *Contact `json:"contact"`
}

type WatchChatUpdatesRequest struct{}

// MessageService

type ListMessagesRequest struct {
	GroupID string `json:"group_id"`
	Limit   int32  `json:"limit,omitempty"`
}

type ListMessagesResponse struct {
	Messages []*Message `json:"messages"`
}

type SearchMessagesRequest struct {
	Query   string `json:"query"`
	GroupID string `json:"group_id,omitempty"`
	Limit   int32  `json:"limit,omitempty"`
}

type SearchMessagesResponse struct {
	Messages []*Message `json:"messages"`
}

type SendMessageRequest struct {
	GroupID  string `json:"group_id"`
	Text     string `json:"text"`
	VideoRef string `json:"video_ref,omitempty"`
}

// SendMessageResponse has a nil Message when there was nothing to send.
type SendMessageResponse struct {
	Message *Message `json:"message,omitempty"`
}

// PrayerService

type ListPrayerRequestsRequest struct{}

type ListPrayerRequestsResponse struct {
	Requests []*PrayerRequest `json:"requests"`
}

type AddPrayerRequestRequest struct {
	Content   string `json:"content"`
	IsPrivate bool   `json:"is_private"`
	Anonymous bool   `json:"anonymous"`
}

type AddPrayerRequestResponse struct {
	Request *PrayerRequest `json:"request,omitempty"`
}

type DeletePrayerRequestRequest struct {
	ID string `json:"id"`
}

type DeletePrayerRequestResponse struct {
	Deleted bool `json:"deleted"`
}

type TogglePrayerStatusRequest struct {
	ID string `json:"id"`
}

type TogglePrayerStatusResponse struct {
	Changed bool           `json:"changed"`
	Request *PrayerRequest `json:"request"`
}

type PrayForRequest struct {
	ID string `json:"id"`
}

type PrayForResponse struct {
	Request *PrayerRequest `json:"request"`
}

// NoteService

type ListNotesRequest struct {
	SermonID string `json:"sermon_id,omitempty"`
}

type ListNotesResponse struct {
	Notes []*Note `json:"notes"`
}

type AddNoteRequest struct {
	SermonID string `json:"sermon_id,omitempty"`
	Title    string `json:"title,omitempty"`
	Content  string `json:"content"`
}

type AddNoteResponse struct {
	Note *Note `json:"note,omitempty"`
}

type DeleteNoteRequest struct {
	ID string `json:"id"`
}

type DeleteNoteResponse struct {
	Deleted bool `json:"deleted"`
}

// LibraryService

type ListSermonsRequest struct{}

type ListSermonsResponse struct {
	Sermons []*Sermon `json:"sermons"`
}

type ListSongsRequest struct{}

type ListSongsResponse struct {
	Songs []*Song `json:"songs"`
}

type ListShortsRequest struct{}

type ListShortsResponse struct {
	Shorts []*ShortVideo `json:"shorts"`
}

// ShepherdService

type GetGuidanceRequest struct {
	Text string `json:"text"`
}

type GetGuidanceResponse struct {
	Reply string `json:"reply"`
}

type SummarizeSermonRequest struct {
	SermonID string `json:"sermon_id"`
}

type SummarizeSermonResponse struct {
	Summary string `json:"summary"`
}

type GenerateStoryRequest struct {
	Topic string `json:"topic"`
}

// GenerateStoryResponse has a nil Story when generation failed.
type GenerateStoryResponse struct {
	Story *KidsStory `json:"story,omitempty"`
}
