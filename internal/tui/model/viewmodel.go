package model

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/notify"
	"github.com/matheus3301/flock/internal/tui/client"
)

// Option configures a ViewModel.
type Option func(*ViewModel)

// WithClock replaces time.Now for banner expiry.
func WithClock(now func() time.Time) Option {
	return func(vm *ViewModel) { vm.now = now }
}

// ViewModel caches daemon state for the views and decides how the community
// view reacts to unread counters going up.
type ViewModel struct {
	mu sync.RWMutex
	// loadMu serializes group reloads and mark-reads so snapshots reach the
	// tracker in the order the daemon produced them.
	loadMu sync.Mutex

	client        *client.Client
	now           func() time.Time
	tracker       *notify.Tracker
	SessionStatus *flockv1.GetSessionStatusResponse
	Groups        []*flockv1.Group
	Messages      []*flockv1.Message
	Prayers       []*flockv1.PrayerRequest
	OpenGroupID   string
	Flash         Flash

	refreshCh chan struct{}
}

// NewViewModel creates a new view model connected to the daemon client.
func NewViewModel(c *client.Client, opts ...Option) *ViewModel {
	vm := &ViewModel{
		client:    c,
		now:       time.Now,
		tracker:   notify.NewTracker(),
		refreshCh: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(vm)
	}
	vm.Flash.now = vm.now
	return vm
}

// RefreshCh returns the channel that signals UI refresh.
func (vm *ViewModel) RefreshCh() <-chan struct{} {
	return vm.refreshCh
}

func (vm *ViewModel) signalRefresh() {
	select {
	case vm.refreshCh <- struct{}{}:
	default:
	}
}

// LoadSessionStatus fetches current session status.
func (vm *ViewModel) LoadSessionStatus(ctx context.Context) error {
	resp, err := vm.client.Session.GetSessionStatus(ctx, &flockv1.GetSessionStatusRequest{})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.SessionStatus = resp
	vm.mu.Unlock()
	vm.signalRefresh()
	return nil
}

// LoadGroups reloads the group list and folds it through the notification
// tracker: a raised counter on the open group is marked read right away,
// any other raised counter shows a banner.
func (vm *ViewModel) LoadGroups(ctx context.Context) error {
	vm.loadMu.Lock()
	defer vm.loadMu.Unlock()

	resp, err := vm.client.Chat.ListGroups(ctx, &flockv1.ListGroupsRequest{})
	if err != nil {
		return err
	}

	vm.mu.Lock()
	snapshot := make([]notify.Group, 0, len(resp.Groups))
	for _, g := range resp.Groups {
		snapshot = append(snapshot, notify.Group{ID: g.ID, Name: g.Name, UnreadCount: int(g.UnreadCount)})
	}
	decision := vm.tracker.Observe(snapshot, vm.OpenGroupID)
	vm.Groups = resp.Groups
	vm.mu.Unlock()

	var errs []error
	for _, id := range decision.MarkRead {
		if err := vm.markRead(ctx, id); err != nil {
			errs = append(errs, err)
		}
	}
	for _, b := range decision.Banners {
		vm.Flash.Set(b.Text, notify.BannerDuration)
	}
	vm.signalRefresh()
	return errors.Join(errs...)
}

// ResetNotifications forgets the last group snapshot, so the next reload
// raises nothing. Used after the update stream reconnects.
func (vm *ViewModel) ResetNotifications() {
	vm.loadMu.Lock()
	defer vm.loadMu.Unlock()
	vm.mu.Lock()
	vm.tracker.Reset()
	vm.mu.Unlock()
}

// markRead must be called with loadMu held.
func (vm *ViewModel) markRead(ctx context.Context, groupID string) error {
	if _, err := vm.client.Chat.MarkGroupAsRead(ctx, &flockv1.MarkGroupAsReadRequest{GroupID: groupID}); err != nil {
		return fmt.Errorf("mark %s read: %w", groupID, err)
	}
	vm.mu.Lock()
	vm.tracker.Acknowledge(groupID)
	for _, g := range vm.Groups {
		if g.ID == groupID {
			g.UnreadCount = 0
		}
	}
	vm.mu.Unlock()
	return nil
}

// OpenGroup makes groupID the open group, clears its unread counter and
// loads its messages.
func (vm *ViewModel) OpenGroup(ctx context.Context, groupID string) error {
	vm.mu.Lock()
	vm.OpenGroupID = groupID
	vm.mu.Unlock()

	vm.loadMu.Lock()
	err := vm.markRead(ctx, groupID)
	vm.loadMu.Unlock()
	if err != nil {
		return err
	}
	return vm.LoadMessages(ctx)
}

// CloseGroup returns to the group list.
func (vm *ViewModel) CloseGroup() {
	vm.mu.Lock()
	vm.OpenGroupID = ""
	vm.Messages = nil
	vm.mu.Unlock()
	vm.signalRefresh()
}

// LoadMessages fetches messages for the open group.
func (vm *ViewModel) LoadMessages(ctx context.Context) error {
	groupID := vm.GetOpenGroupID()
	if groupID == "" {
		return nil
	}
	resp, err := vm.client.Message.ListMessages(ctx, &flockv1.ListMessagesRequest{GroupID: groupID, Limit: 100})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	if vm.OpenGroupID == groupID {
		vm.Messages = resp.Messages
	}
	vm.mu.Unlock()
	vm.signalRefresh()
	return nil
}

// SendMessage posts text (and an optional video) to the open group.
func (vm *ViewModel) SendMessage(ctx context.Context, text, videoRef string) error {
	groupID := vm.GetOpenGroupID()
	if groupID == "" {
		return nil
	}
	resp, err := vm.client.Message.SendMessage(ctx, &flockv1.SendMessageRequest{GroupID: groupID, Text: text, VideoRef: videoRef})
	if err != nil {
		return err
	}
	if resp.Message == nil {
		return nil
	}
	return vm.LoadMessages(ctx)
}

// CreateGroup creates a group with the given members and reloads the list.
func (vm *ViewModel) CreateGroup(ctx context.Context, name string, memberIDs []string) (*flockv1.Group, error) {
	resp, err := vm.client.Chat.CreateGroup(ctx, &flockv1.CreateGroupRequest{Name: name, MemberIDs: memberIDs})
	if err != nil {
		return nil, err
	}
	if err := vm.LoadGroups(ctx); err != nil {
		return resp.Group, err
	}
	return resp.Group, nil
}

// SearchMessages runs a search across every group.
func (vm *ViewModel) SearchMessages(ctx context.Context, query string) ([]*flockv1.Message, error) {
	resp, err := vm.client.Message.SearchMessages(ctx, &flockv1.SearchMessagesRequest{Query: query, Limit: 50})
	if err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// LoadPrayers fetches the prayer wall.
func (vm *ViewModel) LoadPrayers(ctx context.Context) error {
	resp, err := vm.client.Prayer.ListPrayerRequests(ctx, &flockv1.ListPrayerRequestsRequest{})
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.Prayers = resp.Requests
	vm.mu.Unlock()
	vm.signalRefresh()
	return nil
}

// AddPrayer posts a request to the wall.
func (vm *ViewModel) AddPrayer(ctx context.Context, content string, anonymous bool) error {
	if _, err := vm.client.Prayer.AddPrayerRequest(ctx, &flockv1.AddPrayerRequestRequest{Content: content, Anonymous: anonymous}); err != nil {
		return err
	}
	return vm.LoadPrayers(ctx)
}

// TogglePrayer flips answered/active on one of the user's own requests.
func (vm *ViewModel) TogglePrayer(ctx context.Context, id string) error {
	resp, err := vm.client.Prayer.TogglePrayerStatus(ctx, &flockv1.TogglePrayerStatusRequest{ID: id})
	if err != nil {
		return err
	}
	if !resp.Changed {
		vm.Flash.Set("Only the author can mark a request answered", 3*time.Second)
	}
	return vm.LoadPrayers(ctx)
}

// PrayFor bumps the prayed counter.
func (vm *ViewModel) PrayFor(ctx context.Context, id string) error {
	if _, err := vm.client.Prayer.PrayFor(ctx, &flockv1.PrayForRequest{ID: id}); err != nil {
		return err
	}
	return vm.LoadPrayers(ctx)
}

// DeletePrayer removes a request from the wall.
func (vm *ViewModel) DeletePrayer(ctx context.Context, id string) error {
	if _, err := vm.client.Prayer.DeletePrayerRequest(ctx, &flockv1.DeletePrayerRequestRequest{ID: id}); err != nil {
		return err
	}
	return vm.LoadPrayers(ctx)
}

// GetGuidance asks the shepherd. It satisfies shepherd.Asker so a
// Conversation can run over RPC; failures come back as the text shown.
func (vm *ViewModel) GetGuidance(ctx context.Context, text string) string {
	resp, err := vm.client.Shepherd.GetGuidance(ctx, &flockv1.GetGuidanceRequest{Text: text})
	if err != nil {
		return "Connection error: " + err.Error()
	}
	return resp.Reply
}

// Watch consumes the daemon's chat update stream until ctx is done or the
// stream fails. Group changes reload the list; message events for the open
// group reload the thread.
func (vm *ViewModel) Watch(ctx context.Context) error {
	stream, err := vm.client.Chat.WatchChatUpdates(ctx, &flockv1.WatchChatUpdatesRequest{})
	if err != nil {
		return err
	}
	for {
		env, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		vm.apply(ctx, env)
	}
}

func (vm *ViewModel) apply(ctx context.Context, env *flockv1.EventEnvelope) {
	_ = vm.LoadGroups(ctx)
	if env.GroupID != "" && env.GroupID == vm.GetOpenGroupID() {
		_ = vm.LoadMessages(ctx)
	}
}

// GetGroups returns a snapshot of the current group list.
func (vm *ViewModel) GetGroups() []*flockv1.Group {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.Groups
}

// GetGroup returns the cached group with id, or nil.
func (vm *ViewModel) GetGroup(id string) *flockv1.Group {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	for _, g := range vm.Groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// GetMessages returns a snapshot of the open group's messages.
func (vm *ViewModel) GetMessages() []*flockv1.Message {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.Messages
}

// GetPrayers returns a snapshot of the prayer wall.
func (vm *ViewModel) GetPrayers() []*flockv1.PrayerRequest {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.Prayers
}

// GetOpenGroupID returns the open group, or "".
func (vm *ViewModel) GetOpenGroupID() string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.OpenGroupID
}

// GetSessionStatus returns a snapshot of session status.
func (vm *ViewModel) GetSessionStatus() *flockv1.GetSessionStatusResponse {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.SessionStatus
}
