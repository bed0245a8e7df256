package model

import (
	"context"
	"sync"
	"testing"
	"time"

	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/tui/client"
	"google.golang.org/grpc"
)

type fakeChat struct {
	flockv1.ChatServiceClient

	mu          sync.Mutex
	groups      []flockv1.Group
	marked      []string
	inflight    int
	maxInflight int
}

func (f *fakeChat) ListGroups(_ context.Context, _ *flockv1.ListGroupsRequest, _ ...grpc.CallOption) (*flockv1.ListGroupsResponse, error) {
	f.mu.Lock()
	f.inflight++
	f.maxInflight = max(f.maxInflight, f.inflight)
	resp := &flockv1.ListGroupsResponse{}
	for _, g := range f.groups {
		resp.Groups = append(resp.Groups, &g)
	}
	f.mu.Unlock()

	time.Sleep(time.Millisecond)

	f.mu.Lock()
	f.inflight--
	f.mu.Unlock()
	return resp, nil
}

func (f *fakeChat) MarkGroupAsRead(_ context.Context, in *flockv1.MarkGroupAsReadRequest, _ ...grpc.CallOption) (*flockv1.MarkGroupAsReadResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.marked = append(f.marked, in.GroupID)
	for i := range f.groups {
		if f.groups[i].ID == in.GroupID {
			f.groups[i].UnreadCount = 0
		}
	}
	return &flockv1.MarkGroupAsReadResponse{}, nil
}

// receive simulates an inbound message landing in groupID.
func (f *fakeChat) receive(groupID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.groups {
		if f.groups[i].ID == groupID {
			f.groups[i].UnreadCount++
		}
	}
}

func (f *fakeChat) unread(groupID string) int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, g := range f.groups {
		if g.ID == groupID {
			return g.UnreadCount
		}
	}
	return -1
}

type fakeMessages struct {
	flockv1.MessageServiceClient
}

func (fakeMessages) ListMessages(_ context.Context, in *flockv1.ListMessagesRequest, _ ...grpc.CallOption) (*flockv1.ListMessagesResponse, error) {
	return &flockv1.ListMessagesResponse{Messages: []*flockv1.Message{{ID: "m1", GroupID: in.GroupID, Text: "hi"}}}, nil
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestViewModel(t *testing.T) (*ViewModel, *fakeChat, *fakeClock) {
	t.Helper()
	chat := &fakeChat{groups: []flockv1.Group{
		{ID: "a", Name: "Youth Ministry", UnreadCount: 0},
		{ID: "b", Name: "Worship Team", UnreadCount: 2},
	}}
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := &client.Client{Chat: chat, Message: fakeMessages{}}
	vm := NewViewModel(c, WithClock(clock.now))
	if err := vm.LoadGroups(context.Background()); err != nil {
		t.Fatal(err)
	}
	return vm, chat, clock
}

func TestFirstLoadShowsNothing(t *testing.T) {
	vm, chat, _ := newTestViewModel(t)
	if got := vm.Flash.Get(); got != "" {
		t.Errorf("flash = %q, want empty", got)
	}
	if len(chat.marked) != 0 {
		t.Errorf("marked = %v", chat.marked)
	}
}

func TestBannerForOtherGroup(t *testing.T) {
	ctx := context.Background()
	vm, chat, clock := newTestViewModel(t)
	if err := vm.OpenGroup(ctx, "a"); err != nil {
		t.Fatal(err)
	}

	chat.receive("b")
	if err := vm.LoadGroups(ctx); err != nil {
		t.Fatal(err)
	}

	if got := chat.unread("b"); got != 3 {
		t.Errorf("unread(b) = %d, want 3", got)
	}
	if got := vm.Flash.Get(); got != "New message in Worship Team" {
		t.Errorf("flash = %q", got)
	}

	clock.t = clock.t.Add(3999 * time.Millisecond)
	if vm.Flash.Get() == "" {
		t.Error("banner gone before 4s")
	}
	clock.t = clock.t.Add(time.Millisecond)
	if got := vm.Flash.Get(); got != "" {
		t.Errorf("flash after 4s = %q, want empty", got)
	}
}

func TestOpenGroupMarksReadWithoutBanner(t *testing.T) {
	ctx := context.Background()
	vm, chat, _ := newTestViewModel(t)
	if err := vm.OpenGroup(ctx, "b"); err != nil {
		t.Fatal(err)
	}
	if got := chat.unread("b"); got != 0 {
		t.Fatalf("unread after open = %d", got)
	}
	if len(vm.GetMessages()) != 1 {
		t.Errorf("messages = %d, want 1", len(vm.GetMessages()))
	}

	chat.receive("b")
	if err := vm.LoadGroups(ctx); err != nil {
		t.Fatal(err)
	}

	if got := chat.unread("b"); got != 0 {
		t.Errorf("unread(b) = %d, want 0", got)
	}
	if got := vm.Flash.Get(); got != "" {
		t.Errorf("flash = %q, want none", got)
	}
	if g := vm.GetGroup("b"); g == nil || g.UnreadCount != 0 {
		t.Errorf("cached group = %+v", g)
	}
	if n := len(chat.marked); n != 2 {
		t.Errorf("marked = %v, want b twice", chat.marked)
	}
}

func TestCloseGroupBannersAgain(t *testing.T) {
	ctx := context.Background()
	vm, chat, _ := newTestViewModel(t)
	if err := vm.OpenGroup(ctx, "b"); err != nil {
		t.Fatal(err)
	}
	vm.CloseGroup()
	if vm.GetOpenGroupID() != "" || vm.GetMessages() != nil {
		t.Fatal("close did not reset the open group")
	}

	chat.receive("b")
	if err := vm.LoadGroups(ctx); err != nil {
		t.Fatal(err)
	}
	if got := vm.Flash.Get(); got != "New message in Worship Team" {
		t.Errorf("flash = %q", got)
	}
}

func TestResetNotificationsSkipsMissedUpdates(t *testing.T) {
	ctx := context.Background()
	vm, chat, _ := newTestViewModel(t)

	vm.ResetNotifications()
	chat.receive("a")
	if err := vm.LoadGroups(ctx); err != nil {
		t.Fatal(err)
	}
	if got := vm.Flash.Get(); got != "" {
		t.Errorf("flash after reset = %q, want empty", got)
	}

	chat.receive("a")
	if err := vm.LoadGroups(ctx); err != nil {
		t.Fatal(err)
	}
	if got := vm.Flash.Get(); got != "New message in Youth Ministry" {
		t.Errorf("flash = %q", got)
	}
}

func TestLoadGroupsSerialized(t *testing.T) {
	ctx := context.Background()
	vm, chat, _ := newTestViewModel(t)
	chat.mu.Lock()
	chat.inflight, chat.maxInflight = 0, 0
	chat.mu.Unlock()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := vm.LoadGroups(ctx); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	chat.mu.Lock()
	defer chat.mu.Unlock()
	if chat.maxInflight != 1 {
		t.Errorf("concurrent ListGroups calls = %d, want 1", chat.maxInflight)
	}
}

func TestFlashLatestWins(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	f := Flash{now: clock.now}
	f.Set("first", time.Second)
	f.Set("second", time.Second)
	if got := f.Get(); got != "second" {
		t.Errorf("Get() = %q", got)
	}
	f.Clear()
	if got := f.Get(); got != "" {
		t.Errorf("after Clear = %q", got)
	}
}
