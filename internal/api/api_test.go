package api

import (
	"context"
	"errors"
	"testing"
	"time"

	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/bus"
	"github.com/matheus3301/flock/internal/shepherd"
	"github.com/matheus3301/flock/internal/status"
	"github.com/matheus3301/flock/internal/store"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

func testDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.OpenSeeded()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func wantCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	if got := grpcstatus.Code(err); got != want {
		t.Errorf("code = %v, want %v (err=%v)", got, want, err)
	}
}

type stubCompleter struct {
	reply string
	err   error
}

func (s stubCompleter) Complete(context.Context, shepherd.Request) (string, error) {
	return s.reply, s.err
}

func TestChatServiceGroups(t *testing.T) {
	db := testDB(t)
	b := bus.New()
	svc := NewChatService(db, b, "main")
	ctx := context.Background()

	events, unsub := b.Subscribe(10, "chat.")
	defer unsub()

	created, err := svc.CreateGroup(ctx, &flockv1.CreateGroupRequest{Name: "Bible Study", MemberIDs: []string{"c1", "c2"}})
	if err != nil {
		t.Fatal(err)
	}
	if created.Group == nil || len(created.Group.Members) != 3 || created.Group.Members[0] != "u1" {
		t.Fatalf("created = %+v", created.Group)
	}
	if evt := <-events; evt.Kind != bus.KindGroupCreated {
		t.Errorf("event = %s", evt.Kind)
	}

	list, err := svc.ListGroups(ctx, &flockv1.ListGroupsRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Groups) != 4 || list.Groups[0].ID != created.Group.ID {
		t.Errorf("groups = %d, first = %s", len(list.Groups), list.Groups[0].Name)
	}

	blank, err := svc.CreateGroup(ctx, &flockv1.CreateGroupRequest{Name: " "})
	if err != nil || blank.Group != nil {
		t.Errorf("blank create = %+v, %v", blank, err)
	}

	_, err = svc.GetGroup(ctx, &flockv1.GetGroupRequest{GroupID: "nope"})
	wantCode(t, err, codes.NotFound)
	_, err = svc.GetGroup(ctx, &flockv1.GetGroupRequest{})
	wantCode(t, err, codes.InvalidArgument)
}

func TestChatServiceMarkRead(t *testing.T) {
	db := testDB(t)
	b := bus.New()
	svc := NewChatService(db, b, "main")
	ctx := context.Background()

	events, unsub := b.Subscribe(10, "chat.")
	defer unsub()

	for i := 0; i < 2; i++ {
		if _, err := svc.MarkGroupAsRead(ctx, &flockv1.MarkGroupAsReadRequest{GroupID: "g1"}); err != nil {
			t.Fatal(err)
		}
	}
	g, _ := svc.GetGroup(ctx, &flockv1.GetGroupRequest{GroupID: "g1"})
	if g.Group.UnreadCount != 0 {
		t.Errorf("unread = %d", g.Group.UnreadCount)
	}
	if evt := <-events; evt.Kind != bus.KindGroupRead {
		t.Errorf("event = %s", evt.Kind)
	}
	select {
	case evt := <-events:
		t.Errorf("second mark read published %s", evt.Kind)
	default:
	}

	_, err := svc.MarkGroupAsRead(ctx, &flockv1.MarkGroupAsReadRequest{GroupID: "missing"})
	wantCode(t, err, codes.NotFound)
}

func TestChatServiceFriendRequest(t *testing.T) {
	svc := NewChatService(testDB(t), bus.New(), "main")
	ctx := context.Background()

	resp, err := svc.SendFriendRequest(ctx, &flockv1.SendFriendRequestRequest{ContactID: "c4"})
	if err != nil {
		t.Fatal(err)
	}
	if !resp.Contact.RequestPending {
		t.Error("request not pending")
	}
	_, err = svc.SendFriendRequest(ctx, &flockv1.SendFriendRequestRequest{ContactID: "zz"})
	wantCode(t, err, codes.NotFound)
}

func TestChatServiceEnvelope(t *testing.T) {
	svc := NewChatService(nil, nil, "main")
	env := svc.envelope(bus.Event{Kind: bus.KindMessageReceived, Timestamp: time.UnixMilli(5), Payload: store.Message{ID: "m9", GroupID: "g2", Body: "Amen!"}})
	if env.GroupID != "g2" || env.Message == nil || env.Message.Text != "Amen!" || env.Session != "main" || env.OccurredAtUnixMs != 5 {
		t.Errorf("envelope = %+v", env)
	}
	env = svc.envelope(bus.Event{Kind: bus.KindGroupUpdated, Payload: "g3"})
	if env.GroupID != "g3" || env.Message != nil {
		t.Errorf("envelope = %+v", env)
	}
}

func TestMessageServiceSend(t *testing.T) {
	db := testDB(t)
	b := bus.New()
	svc := NewMessageService(db, b)
	ctx := context.Background()

	events, unsub := b.Subscribe(10, "message.", "chat.")
	defer unsub()

	resp, err := svc.SendMessage(ctx, &flockv1.SendMessageRequest{GroupID: "g1", Text: "Amen"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Message == nil || !resp.Message.IsMe {
		t.Fatalf("message = %+v", resp.Message)
	}
	if evt := <-events; evt.Kind != bus.KindMessageSent {
		t.Errorf("first event = %s", evt.Kind)
	}
	if evt := <-events; evt.Kind != bus.KindGroupUpdated {
		t.Errorf("second event = %s", evt.Kind)
	}

	empty, err := svc.SendMessage(ctx, &flockv1.SendMessageRequest{GroupID: "g1", Text: "  "})
	if err != nil || empty.Message != nil {
		t.Errorf("blank send = %+v, %v", empty, err)
	}

	_, err = svc.SendMessage(ctx, &flockv1.SendMessageRequest{GroupID: "gone", Text: "hi"})
	wantCode(t, err, codes.NotFound)

	list, err := svc.ListMessages(ctx, &flockv1.ListMessagesRequest{GroupID: "g1"})
	if err != nil {
		t.Fatal(err)
	}
	if last := list.Messages[len(list.Messages)-1]; last.Text != "Amen" {
		t.Errorf("last message = %q", last.Text)
	}

	found, err := svc.SearchMessages(ctx, &flockv1.SearchMessagesRequest{Query: "guitar"})
	if err != nil {
		t.Fatal(err)
	}
	if len(found.Messages) != 1 {
		t.Errorf("search results = %d", len(found.Messages))
	}
}

func TestPrayerService(t *testing.T) {
	svc := NewPrayerService(testDB(t), bus.New())
	ctx := context.Background()

	added, err := svc.AddPrayerRequest(ctx, &flockv1.AddPrayerRequestRequest{Content: "Rain for the farms", Anonymous: true})
	if err != nil {
		t.Fatal(err)
	}
	if added.Request.Author != store.AnonymousAuthor || added.Request.AuthorID != "u1" {
		t.Errorf("added = %+v", added.Request)
	}

	toggled, err := svc.TogglePrayerStatus(ctx, &flockv1.TogglePrayerStatusRequest{ID: added.Request.ID})
	if err != nil {
		t.Fatal(err)
	}
	if !toggled.Changed || toggled.Request.Status != string(store.PrayerAnswered) {
		t.Errorf("toggled = %+v", toggled)
	}

	other, err := svc.TogglePrayerStatus(ctx, &flockv1.TogglePrayerStatusRequest{ID: "p1"})
	if err != nil {
		t.Fatal(err)
	}
	if other.Changed || other.Request.Status != string(store.PrayerActive) {
		t.Errorf("toggled someone else's request: %+v", other)
	}

	prayed, err := svc.PrayFor(ctx, &flockv1.PrayForRequest{ID: "p2"})
	if err != nil {
		t.Fatal(err)
	}
	if prayed.Request.PrayedCount != 46 {
		t.Errorf("prayed count = %d", prayed.Request.PrayedCount)
	}
	_, err = svc.PrayFor(ctx, &flockv1.PrayForRequest{ID: "missing"})
	wantCode(t, err, codes.NotFound)

	del, err := svc.DeletePrayerRequest(ctx, &flockv1.DeletePrayerRequestRequest{ID: added.Request.ID})
	if err != nil || !del.Deleted {
		t.Errorf("delete = %+v, %v", del, err)
	}
	list, _ := svc.ListPrayerRequests(ctx, &flockv1.ListPrayerRequestsRequest{})
	if len(list.Requests) != 2 {
		t.Errorf("requests = %d, want 2", len(list.Requests))
	}
}

func TestNoteService(t *testing.T) {
	svc := NewNoteService(testDB(t), bus.New())
	ctx := context.Background()

	added, err := svc.AddNote(ctx, &flockv1.AddNoteRequest{SermonID: "song1", Content: "Verse 2 harmony"})
	if err != nil {
		t.Fatal(err)
	}
	if added.Note.Title != "Notes: Makanaka Jesu" {
		t.Errorf("title = %q", added.Note.Title)
	}
	list, _ := svc.ListNotes(ctx, &flockv1.ListNotesRequest{SermonID: "song1"})
	if len(list.Notes) != 1 {
		t.Errorf("notes = %d", len(list.Notes))
	}
	del, _ := svc.DeleteNote(ctx, &flockv1.DeleteNoteRequest{ID: added.Note.ID})
	if !del.Deleted {
		t.Error("note not deleted")
	}
}

func TestShepherdService(t *testing.T) {
	db := testDB(t)
	gw := shepherd.NewGateway(stubCompleter{err: errors.New("offline")}, nil, nil)
	svc := NewShepherdService(db, gw)
	ctx := context.Background()

	g, err := svc.GetGuidance(ctx, &flockv1.GetGuidanceRequest{Text: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	if g.Reply != shepherd.GuidanceFailed {
		t.Errorf("reply = %q", g.Reply)
	}

	sum, err := svc.SummarizeSermon(ctx, &flockv1.SummarizeSermonRequest{SermonID: "s1"})
	if err != nil {
		t.Fatal(err)
	}
	if sum.Summary != shepherd.SummaryFailed {
		t.Errorf("summary = %q", sum.Summary)
	}
	_, err = svc.SummarizeSermon(ctx, &flockv1.SummarizeSermonRequest{SermonID: "s404"})
	wantCode(t, err, codes.NotFound)

	story, err := svc.GenerateStory(ctx, &flockv1.GenerateStoryRequest{Topic: "Daniel"})
	if err != nil || story.Story != nil {
		t.Errorf("story = %+v, %v", story, err)
	}
}

func TestSessionService(t *testing.T) {
	db := testDB(t)
	m := status.NewMachine(bus.New())
	if err := m.Transition(status.Degraded); err != nil {
		t.Fatal(err)
	}
	gw := shepherd.NewGateway(shepherd.Unavailable(), nil, nil)
	svc := NewSessionService("main", m, db, gw, true, nil)

	resp, err := svc.GetSessionStatus(context.Background(), &flockv1.GetSessionStatusRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Status != "DEGRADED" || resp.AIAvailable || !resp.SimulationOn {
		t.Errorf("status = %+v", resp)
	}
	if resp.GroupCount != 3 || resp.UnreadCount != 4 || resp.Profile == nil || resp.Profile.Name != "Tinashe Moyo" {
		t.Errorf("status = %+v", resp)
	}
}

func TestLibraryService(t *testing.T) {
	svc := NewLibraryService(testDB(t))
	ctx := context.Background()

	sermons, err := svc.ListSermons(ctx, &flockv1.ListSermonsRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(sermons.Sermons) != 3 || !sermons.Sermons[0].HasTranscript {
		t.Errorf("sermons = %+v", sermons.Sermons)
	}
	songs, _ := svc.ListSongs(ctx, &flockv1.ListSongsRequest{})
	shorts, _ := svc.ListShorts(ctx, &flockv1.ListShortsRequest{})
	if len(songs.Songs) != 4 || len(shorts.Shorts) != 3 {
		t.Errorf("songs=%d shorts=%d", len(songs.Songs), len(shorts.Shorts))
	}
}
