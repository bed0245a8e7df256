package daemon

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/api"
	"github.com/matheus3301/flock/internal/bus"
	"github.com/matheus3301/flock/internal/config"
	"github.com/matheus3301/flock/internal/session"
	"github.com/matheus3301/flock/internal/shepherd"
	"github.com/matheus3301/flock/internal/status"
	"github.com/matheus3301/flock/internal/store"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	grpcstatus "google.golang.org/grpc/status"
)

// shortTempDir keeps Unix socket paths under the 104-char macOS limit.
func shortTempDir(t *testing.T, pattern string) string {
	t.Helper()
	dir, err := os.MkdirTemp("/tmp", pattern)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return dir
}

func dial(t *testing.T, socketPath string) *grpc.ClientConn {
	t.Helper()
	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(flockv1.CallOption()),
	)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func manualServices(db *store.DB, b *bus.Bus, machine *status.Machine, gw *shepherd.Gateway) Services {
	return Services{
		Session:  api.NewSessionService("test", machine, db, gw, false, nil),
		Chat:     api.NewChatService(db, b, "test"),
		Message:  api.NewMessageService(db, b),
		Prayer:   api.NewPrayerService(db, b),
		Note:     api.NewNoteService(db, b),
		Library:  api.NewLibraryService(db),
		Shepherd: api.NewShepherdService(db, gw),
	}
}

func TestDaemonRPCRoundTrip(t *testing.T) {
	tmpDir := shortTempDir(t, "flock-test-*")
	socketPath := filepath.Join(tmpDir, "d.sock")

	db, err := store.OpenSeeded()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	b := bus.New()
	machine := status.NewMachine(b)
	gw := shepherd.NewGateway(shepherd.Unavailable(), nil, nil)

	srv, err := NewServer(Params{SessionName: "test", SocketPath: socketPath}, zap.NewNop(), manualServices(db, b, machine, gw))
	if err != nil {
		t.Fatal(err)
	}
	go func() { _ = srv.Start() }()
	defer srv.Stop(context.Background())

	info, err := os.Stat(socketPath)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("socket perm = %o, want 600", perm)
	}

	conn := dial(t, socketPath)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	health, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("health check: %v", err)
	}
	if health.Status != healthpb.HealthCheckResponse_SERVING {
		t.Errorf("health = %v", health.Status)
	}

	sess, err := flockv1.NewSessionServiceClient(conn).GetSessionStatus(ctx, &flockv1.GetSessionStatusRequest{})
	if err != nil {
		t.Fatalf("GetSessionStatus error = %v", err)
	}
	if sess.Session != "test" || sess.Status != string(status.Booting) || sess.GroupCount != 3 {
		t.Errorf("session = %+v", sess)
	}

	chat := flockv1.NewChatServiceClient(conn)
	groups, err := chat.ListGroups(ctx, &flockv1.ListGroupsRequest{})
	if err != nil {
		t.Fatalf("ListGroups error = %v", err)
	}
	if len(groups.Groups) != 3 || groups.Groups[0].UnreadCount != 3 {
		t.Errorf("groups = %+v", groups.Groups)
	}

	_, err = chat.GetGroup(ctx, &flockv1.GetGroupRequest{GroupID: "missing"})
	if grpcstatus.Code(err) != codes.NotFound {
		t.Errorf("GetGroup(missing) code = %v", grpcstatus.Code(err))
	}

	// Watch, then send, and expect the send to come back on the stream.
	before := b.Subscribers()
	stream, err := chat.WatchChatUpdates(ctx, &flockv1.WatchChatUpdatesRequest{})
	if err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for b.Subscribers() == before && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	sent, err := flockv1.NewMessageServiceClient(conn).SendMessage(ctx, &flockv1.SendMessageRequest{GroupID: "g1", Text: "See you at 5"})
	if err != nil {
		t.Fatalf("SendMessage error = %v", err)
	}
	if sent.Message == nil || !sent.Message.IsMe {
		t.Fatalf("sent = %+v", sent)
	}

	env, err := stream.Recv()
	if err != nil {
		t.Fatalf("stream recv: %v", err)
	}
	if env.Kind != bus.KindMessageSent || env.Message == nil || env.Message.Text != "See you at 5" {
		t.Errorf("envelope = %+v", env)
	}

	guidance, err := flockv1.NewShepherdServiceClient(conn).GetGuidance(ctx, &flockv1.GetGuidanceRequest{Text: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	if guidance.Reply != shepherd.GuidanceFailed {
		t.Errorf("reply = %q", guidance.Reply)
	}
}

func TestNewServerUsesSocketOverride(t *testing.T) {
	tmpDir := shortTempDir(t, "flock-srv-*")
	socketPath := filepath.Join(tmpDir, "d.sock")

	db, err := store.OpenSeeded()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	gw := shepherd.NewGateway(shepherd.Unavailable(), nil, nil)
	srv, err := NewServer(Params{SessionName: "fxtest", SocketPath: socketPath}, zap.NewNop(), manualServices(db, nil, status.NewMachine(nil), gw))
	if err != nil {
		t.Fatalf("NewServer() failed: %v", err)
	}
	if _, statErr := os.Stat(socketPath); statErr != nil {
		t.Fatalf("socket not created at %s: %v", socketPath, statErr)
	}
	srv.Stop(context.Background())
	if _, statErr := os.Stat(socketPath); !os.IsNotExist(statErr) {
		t.Errorf("socket still present after Stop: %v", statErr)
	}
}

// TestFxModuleLifecycle boots the whole module against a temporary home and
// waits for the simulation timer to bump an unread counter.
func TestFxModuleLifecycle(t *testing.T) {
	home := shortTempDir(t, "flock-fx-*")
	t.Setenv(session.HomeEnv, home)

	cfg := config.Default()
	cfg.Log.Level = "warn"
	cfg.AI.APIKeyEnv = "FLOCK_TEST_UNSET_KEY"
	cfg.Simulation.Interval = config.Duration{Duration: 10 * time.Millisecond}
	cfg.Simulation.Enabled = true
	cfg.Simulation.Seed = 1
	cfg.Metrics.Addr = ""

	socketPath := filepath.Join(home, "d.sock")
	app := fxtest.New(t, Module(Params{SessionName: "fxtest", SocketPath: socketPath, Config: cfg}))
	app.RequireStart()
	defer app.RequireStop()

	if _, err := os.Stat(filepath.Join(session.Dir("fxtest"), "LOCK")); err != nil {
		t.Errorf("lock file missing: %v", err)
	}

	conn := dial(t, socketPath)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sess, err := flockv1.NewSessionServiceClient(conn).GetSessionStatus(ctx, &flockv1.GetSessionStatusRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if sess.Status != string(status.Degraded) || sess.AIAvailable || !sess.SimulationOn {
		t.Errorf("session = %+v", sess)
	}

	chat := flockv1.NewChatServiceClient(conn)
	seededUnread := int32(4)
	for {
		resp, err := flockv1.NewSessionServiceClient(conn).GetSessionStatus(ctx, &flockv1.GetSessionStatusRequest{})
		if err != nil {
			t.Fatalf("status while waiting for simulation: %v", err)
		}
		if resp.UnreadCount > seededUnread {
			break
		}
		select {
		case <-ctx.Done():
			t.Fatal("simulation never delivered a message")
		case <-time.After(20 * time.Millisecond):
		}
	}

	groups, err := chat.ListGroups(ctx, &flockv1.ListGroupsRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(groups.Groups) != 3 {
		t.Errorf("groups = %d, want 3", len(groups.Groups))
	}
}
