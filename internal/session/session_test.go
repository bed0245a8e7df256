package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListSessions(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())

	got, err := List()
	if err != nil || len(got) != 0 {
		t.Fatalf("List() on empty home = %v, %v", got, err)
	}

	for _, name := range []string{"youth", "main"} {
		if err := EnsureDir(name); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(BaseDir(), "sessions", "Not Valid"), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(SocketPath("youth"), nil, 0600); err != nil {
		t.Fatal(err)
	}

	got, err = List()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("List() = %+v, want 2 sessions", got)
	}
	if got[0].Name != "main" || got[0].HasSocket {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].Name != "youth" || !got[1].HasSocket {
		t.Errorf("got[1] = %+v", got[1])
	}
}
