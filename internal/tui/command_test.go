package tui

import (
	"reflect"
	"testing"
)

func TestParseCommand(t *testing.T) {
	if _, ok := ParseCommand("hello /new"); ok {
		t.Error("plain text parsed as command")
	}
	if _, ok := ParseCommand("/"); ok {
		t.Error("bare slash parsed as command")
	}

	cmd, ok := ParseCommand("  /NEW Bible Study @c1 @c2 ")
	if !ok || cmd.Name != "new" {
		t.Fatalf("ParseCommand() = %+v, %v", cmd, ok)
	}
	name, members := cmd.NewGroupArgs()
	if name != "Bible Study" {
		t.Errorf("name = %q", name)
	}
	if !reflect.DeepEqual(members, []string{"c1", "c2"}) {
		t.Errorf("members = %v", members)
	}
}

func TestVideoArgs(t *testing.T) {
	cmd, _ := ParseCommand("/video https://example.com/v.mp4 Sunday worship")
	url, caption := cmd.VideoArgs()
	if url != "https://example.com/v.mp4" || caption != "Sunday worship" {
		t.Errorf("VideoArgs() = %q, %q", url, caption)
	}

	cmd, _ = ParseCommand("/video")
	if url, _ := cmd.VideoArgs(); url != "" {
		t.Errorf("empty video url = %q", url)
	}
}
