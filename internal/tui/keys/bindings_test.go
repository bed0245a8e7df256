package keys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestPageBindingShadowsGlobal(t *testing.T) {
	r := NewRegistry()
	var got string
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: 'p', Label: "p", Description: "Prayers", Visible: true, Handler: func() { got = "global" }})
	r.AddPage("prayers", &Action{Key: tcell.KeyRune, Rune: 'p', Label: "p", Description: "Pray", Visible: true, Handler: func() { got = "page" }})

	ev := tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)
	if !r.HandleEvent("prayers", ev) || got != "page" {
		t.Errorf("prayers page: handled by %q, want page", got)
	}
	if !r.HandleEvent("groups", ev) || got != "global" {
		t.Errorf("groups page: handled by %q, want global", got)
	}
	if r.HandleEvent("groups", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)) {
		t.Error("unbound key was handled")
	}
}

func TestHintsOrder(t *testing.T) {
	r := NewRegistry()
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: 'q', Label: "q", Description: "Quit", Visible: true, Handler: func() {}})
	r.AddGlobal(&Action{Key: tcell.KeyCtrlR, Label: "ctrl-r", Description: "Refresh", Handler: func() {}})
	r.AddPage("chat", &Action{Key: tcell.KeyRune, Rune: 'i', Label: "i", Description: "Compose", Visible: true, Handler: func() {}})

	hints := r.Hints("chat")
	if len(hints) != 2 {
		t.Fatalf("hints = %+v", hints)
	}
	if hints[0].Key != "i" || hints[1].Key != "q" {
		t.Errorf("hints = %+v, want i then q", hints)
	}
}
