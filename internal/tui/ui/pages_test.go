package ui

import (
	"testing"

	"github.com/rivo/tview"
)

func newTestPages() *Pages {
	p := NewPages()
	for _, name := range []string{PageGroups, PageChat, PagePrayers} {
		p.AddPage(name, tview.NewBox(), true, false)
	}
	return p
}

func TestPagesStack(t *testing.T) {
	p := newTestPages()
	var seen []string
	p.SetOnChange(func(current string) { seen = append(seen, current) })

	p.Reset(PageGroups)
	p.Push(PageChat)
	p.Push(PageChat)
	if p.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", p.Depth())
	}
	if got := p.Pop(); got != PageChat {
		t.Errorf("Pop() = %q", got)
	}
	if got := p.Pop(); got != "" {
		t.Errorf("Pop() at root = %q, want empty", got)
	}
	if p.Current() != PageGroups {
		t.Errorf("Current() = %q", p.Current())
	}

	want := []string{PageGroups, PageChat, PageGroups}
	if len(seen) != len(want) {
		t.Fatalf("changes = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("change[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestTag(t *testing.T) {
	theme := DefaultTheme()
	if got := Tag(theme.BgColor); got != "#000000" {
		t.Errorf("Tag(black) = %q", got)
	}
}
