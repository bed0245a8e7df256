package views

import (
	"fmt"
	"time"

	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/tui/ui"
	"github.com/rivo/tview"
)

// MessageView displays the thread of the open group, oldest first.
type MessageView struct {
	*tview.TextView
	theme     *ui.Theme
	groupName string
}

// NewMessageView creates a new message view.
func NewMessageView(theme *ui.Theme) *MessageView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	tv.SetBorder(true).SetTitle(" Messages ")
	tv.SetBorderColor(theme.BorderColor)
	tv.SetTitleColor(theme.TitleColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)

	return &MessageView{TextView: tv, theme: theme}
}

// Hints lists the keys this view handles itself.
func (mv *MessageView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "i", Description: "Compose"},
		{Key: "/new /video", Description: "Commands"},
	}
}

// SetGroup updates the title with the group name and member count.
func (mv *MessageView) SetGroup(g *flockv1.Group) {
	if g == nil {
		mv.groupName = ""
		mv.SetTitle(" Messages ")
		return
	}
	mv.groupName = g.Name
	mv.SetTitle(fmt.Sprintf(" %s · %d members ", tview.Escape(sanitizeForTerminal(g.Name)), len(g.Members)))
}

// Update refreshes the view. msgs arrive oldest first.
func (mv *MessageView) Update(msgs []*flockv1.Message) {
	mv.Clear()
	now := time.Now()
	for _, m := range msgs {
		mv.writeMessage(m, now)
	}
	mv.ScrollToEnd()
}

func (mv *MessageView) writeMessage(m *flockv1.Message, now time.Time) {
	sender := m.SenderName
	if sender == "" {
		sender = m.SenderID
	}
	color := mv.theme.FgColor
	if m.IsMe {
		sender = "You"
		color = mv.theme.SelfColor
	}

	_, _ = fmt.Fprintf(mv, "[%s::b]%s[-:-:-] [::d]%s[-:-:-]\n",
		ui.Tag(color), tview.Escape(sanitizeForTerminal(sender)), formatTimestamp(m.TimestampMs, now))
	if m.VideoRef != "" {
		_, _ = fmt.Fprintf(mv, "[::u]▶ %s[-:-:-]\n", tview.Escape(m.VideoRef))
	}
	if m.Text != "" {
		_, _ = fmt.Fprintf(mv, "%s\n", tview.Escape(sanitizeForTerminal(m.Text)))
	}
	_, _ = fmt.Fprint(mv, "\n")
}
