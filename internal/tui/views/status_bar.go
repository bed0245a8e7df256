package views

import (
	"fmt"
	"time"

	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/tui/ui"
	"github.com/rivo/tview"
)

// StatusBar shows the session, daemon status and the signed-in member.
type StatusBar struct {
	*tview.TextView
	theme   *ui.Theme
	session string
	status  *flockv1.GetSessionStatusResponse
}

// NewStatusBar creates a new status bar.
func NewStatusBar(theme *ui.Theme) *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(tview.Styles.MoreContrastBackgroundColor)

	return &StatusBar{TextView: tv, theme: theme}
}

// SetSession updates the session name display.
func (sb *StatusBar) SetSession(name string) {
	sb.session = name
	sb.render()
}

// SetStatus updates the daemon status display.
func (sb *StatusBar) SetStatus(status *flockv1.GetSessionStatusResponse) {
	sb.status = status
	sb.render()
}

func (sb *StatusBar) render() {
	sb.Clear()
	_, _ = fmt.Fprint(sb, statusLine(sb.theme, sb.session, sb.status, time.Now()))
}

func statusLine(theme *ui.Theme, session string, st *flockv1.GetSessionStatusResponse, now time.Time) string {
	line := fmt.Sprintf(" [::b]%s[-:-:-]", tview.Escape(session))
	if st == nil {
		return line + " | connecting... | " + now.Format("15:04")
	}
	line += " | " + st.Status
	if st.Profile != nil {
		line += fmt.Sprintf(" | %s (%s, %d pts, %d day streak)",
			tview.Escape(st.Profile.Name), st.Profile.Tier, st.Profile.SanctityPoints, st.Profile.StreakDays)
	}
	if st.UnreadCount > 0 {
		line += fmt.Sprintf(" | [%s]%d unread[-]", ui.Tag(theme.UnreadColor), st.UnreadCount)
	}
	if !st.AIAvailable {
		line += " | shepherd offline"
	}
	return line + " | " + now.Format("15:04")
}
