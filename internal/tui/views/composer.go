package views

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/flock/internal/tui/ui"
	"github.com/rivo/tview"
)

// Composer is the single-line input under a thread or the shepherd chat.
// Blank input is never submitted.
type Composer struct {
	*tview.InputField
	onSend func(text string)
}

// NewComposer creates a new composer with the given label.
func NewComposer(theme *ui.Theme, label string) *Composer {
	input := tview.NewInputField().
		SetLabel(label).
		SetFieldWidth(0)
	input.SetBackgroundColor(theme.BgColor)
	input.SetFieldBackgroundColor(theme.BgColor)
	input.SetFieldTextColor(theme.FgColor)
	input.SetLabelColor(theme.MenuKeyColor)

	c := &Composer{InputField: input}

	input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter || c.onSend == nil {
			return
		}
		text := strings.TrimSpace(c.GetText())
		if text == "" {
			return
		}
		c.onSend(text)
		c.SetText("")
	})

	return c
}

// SetOnSend sets the callback run with the trimmed text on Enter.
func (c *Composer) SetOnSend(fn func(text string)) {
	c.onSend = fn
}
