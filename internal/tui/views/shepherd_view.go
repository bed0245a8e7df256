package views

import (
	"fmt"

	"github.com/matheus3301/flock/internal/shepherd"
	"github.com/matheus3301/flock/internal/tui/ui"
	"github.com/rivo/tview"
)

// ShepherdView is the chat with the Digital Shepherd.
type ShepherdView struct {
	*tview.Flex
	theme      *ui.Theme
	transcript *tview.TextView
	input      *Composer
}

// NewShepherdView creates the shepherd chat page.
func NewShepherdView(theme *ui.Theme) *ShepherdView {
	transcript := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	transcript.SetBorder(true).SetTitle(" Digital Shepherd ")
	transcript.SetBorderColor(theme.BorderColor)
	transcript.SetTitleColor(theme.TitleColor)
	transcript.SetBackgroundColor(theme.BgColor)
	transcript.SetTextColor(theme.FgColor)

	input := NewComposer(theme, " Ask: ")

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(transcript, 0, 1, false).
		AddItem(input, 1, 0, true)

	return &ShepherdView{Flex: flex, theme: theme, transcript: transcript, input: input}
}

// SetOnAsk sets the callback for a submitted question.
func (sv *ShepherdView) SetOnAsk(fn func(text string)) {
	sv.input.SetOnSend(fn)
}

// Update redraws the conversation; loading adds a typing line.
func (sv *ShepherdView) Update(turns []shepherd.Turn, loading bool) {
	sv.transcript.Clear()
	for _, t := range turns {
		who, color := "You", sv.theme.SelfColor
		if t.Role == shepherd.RoleGuide {
			who, color = "Shepherd", sv.theme.GuideColor
		}
		_, _ = fmt.Fprintf(sv.transcript, "[%s::b]%s[-:-:-]\n%s\n\n",
			ui.Tag(color), who, tview.Escape(sanitizeForTerminal(t.Content)))
	}
	if loading {
		_, _ = fmt.Fprint(sv.transcript, "[::d]Shepherd is typing...[-:-:-]\n")
	}
	sv.transcript.ScrollToEnd()
}

// Input returns the question input (for focus management).
func (sv *ShepherdView) Input() *tview.InputField { return sv.input.InputField }
