package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// FlashLevel selects the color of a flash line.
type FlashLevel int

const (
	FlashInfo FlashLevel = iota
	FlashBanner
	FlashErr
)

// FlashBar is the one-line notice area under the pages.
type FlashBar struct {
	*tview.TextView
	theme *Theme
}

// NewFlashBar creates a new flash notification bar.
func NewFlashBar(theme *Theme) *FlashBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)

	return &FlashBar{
		TextView: tv,
		theme:    theme,
	}
}

// Update shows text, or clears the bar when text is empty.
func (fb *FlashBar) Update(text string, level FlashLevel) {
	fb.Clear()
	if text == "" {
		return
	}

	color := fb.theme.FlashInfoColor
	switch level {
	case FlashBanner:
		color = fb.theme.FlashBannerColor
	case FlashErr:
		color = fb.theme.FlashErrColor
	}
	_, _ = fmt.Fprintf(fb, " [%s::b]%s[-:-:-]", Tag(color), tview.Escape(text))
}
