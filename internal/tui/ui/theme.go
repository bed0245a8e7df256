package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the colors shared by every view.
type Theme struct {
	BgColor          tcell.Color
	FgColor          tcell.Color
	BorderColor      tcell.Color
	BorderFocusColor tcell.Color
	TableHeaderFg    tcell.Color
	TableCursorFg    tcell.Color
	TableCursorBg    tcell.Color
	MenuKeyColor     tcell.Color
	TitleColor       tcell.Color
	UnreadColor      tcell.Color
	SelfColor        tcell.Color
	GuideColor       tcell.Color
	AnsweredColor    tcell.Color
	FlashInfoColor   tcell.Color
	FlashBannerColor tcell.Color
	FlashErrColor    tcell.Color
}

// DefaultTheme returns the dark theme with the community's warm accents.
func DefaultTheme() *Theme {
	return &Theme{
		BgColor:          tcell.ColorBlack,
		FgColor:          tcell.ColorWhiteSmoke,
		BorderColor:      tcell.ColorSlateGray,
		BorderFocusColor: tcell.ColorGold,
		TableHeaderFg:    tcell.ColorWhite,
		TableCursorFg:    tcell.ColorBlack,
		TableCursorBg:    tcell.ColorGold,
		MenuKeyColor:     tcell.ColorGold,
		TitleColor:       tcell.ColorGold,
		UnreadColor:      tcell.ColorOrangeRed,
		SelfColor:        tcell.ColorLightSkyBlue,
		GuideColor:       tcell.ColorMediumPurple,
		AnsweredColor:    tcell.ColorLimeGreen,
		FlashInfoColor:   tcell.ColorNavajoWhite,
		FlashBannerColor: tcell.ColorGold,
		FlashErrColor:    tcell.ColorOrangeRed,
	}
}

// Tag formats c as a tview color tag.
func Tag(c tcell.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}
