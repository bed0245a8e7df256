package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/tui/ui"
	"github.com/rivo/tview"
)

// PrayerWall lists prayer requests newest first with an input for adding
// one.
type PrayerWall struct {
	*tview.Flex
	theme    *ui.Theme
	table    *tview.Table
	input    *Composer
	requests []*flockv1.PrayerRequest
}

// NewPrayerWall creates the prayer wall page.
func NewPrayerWall(theme *ui.Theme) *PrayerWall {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)
	table.SetBorder(true).SetTitle(" Prayer Wall ")
	table.SetBorderColor(theme.BorderColor)
	table.SetTitleColor(theme.TitleColor)
	table.SetBackgroundColor(theme.BgColor)
	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))

	input := NewComposer(theme, " Request: ")

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(table, 0, 1, true).
		AddItem(input, 1, 0, false)

	return &PrayerWall{Flex: flex, theme: theme, table: table, input: input}
}

// Hints lists the keys this view handles itself.
func (pw *PrayerWall) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Pray"},
		{Key: "n", Description: "New"},
		{Key: "t", Description: "Answered"},
		{Key: "d", Description: "Delete"},
	}
}

// SetOnAdd sets the callback for a submitted request.
func (pw *PrayerWall) SetOnAdd(fn func(text string)) {
	pw.input.SetOnSend(fn)
}

// SetOnPray sets the callback for Enter on a row.
func (pw *PrayerWall) SetOnPray(fn func(id string)) {
	pw.table.SetSelectedFunc(func(row, _ int) {
		if id := pw.idAt(row); id != "" {
			fn(id)
		}
	})
}

// Update redraws the wall.
func (pw *PrayerWall) Update(reqs []*flockv1.PrayerRequest) {
	pw.requests = reqs
	pw.table.Clear()

	for col, h := range []string{" AUTHOR", " REQUEST", " PRAYED", " STATUS"} {
		pw.table.SetCell(0, col, tview.NewTableCell(h).
			SetSelectable(false).
			SetTextColor(pw.theme.TableHeaderFg).
			SetAttributes(tcell.AttrBold))
	}
	for i, r := range reqs {
		row := i + 1
		content := sanitizeForTerminal(r.Content)
		if r.IsPrivate {
			content = "🔒 " + content
		}
		statusColor := pw.theme.FgColor
		if r.Status == "answered" {
			statusColor = pw.theme.AnsweredColor
		}
		pw.table.SetCell(row, 0, tview.NewTableCell(" "+tview.Escape(r.Author)).SetMaxWidth(20).SetTextColor(pw.theme.FgColor))
		pw.table.SetCell(row, 1, tview.NewTableCell(" "+tview.Escape(content)).SetExpansion(1).SetTextColor(pw.theme.FgColor))
		pw.table.SetCell(row, 2, tview.NewTableCell(fmt.Sprintf(" 🙏 %d", r.PrayedCount)).SetTextColor(pw.theme.FgColor))
		pw.table.SetCell(row, 3, tview.NewTableCell(" "+r.Status).SetTextColor(statusColor))
	}
}

// Selected returns the id of the request under the cursor.
func (pw *PrayerWall) Selected() string {
	row, _ := pw.table.GetSelection()
	return pw.idAt(row)
}

func (pw *PrayerWall) idAt(row int) string {
	idx := row - 1
	if idx >= 0 && idx < len(pw.requests) {
		return pw.requests[idx].ID
	}
	return ""
}

// Table returns the request table (for focus management).
func (pw *PrayerWall) Table() *tview.Table { return pw.table }

// Input returns the new-request input (for focus management).
func (pw *PrayerWall) Input() *tview.InputField { return pw.input.InputField }
