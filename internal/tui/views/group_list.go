package views

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/tui/ui"
	"github.com/rivo/tview"
)

// GroupList is the community view: one row per group in list order.
type GroupList struct {
	*tview.Table
	theme  *ui.Theme
	groups []*flockv1.Group
}

// NewGroupList creates a new group list table.
func NewGroupList(theme *ui.Theme) *GroupList {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	table.SetBorder(true).SetTitle(" Community ")
	table.SetBorderColor(theme.BorderColor)
	table.SetTitleColor(theme.TitleColor)
	table.SetBackgroundColor(theme.BgColor)
	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))

	return &GroupList{Table: table, theme: theme}
}

// Hints lists the keys this view handles itself.
func (gl *GroupList) Hints() []ui.MenuHint {
	return []ui.MenuHint{{Key: "Enter", Description: "Open"}}
}

// Update redraws the list, keeping the cursor on the same group when it is
// still present.
func (gl *GroupList) Update(groups []*flockv1.Group) {
	selected := gl.SelectedGroup()
	gl.groups = groups
	gl.Clear()

	headers := []string{" GROUP", " TYPE", " LAST MESSAGE", " TIME", " UNREAD"}
	for col, h := range headers {
		gl.SetCell(0, col, tview.NewTableCell(h).
			SetSelectable(false).
			SetTextColor(gl.theme.TableHeaderFg).
			SetAttributes(tcell.AttrBold))
	}

	for i, g := range groups {
		row := i + 1
		name := sanitizeForTerminal(g.Name)
		unread := ""
		nameColor := gl.theme.FgColor
		if g.UnreadCount > 0 {
			unread = fmt.Sprintf("%d", g.UnreadCount)
			nameColor = gl.theme.UnreadColor
		}
		gl.SetCell(row, 0, tview.NewTableCell(" "+tview.Escape(name)).SetMaxWidth(28).SetExpansion(1).SetTextColor(nameColor))
		gl.SetCell(row, 1, tview.NewTableCell(" "+g.Type).SetMaxWidth(10).SetTextColor(gl.theme.FgColor))
		gl.SetCell(row, 2, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(g.LastMessage))).SetMaxWidth(48).SetExpansion(2).SetTextColor(gl.theme.FgColor))
		gl.SetCell(row, 3, tview.NewTableCell(" "+formatTimestamp(g.LastMessageAtMs, time.Now())).SetMaxWidth(8).SetTextColor(gl.theme.FgColor))
		gl.SetCell(row, 4, tview.NewTableCell(" "+unread).SetMaxWidth(6).SetTextColor(gl.theme.UnreadColor))
		if g.ID == selected {
			gl.Select(row, 0)
		}
	}
}

// SelectedGroup returns the id of the group under the cursor.
func (gl *GroupList) SelectedGroup() string {
	row, _ := gl.GetSelection()
	idx := row - 1
	if idx >= 0 && idx < len(gl.groups) {
		return gl.groups[idx].ID
	}
	return ""
}

// formatTimestamp shows a clock time for today and a date otherwise.
func formatTimestamp(ms int64, now time.Time) string {
	if ms == 0 {
		return ""
	}
	t := time.UnixMilli(ms).In(now.Location())
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return t.Format("15:04")
	}
	return t.Format("01/02")
}
