package views

import (
	"time"

	"github.com/gdamore/tcell/v2"
	flockv1 "github.com/matheus3301/flock/gen/flock/v1"
	"github.com/matheus3301/flock/internal/tui/ui"
	"github.com/rivo/tview"
)

// SearchView searches message text across every group.
type SearchView struct {
	*tview.Flex
	theme   *ui.Theme
	input   *tview.InputField
	results *tview.Table
	data    []*flockv1.Message
	names   map[string]string
}

// NewSearchView creates a new search view.
func NewSearchView(theme *ui.Theme) *SearchView {
	input := tview.NewInputField().
		SetLabel(" Search: ").
		SetFieldWidth(0)
	input.SetBackgroundColor(theme.BgColor)
	input.SetFieldBackgroundColor(theme.BgColor)
	input.SetFieldTextColor(theme.FgColor)
	input.SetLabelColor(theme.MenuKeyColor)

	results := tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)
	results.SetBorder(true).SetTitle(" Results ")
	results.SetBorderColor(theme.BorderColor)
	results.SetTitleColor(theme.TitleColor)
	results.SetBackgroundColor(theme.BgColor)
	results.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(input, 1, 0, true).
		AddItem(results, 0, 1, false)

	return &SearchView{Flex: flex, theme: theme, input: input, results: results}
}

// SetOnQuery sets the callback run on Enter in the input.
func (sv *SearchView) SetOnQuery(fn func(query string)) {
	sv.input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			fn(sv.input.GetText())
		}
	})
}

// SetOnOpen sets the callback run on Enter on a result, with its group id.
func (sv *SearchView) SetOnOpen(fn func(groupID string)) {
	sv.results.SetSelectedFunc(func(row, _ int) {
		idx := row - 1
		if idx >= 0 && idx < len(sv.data) {
			fn(sv.data[idx].GroupID)
		}
	})
}

// Update shows results, labelling each with its group name from groups.
func (sv *SearchView) Update(results []*flockv1.Message, groups []*flockv1.Group) {
	sv.data = results
	sv.names = make(map[string]string, len(groups))
	for _, g := range groups {
		sv.names[g.ID] = g.Name
	}
	sv.results.Clear()

	for col, h := range []string{" GROUP", " FROM", " TEXT", " TIME"} {
		sv.results.SetCell(0, col, tview.NewTableCell(h).
			SetSelectable(false).
			SetTextColor(sv.theme.TableHeaderFg).
			SetAttributes(tcell.AttrBold))
	}
	now := time.Now()
	for i, m := range results {
		row := i + 1
		group := sv.names[m.GroupID]
		if group == "" {
			group = m.GroupID
		}
		sender := m.SenderName
		if m.IsMe {
			sender = "You"
		}
		sv.results.SetCell(row, 0, tview.NewTableCell(" "+tview.Escape(group)).SetMaxWidth(22).SetTextColor(sv.theme.FgColor))
		sv.results.SetCell(row, 1, tview.NewTableCell(" "+tview.Escape(sender)).SetMaxWidth(18).SetTextColor(sv.theme.FgColor))
		sv.results.SetCell(row, 2, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(m.Text))).SetExpansion(1).SetTextColor(sv.theme.FgColor))
		sv.results.SetCell(row, 3, tview.NewTableCell(" "+formatTimestamp(m.TimestampMs, now)).SetMaxWidth(8).SetTextColor(sv.theme.FgColor))
	}
}

// Input returns the search input field.
func (sv *SearchView) Input() *tview.InputField {
	return sv.input
}

// Results returns the results table.
func (sv *SearchView) Results() *tview.Table {
	return sv.results
}
