package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/flock/internal/shepherd"
	"github.com/matheus3301/flock/internal/tui/client"
	"github.com/matheus3301/flock/internal/tui/keys"
	"github.com/matheus3301/flock/internal/tui/model"
	"github.com/matheus3301/flock/internal/tui/ui"
	"github.com/matheus3301/flock/internal/tui/views"
	"github.com/rivo/tview"
)

const (
	noticeDuration   = 5 * time.Second
	flashTick        = 250 * time.Millisecond
	statusPollPeriod = 10 * time.Second
	watchRetryDelay  = 2 * time.Second
)

// App is the main TUI application shell.
type App struct {
	app      *tview.Application
	theme    *ui.Theme
	pages    *ui.Pages
	vm       *model.ViewModel
	registry *keys.Registry

	statusBar  *views.StatusBar
	flashBar   *ui.FlashBar
	menu       *ui.Menu
	groupList  *views.GroupList
	msgView    *views.MessageView
	composer   *views.Composer
	prayerWall *views.PrayerWall
	shepherdV  *views.ShepherdView
	searchV    *views.SearchView

	conversation *shepherd.Conversation
	notice       model.Flash // errors raised by the UI itself

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the TUI application.
func NewApp(c *client.Client, sessionName string) *App {
	ctx, cancel := context.WithCancel(context.Background())
	theme := ui.DefaultTheme()

	a := &App{
		app:        tview.NewApplication(),
		theme:      theme,
		pages:      ui.NewPages(),
		vm:         model.NewViewModel(c),
		registry:   keys.NewRegistry(),
		statusBar:  views.NewStatusBar(theme),
		flashBar:   ui.NewFlashBar(theme),
		menu:       ui.NewMenu(theme),
		groupList:  views.NewGroupList(theme),
		msgView:    views.NewMessageView(theme),
		composer:   views.NewComposer(theme, " > "),
		prayerWall: views.NewPrayerWall(theme),
		shepherdV:  views.NewShepherdView(theme),
		searchV:    views.NewSearchView(theme),
		ctx:        ctx,
		cancel:     cancel,
	}

	a.statusBar.SetSession(sessionName)
	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()

	return a
}

func (a *App) setupBindings() {
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: 'q', Label: "q", Description: "Quit", Visible: true,
		Handler: a.Stop,
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: 'g', Label: "g", Description: "Groups", Visible: true,
		Handler: a.showGroups,
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: 'p', Label: "p", Description: "Prayers", Visible: true,
		Handler: a.showPrayers,
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: 'a', Label: "a", Description: "Shepherd", Visible: true,
		Handler: a.showShepherd,
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: 's', Label: "s", Description: "Search", Visible: true,
		Handler: a.showSearch,
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyCtrlR, Label: "ctrl-r", Description: "Refresh",
		Handler: func() { go a.reload() },
	})

	a.registry.AddPage(ui.PageChat, &keys.Action{
		Key: tcell.KeyRune, Rune: 'i', Label: "i", Description: "Compose", Visible: true,
		Handler: func() { a.app.SetFocus(a.composer) },
	})
	a.registry.AddPage(ui.PagePrayers, &keys.Action{
		Key: tcell.KeyRune, Rune: 'n', Label: "n", Description: "New request", Visible: true,
		Handler: func() { a.app.SetFocus(a.prayerWall.Input()) },
	})
	a.registry.AddPage(ui.PagePrayers, &keys.Action{
		Key: tcell.KeyRune, Rune: 't', Label: "t", Description: "Answered", Visible: true,
		Handler: func() { a.onPrayer(a.vm.TogglePrayer) },
	})
	a.registry.AddPage(ui.PagePrayers, &keys.Action{
		Key: tcell.KeyRune, Rune: 'd', Label: "d", Description: "Delete", Visible: true,
		Handler: func() { a.onPrayer(a.vm.DeletePrayer) },
	})
}

func (a *App) setupCallbacks() {
	a.groupList.SetSelectedFunc(func(_, _ int) {
		if id := a.groupList.SelectedGroup(); id != "" {
			a.openGroup(id)
		}
	})

	a.composer.SetOnSend(func(text string) {
		go a.submit(text)
	})

	a.prayerWall.SetOnAdd(func(text string) {
		go func() {
			a.report(a.vm.AddPrayer(a.ctx, text, false))
			a.app.QueueUpdateDraw(func() { a.app.SetFocus(a.prayerWall.Table()) })
		}()
	})
	a.prayerWall.SetOnPray(func(id string) {
		go a.report(a.vm.PrayFor(a.ctx, id))
	})

	a.shepherdV.SetOnAsk(func(text string) {
		if a.conversation == nil {
			return
		}
		go a.conversation.Ask(a.ctx, text)
	})

	a.searchV.SetOnQuery(func(query string) {
		go func() {
			results, err := a.vm.SearchMessages(a.ctx, query)
			if err != nil {
				a.report(err)
				return
			}
			a.app.QueueUpdateDraw(func() {
				a.searchV.Update(results, a.vm.GetGroups())
				a.app.SetFocus(a.searchV.Results())
			})
		}()
	})
	a.searchV.SetOnOpen(a.openGroup)

	a.pages.SetOnChange(func(current string) {
		hints := a.registry.Hints(current)
		switch current {
		case ui.PageGroups:
			hints = append(a.groupList.Hints(), hints...)
		case ui.PageChat:
			hints = append(a.msgView.Hints(), hints...)
		case ui.PagePrayers:
			hints = append(a.prayerWall.Hints(), hints...)
		}
		a.menu.Update(hints)
	})
}

func (a *App) setupLayout() {
	chatFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.msgView, 0, 1, false).
		AddItem(a.composer, 1, 0, false)

	a.pages.AddPage(ui.PageGroups, a.groupList, true, false)
	a.pages.AddPage(ui.PageChat, chatFlex, true, false)
	a.pages.AddPage(ui.PagePrayers, a.prayerWall, true, false)
	a.pages.AddPage(ui.PageShepherd, a.shepherdV, true, false)
	a.pages.AddPage(ui.PageSearch, a.searchV, true, false)
	a.pages.Reset(ui.PageGroups)

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.statusBar, 1, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.flashBar, 1, 0, false).
		AddItem(a.menu, 1, 0, false)

	a.app.SetRoot(root, true).SetFocus(a.groupList)
	a.app.SetInputCapture(a.handleKey)
}

func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	current := a.pages.Current()
	_, inInput := a.app.GetFocus().(*tview.InputField)

	if event.Key() == tcell.KeyEscape {
		if inInput && current != ui.PageShepherd && current != ui.PageSearch {
			a.focusPage(current)
			return nil
		}
		if a.pages.Pop() == ui.PageChat {
			a.vm.CloseGroup()
		}
		a.focusPage(a.pages.Current())
		return nil
	}

	// Input widgets get every other key.
	if inInput {
		return event
	}
	if a.registry.HandleEvent(current, event) {
		return nil
	}
	return event
}

func (a *App) focusPage(page string) {
	switch page {
	case ui.PageGroups:
		a.app.SetFocus(a.groupList)
	case ui.PageChat:
		a.app.SetFocus(a.msgView)
	case ui.PagePrayers:
		a.app.SetFocus(a.prayerWall.Table())
	case ui.PageShepherd:
		a.app.SetFocus(a.shepherdV.Input())
	case ui.PageSearch:
		a.app.SetFocus(a.searchV.Input())
	}
}

func (a *App) show(page string) {
	if a.pages.Current() == ui.PageChat && page != ui.PageChat {
		a.vm.CloseGroup()
	}
	if page == ui.PageGroups {
		a.pages.Reset(page)
	} else {
		a.pages.Push(page)
	}
	a.focusPage(page)
}

func (a *App) showGroups() { a.show(ui.PageGroups) }

func (a *App) showSearch() { a.show(ui.PageSearch) }

func (a *App) showPrayers() {
	a.show(ui.PagePrayers)
	go a.report(a.vm.LoadPrayers(a.ctx))
}

func (a *App) showShepherd() {
	a.show(ui.PageShepherd)
	a.renderShepherd()
}

func (a *App) openGroup(id string) {
	go func() {
		if err := a.vm.OpenGroup(a.ctx, id); err != nil {
			a.report(err)
			return
		}
		_ = a.vm.LoadGroups(a.ctx)
		a.app.QueueUpdateDraw(func() {
			a.msgView.SetGroup(a.vm.GetGroup(id))
			a.msgView.Update(a.vm.GetMessages())
			a.show(ui.PageChat)
		})
	}()
}

// submit sends a composer line, or runs it when it is a slash command.
func (a *App) submit(text string) {
	cmd, ok := ParseCommand(text)
	if !ok {
		a.report(a.vm.SendMessage(a.ctx, text, ""))
		return
	}
	switch cmd.Name {
	case "video":
		url, caption := cmd.VideoArgs()
		if url == "" {
			a.notice.Set("usage: /video <url> [caption]", noticeDuration)
			return
		}
		a.report(a.vm.SendMessage(a.ctx, caption, url))
	case "new":
		name, members := cmd.NewGroupArgs()
		g, err := a.vm.CreateGroup(a.ctx, name, members)
		if err != nil {
			a.report(err)
			return
		}
		if g == nil {
			a.notice.Set("usage: /new <name> [@member...]", noticeDuration)
			return
		}
		a.openGroup(g.ID)
	default:
		a.notice.Set("unknown command /"+cmd.Name, noticeDuration)
	}
}

func (a *App) onPrayer(fn func(context.Context, string) error) {
	id := a.prayerWall.Selected()
	if id == "" {
		return
	}
	go a.report(fn(a.ctx, id))
}

// report shows err in the flash bar; nil is ignored.
func (a *App) report(err error) {
	if err == nil || a.ctx.Err() != nil {
		return
	}
	a.notice.Set(err.Error(), noticeDuration)
}

func (a *App) reload() {
	a.report(a.vm.LoadSessionStatus(a.ctx))
	a.report(a.vm.LoadGroups(a.ctx))
	a.report(a.vm.LoadMessages(a.ctx))
}

func (a *App) render() {
	a.statusBar.SetStatus(a.vm.GetSessionStatus())
	a.groupList.Update(a.vm.GetGroups())
	if a.pages.Current() == ui.PageChat {
		a.msgView.Update(a.vm.GetMessages())
	}
	a.prayerWall.Update(a.vm.GetPrayers())
	a.renderFlash()
}

func (a *App) renderFlash() {
	if msg := a.notice.Get(); msg != "" {
		a.flashBar.Update(msg, ui.FlashErr)
		return
	}
	a.flashBar.Update(a.vm.Flash.Get(), ui.FlashBanner)
}

func (a *App) renderShepherd() {
	if a.conversation == nil {
		a.shepherdV.Update(nil, true)
		return
	}
	a.shepherdV.Update(a.conversation.Turns(), a.conversation.Loading())
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	go func() {
		a.report(a.vm.LoadSessionStatus(a.ctx))
		userName := "friend"
		if st := a.vm.GetSessionStatus(); st != nil && st.Profile != nil {
			userName = st.Profile.Name
		}
		conv := shepherd.NewConversation(a.vm, userName, func() {
			a.app.QueueUpdateDraw(a.renderShepherd)
		})
		a.report(a.vm.LoadGroups(a.ctx))
		a.app.QueueUpdateDraw(func() {
			a.conversation = conv
			a.render()
			a.renderShepherd()
		})

		go a.watchLoop()
		go a.refreshLoop()
	}()

	err := a.app.Run()
	a.cancel()
	if conv := a.conversation; conv != nil {
		conv.Close()
	}
	return err
}

// watchLoop keeps a WatchChatUpdates stream open, reconnecting after
// failures until the app exits.
func (a *App) watchLoop() {
	for {
		err := a.vm.Watch(a.ctx)
		if a.ctx.Err() != nil {
			return
		}
		a.report(err)
		select {
		case <-a.ctx.Done():
			return
		case <-time.After(watchRetryDelay):
		}
		// Updates missed while disconnected must not show up as banners.
		a.vm.ResetNotifications()
		a.reload()
	}
}

func (a *App) refreshLoop() {
	flash := time.NewTicker(flashTick)
	defer flash.Stop()
	status := time.NewTicker(statusPollPeriod)
	defer status.Stop()

	for {
		select {
		case <-a.vm.RefreshCh():
			a.app.QueueUpdateDraw(a.render)
		case <-flash.C:
			a.app.QueueUpdateDraw(a.renderFlash)
		case <-status.C:
			a.report(a.vm.LoadSessionStatus(a.ctx))
		case <-a.ctx.Done():
			return
		}
	}
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}
