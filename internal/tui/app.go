// Package tui renders the dashboard in the terminal and turns key presses
// into controller intents.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matheuskafuri/paknews/internal/browser"
	"github.com/matheuskafuri/paknews/internal/cache"
	"github.com/matheuskafuri/paknews/internal/dashboard"
	"github.com/matheuskafuri/paknews/internal/logging"
)

const (
	clockInterval = 5 * time.Second
	cardHeight    = 10
)

type App struct {
	ctx    context.Context
	ctrl   *dashboard.Controller
	logger *slog.Logger
	open   func(url string) error

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	reader  viewport.Model

	view     dashboard.View
	cursor   int
	english  map[string]bool
	showHelp bool
	notice   string
	now      time.Time

	width  int
	height int
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Ctrl   *dashboard.Controller
	Logger *slog.Logger
	// RefreshInterval overrides dashboard.RefreshInterval when positive.
	RefreshInterval time.Duration
	// Open launches a link; defaults to the system browser.
	Open func(url string) error
}

func NewApp(ctx context.Context, opts RunOpts) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	open := opts.Open
	if open == nil {
		open = browser.Open
	}

	a := &App{
		ctx:     ctx,
		ctrl:    opts.Ctrl,
		logger:  logging.Component(opts.Logger, "tui"),
		open:    open,
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		english: make(map[string]bool),
		now:     time.Now(),
	}
	a.sync()
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadCmd(), a.spinner.Tick, clockTick())
}

// Commands capture the controller and context so they never touch App fields
// from another goroutine.

func (a *App) loadCmd() tea.Cmd {
	ctrl, ctx := a.ctrl, a.ctx
	return func() tea.Msg {
		return loadedMsg{err: ctrl.Load(ctx)}
	}
}

func (a *App) refreshCmd() tea.Cmd {
	ctrl, ctx := a.ctrl, a.ctx
	return func() tea.Msg {
		return refreshedMsg{err: ctrl.Refresh(ctx)}
	}
}

func (a *App) summarizeCmd() tea.Cmd {
	ctrl, ctx := a.ctrl, a.ctx
	return func() tea.Msg {
		ctrl.SummarizePage(ctx)
		return summariesDoneMsg{}
	}
}

func (a *App) translateCmd(id string) tea.Cmd {
	ctrl, ctx := a.ctrl, a.ctx
	return func() tea.Msg {
		return translatedMsg{articleID: id, err: ctrl.Translate(ctx, id)}
	}
}

func (a *App) translateAllCmd() tea.Cmd {
	ctrl, ctx := a.ctrl, a.ctx
	return func() tea.Msg {
		n, err := ctrl.TranslateAll(ctx)
		return translateAllMsg{count: n, err: err}
	}
}

func openBrowserCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		if err := open(url); err != nil {
			return browserErrMsg{err: err}
		}
		return nil
	}
}

func clockTick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg { return clockMsg(t) })
}

// withSpinner starts cmd alongside a spinner tick so progress is drawn.
func (a *App) withSpinner(cmd tea.Cmd) tea.Cmd {
	return tea.Batch(cmd, a.spinner.Tick)
}

func (a *App) sync() {
	a.view = a.ctrl.Snapshot()
	if a.cursor >= len(a.view.Cards) {
		a.cursor = max(0, len(a.view.Cards)-1)
	}
}

func (a *App) busy() bool {
	v := a.view
	if v.Loading || v.Refreshing || v.TranslatingAll {
		return true
	}
	for _, c := range v.Cards {
		if c.Status.Summarizing || c.Status.Translating {
			return true
		}
	}
	return false
}

func (a *App) selected() (dashboard.Card, bool) {
	if a.cursor < 0 || a.cursor >= len(a.view.Cards) {
		return dashboard.Card{}, false
	}
	return a.view.Cards[a.cursor], true
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.view.Detail != nil {
			a.openReader()
		}
		return a, nil

	case tea.FocusMsg:
		a.ctrl.SetVisible(true)
		return a, nil

	case tea.BlurMsg:
		a.ctrl.SetVisible(false)
		return a, nil

	case tea.MouseMsg:
		a.ctrl.RecordActivity()
		if a.view.Detail != nil {
			var cmd tea.Cmd
			a.reader, cmd = a.reader.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		a.ctrl.RecordActivity()
		// Clear sticky notices on any keypress
		a.notice = ""
		a.ctrl.DismissNotice()
		return a.handleKey(msg)

	case loadedMsg:
		a.sync()
		return a, a.withSpinner(a.summarizeCmd())

	case refreshedMsg:
		a.sync()
		if msg.auto && msg.err == nil {
			a.notice = "News updated."
		}
		return a, a.withSpinner(a.summarizeCmd())

	case summariesDoneMsg:
		a.sync()
		return a, nil

	case translatedMsg:
		if msg.err == nil {
			delete(a.english, msg.articleID)
		} else if errors.Is(msg.err, dashboard.ErrOffline) {
			a.notice = "Translation is unavailable while offline."
		}
		a.sync()
		return a, nil

	case translateAllMsg:
		a.sync()
		if msg.err == nil && msg.count > 0 {
			clear(a.english)
			a.notice = fmt.Sprintf("Translated %d articles.", msg.count)
		}
		return a, nil

	case browserErrMsg:
		a.logger.Warn("opening browser", "error", msg.err)
		a.notice = "Could not open browser: " + msg.err.Error()
		return a, nil

	case clockMsg:
		a.now = time.Time(msg)
		a.sync()
		return a, clockTick()

	case spinner.TickMsg:
		a.sync()
		if !a.busy() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.showHelp {
		if key.Matches(msg, a.keys.Help, a.keys.Close) {
			a.showHelp = false
		}
		return a, nil
	}

	if a.view.Detail != nil {
		return a.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
		return a, nil
	case key.Matches(msg, a.keys.PrevCategory):
		return a.selectFilter(shiftCategory(a.view.Filter, -1))
	case key.Matches(msg, a.keys.NextCategory):
		return a.selectFilter(shiftCategory(a.view.Filter, 1))
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.view.Cards)-1 {
			a.cursor++
		}
		return a, nil
	case key.Matches(msg, a.keys.NextPage):
		return a.setPage(a.view.Page + 1)
	case key.Matches(msg, a.keys.PrevPage):
		return a.setPage(a.view.Page - 1)
	case key.Matches(msg, a.keys.JumpPage):
		return a.setPage(int(msg.String()[0] - '0'))
	case key.Matches(msg, a.keys.Refresh):
		if !a.view.CanRefresh {
			return a, nil
		}
		return a, a.withSpinner(a.refreshCmd())
	case key.Matches(msg, a.keys.TranslateAll):
		if !a.view.CanTranslateAll {
			return a, nil
		}
		return a, a.withSpinner(a.translateAllCmd())
	}

	card, ok := a.selected()
	if !ok {
		return a, nil
	}
	art := card.Article

	switch {
	case key.Matches(msg, a.keys.Read):
		if err := a.ctrl.OpenDetail(art.ID); err != nil {
			return a, nil
		}
		a.sync()
		a.openReader()
	case key.Matches(msg, a.keys.Open):
		return a, openBrowserCmd(a.open, art.Link)
	case key.Matches(msg, a.keys.Save):
		if _, err := a.ctrl.ToggleSave(art, art.Summary, art.TranslatedSummary); errors.Is(err, dashboard.ErrSummaryRequired) {
			a.notice = "Wait for the summary before saving."
		}
		a.sync()
	case key.Matches(msg, a.keys.Translate):
		if art.TranslatedSummary != "" {
			a.english[art.ID] = !a.english[art.ID]
			return a, nil
		}
		if art.Summary == "" {
			a.notice = "Wait for the summary before translating."
			return a, nil
		}
		if !a.view.Online {
			a.notice = "Translation is unavailable while offline."
			return a, nil
		}
		return a, a.withSpinner(a.translateCmd(art.ID))
	}
	return a, nil
}

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Close):
		a.ctrl.CloseDetail()
		a.sync()
		return a, nil
	case key.Matches(msg, a.keys.Open):
		return a, openBrowserCmd(a.open, a.view.Detail.Link)
	}
	var cmd tea.Cmd
	a.reader, cmd = a.reader.Update(msg)
	return a, cmd
}

func (a *App) selectFilter(cat cache.Category) (tea.Model, tea.Cmd) {
	a.ctrl.SelectFilter(cat)
	a.cursor = 0
	a.sync()
	return a, a.withSpinner(a.summarizeCmd())
}

func (a *App) setPage(p int) (tea.Model, tea.Cmd) {
	if !a.ctrl.SetPage(p) {
		return a, nil
	}
	a.cursor = 0
	a.sync()
	return a, a.withSpinner(a.summarizeCmd())
}

func (a *App) readerSize() (int, int) {
	w := min(max(a.width-6, 20), 100)
	h := max(a.height-6, 5)
	return w, h
}

func (a *App) openReader() {
	if a.view.Detail == nil {
		return
	}
	w, h := a.readerSize()
	a.reader = viewport.New(w, h)
	a.reader.SetContent(renderDetail(*a.view.Detail, w))
}

func (a *App) withBottomBar(content string, bar string) string {
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) View() string {
	if a.width == 0 {
		return headerStyle.Render("paknews")
	}

	if a.showHelp {
		title := headerStyle.Render("paknews") + headerDimStyle.Render(" keyboard shortcuts")
		card := helpCardStyle.Render(title + "\n\n" + a.help.FullHelpView(a.keys.FullHelp()))
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
	}

	header := a.renderHeader()
	notice := a.notice
	if notice == "" {
		notice = a.view.Notice
	}

	if a.view.Detail != nil {
		frame := detailFrameStyle.Render(a.reader.View())
		body := lipgloss.Place(a.width, max(a.height-2, 1), lipgloss.Center, lipgloss.Center, frame)
		status := renderStatusBar(a.view, notice, "esc close  o open source  j/k scroll", a.width)
		return a.withBottomBar(header+"\n"+body, status)
	}

	sections := []string{header, renderFilterBar(a.view.Filter, a.view.SavedCount, a.width), ""}
	if a.view.Error != "" {
		sections = append(sections, bannerStyle.Width(a.width).Render(a.view.Error), "")
	}
	pagination := renderPagination(a.view.Page, a.view.TotalPages, a.width)
	used := len(sections) + 2
	if pagination != "" {
		used++
	}
	sections = append(sections, a.renderCards(a.height-used))
	if pagination != "" {
		sections = append(sections, pagination)
	}

	status := renderStatusBar(a.view, notice, a.help.ShortHelpView(a.keys.ShortHelp()), a.width)
	return a.withBottomBar(lipgloss.JoinVertical(lipgloss.Left, sections...), status)
}

func (a *App) renderHeader() string {
	left := headerStyle.Render("paknews") + headerDimStyle.Render("  Pakistan news digest")

	right := ""
	if a.view.Refreshing || a.view.Loading {
		right += a.spinner.View() + " "
	}
	if a.view.Online {
		right += onlineStyle.Render("● online")
	} else {
		right += offlineStyle.Render("● offline")
	}
	right += headerDimStyle.Render("  " + a.now.Format("Mon Jan 2") + " ")

	gap := max(a.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + strings.Repeat(" ", gap) + right
}

func (a *App) renderCards(height int) string {
	v := a.view
	if len(v.Cards) == 0 {
		msg := "No articles found."
		switch {
		case v.Loading:
			msg = a.spinner.View() + " Loading news..."
		case v.Filter == cache.Offline:
			msg = "No saved articles yet. Press s on a summarized article to keep it for offline reading."
		}
		return lipgloss.Place(a.width, max(height, 3), lipgloss.Center, lipgloss.Center, summaryStyle.Render(msg))
	}

	cols := 1
	if a.width >= 100 {
		cols = 2
	}
	cardWidth := a.width / cols

	var rows []string
	for i := 0; i < len(v.Cards); i += cols {
		var row []string
		for j := i; j < min(i+cols, len(v.Cards)); j++ {
			c := v.Cards[j]
			row = append(row, renderCard(c, cardOpts{
				selected: j == a.cursor,
				english:  a.english[c.Article.ID],
				spinner:  a.spinner.View(),
				now:      a.now,
				width:    cardWidth,
			}))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	// Scroll so the selected card stays on screen.
	visible := max(height/cardHeight, 1)
	start := max(a.cursor/cols-visible+1, 0)
	end := min(start+visible, len(rows))
	return lipgloss.JoinVertical(lipgloss.Left, rows[start:end]...)
}

// Run starts the TUI and the background refresh scheduler. It returns when
// the user quits.
func Run(ctx context.Context, opts RunOpts) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app := NewApp(ctx, opts)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithReportFocus(), tea.WithMouseAllMotion())

	go opts.Ctrl.Run(ctx, opts.RefreshInterval, func(err error) {
		p.Send(refreshedMsg{err: err, auto: true})
	})

	_, err := p.Run()
	return err
}
