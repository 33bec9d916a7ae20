package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/byxorna/stackit/pkg/auth"
	"github.com/byxorna/stackit/pkg/config"
	"github.com/byxorna/stackit/pkg/db"
	"github.com/byxorna/stackit/pkg/listing"
	v1 "github.com/byxorna/stackit/pkg/types/v1"
	"github.com/byxorna/stackit/pkg/ui"
	"github.com/byxorna/stackit/pkg/vote"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenBoard screen = iota
	screenDetail
)

type overlay int

const (
	overlayNone overlay = iota
	overlayFilter
	overlayCompose
	overlayAuth
	overlayNotifications
)

// seedChangedMsg reports that the board's backing file was rewritten.
type seedChangedMsg struct{}

// Application is the board: it owns the session, the user's votes and the
// listing query, and replaces each of them wholesale as actions come in.
type Application struct {
	*config.Config

	UseAltScreen bool

	store   db.Backend
	keys    applicationKeyMap
	help    help.Model
	session auth.Session
	votes   vote.State
	query   listing.Query
	theme   ui.Theme
	now     func() time.Time

	screen  screen
	overlay overlay
	width   int
	height  int

	// board
	cursor       int
	search       textinput.Model
	searching    bool
	filterCursor int
	pager        paginator.Model

	detail        detailModel
	compose       composeModel
	authForm      authModel
	notifications notificationsModel

	status   string
	changes  <-chan struct{}
	quitting bool
}

// NewApplication builds the board over store. The caller owns store.
func NewApplication(cfg *config.Config, store db.Backend) *Application {
	search := textinput.New()
	search.Placeholder = "Search questions..."
	search.Prompt = "/ "
	search.CharLimit = 200

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.ActiveDot = ui.FuchsiaFg("•")
	pager.InactiveDot = ui.GrayFg("•")

	m := Application{
		Config:        cfg,
		store:         store,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		votes:         vote.State{},
		query:         listing.NewQuery(cfg.PageSize),
		theme:         ui.ParseTheme(cfg.Theme),
		now:           time.Now,
		search:        search,
		pager:         pager,
		detail:        newDetailModel(cfg),
		compose:       newComposeModel(cfg),
		authForm:      newAuthModel(),
		notifications: newNotificationsModel(),
		width:         100,
		height:        40,
	}
	m.theme.Apply()
	return &m
}

// Watch makes the board follow changes to the store's backing file until ctx
// is done.
func (m *Application) Watch(ctx context.Context) error {
	changes, err := m.store.Watch(ctx)
	if err != nil {
		return err
	}
	m.changes = changes
	return nil
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return seedChangedMsg{}
	}
}

func (m Application) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForChange(m.changes)}
	if m.UseAltScreen {
		cmds = append(cmds, tea.EnterAltScreen)
	}
	return tea.Batch(cmds...)
}

func (m Application) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case seedChangedMsg:
		if err := m.store.Reload(); err != nil {
			slog.Warn("unable to reload board", "err", err)
			m.status = "Reload failed: " + err.Error()
		} else {
			m.status = "Board reloaded"
			m.refreshDetail()
		}
		return m, waitForChange(m.changes)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.overlay {
		case overlayFilter:
			return m.updateFilter(msg)
		case overlayCompose:
			return m.updateCompose(msg)
		case overlayAuth:
			return m.updateAuth(msg)
		case overlayNotifications:
			return m.updateNotifications(msg)
		}
		if m.screen == screenDetail {
			return m.updateDetail(msg)
		}
		return m.updateBoard(msg)
	}

	// everything else (caret placement, cursor blinks) goes to whatever
	// has focus
	var cmd tea.Cmd
	switch {
	case m.overlay == overlayCompose:
		m.compose, cmd = m.compose.update(msg)
	case m.overlay == overlayAuth:
		m.authForm, cmd = m.authForm.update(msg)
	case m.overlay == overlayNotifications:
		m.notifications.list, cmd = m.notifications.list.Update(msg)
	case m.screen == screenDetail:
		m.detail.editor, cmd = m.detail.editor.Update(msg)
		m.refreshDetail()
	case m.searching:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

// updateGlobal handles the keys shared by the board and detail screens.
func (m Application) updateGlobal(msg tea.KeyMsg) (Application, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil, true
	case key.Matches(msg, m.keys.Theme):
		m.theme = m.theme.Toggle()
		m.theme.Apply()
		m.detail.editor.Theme = m.theme
		m.compose.body.Theme = m.theme
		m.refreshDetail()
		return m, nil, true
	case key.Matches(msg, m.keys.Notifications):
		m.openNotifications()
		return m, nil, true
	case key.Matches(msg, m.keys.Login):
		if !m.session.Authenticated {
			m.openAuth()
		}
		return m, nil, true
	case key.Matches(msg, m.keys.Logout):
		if m.session.Authenticated {
			m.session = m.session.Logout()
			m.votes = m.votes.Clear()
			m.status = "Signed out"
			m.refreshDetail()
		}
		return m, nil, true
	}
	return m, nil, false
}

// castVote applies the user's vote on id, or asks for a sign in.
func (m *Application) castVote(id v1.ID, dir vote.Direction) {
	g := m.gate()
	votes, err := vote.Cast(m.votes, g, id, dir)
	m.afterGate(g)
	if err != nil {
		return
	}
	m.votes = votes
}

func (m *Application) setSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.detail.setSize(width, height-6)
	m.compose.setSize(width, height)
	m.notifications.setSize(width, height-6)
	m.refreshDetail()
}

// author is who new posts are signed by.
func (m *Application) author() string {
	if m.session.User != "" {
		return m.session.User
	}
	if m.Config.Author != "" {
		return m.Config.Author
	}
	return "anonymous"
}

func (m *Application) openAuth() {
	m.authForm = m.authForm.open(m.authForm.mode)
	m.overlay = overlayAuth
}
