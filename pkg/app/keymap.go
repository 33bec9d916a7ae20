package app

import (
	"github.com/charmbracelet/bubbles/key"
)

// applicationKeyMap defines the board and detail keybindings. To work for
// help it must satisfy help.KeyMap.
type applicationKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Open  key.Binding
	Back  key.Binding
	Help  key.Binding
	Quit  key.Binding

	Search        key.Binding
	Filter        key.Binding
	CycleSort     key.Binding
	Tag           key.Binding
	VoteUp        key.Binding
	VoteDown      key.Binding
	Ask           key.Binding
	Notifications key.Binding
	Theme         key.Binding
	Login         key.Binding
	Logout        key.Binding

	Accept key.Binding
	Answer key.Binding
	Submit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view. It's part
// of the key.Map interface.
func (k applicationKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Filter, k.CycleSort, k.Ask, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view. It's part of the
// key.Map interface.
func (k applicationKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Open, k.Back},
		{k.Search, k.Filter, k.CycleSort, k.Tag},
		{k.VoteUp, k.VoteDown, k.Accept, k.Answer, k.Submit},
		{k.Ask, k.Notifications, k.Theme, k.Login, k.Logout, k.Help, k.Quit},
	}
}

// detailKeyMap is the subset of bindings shown on the question screen.
type detailKeyMap struct{ applicationKeyMap }

func (k detailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.VoteUp, k.VoteDown, k.Accept, k.Answer, k.Submit, k.Back}
}

// DefaultKeyMap returns a default set of keybindings.
func DefaultKeyMap() applicationKeyMap {
	return applicationKeyMap{
		// Browsing.
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←/h", "prev page"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("→/l", "next page"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),

		// Listing.
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Tag: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "popular tag"),
		),

		// Actions.
		VoteUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "upvote"),
		),
		VoteDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "downvote"),
		),
		Ask: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "ask"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notifications"),
		),
		Theme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "theme"),
		),
		Login: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "sign in"),
		),
		Logout: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "sign out"),
		),
		Accept: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "accept"),
		),
		Answer: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "write answer"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
	}
}
