package app

import (
	"fmt"
	"log/slog"

	"github.com/byxorna/stackit/pkg/text"
	v1 "github.com/byxorna/stackit/pkg/types/v1"
	"github.com/byxorna/stackit/pkg/ui"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var statusMessageStyle = lipgloss.NewStyle().
	Foreground(ui.Green.Adaptive()).
	Render

// notificationItem adapts a notification to list.DefaultItem.
type notificationItem struct {
	n v1.Notification
}

func (i notificationItem) FilterValue() string { return i.n.Title }

func (i notificationItem) Title() string {
	marker := "  "
	if i.n.Unread {
		marker = ui.FuchsiaFg("● ")
	}
	return marker + i.n.Icon() + " " + i.n.Title
}

func (i notificationItem) Description() string {
	return "   " + i.n.Message + " · " + i.n.Age()
}

func itemsFromNotifications(ns []v1.Notification) []list.Item {
	lx := make([]list.Item, len(ns))
	for i := range ns {
		lx[i] = notificationItem{n: ns[i]}
	}
	return lx
}

type delegateKeyMap struct {
	markRead key.Binding
	close    key.Binding
}

// Additional short help entries. This satisfies the help.KeyMap interface and
// is entirely optional.
func (d delegateKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{d.markRead, d.close}
}

// Additional full help entries. This satisfies the help.KeyMap interface and
// is entirely optional.
func (d delegateKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{d.markRead, d.close}}
}

func newDelegateKeyMap() *delegateKeyMap {
	return &delegateKeyMap{
		markRead: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "mark all read"),
		),
		close: key.NewBinding(
			key.WithKeys("esc", "n"),
			key.WithHelp("esc", "close"),
		),
	}
}

func newNotificationDelegate(keys *delegateKeyMap) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(ui.Fuchsia.Adaptive()).
		BorderForeground(ui.Fuchsia.Adaptive())
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Copy().Foreground(ui.Gray.Adaptive())

	d.UpdateFunc = func(msg tea.Msg, m *list.Model) tea.Cmd {
		if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.markRead) {
			return m.NewStatusMessage(statusMessageStyle("All caught up"))
		}
		return nil
	}

	help := []key.Binding{keys.markRead, keys.close}
	d.ShortHelpFunc = func() []key.Binding {
		return help
	}
	d.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{help}
	}
	return d
}

// notificationsModel is the notifications panel.
type notificationsModel struct {
	keys *delegateKeyMap
	list list.Model
}

func newNotificationsModel() notificationsModel {
	keys := newDelegateKeyMap()
	l := list.New(nil, newNotificationDelegate(keys), 60, 16)
	l.Title = "Notifications"
	l.Styles.Title = ui.HeaderStyle
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()
	return notificationsModel{keys: keys, list: l}
}

func (n *notificationsModel) setSize(width, height int) {
	w := width - 20
	if w > 70 {
		w = 70
	}
	if w < 30 {
		w = 30
	}
	h := height - 4
	if h > 20 {
		h = 20
	}
	if h < 6 {
		h = 6
	}
	n.list.SetSize(w, h)
}

func (m *Application) openNotifications() {
	m.notifications.list.SetItems(itemsFromNotifications(m.store.Notifications()))
	m.notifications.list.Select(0)
	m.overlay = overlayNotifications
}

func (m Application) updateNotifications(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := &m.notifications
	switch {
	case key.Matches(msg, n.keys.close):
		m.overlay = overlayNone
		return m, nil
	case key.Matches(msg, n.keys.markRead):
		m.store.MarkNotificationsRead()
		slog.Debug("notifications marked read")
		cmd := n.list.SetItems(itemsFromNotifications(m.store.Notifications()))
		var statusCmd tea.Cmd
		n.list, statusCmd = n.list.Update(msg)
		return m, tea.Batch(cmd, statusCmd)
	}
	var cmd tea.Cmd
	n.list, cmd = n.list.Update(msg)
	return m, cmd
}

// bell is the header notification indicator with its unread badge.
func (m Application) bell() string {
	unread := v1.UnreadCount(m.store.Notifications())
	if unread == 0 {
		return text.EmojiBell
	}
	return text.EmojiBell + ui.BadgeStyle.Render(fmt.Sprintf("%d", unread))
}

func (m Application) notificationsView() string {
	return ui.ModalStyle.Render(m.notifications.list.View())
}
