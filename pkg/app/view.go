package app

import (
	"strings"

	"github.com/byxorna/stackit/pkg/ui"
	"github.com/charmbracelet/lipgloss"
)

func (m Application) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	var body string
	switch m.screen {
	case screenDetail:
		body = m.detailView()
	default:
		body = m.boardView()
	}

	var modal string
	switch m.overlay {
	case overlayFilter:
		modal = m.filterView()
	case overlayCompose:
		modal = m.composeView()
	case overlayAuth:
		modal = m.authView()
	case overlayNotifications:
		modal = m.notificationsView()
	}
	if modal != "" {
		h := m.height - 6
		if h < lipgloss.Height(modal) {
			h = lipgloss.Height(modal)
		}
		body = lipgloss.Place(m.width-4, h, lipgloss.Center, lipgloss.Center, modal,
			lipgloss.WithWhitespaceChars(" "))
	}

	return ui.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		body,
		m.footerView(),
	))
}

func (m Application) headerView() string {
	search := m.search.View()
	if !m.searching && m.search.Value() == "" {
		search = ui.GrayFg("/ search")
	}

	user := ui.IndigoFg("Sign in (L)")
	if m.session.Authenticated {
		user = ui.IndigoFg(m.session.User) + ui.GrayFg(" (O sign out)")
	}

	left := ui.HeaderStyle.Render("StackIt") + "  " + search
	right := strings.Join([]string{m.bell(), user, m.theme.Icon()}, "  ")
	gap := m.width - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right + "\n"
}

func (m Application) footerView() string {
	var help string
	if m.screen == screenDetail {
		help = m.help.View(detailKeyMap{m.keys})
	} else {
		help = m.help.View(m.keys)
	}
	if m.status == "" {
		return "\n" + help
	}
	return "\n" + ui.StatusStyle.Render(m.status) + "\n" + help
}
