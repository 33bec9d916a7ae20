package app

import (
	"fmt"
	"strings"

	"github.com/byxorna/stackit/pkg/listing"
	"github.com/byxorna/stackit/pkg/text"
	v1 "github.com/byxorna/stackit/pkg/types/v1"
	"github.com/byxorna/stackit/pkg/ui"
	"github.com/byxorna/stackit/pkg/vote"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 28

// page computes what the board shows right now. It runs on every render so
// the listing never goes stale.
func (m Application) page() listing.Page[*v1.Question] {
	return listing.ComputePage(m.store.Questions(), m.query)
}

func (m Application) selected() *v1.Question {
	p := m.page()
	if m.cursor < 0 || m.cursor >= len(p.Items) {
		return nil
	}
	return p.Items[m.cursor]
}

// popularTags are the sidebar tags; configuration overrides the board's own.
func (m Application) popularTags() []string {
	if len(m.Config.PopularTags) > 0 {
		return m.Config.PopularTags
	}
	return m.store.PopularTags()
}

// setQuery installs a new query. Search, tag and sort changes already come
// back on page 1 from the listing setters; the card cursor follows.
func (m *Application) setQuery(q listing.Query) {
	if q != m.query {
		m.cursor = 0
	}
	m.query = q
}

func (m Application) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.updateSearch(msg)
	}

	if next, cmd, ok := m.updateGlobal(msg); ok {
		return next, cmd
	}

	p := m.page()
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Filter):
		m.overlay = overlayFilter
		m.filterCursor = 0

	case key.Matches(msg, m.keys.CycleSort):
		m.setQuery(m.query.CycleSort())
		m.status = "Sorted by " + m.query.Sort.Label()

	case key.Matches(msg, m.keys.Tag):
		tags := m.popularTags()
		n := int(msg.Runes[0] - '1')
		if n < len(tags) {
			m.setQuery(m.query.ToggleTag(tags[n]))
		}

	case key.Matches(msg, m.keys.Back):
		if m.query.Filtering() {
			m.search.SetValue("")
			m.setQuery(m.query.WithSearch("").WithTag(""))
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(p.Items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Left):
		m.setQuery(m.query.PrevPage())
	case key.Matches(msg, m.keys.Right):
		m.setQuery(m.query.NextPage(p.TotalPages))

	case key.Matches(msg, m.keys.VoteUp):
		if q := m.selected(); q != nil {
			m.castVote(q.Identifier(), vote.Up)
		}
	case key.Matches(msg, m.keys.VoteDown):
		if q := m.selected(); q != nil {
			m.castVote(q.Identifier(), vote.Down)
		}

	case key.Matches(msg, m.keys.Open):
		if q := m.selected(); q != nil {
			m.openDetail(q.Identifier())
		}

	case key.Matches(msg, m.keys.Ask):
		if m.require() {
			m.overlay = overlayCompose
			cmd := m.compose.focus()
			return m, cmd
		}
	}
	return m, nil
}

func (m Application) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		if msg.Type == tea.KeyEsc {
			m.search.SetValue("")
			m.setQuery(m.query.WithSearch(""))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.query.Search {
		m.setQuery(m.query.WithSearch(v))
	}
	return m, cmd
}

// filterOptions are the rows of the filter panel: the sort keys, then "All"
// and the popular tags.
func (m Application) filterOptions() []string {
	opts := []string{}
	for _, k := range listing.SortKeys {
		opts = append(opts, k.Label())
	}
	opts = append(opts, "All")
	return append(opts, m.popularTags()...)
}

func (m Application) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	opts := m.filterOptions()
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Filter):
		m.overlay = overlayNone
	case key.Matches(msg, m.keys.Up):
		if m.filterCursor > 0 {
			m.filterCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.filterCursor < len(opts)-1 {
			m.filterCursor++
		}
	case key.Matches(msg, m.keys.Open):
		n := m.filterCursor
		switch {
		case n < len(listing.SortKeys):
			m.setQuery(m.query.WithSort(listing.SortKeys[n]))
		case n == len(listing.SortKeys):
			m.setQuery(m.query.WithTag(""))
		default:
			m.setQuery(m.query.WithTag(opts[n]))
		}
	}
	return m, nil
}

func (m Application) boardView() string {
	p := m.page()

	main := m.width - sidebarWidth - 8
	if main < 30 {
		main = 30
	}

	var cards []string
	heading := "All Questions"
	if m.query.Filtering() {
		heading = fmt.Sprintf("%d results", p.TotalItems)
	}
	cards = append(cards, ui.TitleStyle.Render(heading)+ui.Divider+ui.GrayFg(m.query.Sort.Label()))
	if m.query.Tag != "" {
		cards = append(cards, "Tag: "+text.ColoredTags([]string{m.query.Tag}, " ")+ui.GrayFg("  (esc clears)"))
	}

	if len(p.Items) == 0 {
		cards = append(cards, ui.CardStyle.Width(main).Render(ui.GrayFg("No questions match.")))
	}
	for i, q := range p.Items {
		cards = append(cards, m.card(q, i == m.cursor, main))
	}

	if p.TotalPages > 1 {
		pager := m.pager
		pager.PerPage = m.query.PageSize
		pager.TotalPages = p.TotalPages
		pager.Page = p.Number - 1
		cards = append(cards, lipgloss.PlaceHorizontal(main, lipgloss.Center,
			pager.View()+ui.GrayFg(fmt.Sprintf("  page %d of %d", p.Number, p.TotalPages))))
	}

	left := lipgloss.JoinVertical(lipgloss.Left, cards...)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", m.sidebar())
}

func (m Application) card(q *v1.Question, selected bool, width int) string {
	id := q.Identifier()
	count := m.votes.Count(id, q.VoteCount())

	up, down := ui.GrayFg("▲"), ui.GrayFg("▼")
	switch m.votes.Get(id) {
	case vote.Up:
		up = ui.VoteUpStyle.Render("▲")
	case vote.Down:
		down = ui.VoteDownStyle.Render("▼")
	}
	votes := lipgloss.JoinVertical(lipgloss.Center, up, fmt.Sprintf("%d", count), down)

	title := ui.TitleStyle.Render(q.Title())
	if q.Solved() {
		title += " " + ui.SolvedStyle.Render(q.Icon()+" Solved")
	}
	bodyWidth := width - 10
	lines := []string{
		title,
		ui.DimNormalFg(text.Preview(q.Body(), bodyWidth)),
		text.ColoredTags(q.SelectorTags(), ui.Divider),
		ui.GrayFg(fmt.Sprintf("%s %d  %s %s  %s",
			text.EmojiAnswers, q.AnswerCount(),
			ui.IndigoFg(text.Initial(q.Author())), q.Author(),
			text.RelativeTimeFrom(q.Created(), m.now()))),
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, votes, "  ", strings.Join(lines, "\n"))

	style := ui.CardStyle
	if selected {
		style = ui.SelectedCardStyle
	}
	return style.Width(width).Render(content)
}

func (m Application) sidebar() string {
	var tags []string
	for i, t := range m.popularTags() {
		label := fmt.Sprintf("%d %s", i+1, t)
		if i >= 9 {
			label = t
		}
		if t == m.query.Tag {
			tags = append(tags, ui.ActiveChipStyle.Render(label))
		} else {
			tags = append(tags, ui.ChipStyle.Render(label))
		}
	}
	popular := ui.PanelStyle.Width(sidebarWidth).Render(
		ui.TitleStyle.Render("Popular Tags") + "\n" + strings.Join(tags, "\n"))

	s := m.store.Stats()
	stats := ui.PanelStyle.Width(sidebarWidth).Render(strings.Join([]string{
		ui.TitleStyle.Render("Community Stats"),
		statLine("Questions", s.Questions),
		statLine("Answers", s.Answers),
		statLine("Users", s.Users),
	}, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, popular, stats)
}

func statLine(label string, n int) string {
	value := text.Count(n)
	gap := sidebarWidth - 4 - lipgloss.Width(label) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}
	return ui.GrayFg(label) + strings.Repeat(" ", gap) + value
}

func (m Application) filterView() string {
	var rows []string
	rows = append(rows, ui.TitleStyle.Render("Sort by"))
	for i, opt := range m.filterOptions() {
		if i == len(listing.SortKeys) {
			rows = append(rows, "", ui.TitleStyle.Render("Filter by tag"))
		}
		active := false
		switch {
		case i < len(listing.SortKeys):
			active = listing.SortKeys[i] == m.query.Sort
		case i == len(listing.SortKeys):
			active = m.query.Tag == ""
		default:
			active = opt == m.query.Tag
		}
		marker := "  "
		if i == m.filterCursor {
			marker = ui.FuchsiaFg("> ")
		}
		if active {
			opt = ui.ActiveChipStyle.Render(opt)
		} else {
			opt = ui.ChipStyle.Render(opt)
		}
		rows = append(rows, marker+opt)
	}
	return ui.ModalStyle.Render(strings.Join(rows, "\n"))
}
