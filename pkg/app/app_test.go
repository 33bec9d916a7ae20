package app

import (
	"testing"

	"github.com/byxorna/stackit/pkg/auth"
	"github.com/byxorna/stackit/pkg/board"
	"github.com/byxorna/stackit/pkg/config"
	"github.com/byxorna/stackit/pkg/listing"
	v1 "github.com/byxorna/stackit/pkg/types/v1"
	"github.com/byxorna/stackit/pkg/vote"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) Application {
	t.Helper()
	store, err := board.New("")
	require.NoError(t, err)
	cfg := config.Default
	return *NewApplication(&cfg, store)
}

var specialKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"backspace": tea.KeyBackspace,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"ctrl+s":    tea.KeyCtrlS,
	"ctrl+r":    tea.KeyCtrlR,
	"ctrl+p":    tea.KeyCtrlP,
	"home":      tea.KeyHome,
}

// press feeds keys through Update. Anything not named in specialKeys is typed
// as runes.
func press(t *testing.T, m Application, keys ...string) Application {
	t.Helper()
	for _, k := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		if kt, ok := specialKeys[k]; ok {
			msg = tea.KeyMsg{Type: kt}
		}
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Application)
		require.True(t, ok)
	}
	return m
}

// drain runs cmd and any batch it expands to, returning the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func login(t *testing.T, m Application) Application {
	t.Helper()
	m = press(t, m, "L", "ada@example.com", "tab", "secret", "enter")
	require.True(t, m.session.Authenticated)
	return m
}

func TestBoardListsFirstPage(t *testing.T) {
	m := newTestApp(t)
	p := m.page()
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 2, p.TotalPages)
	require.Len(t, p.Items, 3)
	assert.Equal(t, v1.ID("1"), p.Items[0].Identifier())
	assert.Contains(t, m.View(), "StackIt")
}

func TestPageResetsOnSort(t *testing.T) {
	m := press(t, newTestApp(t), "right")
	require.Equal(t, 2, m.query.Page)
	require.Len(t, m.page().Items, 2)

	m = press(t, m, "s")
	assert.Equal(t, 1, m.query.Page)
	assert.Equal(t, listing.SortVotes, m.query.Sort)
	assert.Equal(t, v1.ID("5"), m.page().Items[0].Identifier())
}

func TestPageResetsOnSearch(t *testing.T) {
	m := press(t, newTestApp(t), "right")
	require.Equal(t, 2, m.query.Page)

	m = press(t, m, "/", "tail")
	assert.True(t, m.searching)
	assert.Equal(t, "tail", m.query.Search)
	assert.Equal(t, 1, m.query.Page)
	p := m.page()
	require.Len(t, p.Items, 1)
	assert.Equal(t, v1.ID("3"), p.Items[0].Identifier())

	m = press(t, m, "esc")
	assert.False(t, m.searching)
	assert.Equal(t, "", m.query.Search)
}

func TestPageResetsOnTag(t *testing.T) {
	m := press(t, newTestApp(t), "right", "1")
	assert.Equal(t, 1, m.query.Page)
	assert.Equal(t, "React", m.query.Tag)
	assert.Equal(t, 4, m.page().TotalItems)

	m = press(t, m, "1")
	assert.Equal(t, "", m.query.Tag)
}

func TestFilterPanel(t *testing.T) {
	m := press(t, newTestApp(t), "right", "f")
	require.Equal(t, overlayFilter, m.overlay)

	m = press(t, m, "down", "down", "enter")
	assert.Equal(t, listing.SortAnswers, m.query.Sort)
	assert.Equal(t, 1, m.query.Page)

	m = press(t, m, "esc")
	assert.Equal(t, overlayNone, m.overlay)
}

func TestVoteWithoutSessionOpensAuth(t *testing.T) {
	m := press(t, newTestApp(t), "+")
	assert.Equal(t, overlayAuth, m.overlay)
	assert.Empty(t, m.votes)
	assert.Equal(t, "Sign in to do that", m.status)
}

func TestLoginVoteLogout(t *testing.T) {
	m := login(t, newTestApp(t))
	assert.Equal(t, "ada", m.session.User)
	assert.Equal(t, overlayNone, m.overlay)

	m = press(t, m, "+")
	assert.Equal(t, vote.Up, m.votes.Get("1"))
	assert.Equal(t, 16, m.votes.Count("1", 15))

	m = press(t, m, "+")
	assert.Equal(t, vote.None, m.votes.Get("1"))

	m = press(t, m, "-", "O")
	assert.False(t, m.session.Authenticated)
	assert.Empty(t, m.votes)
}

func TestAuthModal(t *testing.T) {
	m := press(t, newTestApp(t), "L")
	require.Equal(t, overlayAuth, m.overlay)
	assert.Equal(t, auth.Login, m.authForm.mode)

	m = press(t, m, "not-an-email", "enter")
	assert.Equal(t, overlayAuth, m.overlay)
	assert.NotEmpty(t, m.authForm.err)
	assert.False(t, m.session.Authenticated)

	m = press(t, m, "ctrl+r")
	assert.Equal(t, auth.Register, m.authForm.mode)
	assert.Empty(t, m.authForm.err)

	m = press(t, m, "ctrl+p")
	assert.True(t, m.authForm.showSecrets)

	m = press(t, m, "grace", "tab", "grace@example.com", "tab", "pw", "tab", "nope", "enter")
	assert.Contains(t, m.authForm.err, "passwords do not match")

	m = press(t, m, "backspace", "backspace", "backspace", "backspace", "pw", "enter")
	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, "grace", m.session.User)
}

func TestAskRequiresSession(t *testing.T) {
	m := press(t, newTestApp(t), "a")
	assert.Equal(t, overlayAuth, m.overlay)
}

func TestComposeQuestion(t *testing.T) {
	m := press(t, login(t, newTestApp(t)), "a")
	require.Equal(t, overlayCompose, m.overlay)

	m = press(t, m, "ctrl+s")
	assert.Equal(t, overlayCompose, m.overlay)
	assert.Equal(t, "title is required", m.compose.err)
	assert.Equal(t, 5, m.store.Stats().Questions)

	m = press(t, m, "Why is my loop slow?", "tab", "It", " ", "crawls", "tab", "Go", "enter", "Perf", ",")
	assert.Equal(t, []string{"Go", "Perf"}, []string(m.compose.chosen))

	m = press(t, m, "backspace")
	assert.Equal(t, []string{"Go"}, []string(m.compose.chosen))

	m = press(t, m, "ctrl+s")
	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, 6, m.store.Stats().Questions)
	assert.Empty(t, m.compose.chosen)
	assert.Equal(t, "", m.compose.title.Value())

	q, err := m.store.Get("6")
	require.NoError(t, err)
	assert.Equal(t, "Why is my loop slow?", q.Title())
	assert.Equal(t, "It crawls", q.Body())
	assert.Equal(t, "ada", q.Author())
}

func TestAcceptAnswer(t *testing.T) {
	m := press(t, newTestApp(t), "enter")
	require.Equal(t, screenDetail, m.screen)
	assert.Equal(t, v1.ID("1"), m.detail.id)

	m = press(t, m, "down", "down", "c")
	assert.Equal(t, overlayAuth, m.overlay)
	as, err := m.store.Answers("1")
	require.NoError(t, err)
	assert.False(t, as[1].Accepted())

	m = press(t, m, "esc")
	m = login(t, m)
	m = press(t, m, "c")
	as, err = m.store.Answers("1")
	require.NoError(t, err)
	assert.False(t, as[0].Accepted())
	assert.True(t, as[1].Accepted())

	m = press(t, m, "esc")
	assert.Equal(t, screenBoard, m.screen)
}

func TestAnswerForm(t *testing.T) {
	m := press(t, login(t, newTestApp(t)), "enter", "w")
	require.True(t, m.detail.answering)

	m = press(t, m, "ctrl+s")
	assert.True(t, m.detail.answering)
	as, _ := m.store.Answers("1")
	assert.Len(t, as, 2)

	m = press(t, m, "Use", " ", "httpOnly", " ", "cookies", "ctrl+s")
	assert.False(t, m.detail.answering)
	as, _ = m.store.Answers("1")
	require.Len(t, as, 3)
	assert.Equal(t, "Use httpOnly cookies", as[2].Body())
	assert.Equal(t, "ada", as[2].Author())
}

func TestNotifications(t *testing.T) {
	m := press(t, newTestApp(t), "n")
	require.Equal(t, overlayNotifications, m.overlay)
	assert.Len(t, m.notifications.list.Items(), 3)
	assert.Equal(t, 2, v1.UnreadCount(m.store.Notifications()))

	m = press(t, m, "r")
	assert.Equal(t, 0, v1.UnreadCount(m.store.Notifications()))

	m = press(t, m, "esc")
	assert.Equal(t, overlayNone, m.overlay)
}

func TestThemeToggle(t *testing.T) {
	m := newTestApp(t)
	before := m.theme
	m = press(t, m, "T")
	assert.Equal(t, before.Toggle(), m.theme)
	assert.Equal(t, m.theme, m.compose.body.Theme)
}

func TestComposeDuplicateTagIsDropped(t *testing.T) {
	m := press(t, login(t, newTestApp(t)), "a", "tab", "tab", "Go", "enter", "Go", "enter")
	assert.Equal(t, []string{"Go"}, []string(m.compose.chosen))
	assert.Empty(t, m.compose.err)
}

func TestComposeCaretFollowsAfterTab(t *testing.T) {
	m := press(t, login(t, newTestApp(t)), "a", "tab", "go", "home")
	require.Equal(t, 0, m.compose.body.Caret())

	bold := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}, Alt: true}
	next, cmd := m.Update(bold)
	m = next.(Application)
	require.NotNil(t, cmd)
	assert.Equal(t, "****go", m.compose.body.Value())
	assert.Equal(t, 6, m.compose.body.Caret())

	m = press(t, m, "tab")
	require.Equal(t, fieldTags, m.compose.field)

	for _, msg := range drain(cmd) {
		next, _ = m.Update(msg)
		m = next.(Application)
	}
	assert.Equal(t, 4, m.compose.body.Caret())
}

func TestRenderPostSanitizes(t *testing.T) {
	m := newTestApp(t)
	body := "[x](javascript:alert(1))"
	assert.Contains(t, m.renderPost(body, 60), "javascript")

	m.Config.Sanitize = true
	assert.NotContains(t, m.renderPost(body, 60), "javascript")
}
