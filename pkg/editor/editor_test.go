package editor

import (
	"testing"

	"github.com/byxorna/stackit/pkg/markup"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func focused(value string) Model {
	m := New()
	m.Focus()
	m.SetValue(value)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func alt(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func TestTyping(t *testing.T) {
	m := focused("")
	m = press(t, m, runes("hi"), tea.KeyMsg{Type: tea.KeySpace}, runes("😊"), tea.KeyMsg{Type: tea.KeyEnter}, runes("x"))
	assert.Equal(t, "hi 😊\nx", m.Value())
	assert.Equal(t, markup.Len("hi 😊\nx"), m.Caret())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "hi ", m.Value())
	assert.Equal(t, 3, m.Caret())
}

func TestTypingReplacesSelection(t *testing.T) {
	m := focused("hello world")
	m.SetSelection(0, 5)
	m = press(t, m, runes("bye"))
	assert.Equal(t, "bye world", m.Value())
	assert.Equal(t, 3, m.Caret())
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	m := New()
	m = press(t, m, runes("x"))
	assert.Equal(t, "", m.Value())
}

func TestMovementAndSelection(t *testing.T) {
	m := focused("ab😊")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, m.Caret(), "left steps over a whole emoji")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftLeft}, tea.KeyMsg{Type: tea.KeyShiftLeft})
	start, end := m.Selection()
	assert.Equal(t, [2]int{0, 2}, [2]int{start, end})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, "😊", m.Value())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	start, end = m.Selection()
	assert.Equal(t, [2]int{0, 2}, [2]int{start, end})
}

func TestVerticalMovement(t *testing.T) {
	m := focused("abcd\nef\nghij")
	m.SetSelection(3, 3)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 7, m.Caret(), "column clamps to the shorter line")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 10, m.Caret())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 8, m.Caret())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 12, m.Caret())
	assert.Equal(t, "Ln 3, Col 5", m.Status())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, m.Caret())
}

func TestToolbarDefersCaret(t *testing.T) {
	m := focused("hello")
	m.SetSelection(0, 5)

	m, cmd := m.Update(alt('b'))
	require.NotNil(t, cmd)
	assert.Equal(t, "**hello**", m.Value(), "buffer is committed right away")

	msg := cmd()
	require.IsType(t, caretMsg{}, msg)
	assert.Equal(t, 9, msg.(caretMsg).caret)

	m, _ = m.Update(msg)
	assert.Equal(t, 9, m.Caret())
	start, end := m.Selection()
	assert.Equal(t, start, end)
}

func TestToolbarCaretInsideBuffer(t *testing.T) {
	m := focused("hello")
	m.SetSelection(0, 0)

	m, cmd := m.Update(alt('e'))
	require.NotNil(t, cmd)
	assert.Equal(t, "😊hello", m.Value())
	assert.Equal(t, 7, m.Caret(), "caret waits at the end until restored")
	m, _ = m.Update(cmd())
	assert.Equal(t, 2, m.Caret())
}

func TestStaleCaretIgnored(t *testing.T) {
	m := focused("hello")
	m.SetSelection(0, 5)

	m, cmd := m.Update(alt('i'))
	require.NotNil(t, cmd)
	stale := cmd()

	// the buffer changes again before the caret message arrives
	m = press(t, m, runes("!"))
	caret := m.Caret()
	m, _ = m.Update(stale)
	assert.Equal(t, caret, m.Caret())
	assert.Equal(t, "*hello*!", m.Value())
}

func TestCaretForOtherEditorIgnored(t *testing.T) {
	a := focused("one")
	b := focused("two")
	a.SetSelection(0, 3)

	a, cmd := a.Update(alt('b'))
	require.NotNil(t, cmd)
	b.SetSelection(1, 1)
	b, _ = b.Update(cmd())
	assert.Equal(t, 1, b.Caret())
}

func TestLinkPrompt(t *testing.T) {
	m := focused("see ")
	m = press(t, m, alt('k'))
	require.True(t, m.Prompting())

	m = press(t, m, runes("http://x"), tea.KeyMsg{Type: tea.KeyEnter}, runes("docs"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Prompting())
	assert.Equal(t, "see [docs](http://x)", m.Value())
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())
	assert.Equal(t, markup.Len("see [docs](http://x)"), m.Caret())
}

func TestImagePromptDefaultsAlt(t *testing.T) {
	m := focused("")
	m = press(t, m, alt('m'), runes("http://img"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "![Image](http://img)", m.Value())
}

func TestEmptyDestinationIsNoop(t *testing.T) {
	m := focused("keep")
	m = press(t, m, alt('k'), runes("   "))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.Prompting())
	assert.Equal(t, "keep", m.Value())
}

func TestPromptEscape(t *testing.T) {
	m := focused("keep")
	m = press(t, m, alt('m'), runes("http://x"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Prompting())
	assert.Equal(t, "keep", m.Value())
}

func TestPreviewMode(t *testing.T) {
	m := focused("**bold**")
	assert.Equal(t, Write, m.Mode())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, Preview, m.Mode())
	assert.Contains(t, m.View(), "bold")
	assert.NotContains(t, m.View(), "**bold**")

	m = press(t, m, runes("x"))
	assert.Equal(t, "**bold**", m.Value(), "preview is read only")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, Write, m.Mode())
	assert.Equal(t, Write, Preview.Toggle())
}

func TestReset(t *testing.T) {
	m := focused("text")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	m.Reset()
	assert.Equal(t, "", m.Value())
	assert.Equal(t, Write, m.Mode())
	assert.Equal(t, 0, m.Caret())
}
