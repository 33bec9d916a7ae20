// Package editor is the post editor: a text buffer with a selection, the
// formatting toolbar, the link and image prompts and a write/preview switch.
package editor

import (
	"sync/atomic"

	"github.com/byxorna/stackit/pkg/markup"
	"github.com/byxorna/stackit/pkg/ui"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// caretMsg places the caret after a toolbar edit. It is delivered on the
// update after the one that committed the edit, so the caret is always set
// against the buffer it was computed for. rev ties it to that buffer.
type caretMsg struct {
	id    int
	rev   int
	caret int
}

// Model is the editor component. Offsets (anchor, caret) are UTF-16 units
// into buffer; the selection runs between them in either direction.
type Model struct {
	KeyMap      KeyMap
	Placeholder string

	// rendering options for preview mode
	Sanitize      bool
	PreviewEngine string
	Theme         ui.Theme

	id      int
	buffer  string
	anchor  int
	caret   int
	rev     int
	mode    Mode
	focused bool
	width   int
	height  int

	prompt prompt
	err    error
}

func New() Model {
	return Model{
		KeyMap: DefaultKeyMap(),
		Theme:  ui.Dark,
		id:     nextID(),
		width:  60,
		height: 8,
		prompt: newPrompt(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Value() string { return m.buffer }

// SetValue replaces the buffer and puts the caret at its end.
func (m *Model) SetValue(s string) {
	m.commit(s)
	m.caret = markup.Len(s)
	m.anchor = m.caret
}

// Reset empties the editor and returns it to write mode.
func (m *Model) Reset() {
	m.SetValue("")
	m.mode = Write
	m.prompt = m.prompt.close()
	m.err = nil
}

func (m Model) Caret() int { return m.caret }

// Selection returns the selected range, start first.
func (m Model) Selection() (start, end int) {
	if m.anchor <= m.caret {
		return m.anchor, m.caret
	}
	return m.caret, m.anchor
}

// SetSelection selects [anchor,caret), clamped to the buffer.
func (m *Model) SetSelection(anchor, caret int) {
	n := markup.Len(m.buffer)
	m.anchor = clamp(anchor, 0, n)
	m.caret = clamp(caret, 0, n)
}

func (m Model) Mode() Mode { return m.mode }

func (m *Model) Focus()         { m.focused = true }
func (m *Model) Blur()          { m.focused = false }
func (m Model) Focused() bool   { return m.focused }
func (m Model) Prompting() bool { return m.prompt.active() }

// Err is the last failed edit, if any.
func (m Model) Err() error { return m.err }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.prompt.input.Width = clamp(width-20, 10, width)
}

// commit installs a new buffer. Every commit bumps the revision, which
// invalidates caret messages computed for the previous buffer.
func (m *Model) commit(s string) {
	m.buffer = s
	m.rev++
}

func (m Model) hasSelection() bool { return m.anchor != m.caret }

// replaceSelection types s over the selection.
func (m *Model) replaceSelection(s string) {
	start, end := m.Selection()
	buf, caret := splice(m.buffer, start, end, s)
	m.commit(buf)
	m.caret, m.anchor = caret, caret
}

// apply runs a toolbar command over the selection. The buffer changes now;
// the caret follows in a caretMsg. Until then the caret sits at the end of
// the buffer, where replacing the whole value leaves it.
func (m *Model) apply(cmd markup.Command) tea.Cmd {
	start, end := m.Selection()
	buf, caret, err := markup.ApplyInsertion(m.buffer, start, end, cmd)
	if err != nil {
		m.err = err
		return nil
	}
	m.err = nil
	m.commit(buf)
	m.caret = markup.Len(buf)
	m.anchor = m.caret

	msg := caretMsg{id: m.id, rev: m.rev, caret: caret}
	return func() tea.Msg { return msg }
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case caretMsg:
		if msg.id != m.id || msg.rev != m.rev {
			return m, nil
		}
		m.SetSelection(msg.caret, msg.caret)
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if m.prompt.active() {
			return m.updatePrompt(msg)
		}
		if key.Matches(msg, m.KeyMap.Preview) {
			m.mode = m.mode.Toggle()
			return m, nil
		}
		if m.mode == Preview {
			return m, nil
		}
		return m.updateWrite(msg)
	}
	return m, nil
}

func (m Model) updateWrite(msg tea.KeyMsg) (Model, tea.Cmd) {
	for _, t := range m.KeyMap.toolbar {
		if key.Matches(msg, t.binding) {
			cmd := m.apply(t.command)
			return m, cmd
		}
	}

	n := markup.Len(m.buffer)
	switch {
	case key.Matches(msg, m.KeyMap.Link):
		m.prompt = m.prompt.open(promptLink)
		return m, textinput.Blink
	case key.Matches(msg, m.KeyMap.Image):
		m.prompt = m.prompt.open(promptImage)
		return m, textinput.Blink

	case key.Matches(msg, m.KeyMap.SelectAll):
		m.anchor, m.caret = 0, n
	case key.Matches(msg, m.KeyMap.SelectLeft):
		m.caret -= markup.RuneBefore(m.buffer, m.caret)
	case key.Matches(msg, m.KeyMap.SelectRight):
		m.caret += markup.RuneAfter(m.buffer, m.caret)
	case key.Matches(msg, m.KeyMap.Left):
		start, _ := m.Selection()
		if !m.hasSelection() {
			start = m.caret - markup.RuneBefore(m.buffer, m.caret)
		}
		m.caret, m.anchor = start, start
	case key.Matches(msg, m.KeyMap.Right):
		_, end := m.Selection()
		if !m.hasSelection() {
			end = m.caret + markup.RuneAfter(m.buffer, m.caret)
		}
		m.caret, m.anchor = end, end
	case key.Matches(msg, m.KeyMap.Up):
		m.caret = verticalMove(m.buffer, m.caret, -1)
		m.anchor = m.caret
	case key.Matches(msg, m.KeyMap.Down):
		m.caret = verticalMove(m.buffer, m.caret, 1)
		m.anchor = m.caret
	case key.Matches(msg, m.KeyMap.Home):
		m.caret = lineStart(m.buffer, m.caret)
		m.anchor = m.caret
	case key.Matches(msg, m.KeyMap.End):
		m.caret = lineEnd(m.buffer, m.caret)
		m.anchor = m.caret

	case key.Matches(msg, m.KeyMap.Backspace):
		if !m.hasSelection() {
			m.anchor = m.caret - markup.RuneBefore(m.buffer, m.caret)
		}
		m.replaceSelection("")
	case key.Matches(msg, m.KeyMap.Delete):
		if !m.hasSelection() {
			m.anchor = m.caret + markup.RuneAfter(m.buffer, m.caret)
		}
		m.replaceSelection("")
	case key.Matches(msg, m.KeyMap.Newline):
		m.replaceSelection("\n")

	case msg.Type == tea.KeySpace:
		m.replaceSelection(" ")
	case msg.Type == tea.KeyTab:
		m.replaceSelection("\t")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		m.replaceSelection(string(msg.Runes))
	}
	return m, nil
}
