package editor

import (
	"github.com/byxorna/stackit/pkg/markup"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptLink
	promptImage
)

// prompt asks for a destination and then the display text (link) or the
// alternate text (image).
type prompt struct {
	kind  promptKind
	step  int
	dest  string
	input textinput.Model
}

func newPrompt() prompt {
	in := textinput.New()
	in.CharLimit = 2048
	in.Width = 40
	return prompt{input: in}
}

func (p prompt) active() bool { return p.kind != promptNone }

func (p prompt) open(kind promptKind) prompt {
	p.kind = kind
	p.step = 0
	p.dest = ""
	p.input.Reset()
	p.input.Placeholder = "https://"
	p.input.Prompt = "URL: "
	p.input.Focus()
	return p
}

func (p prompt) close() prompt {
	p.kind = promptNone
	p.step = 0
	p.dest = ""
	p.input.Reset()
	p.input.Blur()
	return p
}

func (p prompt) label() string {
	if p.kind == promptImage {
		if p.step == 0 {
			return "Image URL"
		}
		return "Alt text (optional)"
	}
	if p.step == 0 {
		return "Link URL"
	}
	return "Link text (optional)"
}

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.prompt = m.prompt.close()
		return m, nil

	case tea.KeyEnter:
		if m.prompt.step == 0 {
			m.prompt.dest = m.prompt.input.Value()
			if _, ok := markup.LinkCommand(m.prompt.dest, ""); !ok {
				// no destination, nothing to insert
				m.prompt = m.prompt.close()
				return m, nil
			}
			m.prompt.step = 1
			m.prompt.input.Reset()
			m.prompt.input.Placeholder = ""
			m.prompt.input.Prompt = "Text: "
			return m, nil
		}

		var (
			insert markup.Command
			ok     bool
		)
		switch m.prompt.kind {
		case promptLink:
			insert, ok = markup.LinkCommand(m.prompt.dest, m.prompt.input.Value())
		case promptImage:
			insert, ok = markup.ImageCommand(m.prompt.dest, m.prompt.input.Value())
		}
		m.prompt = m.prompt.close()
		if !ok {
			return m, nil
		}
		caret := m.apply(insert)
		return m, caret
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}
