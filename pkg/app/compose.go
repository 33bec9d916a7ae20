package app

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/byxorna/stackit/pkg/compose"
	"github.com/byxorna/stackit/pkg/config"
	"github.com/byxorna/stackit/pkg/editor"
	"github.com/byxorna/stackit/pkg/text"
	"github.com/byxorna/stackit/pkg/ui"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type composeField int

const (
	fieldTitle composeField = iota
	fieldBody
	fieldTags
	composeFields
)

// composeModel is the ask form.
type composeModel struct {
	title textinput.Model
	body  editor.Model
	tags  textinput.Model

	chosen compose.TagSet
	field  composeField
	err    string
	width  int
}

func newComposeModel(cfg *config.Config) composeModel {
	title := textinput.New()
	title.Placeholder = "What's your question? Be specific."
	title.Prompt = ""
	title.CharLimit = 150

	body := editor.New()
	body.Placeholder = "Describe your problem in detail..."
	body.Sanitize = cfg.Sanitize
	body.PreviewEngine = cfg.PreviewEngine
	body.Theme = ui.ParseTheme(cfg.Theme)

	tags := textinput.New()
	tags.Placeholder = "Add up to 5 tags"
	tags.Prompt = ""
	tags.CharLimit = 35

	return composeModel{title: title, body: body, tags: tags, width: 72}
}

func (c *composeModel) setSize(width, height int) {
	w := width - 16
	if w > 96 {
		w = 96
	}
	if w < 30 {
		w = 30
	}
	c.width = w
	c.title.Width = w - 4
	c.tags.Width = w - 4
	h := height / 3
	if h < 4 {
		h = 4
	}
	c.body.SetSize(w-4, h)
}

// focus puts the cursor in the title field.
func (c *composeModel) focus() tea.Cmd {
	return c.setField(fieldTitle)
}

func (c *composeModel) setField(f composeField) tea.Cmd {
	c.field = f
	c.title.Blur()
	c.body.Blur()
	c.tags.Blur()
	switch f {
	case fieldTitle:
		return c.title.Focus()
	case fieldBody:
		c.body.Focus()
	case fieldTags:
		return c.tags.Focus()
	}
	return nil
}

func (c *composeModel) reset() {
	c.title.Reset()
	c.body.Reset()
	c.tags.Reset()
	c.chosen = nil
	c.err = ""
}

func (c composeModel) draft() compose.QuestionDraft {
	return compose.QuestionDraft{
		Title: c.title.Value(),
		Body:  c.body.Value(),
		Tags:  c.chosen,
	}
}

// update forwards msg to every field. Blurred inputs ignore keys, and the
// body always takes its caret placement even after focus has moved on.
func (c composeModel) update(msg tea.Msg) (composeModel, tea.Cmd) {
	var titleCmd, bodyCmd, tagsCmd tea.Cmd
	c.title, titleCmd = c.title.Update(msg)
	c.body, bodyCmd = c.body.Update(msg)
	c.tags, tagsCmd = c.tags.Update(msg)
	return c, tea.Batch(titleCmd, bodyCmd, tagsCmd)
}

// updateTags handles the keys that turn tag input into chips. It reports
// whether msg was consumed.
func (c *composeModel) updateTags(msg tea.KeyMsg, known []string) bool {
	switch {
	case compose.CommitsTag(msg.String()):
		tag := strings.TrimSpace(c.tags.Value())
		if tag == "" {
			return true
		}
		next, ok := c.chosen.Add(tag)
		switch {
		case ok:
			c.chosen = next
			c.tags.Reset()
			c.err = ""
		case c.chosen.Full():
			c.err = "You can add at most 5 tags"
		}
		return true
	case msg.Type == tea.KeyBackspace && c.tags.Value() == "":
		c.chosen = c.chosen.Pop()
		return true
	case msg.Type == tea.KeyCtrlT:
		if s := compose.SuggestTags(c.tags.Value(), known, c.chosen); len(s) > 0 {
			if next, ok := c.chosen.Add(s[0]); ok {
				c.chosen = next
				c.tags.Reset()
			}
		}
		return true
	}
	return false
}

func (m Application) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := &m.compose
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.submitQuestion()
		return m, nil
	case msg.Type == tea.KeyEsc && !c.body.Prompting():
		m.overlay = overlayNone
		return m, nil
	case msg.Type == tea.KeyTab && !c.body.Prompting():
		cmd := c.setField((c.field + 1) % composeFields)
		return m, cmd
	case msg.Type == tea.KeyShiftTab && !c.body.Prompting():
		cmd := c.setField((c.field + composeFields - 1) % composeFields)
		return m, cmd
	}

	if c.field == fieldTags && c.updateTags(msg, m.popularTags()) {
		return m, nil
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.update(msg)
	return m, cmd
}

func (m *Application) submitQuestion() {
	if !m.require() {
		return
	}
	c := &m.compose
	q, err := c.draft().Question("", m.author(), m.now())
	if errors.Is(err, compose.ErrIncompleteDraft) {
		c.err = strings.TrimPrefix(err.Error(), compose.ErrIncompleteDraft.Error()+": ")
		return
	} else if err != nil {
		c.err = err.Error()
		return
	}
	stored, err := m.store.AddQuestion(q)
	if err != nil {
		slog.Warn("unable to add question", "err", err)
		c.err = err.Error()
		return
	}
	slog.Info("question posted", "id", stored.Identifier(), "author", stored.Author())
	c.reset()
	m.overlay = overlayNone
	m.setQuery(m.query.WithPage(1))
	m.status = "Question posted"
}

func (m Application) composeView() string {
	c := m.compose
	label := func(f composeField, s string) string {
		if c.field == f {
			return ui.FuchsiaFg(s)
		}
		return ui.TitleStyle.Render(s)
	}

	chips := make([]string, 0, len(c.chosen))
	for _, t := range c.chosen {
		chips = append(chips, ui.ChipStyle.Render(t))
	}
	tagLine := strings.Join(chips, " ")
	if tagLine != "" {
		tagLine += " "
	}
	tagLine += c.tags.View()

	rows := []string{
		ui.HeaderStyle.Render("Ask a Question"),
		"",
		label(fieldTitle, "Title"),
		c.title.View(),
		"",
		label(fieldBody, "Body"),
		c.body.View(),
		"",
		label(fieldTags, "Tags"),
		tagLine,
	}
	if c.field == fieldTags {
		if s := compose.SuggestTags(c.tags.Value(), m.popularTags(), c.chosen); len(s) > 0 {
			if len(s) > 5 {
				s = s[:5]
			}
			rows = append(rows, ui.GrayFg("ctrl+t: ")+text.ColoredTags(s, " "))
		}
	}
	rows = append(rows, "")
	if c.err != "" {
		rows = append(rows, ui.ErrorStyle.Render(c.err))
	}
	hint := "tab next field • ctrl+s post • esc close"
	if !c.draft().Ready() {
		hint += " • needs a title, a body and a tag"
	}
	rows = append(rows, ui.GrayFg(hint))
	return ui.ModalStyle.Width(c.width).Render(strings.Join(rows, "\n"))
}
