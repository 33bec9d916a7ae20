package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/byxorna/stackit/pkg/compose"
	"github.com/byxorna/stackit/pkg/config"
	"github.com/byxorna/stackit/pkg/editor"
	"github.com/byxorna/stackit/pkg/markup"
	"github.com/byxorna/stackit/pkg/text"
	v1 "github.com/byxorna/stackit/pkg/types/v1"
	"github.com/byxorna/stackit/pkg/ui"
	"github.com/byxorna/stackit/pkg/vote"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// detailModel is the question screen. cursor 0 is the question itself,
// 1..n are its answers.
type detailModel struct {
	id        v1.ID
	cursor    int
	answering bool
	editor    editor.Model
	viewport  viewport.Model
	width     int
}

func newDetailModel(cfg *config.Config) detailModel {
	ed := editor.New()
	ed.Placeholder = "Write your answer here..."
	ed.Sanitize = cfg.Sanitize
	ed.PreviewEngine = cfg.PreviewEngine
	ed.Theme = ui.ParseTheme(cfg.Theme)
	return detailModel{
		editor:   ed,
		viewport: viewport.New(80, 20),
		width:    80,
	}
}

func (d *detailModel) setSize(width, height int) {
	d.width = width - 4
	if height < 5 {
		height = 5
	}
	d.viewport.Width = width
	d.viewport.Height = height
	d.editor.SetSize(d.width-4, 8)
}

func (m *Application) openDetail(id v1.ID) {
	m.screen = screenDetail
	m.detail.id = id
	m.detail.cursor = 0
	m.detail.answering = false
	m.detail.editor.Reset()
	m.detail.editor.Blur()
	m.detail.viewport.GotoTop()
	m.refreshDetail()
}

func (m Application) answers() []*v1.Answer {
	as, err := m.store.Answers(m.detail.id)
	if err != nil {
		return nil
	}
	return as
}

func (m Application) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.detail

	if d.answering {
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.submitAnswer()
			m.refreshDetail()
			return m, nil
		case key.Matches(msg, m.keys.Back) && !d.editor.Prompting():
			d.answering = false
			d.editor.Blur()
			m.refreshDetail()
			return m, nil
		}
		var cmd tea.Cmd
		d.editor, cmd = d.editor.Update(msg)
		m.refreshDetail()
		return m, cmd
	}

	if next, cmd, ok := m.updateGlobal(msg); ok {
		return next, cmd
	}

	answers := m.answers()
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenBoard
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if d.cursor > 0 {
			d.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if d.cursor < len(answers) {
			d.cursor++
		}
	case key.Matches(msg, m.keys.Left):
		d.viewport.HalfViewUp()
	case key.Matches(msg, m.keys.Right):
		d.viewport.HalfViewDown()
	case key.Matches(msg, m.keys.VoteUp):
		m.castVote(m.detailTarget(answers), vote.Up)
	case key.Matches(msg, m.keys.VoteDown):
		m.castVote(m.detailTarget(answers), vote.Down)
	case key.Matches(msg, m.keys.Accept):
		if d.cursor > 0 && m.require() {
			aid := answers[d.cursor-1].Identifier()
			if err := m.store.AcceptAnswer(d.id, aid); err != nil {
				slog.Warn("unable to accept answer", "question", d.id, "answer", aid, "err", err)
				m.status = err.Error()
			} else {
				m.status = "Answer accepted"
			}
		}
	case key.Matches(msg, m.keys.Answer):
		if m.require() {
			d.answering = true
			d.editor.Focus()
		}
	}
	m.refreshDetail()
	return m, nil
}

// detailTarget is the id the detail cursor points at.
func (m Application) detailTarget(answers []*v1.Answer) v1.ID {
	if m.detail.cursor > 0 && m.detail.cursor <= len(answers) {
		return answers[m.detail.cursor-1].Identifier()
	}
	return m.detail.id
}

func (m *Application) submitAnswer() {
	if !m.require() {
		return
	}
	draft := compose.AnswerDraft{Body: m.detail.editor.Value()}
	a, err := draft.Answer("", m.detail.id, m.author(), m.now())
	if errors.Is(err, compose.ErrIncompleteDraft) {
		m.status = "Write something before submitting"
		return
	} else if err != nil {
		m.status = err.Error()
		return
	}
	if _, err := m.store.AddAnswer(m.detail.id, a); err != nil {
		slog.Warn("unable to add answer", "question", m.detail.id, "err", err)
		m.status = err.Error()
		return
	}
	slog.Info("answer posted", "question", m.detail.id, "author", a.Author())
	m.detail.editor.Reset()
	m.detail.answering = false
	m.detail.editor.Blur()
	m.status = "Answer posted"
}

// renderPost turns post markup into terminal text the configured way.
func (m Application) renderPost(body string, width int) string {
	if m.Config.PreviewEngine == config.PreviewGlamour {
		if out, err := ui.RenderMarkdown(body, width, m.theme); err == nil {
			return strings.TrimSpace(out)
		}
	}
	frag := markup.Render(body)
	if m.Config.Sanitize {
		frag = markup.RenderSafe(body)
	}
	return ui.RenderFragment(frag, width)
}

// refreshDetail re-renders the question screen into its viewport.
func (m *Application) refreshDetail() {
	if m.screen != screenDetail {
		return
	}
	m.detail.viewport.SetContent(m.detailContent())
}

func (m Application) detailContent() string {
	d := m.detail
	q, err := m.store.Get(d.id)
	if err != nil {
		return ui.ErrorStyle.Render(err.Error())
	}
	answers := m.answers()
	width := d.width - 8
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	b.WriteString(ui.GrayFg("Questions › ") + text.TruncateWithTail(q.Title(), 40, text.Ellipsis) + "\n\n")

	head := ui.TitleStyle.Render(q.Title())
	if q.Solved() {
		head += " " + ui.SolvedStyle.Render(q.Icon()+" Solved")
	}
	post := strings.Join([]string{
		head,
		ui.GrayFg(fmt.Sprintf("asked by %s %s", q.Author(), text.RelativeTimeFrom(q.Created(), m.now()))),
		"",
		m.renderPost(q.Body(), width),
		"",
		text.ColoredTags(q.SelectorTags(), ui.Divider),
	}, "\n")
	b.WriteString(m.post(q.Identifier(), q.VoteCount(), post, d.cursor == 0, false))
	b.WriteString("\n\n")

	noun := "Answers"
	if len(answers) == 1 {
		noun = "Answer"
	}
	b.WriteString(ui.TitleStyle.Render(fmt.Sprintf("%d %s", len(answers), noun)) + "\n")
	for i, a := range answers {
		meta := ui.GrayFg(fmt.Sprintf("%s %s  %s", ui.IndigoFg(text.Initial(a.Author())), a.Author(), a.Summary()))
		body := m.renderPost(a.Body(), width)
		if a.Accepted() {
			body = ui.SolvedStyle.Render(text.EmojiSolved+" Accepted Answer") + "\n" + body
		}
		b.WriteString(m.post(a.Identifier(), a.VoteCount(), body+"\n\n"+meta, d.cursor == i+1, a.Accepted()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if d.answering {
		b.WriteString(ui.TitleStyle.Render("Your Answer") + "\n")
		b.WriteString(d.editor.View())
		b.WriteString("\n" + ui.GrayFg("ctrl+s submit • esc cancel"))
		if !(compose.AnswerDraft{Body: d.editor.Value()}).Ready() {
			b.WriteString(ui.GrayFg(" • answer is empty"))
		}
	} else {
		b.WriteString(ui.GrayFg("press w to write an answer"))
	}
	return b.String()
}

func (m Application) post(id v1.ID, stored int, content string, selected, accepted bool) string {
	up, down := ui.GrayFg("▲"), ui.GrayFg("▼")
	switch m.votes.Get(id) {
	case vote.Up:
		up = ui.VoteUpStyle.Render("▲")
	case vote.Down:
		down = ui.VoteDownStyle.Render("▼")
	}
	votes := lipgloss.JoinVertical(lipgloss.Center, up, fmt.Sprintf("%d", m.votes.Count(id, stored)), down)

	style := ui.CardStyle
	switch {
	case selected:
		style = ui.SelectedCardStyle
	case accepted:
		style = ui.AcceptedCardStyle
	}
	return style.Width(m.detail.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, votes, "  ", content))
}

func (m Application) detailView() string {
	return m.detail.viewport.View()
}
