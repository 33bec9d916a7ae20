package editor

import (
	"fmt"
	"strings"

	"github.com/byxorna/stackit/pkg/config"
	"github.com/byxorna/stackit/pkg/markup"
	"github.com/byxorna/stackit/pkg/ui"
	"github.com/charmbracelet/lipgloss"
)

var (
	caretStyle     = lipgloss.NewStyle().Reverse(true)
	selectionStyle = lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{Light: "#C9C2F5", Dark: "#4B3D99"})
	modeStyle      = lipgloss.NewStyle().Bold(true).Underline(true)
	inactiveStyle  = lipgloss.NewStyle().Faint(true)
	placeholder    = lipgloss.NewStyle().Faint(true).Italic(true)
	toolbarHint    = "alt+ b i s u o e k m l c r"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.tabs())
	b.WriteString("  ")
	b.WriteString(inactiveStyle.Render(toolbarHint))
	b.WriteString("\n")

	if m.mode == Preview {
		b.WriteString(m.preview())
	} else {
		b.WriteString(m.writeView())
	}

	if m.prompt.active() {
		b.WriteString("\n")
		b.WriteString(ui.StatusStyle.Render(m.prompt.label()))
		b.WriteString("\n")
		b.WriteString(m.prompt.input.View())
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ui.ErrorStyle.Render(m.err.Error()))
	}
	return b.String()
}

func (m Model) tabs() string {
	write, preview := modeStyle.Render(Write.String()), inactiveStyle.Render(Preview.String())
	if m.mode == Preview {
		write, preview = inactiveStyle.Render(Write.String()), modeStyle.Render(Preview.String())
	}
	return write + " " + preview
}

// Status is the caret position line: "Ln 2, Col 5".
func (m Model) Status() string {
	line, col := position(m.buffer, m.caret)
	return fmt.Sprintf("Ln %d, Col %d", line, col)
}

func (m Model) writeView() string {
	if m.buffer == "" && !m.focused {
		return placeholder.Render(m.Placeholder)
	}

	start, end := m.Selection()
	before, _ := markup.Slice(m.buffer, 0, start)
	selected, _ := markup.Slice(m.buffer, start, end)
	after, _ := markup.Slice(m.buffer, end, markup.Len(m.buffer))

	var b strings.Builder
	b.WriteString(before)
	if m.focused && !m.hasSelection() {
		// the caret covers the next character, or a blank at a line end
		next := markup.RuneAfter(m.buffer, m.caret)
		under, _ := markup.Slice(after, 0, next)
		if under == "" || under == "\n" {
			b.WriteString(caretStyle.Render(" "))
			b.WriteString(under)
		} else {
			b.WriteString(caretStyle.Render(under))
		}
		after = after[len(under):]
	} else {
		for i, l := range strings.Split(selected, "\n") {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(selectionStyle.Render(l))
		}
	}
	b.WriteString(after)

	if m.buffer == "" && m.Placeholder != "" {
		b.WriteString(placeholder.Render(m.Placeholder))
	}
	return lipgloss.NewStyle().Width(m.width).Render(b.String()) + "\n" + inactiveStyle.Render(m.Status())
}

func (m Model) preview() string {
	if strings.TrimSpace(m.buffer) == "" {
		return placeholder.Render("Nothing to preview")
	}
	if m.PreviewEngine == config.PreviewGlamour {
		out, err := ui.RenderMarkdown(m.buffer, m.width, m.Theme)
		if err == nil {
			return out
		}
	}
	frag := markup.Render(m.buffer)
	if m.Sanitize {
		frag = markup.RenderSafe(m.buffer)
	}
	return ui.RenderFragment(frag, m.width)
}
