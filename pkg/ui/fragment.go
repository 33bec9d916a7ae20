package ui

import (
	"io"
	"regexp"
	"strings"

	"github.com/byxorna/stackit/pkg/markup"
	"github.com/byxorna/stackit/pkg/text"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
)

var (
	bulletMarker = "• "

	alignPattern = regexp.MustCompile(`text-align:\s*(left|center|right)`)

	codeStyle = lipgloss.NewStyle().Foreground(Fuchsia.Adaptive()).Background(CodeBg.Adaptive())
	linkStyle = lipgloss.NewStyle().Foreground(Indigo.Adaptive()).Underline(true)
	urlStyle  = lipgloss.NewStyle().Foreground(Gray.Adaptive())
	imgStyle  = lipgloss.NewStyle().Foreground(Green.Adaptive())
	preStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Gray.Adaptive()).
			PaddingLeft(1)
)

// fragmentWriter walks the tags a markup.Fragment is made of and writes
// styled terminal text.
type fragmentWriter struct {
	width int

	bold, italic, strike, code, pre int
	link                            string
	linkText                        strings.Builder

	// blocks holds output being collected for an aligned div or a pre
	// block; the bottom entry is the document itself.
	blocks []*block
}

type block struct {
	tag   string
	align lipgloss.Position
	out   strings.Builder
}

// RenderFragment converts a rendered post into terminal text wrapped at
// width cells. Tags it does not know are dropped and their text is kept.
func RenderFragment(f markup.Fragment, width int) string {
	w := &fragmentWriter{width: width, blocks: []*block{{}}}
	z := html.NewTokenizer(strings.NewReader(f.String()))

	skip := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() != io.EOF {
				// unparseable remainder is shown raw
				w.text(string(z.Raw()))
			}
			break
		}
		tok := z.Token()
		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			if tok.Data == "script" || tok.Data == "style" {
				if tt == html.StartTagToken {
					skip++
				}
				continue
			}
			if skip == 0 {
				w.start(tok, tt == html.SelfClosingTagToken)
			}
		case html.EndTagToken:
			if tok.Data == "script" || tok.Data == "style" {
				if skip > 0 {
					skip--
				}
				continue
			}
			if skip == 0 {
				w.end(tok)
			}
		case html.TextToken:
			if skip == 0 {
				w.text(tok.Data)
			}
		}
	}

	for len(w.blocks) > 1 {
		w.closeBlock()
	}
	out := strings.TrimRight(w.blocks[0].out.String(), "\n")
	return text.Wrap(out, width)
}

func (w *fragmentWriter) current() *block { return w.blocks[len(w.blocks)-1] }

func (w *fragmentWriter) write(s string) { w.current().out.WriteString(s) }

func (w *fragmentWriter) start(tok html.Token, selfClosing bool) {
	switch tok.Data {
	case "strong", "b":
		w.bold++
	case "em", "i":
		w.italic++
	case "del", "s":
		w.strike++
	case "code":
		w.code++
	case "pre":
		w.pre++
		w.openBlock("pre", lipgloss.Left)
	case "a":
		w.link = attr(tok, "href")
		w.linkText.Reset()
	case "img":
		alt := attr(tok, "alt")
		if alt == "" {
			alt = "image"
		}
		w.write(imgStyle.Render("[" + alt + "]"))
		if src := attr(tok, "src"); src != "" {
			w.write(" " + urlStyle.Render("("+src+")"))
		}
	case "li":
		w.lineStart()
		w.write(bulletMarker)
	case "br":
		w.write("\n")
	case "p":
		w.lineStart()
	case "div":
		pos := lipgloss.Left
		if m := alignPattern.FindStringSubmatch(attr(tok, "style")); m != nil {
			switch m[1] {
			case "center":
				pos = lipgloss.Center
			case "right":
				pos = lipgloss.Right
			}
		}
		if !selfClosing {
			w.openBlock("div", pos)
		}
	}
}

func (w *fragmentWriter) end(tok html.Token) {
	switch tok.Data {
	case "strong", "b":
		w.bold = dec(w.bold)
	case "em", "i":
		w.italic = dec(w.italic)
	case "del", "s":
		w.strike = dec(w.strike)
	case "code":
		w.code = dec(w.code)
	case "pre":
		w.pre = dec(w.pre)
		w.closeUntil("pre")
	case "a":
		label := w.linkText.String()
		href := w.link
		w.link = ""
		if label == "" {
			label = href
		}
		w.write(linkStyle.Render(label))
		if href != "" && href != label {
			w.write(" " + urlStyle.Render("("+href+")"))
		}
	case "p":
		w.write("\n")
	case "div":
		w.closeUntil("div")
	}
}

func (w *fragmentWriter) text(s string) {
	if s == "" {
		return
	}
	if w.link != "" {
		w.linkText.WriteString(s)
		return
	}

	st := lipgloss.NewStyle()
	if w.bold > 0 {
		st = st.Bold(true)
	}
	if w.italic > 0 {
		st = st.Italic(true)
	}
	if w.strike > 0 {
		st = st.Strikethrough(true)
	}
	if w.code > 0 && w.pre == 0 {
		st = codeStyle.Copy().Inherit(st)
	}

	// style line by line so escape codes never span a line break
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if i > 0 {
			w.write("\n")
		}
		if l != "" {
			w.write(st.Render(l))
		}
	}
}

// lineStart moves to a fresh line unless already at one.
func (w *fragmentWriter) lineStart() {
	out := w.current().out.String()
	if out != "" && !strings.HasSuffix(out, "\n") {
		w.write("\n")
	}
}

func (w *fragmentWriter) openBlock(tag string, align lipgloss.Position) {
	w.lineStart()
	w.blocks = append(w.blocks, &block{tag: tag, align: align})
}

func (w *fragmentWriter) closeUntil(tag string) {
	for len(w.blocks) > 1 {
		b := w.current()
		w.closeBlock()
		if b.tag == tag {
			return
		}
	}
}

func (w *fragmentWriter) closeBlock() {
	b := w.current()
	w.blocks = w.blocks[:len(w.blocks)-1]

	content := strings.Trim(b.out.String(), "\n")
	var rendered string
	switch b.tag {
	case "pre":
		rendered = preStyle.Render(content)
	default:
		st := lipgloss.NewStyle().Align(b.align)
		if w.width > 0 {
			st = st.Width(w.width)
		}
		rendered = st.Render(content)
	}
	w.lineStart()
	w.write(rendered + "\n")
}

func attr(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func dec(n int) int {
	if n > 0 {
		return n - 1
	}
	return 0
}
