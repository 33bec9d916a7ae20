package markup

import (
	"regexp"
	"strings"
)

// Fragment is rendered display markup (HTML). It is trusted by whatever
// surface displays it; see Sanitize for untrusted input.
type Fragment string

func (f Fragment) String() string { return string(f) }

type rule struct {
	name    string
	pattern *regexp.Regexp
	// exactly one of replacement or expand is set
	replacement string
	expand      func(match []string) string
}

func (r rule) apply(text string) string {
	if r.expand == nil {
		return r.pattern.ReplaceAllString(text, r.replacement)
	}
	return r.pattern.ReplaceAllStringFunc(text, func(m string) string {
		return r.expand(r.pattern.FindStringSubmatch(m))
	})
}

var (
	boldRule = rule{
		name:        "bold",
		pattern:     regexp.MustCompile(`\*\*(.*?)\*\*`),
		replacement: "<strong>$1</strong>",
	}
	bulletRule = rule{
		name:        "bullet",
		pattern:     regexp.MustCompile(`(?m)^\* (.*)$`),
		replacement: "<li>$1</li>",
	}
	orderedRule = rule{
		name:        "ordered",
		pattern:     regexp.MustCompile(`(?m)^\d+\. (.*)$`),
		replacement: "<li>$1</li>",
	}
	italicRule = rule{
		name:        "italic",
		pattern:     regexp.MustCompile(`\*(.*?)\*`),
		replacement: "<em>$1</em>",
	}
	strikeRule = rule{
		name:        "strikethrough",
		pattern:     regexp.MustCompile(`~~(.*?)~~`),
		replacement: "<del>$1</del>",
	}
	fenceRule = rule{
		name:    "fence",
		pattern: regexp.MustCompile("```(\\w+)?\\n([\\s\\S]*?)```"),
		expand: func(m []string) string {
			if m[1] == "" {
				return "<pre><code>" + m[2] + "</code></pre>"
			}
			return `<pre><code class="language-` + m[1] + `">` + m[2] + "</code></pre>"
		},
	}
	codeRule = rule{
		name:        "code",
		pattern:     regexp.MustCompile("`([^`]+)`"),
		replacement: "<code>$1</code>",
	}
	imageRule = rule{
		name:        "image",
		pattern:     regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`),
		replacement: `<img src="$2" alt="$1" />`,
	}
	linkRule = rule{
		name:        "link",
		pattern:     regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`),
		replacement: `<a href="$2">$1</a>`,
	}
	newlineRule = rule{
		name:        "newline",
		pattern:     regexp.MustCompile(`\n`),
		replacement: "<br>",
	}

	// rules run top to bottom. Bold must precede italic so "**" pairs are
	// consumed first. List markers are matched after the emphasis rules, so an
	// asterisk later on a "* " line pairs with the marker. Image must precede
	// link or the "!" is left behind and the rest renders as a link.
	rules = []rule{
		boldRule,
		italicRule,
		strikeRule,
		bulletRule,
		orderedRule,
		fenceRule,
		codeRule,
		imageRule,
		linkRule,
		newlineRule,
	}
)

// Render converts markup text into a display fragment. It is a pure function
// of its input: no state is kept between calls.
func Render(text string) Fragment {
	return Fragment(applyRules(text, rules))
}

func applyRules(text string, rs []rule) string {
	out := strings.ReplaceAll(text, "\r\n", "\n")
	for _, r := range rs {
		out = r.apply(out)
	}
	return out
}
