package text

import (
	"hash/fnv"
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/enescakir/emoji"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	Ellipsis = "…"
)

var (
	EmojiSolved       = emoji.CheckMarkButton.String()
	EmojiAnswers      = emoji.SpeechBalloon.String()
	EmojiBell         = emoji.Bell.String()
	EmojiQuestionmark = emoji.QuestionMark.String()
	EmojiUpvote       = emoji.UpwardsButton.String()
	EmojiDownvote     = emoji.DownwardsButton.String()
)

var (
	tagColorHashSalt uint32 = 6969420
	// NOTE: changing these dimensions uncovers some awkward indexing issues in the color
	// selection algo for tags. avoid if you can help it
	tagColors = colorGrid(4, 4)
)

// Return the time in a human-readable format relative to the current time.
func RelativeTime(then time.Time) string {
	return RelativeTimeFrom(then, time.Now())
}

// RelativeTimeFrom is RelativeTime against an explicit clock.
func RelativeTimeFrom(then, now time.Time) string {
	ago := now.Sub(then)
	if ago < time.Minute {
		return "just now"
	} else if ago < humanize.Week {
		return humanize.CustomRelTime(then, now, "ago", "from now", magnitudes)
	}
	return then.Format("02 Jan 2006 15:04 MST")
}

// Magnitudes for relative time.
var magnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "now", DivBy: time.Second},
	{D: 2 * time.Second, Format: "1 second %s", DivBy: 1},
	{D: time.Minute, Format: "%d seconds %s", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: 1},
	{D: time.Hour, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: 1},
	{D: humanize.Day, Format: "%d hours %s", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 day %s", DivBy: 1},
	{D: humanize.Week, Format: "%d days %s", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "1 week %s", DivBy: 1},
	{D: humanize.Month, Format: "%d weeks %s", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "1 month %s", DivBy: 1},
	{D: humanize.Year, Format: "%d months %s", DivBy: humanize.Month},
	{D: 18 * humanize.Month, Format: "1 year %s", DivBy: 1},
	{D: 2 * humanize.Year, Format: "2 years %s", DivBy: 1},
	{D: humanize.LongTime, Format: "%d years %s", DivBy: humanize.Year},
	{D: math.MaxInt64, Format: "a long while %s", DivBy: 1},
}

// TagColor picks a stable colour for a tag from the tag colour grid.
func TagColor(tag string) string {
	colorRangeX := len(tagColors)
	colorRangeY := len(tagColors[0])

	hasher := fnv.New32a()
	hasher.Write([]byte(tag))
	hash := hasher.Sum32() + tagColorHashSalt
	n := colorRangeX * colorRangeY
	idx := hash % uint32(n)
	x := int(idx) / colorRangeX
	y := int(idx) - (x * colorRangeY)
	return tagColors[x][y]
}

// ColoredTags renders tags in the order given; tag order is meaningful
// (insertion order) so it is never re-sorted here.
func ColoredTags(tags []string, joiner string) string {
	colorizedTags := make([]string, 0, len(tags))
	for _, t := range tags {
		colorizedTags = append(colorizedTags,
			lipgloss.NewStyle().Foreground(lipgloss.Color(TagColor(t))).Render(t))
	}
	return strings.Join(colorizedTags, joiner)
}

// Initial is the avatar fallback: the upper-cased first letter of a name.
func Initial(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

// Count formats large numbers the way the stats panel shows them: 1,234
func Count(n int) string {
	return humanize.Comma(int64(n))
}

func colorGrid(xSteps, ySteps int) [][]string {
	x0y0, _ := colorful.Hex("#F25D94")
	x1y0, _ := colorful.Hex("#EDFF82")
	x0y1, _ := colorful.Hex("#643AFF")
	x1y1, _ := colorful.Hex("#14F9D5")

	x0 := make([]colorful.Color, ySteps)
	for i := range x0 {
		x0[i] = x0y0.BlendLuv(x0y1, float64(i)/float64(ySteps))
	}

	x1 := make([]colorful.Color, ySteps)
	for i := range x1 {
		x1[i] = x1y0.BlendLuv(x1y1, float64(i)/float64(ySteps))
	}

	grid := make([][]string, ySteps)
	for x := 0; x < ySteps; x++ {
		y0 := x0[x]
		grid[x] = make([]string, xSteps)
		for y := 0; y < xSteps; y++ {
			grid[x][y] = y0.BlendLuv(x1[x], float64(y)/float64(xSteps)).Hex()
		}
	}

	return grid
}
