package markup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/enescakir/emoji"
)

var (
	ErrSelectionOutOfRange = errors.New("selection out of range")
)

// Command is a toolbar action: Prefix is written before the selection and
// Suffix after it.
type Command struct {
	Name   string
	Prefix string
	Suffix string
}

var (
	Bold          = Command{Name: "bold", Prefix: "**", Suffix: "**"}
	Italic        = Command{Name: "italic", Prefix: "*", Suffix: "*"}
	Strikethrough = Command{Name: "strikethrough", Prefix: "~~", Suffix: "~~"}
	BulletList    = Command{Name: "bullet list", Prefix: "* "}
	OrderedList   = Command{Name: "numbered list", Prefix: "1. "}
	Emoji         = Command{Name: "emoji", Prefix: emoji.SmilingFaceWithSmilingEyes.String()}
	AlignLeft     = alignCommand("left")
	AlignCenter   = alignCommand("center")
	AlignRight    = alignCommand("right")

	// Toolbar lists the plain commands in toolbar order. Link and image are
	// built by LinkCommand and ImageCommand once their prompts are answered.
	Toolbar = []Command{Bold, Italic, Strikethrough, BulletList, OrderedList, Emoji, AlignLeft, AlignCenter, AlignRight}
)

func alignCommand(side string) Command {
	return Command{
		Name:   "align " + side,
		Prefix: fmt.Sprintf("\n<div style='text-align: %s'>\n", side),
		Suffix: "\n</div>\n",
	}
}

// LinkCommand builds the insertion for a link. ok is false when no
// destination was given, in which case nothing should be inserted. The
// visible text defaults to the destination.
func LinkCommand(url, text string) (cmd Command, ok bool) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Command{}, false
	}
	if strings.TrimSpace(text) == "" {
		text = url
	}
	return Command{Name: "link", Prefix: "[" + text + "](" + url + ")"}, true
}

// ImageCommand builds the insertion for an image reference. ok is false when
// no source was given. The alternate text defaults to "Image".
func ImageCommand(url, alt string) (cmd Command, ok bool) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Command{}, false
	}
	if strings.TrimSpace(alt) == "" {
		alt = "Image"
	}
	return Command{Name: "image", Prefix: "![" + alt + "](" + url + ")"}, true
}

// ApplyInsertion writes cmd around the selection [start,end) of buffer and
// returns the new buffer along with the caret position just past the inserted
// text. Offsets are UTF-16 code units. The call has no side effects; placing
// the caret in an on-screen editor is left to the host.
func ApplyInsertion(buffer string, start, end int, cmd Command) (string, int, error) {
	if start < 0 || start > end {
		return "", 0, fmt.Errorf("%w: [%d,%d)", ErrSelectionOutOfRange, start, end)
	}
	i, ok := ByteIndex(buffer, start)
	if !ok {
		return "", 0, fmt.Errorf("%w: start %d of %d", ErrSelectionOutOfRange, start, Len(buffer))
	}
	j, ok := ByteIndex(buffer, end)
	if !ok {
		return "", 0, fmt.Errorf("%w: end %d of %d", ErrSelectionOutOfRange, end, Len(buffer))
	}

	selected := buffer[i:j]
	var b strings.Builder
	b.Grow(len(buffer) + len(cmd.Prefix) + len(cmd.Suffix))
	b.WriteString(buffer[:i])
	b.WriteString(cmd.Prefix)
	b.WriteString(selected)
	b.WriteString(cmd.Suffix)
	b.WriteString(buffer[j:])

	caret := start + Len(cmd.Prefix) + Len(selected) + Len(cmd.Suffix)
	return b.String(), caret, nil
}
