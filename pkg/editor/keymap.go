package editor

import (
	"github.com/byxorna/stackit/pkg/markup"
	"github.com/charmbracelet/bubbles/key"
)

type toolbarKey struct {
	binding key.Binding
	command markup.Command
}

// KeyMap holds the editor bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	SelectLeft  key.Binding
	SelectRight key.Binding
	Home        key.Binding
	End         key.Binding
	SelectAll   key.Binding
	Backspace   key.Binding
	Delete      key.Binding
	Newline     key.Binding

	Link    key.Binding
	Image   key.Binding
	Preview key.Binding

	toolbar []toolbarKey
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.toolbar[0].binding, k.toolbar[1].binding, k.Link, k.Preview}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	format := []key.Binding{}
	for _, t := range k.toolbar {
		format = append(format, t.binding)
	}
	return [][]key.Binding{
		format,
		{k.Link, k.Image, k.Preview},
		{k.SelectLeft, k.SelectRight, k.SelectAll, k.Home, k.End},
	}
}

func tool(keys, help string, cmd markup.Command) toolbarKey {
	return toolbarKey{
		binding: key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, help)),
		command: cmd,
	}
}

// DefaultKeyMap returns a default set of keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:        key.NewBinding(key.WithKeys("left")),
		Right:       key.NewBinding(key.WithKeys("right")),
		Up:          key.NewBinding(key.WithKeys("up")),
		Down:        key.NewBinding(key.WithKeys("down")),
		SelectLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		SelectRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		Home:        key.NewBinding(key.WithKeys("home", "ctrl+home"), key.WithHelp("home", "line start")),
		End:         key.NewBinding(key.WithKeys("end", "ctrl+end"), key.WithHelp("end", "line end")),
		SelectAll:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Backspace:   key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Delete:      key.NewBinding(key.WithKeys("delete", "ctrl+d")),
		Newline:     key.NewBinding(key.WithKeys("enter")),

		Link:    key.NewBinding(key.WithKeys("alt+k"), key.WithHelp("alt+k", "link")),
		Image:   key.NewBinding(key.WithKeys("alt+m"), key.WithHelp("alt+m", "image")),
		Preview: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "write/preview")),

		toolbar: []toolbarKey{
			tool("alt+b", "bold", markup.Bold),
			tool("alt+i", "italic", markup.Italic),
			tool("alt+s", "strike", markup.Strikethrough),
			tool("alt+u", "bullets", markup.BulletList),
			tool("alt+o", "numbered", markup.OrderedList),
			tool("alt+e", "emoji", markup.Emoji),
			tool("alt+l", "align left", markup.AlignLeft),
			tool("alt+c", "center", markup.AlignCenter),
			tool("alt+r", "align right", markup.AlignRight),
		},
	}
}
