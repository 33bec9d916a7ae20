package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/enescakir/emoji"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

func ParseTheme(s string) Theme {
	if Theme(s) == Light {
		return Light
	}
	return Dark
}

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Apply makes every adaptive colour resolve for t.
func (t Theme) Apply() {
	lipgloss.SetHasDarkBackground(t == Dark)
}

func (t Theme) Icon() string {
	if t == Dark {
		return emoji.CrescentMoon.String()
	}
	return emoji.Sun.String()
}

// GlamourStyle names the glamour standard style for t.
func (t Theme) GlamourStyle() string {
	if t == Light {
		return "light"
	}
	return "dark"
}
