package ui

import (
	"github.com/charmbracelet/lipgloss"
	te "github.com/muesli/termenv"
)

type StyleFunc func(string) string

// ColorPair is a colour for dark backgrounds and one for light ones. The
// choice is made each time a style is applied so a theme switch takes effect
// on the next render.
type ColorPair struct {
	Dark  string
	Light string
}

func NewColorPair(dark, light string) ColorPair {
	return ColorPair{Dark: dark, Light: light}
}

func (c ColorPair) Color() te.Color {
	if lipgloss.HasDarkBackground() {
		return te.ColorProfile().Color(c.Dark)
	}
	return te.ColorProfile().Color(c.Light)
}

func (c ColorPair) Adaptive() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: c.Dark, Light: c.Light}
}

var (
	Normal     = NewColorPair("#dddddd", "#1a1a1a")
	DimNormal  = NewColorPair("#777777", "#A49FA5")
	BrightGray = NewColorPair("#979797", "#847A85")
	Gray       = NewColorPair("#626262", "#909090")
	Green      = NewColorPair("#04B575", "#04B575")
	DimGreen   = NewColorPair("#0B5137", "#72D2B0")
	Fuchsia    = NewColorPair("#EE6FF8", "#EE6FF8")
	Indigo     = NewColorPair("#7571F9", "#5A56E0")
	Red        = NewColorPair("#ED567A", "#FF4672")
	Yellow     = NewColorPair("#ECFD65", "#9BA92F")
	CodeBg     = NewColorPair("#303030", "#EEEEEE")

	NormalFg     = NewFgStyle(Normal)
	DimNormalFg  = NewFgStyle(DimNormal)
	BrightGrayFg = NewFgStyle(BrightGray)
	GrayFg       = NewFgStyle(Gray)
	GreenFg      = NewFgStyle(Green)
	FuchsiaFg    = NewFgStyle(Fuchsia)
	IndigoFg     = NewFgStyle(Indigo)
	RedFg        = NewFgStyle(Red)
	YellowFg     = NewFgStyle(Yellow)

	// Layout.

	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(highlight).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(Normal.Adaptive())

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1)

	SelectedCardStyle = CardStyle.Copy().BorderForeground(highlight)

	AcceptedCardStyle = CardStyle.Copy().BorderForeground(Green.Adaptive())

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(subtle).
			Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(highlight).
			Padding(1, 2)

	ChipStyle = lipgloss.NewStyle().
			Foreground(BrightGray.Adaptive()).
			Padding(0, 1)

	ActiveChipStyle = ChipStyle.Copy().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(highlight).
			Bold(true)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(Red.Adaptive()).
			Padding(0, 1)

	SolvedStyle = lipgloss.NewStyle().Foreground(Green.Adaptive()).Bold(true)

	VoteUpStyle   = lipgloss.NewStyle().Foreground(Indigo.Adaptive()).Bold(true)
	VoteDownStyle = lipgloss.NewStyle().Foreground(Red.Adaptive()).Bold(true)

	StatusStyle = lipgloss.NewStyle().Foreground(Yellow.Adaptive())
	ErrorStyle  = lipgloss.NewStyle().Foreground(Red.Adaptive())

	Divider = lipgloss.NewStyle().
		SetString("•").
		Padding(0, 1).
		Foreground(subtle).
		String()
)

// NewStyle returns a termenv style with foreground and background options.
func NewStyle(fg, bg ColorPair, bold bool) StyleFunc {
	return func(s string) string {
		st := te.Style{}.Foreground(fg.Color()).Background(bg.Color())
		if bold {
			st = st.Bold()
		}
		return st.Styled(s)
	}
}

// NewFgStyle returns a termenv style with a foreground colour only.
func NewFgStyle(c ColorPair) StyleFunc {
	return func(s string) string {
		return te.Style{}.Foreground(c.Color()).Styled(s)
	}
}
