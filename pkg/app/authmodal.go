package app

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/byxorna/stackit/pkg/auth"
	"github.com/byxorna/stackit/pkg/ui"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	inputUsername = iota
	inputEmail
	inputPassword
	inputConfirm
)

// authModel is the sign in / sign up form.
type authModel struct {
	mode        auth.Mode
	inputs      []textinput.Model
	focused     int
	showSecrets bool
	err         string
}

func newAuthModel() authModel {
	a := authModel{inputs: make([]textinput.Model, 4)}
	for i := range a.inputs {
		t := textinput.New()
		t.Prompt = ""
		t.CharLimit = 64
		t.Width = 36
		switch i {
		case inputUsername:
			t.Placeholder = "johndoe"
		case inputEmail:
			t.Placeholder = "you@example.com"
		case inputPassword, inputConfirm:
			t.Placeholder = "••••••••"
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
		}
		a.inputs[i] = t
	}
	return a
}

// visible lists the inputs the current mode shows, in tab order.
func (a authModel) visible() []int {
	if a.mode == auth.Register {
		return []int{inputUsername, inputEmail, inputPassword, inputConfirm}
	}
	return []int{inputEmail, inputPassword}
}

// open clears the form and shows it in mode.
func (a authModel) open(mode auth.Mode) authModel {
	a.mode = mode
	a.err = ""
	for i := range a.inputs {
		a.inputs[i].Reset()
	}
	a.focus(a.visible()[0])
	return a
}

func (a *authModel) focus(i int) tea.Cmd {
	a.focused = i
	var cmd tea.Cmd
	for n := range a.inputs {
		if n == i {
			cmd = a.inputs[n].Focus()
		} else {
			a.inputs[n].Blur()
		}
	}
	return cmd
}

func (a *authModel) move(delta int) tea.Cmd {
	v := a.visible()
	at := 0
	for n, i := range v {
		if i == a.focused {
			at = n
		}
	}
	return a.focus(v[(at+delta+len(v))%len(v)])
}

func (a authModel) credentials() auth.Credentials {
	return auth.Credentials{
		Username:        a.inputs[inputUsername].Value(),
		Email:           a.inputs[inputEmail].Value(),
		Password:        a.inputs[inputPassword].Value(),
		ConfirmPassword: a.inputs[inputConfirm].Value(),
	}
}

// update forwards msg to the focused input.
func (a authModel) update(msg tea.Msg) (authModel, tea.Cmd) {
	var cmd tea.Cmd
	a.inputs[a.focused], cmd = a.inputs[a.focused].Update(msg)
	return a, cmd
}

func (m Application) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := &m.authForm
	switch msg.Type {
	case tea.KeyEsc:
		m.overlay = overlayNone
		return m, nil
	case tea.KeyCtrlR:
		m.authForm = a.open(a.mode.Toggle())
		return m, textinput.Blink
	case tea.KeyCtrlP:
		a.showSecrets = !a.showSecrets
		mode := textinput.EchoPassword
		if a.showSecrets {
			mode = textinput.EchoNormal
		}
		a.inputs[inputPassword].EchoMode = mode
		a.inputs[inputConfirm].EchoMode = mode
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		cmd := a.move(1)
		return m, cmd
	case tea.KeyShiftTab, tea.KeyUp:
		cmd := a.move(-1)
		return m, cmd
	case tea.KeyEnter:
		creds := a.credentials()
		if err := auth.Validate(a.mode, creds); err != nil {
			a.err = strings.TrimPrefix(err.Error(), auth.ErrInvalidCredentials.Error()+": ")
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				slog.Warn("unable to validate credentials", "err", err)
			}
			return m, nil
		}
		user := auth.DisplayName(a.mode, creds)
		m.session = m.session.Login(user)
		m.overlay = overlayNone
		m.status = "Signed in as " + user
		slog.Info("signed in", "user", user, "mode", a.mode)
		m.refreshDetail()
		return m, nil
	}

	var cmd tea.Cmd
	m.authForm, cmd = m.authForm.update(msg)
	return m, cmd
}

func (m Application) authView() string {
	a := m.authForm
	labels := map[int]string{
		inputUsername: "Username",
		inputEmail:    "Email",
		inputPassword: "Password",
		inputConfirm:  "Confirm Password",
	}

	rows := []string{ui.HeaderStyle.Render(a.mode.Title()), ""}
	for _, i := range a.visible() {
		label := ui.TitleStyle.Render(labels[i])
		if i == a.focused {
			label = ui.FuchsiaFg(labels[i])
		}
		rows = append(rows, label, a.inputs[i].View(), "")
	}
	if a.err != "" {
		rows = append(rows, ui.ErrorStyle.Render(a.err), "")
	}
	secrets := "show password"
	if a.showSecrets {
		secrets = "hide password"
	}
	rows = append(rows,
		ui.GrayFg("enter "+strings.ToLower(a.mode.SubmitLabel())+" • ctrl+p "+secrets+" • esc close"),
		ui.GrayFg("ctrl+r "+a.mode.SwitchPrompt()),
	)
	return ui.ModalStyle.Width(44).Render(strings.Join(rows, "\n"))
}
