package app

import (
	"github.com/byxorna/stackit/pkg/auth"
)

// authGate answers for the current session during one action and records
// whether the action asked for a sign in.
type authGate struct {
	authenticated bool
	requested     bool
}

func (g *authGate) IsAuthenticated() bool { return g.authenticated }
func (g *authGate) RequestAuth()          { g.requested = true }

func (m *Application) gate() *authGate {
	return &authGate{authenticated: m.session.Authenticated}
}

// require lets an action that needs a session through, or opens the sign in
// modal and reports false.
func (m *Application) require() bool {
	g := m.gate()
	err := auth.Require(g)
	m.afterGate(g)
	return err == nil
}

func (m *Application) afterGate(g *authGate) {
	if g.requested {
		m.openAuth()
		m.status = "Sign in to do that"
	}
}
