package auth

import "errors"

var (
	ErrAuthRequired = errors.New("sign in required")
)

// Authenticator reports whether a session exists and can ask the host to
// prompt for one.
type Authenticator interface {
	IsAuthenticated() bool
	RequestAuth()
}

// Require is the gate in front of every action that needs a session (voting,
// answering, posting, accepting). Without a session it asks for one and
// returns ErrAuthRequired; the caller must then change nothing.
func Require(a Authenticator) error {
	if a != nil && a.IsAuthenticated() {
		return nil
	}
	if a != nil {
		a.RequestAuth()
	}
	return ErrAuthRequired
}

// Session is the signed in user, if any. There is no identity backend; a
// session is whatever the sign in form accepted.
type Session struct {
	User          string
	Authenticated bool
}

func (s Session) Login(user string) Session {
	return Session{User: user, Authenticated: true}
}

func (s Session) Logout() Session {
	return Session{}
}
