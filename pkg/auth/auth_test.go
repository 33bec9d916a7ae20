package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubAuth struct {
	authenticated bool
	requests      int
}

func (s *stubAuth) IsAuthenticated() bool { return s.authenticated }
func (s *stubAuth) RequestAuth()          { s.requests++ }

func TestRequire(t *testing.T) {
	a := &stubAuth{}
	assert.ErrorIs(t, Require(a), ErrAuthRequired)
	assert.Equal(t, 1, a.requests)

	a.authenticated = true
	assert.NoError(t, Require(a))
	assert.Equal(t, 1, a.requests)

	assert.ErrorIs(t, Require(nil), ErrAuthRequired)
}

func TestSession(t *testing.T) {
	var s Session
	assert.False(t, s.Authenticated)

	in := s.Login("ada")
	assert.True(t, in.Authenticated)
	assert.Equal(t, "ada", in.User)
	assert.False(t, s.Authenticated, "login returns a new session")

	assert.Equal(t, Session{}, in.Logout())
}

func TestMode(t *testing.T) {
	assert.Equal(t, Register, Login.Toggle())
	assert.Equal(t, Login, Login.Toggle().Toggle())
	assert.Equal(t, "Welcome back", Login.Title())
	assert.Equal(t, "Create your account", Register.Title())
	assert.Equal(t, "Sign In", Login.SubmitLabel())
	assert.Equal(t, "Create Account", Register.SubmitLabel())
}

func TestValidate(t *testing.T) {
	good := Credentials{Username: "ada", Email: "ada@example.com", Password: "pw", ConfirmPassword: "pw"}

	testcases := map[string]struct {
		mode  Mode
		creds Credentials
		ok    bool
	}{
		"login":                 {Login, Credentials{Email: "ada@example.com", Password: "pw"}, true},
		"login bad email":       {Login, Credentials{Email: "ada", Password: "pw"}, false},
		"login no password":     {Login, Credentials{Email: "ada@example.com"}, false},
		"login no email":        {Login, Credentials{Password: "pw"}, false},
		"register":              {Register, good, true},
		"register no username":  {Register, Credentials{Email: good.Email, Password: "pw", ConfirmPassword: "pw"}, false},
		"register mismatch":     {Register, Credentials{Username: "ada", Email: good.Email, Password: "pw", ConfirmPassword: "wp"}, false},
		"login ignores confirm": {Login, Credentials{Email: good.Email, Password: "pw", ConfirmPassword: "x"}, true},
	}
	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			err := Validate(tc.mode, tc.creds)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "ada", DisplayName(Login, Credentials{Email: "ada@example.com"}))
	assert.Equal(t, "Ada L", DisplayName(Register, Credentials{Username: " Ada L ", Email: "x@y.z"}))
}
