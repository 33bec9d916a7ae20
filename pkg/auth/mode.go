package auth

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

type Mode int

const (
	Login Mode = iota
	Register
)

func (m Mode) Toggle() Mode {
	if m == Login {
		return Register
	}
	return Login
}

func (m Mode) Title() string {
	if m == Register {
		return "Create your account"
	}
	return "Welcome back"
}

func (m Mode) SubmitLabel() string {
	if m == Register {
		return "Create Account"
	}
	return "Sign In"
}

// SwitchPrompt is the hint offered for flipping to the other mode.
func (m Mode) SwitchPrompt() string {
	if m == Register {
		return "Already have an account? Sign in"
	}
	return "Don't have an account? Sign up"
}

func (m Mode) String() string {
	if m == Register {
		return "register"
	}
	return "login"
}

// Credentials is the content of the sign in / sign up form.
type Credentials struct {
	Username        string
	Email           string `validate:"required,email"`
	Password        string `validate:"required"`
	ConfirmPassword string
}

var (
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")

	validate = validator.New()
)

// Validate checks creds for mode. Login needs an email and a password;
// registering also needs a username and a matching confirmation.
func Validate(mode Mode, creds Credentials) error {
	creds.Username = strings.TrimSpace(creds.Username)
	creds.Email = strings.TrimSpace(creds.Email)

	if err := validate.Struct(creds); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return fmt.Errorf("%w: %s is %s", ErrInvalidCredentials, strings.ToLower(verrs[0].Field()), describe(verrs[0].Tag()))
		}
		return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	if mode != Register {
		return nil
	}
	if creds.Username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidCredentials)
	}
	if creds.Password != creds.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrInvalidCredentials)
	}
	return nil
}

// DisplayName picks the name a new session is shown under.
func DisplayName(mode Mode, creds Credentials) string {
	if mode == Register && strings.TrimSpace(creds.Username) != "" {
		return strings.TrimSpace(creds.Username)
	}
	local, _, _ := strings.Cut(strings.TrimSpace(creds.Email), "@")
	return local
}

func describe(tag string) string {
	switch tag {
	case "required":
		return "required"
	case "email":
		return "not a valid email address"
	default:
		return "invalid"
	}
}
