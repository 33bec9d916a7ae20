// Package vote tracks the signed in user's up and down votes.
package vote

import (
	"fmt"

	"github.com/byxorna/stackit/pkg/auth"
	v1 "github.com/byxorna/stackit/pkg/types/v1"
)

type Direction string

const (
	None Direction = ""
	Up   Direction = "up"
	Down Direction = "down"
)

// State maps an item to the user's vote on it. Treat it as immutable: Cast
// returns a new State and leaves the old one untouched.
type State map[v1.ID]Direction

// Cast toggles the vote on id: voting the same way twice removes the vote,
// otherwise dir replaces whatever was there. Without a session the auth
// prompt is requested and state comes back unchanged with
// auth.ErrAuthRequired.
func Cast(state State, authn auth.Authenticator, id v1.ID, dir Direction) (State, error) {
	if err := auth.Require(authn); err != nil {
		return state, err
	}
	if dir != Up && dir != Down {
		return state, fmt.Errorf("unknown vote direction %q", dir)
	}

	next := make(State, len(state)+1)
	for k, v := range state {
		next[k] = v
	}
	if state.Get(id) == dir {
		delete(next, id)
	} else {
		next[id] = dir
	}
	return next, nil
}

func (s State) Get(id v1.ID) Direction {
	return s[id]
}

// Delta is what the user's vote adds to the stored count of id.
func (s State) Delta(id v1.ID) int {
	switch s.Get(id) {
	case Up:
		return 1
	case Down:
		return -1
	default:
		return 0
	}
}

// Count applies the user's vote to a stored count.
func (s State) Count(id v1.ID, stored int) int {
	return stored + s.Delta(id)
}

// Clear drops every vote, as on logout.
func (s State) Clear() State {
	return State{}
}
