package v1

import (
	"strconv"

	"github.com/go-playground/validator"
)

// ID identifies a question, answer or notification. IDs are unique within their
// own collection; answers use a distinct prefix so they never collide with
// question IDs inside a shared vote state.
type ID string

type SyncStatus string

const (
	StatusUninitialized SyncStatus = "uninitialized"
	StatusOK            SyncStatus = "ok"
	StatusSynchronizing SyncStatus = "synchronizing"
	StatusError         SyncStatus = "error"
)

var validate = validator.New()

// NextID returns the first numeric ID (with prefix) greater than every numeric
// ID in ids. Non-numeric IDs are ignored.
func NextID(prefix string, ids []ID) ID {
	var highest int64
	for _, id := range ids {
		s := string(id)
		if len(s) < len(prefix) || s[:len(prefix)] != prefix {
			continue
		}
		n, err := strconv.ParseInt(s[len(prefix):], 10, 64)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return ID(prefix + strconv.FormatInt(highest+1, 10))
}
