package db

import (
	"context"
	"fmt"

	v1 "github.com/byxorna/stackit/pkg/types/v1"
)

var (
	ErrNoQuestionFound = fmt.Errorf("no question found")
	ErrNoAnswerFound   = fmt.Errorf("no answer found")
	ErrNotWatchable    = fmt.Errorf("store has no file to watch")
)

// Reader is the read side of the board. Returned records are copies; changing
// them does not change the store.
type Reader interface {
	Questions() []*v1.Question
	Get(id v1.ID) (*v1.Question, error)
	Answers(question v1.ID) ([]*v1.Answer, error)
	Notifications() []v1.Notification
	PopularTags() []string
	Stats() Stats
}

// Writer validates every record before it is stored.
type Writer interface {
	AddQuestion(q *v1.Question) (*v1.Question, error)
	AddAnswer(question v1.ID, a *v1.Answer) (*v1.Answer, error)
	AcceptAnswer(question, answer v1.ID) error
	MarkNotificationsRead()
}

// Backend is what the board UI runs against (board.Store implements this)
type Backend interface {
	Reader
	Writer

	Status() v1.SyncStatus
	StoragePath() string

	// Watch signals on the returned channel whenever the backing file
	// changes, until ctx is done. Reload then picks up the changes.
	Watch(ctx context.Context) (<-chan struct{}, error)
	Reload() error
}
