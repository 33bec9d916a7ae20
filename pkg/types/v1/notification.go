package v1

import (
	"fmt"
	"time"

	"github.com/byxorna/stackit/pkg/text"
	"github.com/enescakir/emoji"
)

type NotificationKind string

const (
	NotificationAnswer NotificationKind = "answer"
	NotificationVote   NotificationKind = "vote"
	NotificationFollow NotificationKind = "follow"
)

type Notification struct {
	ID                ID               `yaml:"id" validate:"required"`
	Kind              NotificationKind `yaml:"kind" validate:"required,oneof=answer vote follow"`
	Title             string           `yaml:"title" validate:"required"`
	Message           string           `yaml:"message" validate:"required"`
	User              string           `yaml:"user,omitempty" validate:""`
	CreationTimestamp time.Time        `yaml:"created,omitempty" validate:""`
	Unread            bool             `yaml:"unread" validate:""`
}

func (n *Notification) Validate() error {
	err := validate.Struct(*n)
	if err != nil {
		return fmt.Errorf("notification %s: %w", n.ID, err)
	}
	return nil
}

func (n *Notification) Icon() string {
	switch n.Kind {
	case NotificationAnswer:
		return emoji.SpeechBalloon.String()
	case NotificationVote:
		return emoji.RedHeart.String()
	case NotificationFollow:
		return emoji.BustInSilhouette.String()
	}
	return ""
}

func (n *Notification) Age() string {
	return text.RelativeTime(n.CreationTimestamp)
}

// UnreadCount reports how many notifications have not been read yet.
func UnreadCount(ns []Notification) int {
	count := 0
	for _, n := range ns {
		if n.Unread {
			count++
		}
	}
	return count
}
