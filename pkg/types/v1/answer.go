package v1

import (
	"fmt"
	"time"

	"github.com/byxorna/stackit/pkg/text"
)

const AnswerIDPrefix = "a"

type Answer struct {
	Metadata AnswerMetadata `yaml:"metadata" validate:"required"`
	Content  string         `yaml:"content" validate:"required"`
}

type AnswerMetadata struct {
	ID                ID        `yaml:"id" validate:"required"`
	QuestionID        ID        `yaml:"question" validate:"required"`
	Author            string    `yaml:"author" validate:"required"`
	CreationTimestamp time.Time `yaml:"created,omitempty" validate:""`
	Votes             int       `yaml:"votes" validate:""`
	Accepted          bool      `yaml:"accepted,omitempty" validate:""`
	Comments          int       `yaml:"comments" validate:"min=0"`
}

func (a *Answer) Validate() error {
	err := validate.Struct(*a)
	if err != nil {
		return fmt.Errorf("answer %s: %w", a.Metadata.ID, err)
	}
	return nil
}

func (a *Answer) Identifier() ID     { return a.Metadata.ID }
func (a *Answer) Body() string       { return a.Content }
func (a *Answer) Author() string     { return a.Metadata.Author }
func (a *Answer) Created() time.Time { return a.Metadata.CreationTimestamp }
func (a *Answer) VoteCount() int     { return a.Metadata.Votes }
func (a *Answer) Accepted() bool     { return a.Metadata.Accepted }

func (a *Answer) Summary() string {
	noun := "comments"
	if a.Metadata.Comments == 1 {
		noun = "comment"
	}
	return fmt.Sprintf("%d %s %s", a.Metadata.Comments, noun, text.RelativeTime(a.Metadata.CreationTimestamp))
}
