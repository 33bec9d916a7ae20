package v1

import (
	"fmt"
	"time"

	"github.com/byxorna/stackit/pkg/text"
	"github.com/enescakir/emoji"
)

// Question is a listable record on the board. The listing pipeline only ever
// reads questions; mutations go through the board store.
type Question struct {
	Metadata QuestionMetadata `yaml:"metadata" validate:"required"`
	Content  string           `yaml:"content" validate:"required"`
}

type QuestionMetadata struct {
	ID                ID        `yaml:"id" validate:"required"`
	Title             string    `yaml:"title" validate:"required"`
	Author            string    `yaml:"author" validate:"required"`
	CreationTimestamp time.Time `yaml:"created,omitempty" validate:""`
	Tags              []string  `yaml:"tags,flow" validate:"required,min=1,max=5,unique,dive,required"`
	Votes             int       `yaml:"votes" validate:""`
	Answers           int       `yaml:"answers" validate:"min=0"`
	HasAcceptedAnswer bool      `yaml:"accepted,omitempty" validate:""`
}

func (q *Question) Validate() error {
	err := validate.Struct(*q)
	if err != nil {
		return fmt.Errorf("question %s: %w", q.Metadata.ID, err)
	}
	return nil
}

func (q *Question) Identifier() ID         { return q.Metadata.ID }
func (q *Question) Title() string          { return q.Metadata.Title }
func (q *Question) Body() string           { return q.Content }
func (q *Question) Author() string         { return q.Metadata.Author }
func (q *Question) SelectorTags() []string { return q.Metadata.Tags }
func (q *Question) Created() time.Time     { return q.Metadata.CreationTimestamp }
func (q *Question) VoteCount() int         { return q.Metadata.Votes }
func (q *Question) AnswerCount() int       { return q.Metadata.Answers }
func (q *Question) Solved() bool           { return q.Metadata.HasAcceptedAnswer }

// Summary is the footer line of a question card: "3 answers 2 hours ago"
func (q *Question) Summary() string {
	noun := "answers"
	if q.Metadata.Answers == 1 {
		noun = "answer"
	}
	return fmt.Sprintf("%d %s %s", q.Metadata.Answers, noun, text.RelativeTime(q.Metadata.CreationTimestamp))
}

func (q *Question) Icon() string {
	if q.Solved() {
		return emoji.CheckMarkButton.String()
	}
	return ""
}

// Clone returns a deep copy so callers can derive a modified question without
// touching the original.
func (q *Question) Clone() *Question {
	c := *q
	c.Metadata.Tags = append([]string(nil), q.Metadata.Tags...)
	return &c
}
