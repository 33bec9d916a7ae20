package compose

import (
	"errors"
	"fmt"
	"strings"
	"time"

	v1 "github.com/byxorna/stackit/pkg/types/v1"
)

var (
	ErrIncompleteDraft = errors.New("draft is incomplete")
)

// QuestionDraft is the ask form before submission.
type QuestionDraft struct {
	Title string
	Body  string
	Tags  TagSet
}

// Validate reports the first missing piece; a question needs a title, a body
// and at least one tag.
func (d QuestionDraft) Validate() error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return fmt.Errorf("%w: title is required", ErrIncompleteDraft)
	case strings.TrimSpace(d.Body) == "":
		return fmt.Errorf("%w: body is required", ErrIncompleteDraft)
	case len(d.Tags) == 0:
		return fmt.Errorf("%w: at least one tag is required", ErrIncompleteDraft)
	}
	return nil
}

func (d QuestionDraft) Ready() bool { return d.Validate() == nil }

// Question builds the record to store. The draft must be Ready. An empty id
// leaves numbering to the store.
func (d QuestionDraft) Question(id v1.ID, author string, now time.Time) (*v1.Question, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	q := v1.Question{
		Metadata: v1.QuestionMetadata{
			ID:                id,
			Title:             strings.TrimSpace(d.Title),
			Author:            author,
			CreationTimestamp: now,
			Tags:              append([]string(nil), d.Tags...),
		},
		Content: strings.TrimSpace(d.Body),
	}
	if id == "" {
		return &q, nil
	}
	return &q, q.Validate()
}

// AnswerDraft is the answer form under a question.
type AnswerDraft struct {
	Body string
}

func (d AnswerDraft) Validate() error {
	if strings.TrimSpace(d.Body) == "" {
		return fmt.Errorf("%w: answer is empty", ErrIncompleteDraft)
	}
	return nil
}

func (d AnswerDraft) Ready() bool { return d.Validate() == nil }

func (d AnswerDraft) Answer(id, question v1.ID, author string, now time.Time) (*v1.Answer, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	a := v1.Answer{
		Metadata: v1.AnswerMetadata{
			ID:                id,
			QuestionID:        question,
			Author:            author,
			CreationTimestamp: now,
		},
		Content: strings.TrimSpace(d.Body),
	}
	if id == "" {
		return &a, nil
	}
	return &a, a.Validate()
}
