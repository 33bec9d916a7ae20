package board

import (
	"fmt"

	"github.com/byxorna/stackit/pkg/db"
	v1 "github.com/byxorna/stackit/pkg/types/v1"
)

// Questions returns copies of every question in the order they were added.
func (x *Store) Questions() []*v1.Question {
	x.Lock()
	defer x.Unlock()
	out := make([]*v1.Question, 0, len(x.questions))
	for _, q := range x.questions {
		out = append(out, q.Clone())
	}
	return out
}

func (x *Store) Get(id v1.ID) (*v1.Question, error) {
	x.Lock()
	defer x.Unlock()
	q := x.find(id)
	if q == nil {
		return nil, fmt.Errorf("%s: %w", id, db.ErrNoQuestionFound)
	}
	return q.Clone(), nil
}

func (x *Store) find(id v1.ID) *v1.Question {
	for _, q := range x.questions {
		if q.Metadata.ID == id {
			return q
		}
	}
	return nil
}

func (x *Store) Answers(question v1.ID) ([]*v1.Answer, error) {
	x.Lock()
	defer x.Unlock()
	if x.find(question) == nil {
		return nil, fmt.Errorf("%s: %w", question, db.ErrNoQuestionFound)
	}
	out := make([]*v1.Answer, 0, len(x.answers[question]))
	for _, a := range x.answers[question] {
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

func (x *Store) Notifications() []v1.Notification {
	x.Lock()
	defer x.Unlock()
	return append([]v1.Notification(nil), x.notifications...)
}

func (x *Store) PopularTags() []string {
	x.Lock()
	defer x.Unlock()
	return append([]string(nil), x.popularTags...)
}

func (x *Store) Stats() db.Stats {
	x.Lock()
	defer x.Unlock()

	users := map[string]bool{}
	stats := db.Stats{Questions: len(x.questions)}
	for _, q := range x.questions {
		stats.Answers += q.Metadata.Answers
		users[q.Metadata.Author] = true
	}
	for _, as := range x.answers {
		for _, a := range as {
			users[a.Metadata.Author] = true
		}
	}
	stats.Users = len(users)
	return stats
}

// AddQuestion stores a copy of q. An empty ID is assigned the next free one.
func (x *Store) AddQuestion(q *v1.Question) (*v1.Question, error) {
	x.Lock()
	defer x.Unlock()

	c := q.Clone()
	if c.Metadata.ID == "" {
		ids := make([]v1.ID, 0, len(x.questions))
		for _, e := range x.questions {
			ids = append(ids, e.Metadata.ID)
		}
		c.Metadata.ID = v1.NextID("", ids)
	}
	if c.Metadata.CreationTimestamp.IsZero() {
		c.Metadata.CreationTimestamp = x.now()
	}
	if x.find(c.Metadata.ID) != nil {
		return nil, fmt.Errorf("question %s already exists", c.Metadata.ID)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	x.questions = append(x.questions, c)
	return c.Clone(), nil
}

// AddAnswer stores a copy of a under question and bumps its answer count.
func (x *Store) AddAnswer(question v1.ID, a *v1.Answer) (*v1.Answer, error) {
	x.Lock()
	defer x.Unlock()

	q := x.find(question)
	if q == nil {
		return nil, fmt.Errorf("%s: %w", question, db.ErrNoQuestionFound)
	}

	c := *a
	c.Metadata.QuestionID = question
	if c.Metadata.ID == "" {
		ids := []v1.ID{}
		for _, as := range x.answers {
			for _, e := range as {
				ids = append(ids, e.Metadata.ID)
			}
		}
		c.Metadata.ID = v1.NextID(v1.AnswerIDPrefix, ids)
	}
	if c.Metadata.CreationTimestamp.IsZero() {
		c.Metadata.CreationTimestamp = x.now()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	x.answers[question] = append(x.answers[question], &c)
	q.Metadata.Answers++
	out := c
	return &out, nil
}

// AcceptAnswer marks answer as the accepted one for question, clearing any
// previously accepted answer, and marks the question solved.
func (x *Store) AcceptAnswer(question, answer v1.ID) error {
	x.Lock()
	defer x.Unlock()

	q := x.find(question)
	if q == nil {
		return fmt.Errorf("%s: %w", question, db.ErrNoQuestionFound)
	}

	var target *v1.Answer
	for _, a := range x.answers[question] {
		if a.Metadata.ID == answer {
			target = a
		}
	}
	if target == nil {
		return fmt.Errorf("%s: %w", answer, db.ErrNoAnswerFound)
	}

	for _, a := range x.answers[question] {
		a.Metadata.Accepted = false
	}
	target.Metadata.Accepted = true
	q.Metadata.HasAcceptedAnswer = true
	return nil
}

func (x *Store) MarkNotificationsRead() {
	x.Lock()
	defer x.Unlock()
	for i := range x.notifications {
		x.notifications[i].Unread = false
	}
}
