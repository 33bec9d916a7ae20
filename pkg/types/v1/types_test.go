package v1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextID(t *testing.T) {
	assert.Equal(t, ID("1"), NextID("", nil))
	assert.Equal(t, ID("6"), NextID("", []ID{"1", "5", "3", "x"}))
	assert.Equal(t, ID("a3"), NextID(AnswerIDPrefix, []ID{"a1", "a2", "7"}))
}

func TestQuestionValidate(t *testing.T) {
	q := Question{
		Metadata: QuestionMetadata{ID: "1", Title: "t", Author: "ada", Tags: []string{"Go"}},
		Content:  "body",
	}
	require.NoError(t, q.Validate())

	noTags := q.Clone()
	noTags.Metadata.Tags = nil
	assert.Error(t, noTags.Validate())

	dup := q.Clone()
	dup.Metadata.Tags = []string{"Go", "Go"}
	assert.Error(t, dup.Validate())

	tooMany := q.Clone()
	tooMany.Metadata.Tags = []string{"a", "b", "c", "d", "e", "f"}
	assert.Error(t, tooMany.Validate())

	noBody := q.Clone()
	noBody.Content = ""
	assert.Error(t, noBody.Validate())
}

func TestCloneCopiesTags(t *testing.T) {
	q := &Question{Metadata: QuestionMetadata{Tags: []string{"Go"}}}
	c := q.Clone()
	c.Metadata.Tags[0] = "Rust"
	assert.Equal(t, "Go", q.SelectorTags()[0])
}

func TestAnswerValidate(t *testing.T) {
	a := Answer{Metadata: AnswerMetadata{ID: "a1", QuestionID: "1", Author: "ada"}, Content: "x"}
	require.NoError(t, a.Validate())
	a.Metadata.QuestionID = ""
	assert.Error(t, a.Validate())
}

func TestNotifications(t *testing.T) {
	ns := []Notification{
		{ID: "1", Kind: NotificationAnswer, Title: "t", Message: "m", Unread: true, CreationTimestamp: time.Now()},
		{ID: "2", Kind: NotificationVote, Title: "t", Message: "m"},
		{ID: "3", Kind: "mention", Title: "t", Message: "m", Unread: true},
	}
	assert.Equal(t, 2, UnreadCount(ns))
	assert.NoError(t, ns[0].Validate())
	assert.Error(t, ns[2].Validate())
	assert.NotEmpty(t, ns[0].Icon())
	assert.Empty(t, ns[2].Icon())
}

func TestSolvedIcon(t *testing.T) {
	q := &Question{}
	assert.Empty(t, q.Icon())
	q.Metadata.HasAcceptedAnswer = true
	assert.True(t, q.Solved())
	assert.NotEmpty(t, q.Icon())
}
