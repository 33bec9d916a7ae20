package compose

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagSetAdd(t *testing.T) {
	var s TagSet
	var ok bool

	s, ok = s.Add(" Go ")
	assert.True(t, ok)
	s, ok = s.Add("Go")
	assert.False(t, ok, "duplicate")
	s, ok = s.Add("   ")
	assert.False(t, ok, "empty")
	s, ok = s.Add("go")
	assert.True(t, ok, "duplicates are case sensitive")

	for _, tag := range []string{"a", "b", "c"} {
		s, ok = s.Add(tag)
		require.True(t, ok)
	}
	assert.True(t, s.Full())

	s, ok = s.Add("overflow")
	assert.False(t, ok)
	assert.Equal(t, TagSet{"Go", "go", "a", "b", "c"}, s)
}

func TestTagSetAddDoesNotAlias(t *testing.T) {
	base := make(TagSet, 1, 4)
	base[0] = "x"
	a, _ := base.Add("a")
	b, _ := base.Add("b")
	assert.Equal(t, TagSet{"x", "a"}, a)
	assert.Equal(t, TagSet{"x", "b"}, b)
}

func TestTagSetRemoveAndPop(t *testing.T) {
	s := TagSet{"a", "b", "c"}
	assert.Equal(t, TagSet{"a", "c"}, s.Remove("b"))
	assert.Equal(t, TagSet{"a", "b"}, s.Pop())
	assert.Equal(t, TagSet{"a", "b", "c"}, s)
	assert.Empty(t, TagSet{}.Pop())
}

func TestCommitsTag(t *testing.T) {
	assert.True(t, CommitsTag("enter"))
	assert.True(t, CommitsTag(","))
	assert.False(t, CommitsTag("a"))
	assert.False(t, CommitsTag(" "))
}

func TestSuggestTags(t *testing.T) {
	known := []string{"React", "TypeScript", "JavaScript", "CSS", "Réseau"}

	assert.Equal(t, []string{"React"}, SuggestTags("rea", known, nil)[:1])
	assert.NotContains(t, SuggestTags("script", known, TagSet{"TypeScript"}), "TypeScript")
	assert.Contains(t, SuggestTags("script", known, nil), "JavaScript")
	assert.Contains(t, SuggestTags("reseau", known, nil), "Réseau")
	assert.Empty(t, SuggestTags("  ", known, nil))
}

func TestQuestionDraft(t *testing.T) {
	testcases := map[string]QuestionDraft{
		"no title": {Title: "  ", Body: "b", Tags: TagSet{"go"}},
		"no body":  {Title: "t", Body: "\n\t", Tags: TagSet{"go"}},
		"no tags":  {Title: "t", Body: "b"},
	}
	for name, d := range testcases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, d.Validate(), ErrIncompleteDraft)
			assert.False(t, d.Ready())
			q, err := d.Question("1", "ada", time.Now())
			assert.Nil(t, q)
			assert.ErrorIs(t, err, ErrIncompleteDraft)
		})
	}
}

func TestQuestionDraftBuildsQuestion(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	d := QuestionDraft{Title: " How? ", Body: " **why** ", Tags: TagSet{"go", "tui"}}
	require.True(t, d.Ready())

	q, err := d.Question("6", "ada", now)
	require.NoError(t, err)
	assert.Equal(t, "How?", q.Title())
	assert.Equal(t, "**why**", q.Body())
	assert.Equal(t, []string{"go", "tui"}, q.SelectorTags())
	assert.Equal(t, now, q.Created())
	assert.Equal(t, 0, q.VoteCount())
	assert.False(t, q.Solved())
}

func TestAnswerDraft(t *testing.T) {
	assert.False(t, AnswerDraft{Body: "  "}.Ready())
	_, err := AnswerDraft{}.Answer("a1", "1", "ada", time.Now())
	assert.ErrorIs(t, err, ErrIncompleteDraft)

	a, err := AnswerDraft{Body: "use a map"}.Answer("a3", "1", "ada", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "use a map", a.Body())
	assert.False(t, a.Accepted())
}
