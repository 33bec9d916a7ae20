package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	name    string
	body    string
	tags    []string
	created time.Time
	votes   int
	answers int
}

func (i item) Title() string          { return i.name }
func (i item) Body() string           { return i.body }
func (i item) SelectorTags() []string { return i.tags }
func (i item) Created() time.Time     { return i.created }
func (i item) VoteCount() int         { return i.votes }
func (i item) AnswerCount() int       { return i.answers }

var t0 = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func names(items []item) []string {
	out := []string{}
	for _, i := range items {
		out = append(out, i.name)
	}
	return out
}

func fixture() []item {
	return []item{
		{name: "How To X", body: "steps", tags: []string{"React"}, created: t0, votes: 15, answers: 3},
		{name: "Generics", body: "type params in TypeScript", tags: []string{"TypeScript"}, created: t0.Add(time.Hour), votes: 23, answers: 7},
		{name: "Centering", body: "flexbox or grid", tags: []string{"CSS"}, created: t0.Add(2 * time.Hour), votes: 8, answers: 2},
		{name: "State", body: "useState vs useReducer", tags: []string{"React", "Hooks"}, created: t0.Add(3 * time.Hour), votes: 15, answers: 0},
		{name: "Ünïcode", body: "ÉCOLE", tags: []string{"css"}, created: t0.Add(4 * time.Hour), votes: 1, answers: 1},
	}
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	items := fixture()
	assert.Equal(t, items, Filter(items, "", ""))
	assert.Empty(t, Filter([]item{}, "", ""))
}

func TestFilter(t *testing.T) {
	testcases := map[string]struct {
		search, tag string
		expected    []string
	}{
		"title ignores case":    {"how to", "", []string{"How To X"}},
		"body match":            {"FLEXBOX", "", []string{"Centering"}},
		"unicode folding":       {"école", "", []string{"Ünïcode"}},
		"tag exact":             {"", "React", []string{"How To X", "State"}},
		"tag is case sensitive": {"", "CSS", []string{"Centering"}},
		"search and tag":        {"use", "React", []string{"State"}},
		"search and wrong tag":  {"use", "CSS", []string{}},
		"no match":              {"kubernetes", "", []string{}},
	}
	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, names(Filter(fixture(), tc.search, tc.tag)))
		})
	}
}

func TestSort(t *testing.T) {
	testcases := map[SortKey][]string{
		SortVotes:   {"Generics", "How To X", "State", "Centering", "Ünïcode"},
		SortAnswers: {"Generics", "How To X", "Centering", "Ünïcode", "State"},
		SortNewest:  {"Ünïcode", "State", "Centering", "Generics", "How To X"},
		"bogus":     {"Ünïcode", "State", "Centering", "Generics", "How To X"},
	}
	for key, expected := range testcases {
		t.Run(string(key), func(t *testing.T) {
			assert.Equal(t, expected, names(Sort(fixture(), key)))
		})
	}
}

func TestSortIsStableAndPure(t *testing.T) {
	items := []item{
		{name: "a", votes: 2},
		{name: "b", votes: 5},
		{name: "c", votes: 2},
		{name: "d", votes: 2},
	}
	sorted := Sort(items, SortVotes)
	assert.Equal(t, []string{"b", "a", "c", "d"}, names(sorted))
	assert.Equal(t, []string{"a", "b", "c", "d"}, names(items), "input must not be reordered")
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, total := Paginate(items, 1, 3)
	assert.Equal(t, []int{1, 2, 3}, page)
	assert.Equal(t, 2, total)

	page, total = Paginate(items, 2, 3)
	assert.Equal(t, []int{4, 5}, page)
	assert.Equal(t, 2, total)

	page, total = Paginate(items, 3, 3)
	assert.Empty(t, page)
	assert.NotNil(t, page)
	assert.Equal(t, 2, total)

	page, total = Paginate(items, 0, 3)
	assert.Empty(t, page)
	assert.Equal(t, 2, total)
}

func TestPaginateEmpty(t *testing.T) {
	page, total := Paginate([]int{}, 1, 3)
	assert.Empty(t, page)
	assert.Equal(t, 1, total)
}

func TestComputePageScenario(t *testing.T) {
	items := []item{
		{name: "item1", votes: 15, answers: 3, created: t0, tags: []string{"React"}},
		{name: "item2", votes: 23, answers: 7, created: t0.Add(time.Hour), tags: []string{"TypeScript"}},
		{name: "item3", votes: 8, answers: 2, created: t0.Add(2 * time.Hour), tags: []string{"CSS"}},
	}
	q := NewQuery(2).WithSort(SortVotes)

	first := ComputePage(items, q)
	assert.Equal(t, []string{"item2", "item1"}, names(first.Items))
	assert.Equal(t, 2, first.TotalPages)
	assert.Equal(t, 3, first.TotalItems)
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrev())

	second := ComputePage(items, q.NextPage(first.TotalPages))
	assert.Equal(t, []string{"item3"}, names(second.Items))
	assert.Equal(t, 2, second.Number)
	assert.False(t, second.HasNext())
}

func TestQueryChangesResetPage(t *testing.T) {
	base := NewQuery(3).WithPage(4)
	require.Equal(t, 4, base.Page)

	testcases := map[string]Query{
		"search":     base.WithSearch("react"),
		"tag":        base.WithTag("CSS"),
		"toggle tag": base.ToggleTag("CSS"),
		"sort":       base.WithSort(SortAnswers),
		"cycle sort": base.CycleSort(),
	}
	for name, q := range testcases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 1, q.Page)
		})
	}
	assert.Equal(t, 4, base.Page, "setters return copies")
}

func TestQueryResetAvoidsEmptyPage(t *testing.T) {
	items := fixture()
	q := NewQuery(2).WithPage(3)
	require.Len(t, ComputePage(items, q).Items, 1)

	// narrowing to one tag leaves a single page; page 3 would be empty
	narrowed := q.WithTag("CSS")
	page := ComputePage(items, narrowed)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, []string{"Centering"}, names(page.Items))
}

func TestQueryPaging(t *testing.T) {
	q := NewQuery(0)
	assert.Equal(t, DefaultPageSize, q.PageSize)
	assert.Equal(t, 1, q.PrevPage().Page)
	assert.Equal(t, 2, q.NextPage(2).Page)
	assert.Equal(t, 2, q.NextPage(2).NextPage(2).Page)
	assert.Equal(t, 1, q.NextPage(2).PrevPage().Page)
}

func TestToggleTagClears(t *testing.T) {
	q := NewQuery(3).ToggleTag("Go")
	assert.Equal(t, "Go", q.Tag)
	assert.True(t, q.Filtering())
	q = q.ToggleTag("Go")
	assert.Equal(t, "", q.Tag)
	assert.False(t, q.Filtering())
}

func TestSortKeys(t *testing.T) {
	assert.Equal(t, SortVotes, SortNewest.Next())
	assert.Equal(t, SortNewest, SortAnswers.Next())
	assert.Equal(t, "Most Votes", SortVotes.Label())
	assert.Equal(t, "Newest", SortKey("nonsense").Label())
	assert.Equal(t, SortNewest, ParseSortKey(""))
}
