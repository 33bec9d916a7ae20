package listing

import "sort"

type SortKey string

const (
	SortNewest  SortKey = "newest"
	SortVotes   SortKey = "votes"
	SortAnswers SortKey = "answers"
)

var (
	// SortKeys in the order they appear in the filter panel.
	SortKeys = []SortKey{SortNewest, SortVotes, SortAnswers}

	sortLabels = map[SortKey]string{
		SortNewest:  "Newest",
		SortVotes:   "Most Votes",
		SortAnswers: "Most Answers",
	}
)

// ParseSortKey maps a raw key onto a SortKey. Anything unrecognized sorts by
// newest.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortVotes, SortAnswers, SortNewest:
		return k
	default:
		return SortNewest
	}
}

func (k SortKey) Label() string {
	return sortLabels[ParseSortKey(string(k))]
}

// Next is the key after k in SortKeys, wrapping around.
func (k SortKey) Next() SortKey {
	k = ParseSortKey(string(k))
	for i, s := range SortKeys {
		if s == k {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return SortNewest
}

// Sort returns a sorted copy of items. Ties keep their input order; no
// secondary key is applied.
func Sort[T Item](items []T, key SortKey) []T {
	out := make([]T, len(items))
	copy(out, items)

	switch ParseSortKey(string(key)) {
	case SortVotes:
		sort.Stable(byVotes[T](out))
	case SortAnswers:
		sort.Stable(byAnswers[T](out))
	default:
		sort.Stable(byCreated[T](out))
	}
	return out
}

type byVotes[T Item] []T

func (m byVotes[T]) Len() int           { return len(m) }
func (m byVotes[T]) Swap(i, j int)      { m[i], m[j] = m[j], m[i] }
func (m byVotes[T]) Less(i, j int) bool { return m[i].VoteCount() > m[j].VoteCount() }

type byAnswers[T Item] []T

func (m byAnswers[T]) Len() int           { return len(m) }
func (m byAnswers[T]) Swap(i, j int)      { m[i], m[j] = m[j], m[i] }
func (m byAnswers[T]) Less(i, j int) bool { return m[i].AnswerCount() > m[j].AnswerCount() }

type byCreated[T Item] []T

func (m byCreated[T]) Len() int      { return len(m) }
func (m byCreated[T]) Swap(i, j int) { m[i], m[j] = m[j], m[i] }
func (m byCreated[T]) Less(i, j int) bool {
	// date descending
	return m[i].Created().After(m[j].Created())
}
