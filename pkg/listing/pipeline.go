package listing

import (
	"time"

	"github.com/byxorna/stackit/pkg/text"
)

// Item is anything that can be listed on the board.
type Item interface {
	Title() string
	Body() string
	SelectorTags() []string
	Created() time.Time
	VoteCount() int
	AnswerCount() int
}

// Page is one screenful of a computed listing.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	TotalItems int
}

func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// Filter keeps the items matching both the search text (a case-insensitive
// substring of title or body) and the tag filter (an exact, case-sensitive
// tag). Empty criteria match everything. Input order is kept.
func Filter[T Item](items []T, search, tag string) []T {
	out := make([]T, 0, len(items))
	for _, i := range items {
		if search != "" &&
			!text.ContainsFold(i.Title(), search) &&
			!text.ContainsFold(i.Body(), search) {
			continue
		}
		if tag != "" && !hasTag(i, tag) {
			continue
		}
		out = append(out, i)
	}
	return out
}

func hasTag[T Item](i T, tag string) bool {
	for _, t := range i.SelectorTags() {
		if t == tag {
			return true
		}
	}
	return false
}

// Paginate slices out page number page (1-based) of items. totalPages is at
// least 1 even for no items. A page outside [1,totalPages] yields no items;
// the page is never clamped here.
func Paginate[T any](items []T, page, pageSize int) (pageItems []T, totalPages int) {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages = (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	pageItems = []T{}
	if page < 1 {
		return pageItems, totalPages
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return pageItems, totalPages
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return append(pageItems, items[start:end]...), totalPages
}

// ComputePage runs the whole pipeline: filter, sort, paginate.
func ComputePage[T Item](items []T, q Query) Page[T] {
	sorted := Sort(Filter(items, q.Search, q.Tag), q.Sort)
	pageItems, total := Paginate(sorted, q.Page, q.PageSize)
	return Page[T]{
		Items:      pageItems,
		Number:     q.Page,
		TotalPages: total,
		TotalItems: len(sorted),
	}
}
