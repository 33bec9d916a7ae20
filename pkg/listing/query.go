package listing

const DefaultPageSize = 3

// Query is the search, filter, sort and page selection driving a listing.
// It is a value: setters return a new Query. Any change to what is being
// listed (search, tag or sort) sends the query back to page 1, since the old
// page may not exist in the new result set.
type Query struct {
	Search   string
	Tag      string
	Sort     SortKey
	Page     int
	PageSize int
}

func NewQuery(pageSize int) Query {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return Query{
		Sort:     SortNewest,
		Page:     1,
		PageSize: pageSize,
	}
}

func (q Query) WithSearch(s string) Query {
	q.Search = s
	q.Page = 1
	return q
}

func (q Query) WithTag(tag string) Query {
	q.Tag = tag
	q.Page = 1
	return q
}

// ToggleTag selects tag, or clears the filter when tag is already selected.
func (q Query) ToggleTag(tag string) Query {
	if q.Tag == tag {
		return q.WithTag("")
	}
	return q.WithTag(tag)
}

func (q Query) WithSort(k SortKey) Query {
	q.Sort = ParseSortKey(string(k))
	q.Page = 1
	return q
}

func (q Query) CycleSort() Query {
	return q.WithSort(q.Sort.Next())
}

// WithPage jumps to page p as given; out of range pages list nothing.
func (q Query) WithPage(p int) Query {
	q.Page = p
	return q
}

// NextPage advances one page, stopping at total.
func (q Query) NextPage(total int) Query {
	if q.Page < total {
		q.Page++
	}
	return q
}

// PrevPage goes back one page, stopping at 1.
func (q Query) PrevPage() Query {
	if q.Page > 1 {
		q.Page--
	}
	return q
}

// Filtering reports whether search or tag narrows the listing.
func (q Query) Filtering() bool {
	return q.Search != "" || q.Tag != ""
}
