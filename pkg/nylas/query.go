package nylas

import (
	"net/url"
	"strconv"
)

// QueryParams represents query parameters for list requests. Offset is a
// pointer so that an explicit zero survives into the query string: "unset"
// and "offset=0" are different things to the API.
type QueryParams struct {
	Limit   int
	Offset  *int
	View    string
	Filters map[string][]string
}

// NewQueryParams creates a new QueryParams instance.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithLimit sets the page size limit.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithOffset sets an explicit offset, including zero.
func (q *QueryParams) WithOffset(offset int) *QueryParams {
	q.Offset = &offset

	return q
}

// WithView sets the view parameter (e.g. "expanded", "count", "ids").
func (q *QueryParams) WithView(view string) *QueryParams {
	q.View = view

	return q
}

// WithFilter appends values to a filter parameter.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// Clone returns a deep copy so iterators can advance a cursor without
// mutating the caller's params.
func (q *QueryParams) Clone() *QueryParams {
	if q == nil {
		return NewQueryParams()
	}

	clone := &QueryParams{
		Limit:   q.Limit,
		View:    q.View,
		Filters: make(map[string][]string, len(q.Filters)),
	}

	if q.Offset != nil {
		offset := *q.Offset
		clone.Offset = &offset
	}

	for key, values := range q.Filters {
		clone.Filters[key] = append([]string(nil), values...)
	}

	return clone
}

// ToValues converts the params to url.Values for percent-encoding.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Offset != nil {
		values.Set("offset", strconv.Itoa(*q.Offset))
	}

	if q.View != "" {
		values.Set("view", q.View)
	}

	for key, filterValues := range q.Filters {
		for _, value := range filterValues {
			values.Add(key, value)
		}
	}

	return values
}
