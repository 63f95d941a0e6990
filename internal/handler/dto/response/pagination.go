package response

import (
	"net/url"
	"strconv"

	"bookstore-api/internal/usecase/queries"
)

type PageResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// NewPageResponse rewrites the page parameter of self to build the neighbour links.
func NewPageResponse[V, T any](self *url.URL, page *queries.Page[V], convert func(V) T) PageResponse[T] {
	results := make([]T, len(page.Items))
	for i, it := range page.Items {
		results[i] = convert(it)
	}

	res := PageResponse[T]{Count: page.Count, Results: results}
	if page.HasNext() {
		next := withPage(self, page.Page+1)
		res.Next = &next
	}
	if page.HasPrevious() {
		prev := withPage(self, page.Page-1)
		res.Previous = &prev
	}
	return res
}

// the first page link carries no page parameter
func withPage(self *url.URL, page int) string {
	u := *self
	q := u.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	return u.String()
}
