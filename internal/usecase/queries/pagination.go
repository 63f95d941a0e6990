package queries

import (
	"bookstore-api/internal/pkg/errs"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

var ErrInvalidPage = errs.New("invalid page")

// PageRequest is a 1-based page number with a clamped page size.
type PageRequest struct {
	Page     int
	PageSize int
}

func NewPageRequest(page, pageSize int) (PageRequest, error) {
	if page < 1 {
		return PageRequest{}, ErrInvalidPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pageSize = min(pageSize, MaxPageSize)
	return PageRequest{Page: page, PageSize: pageSize}, nil
}

func (p PageRequest) Limit() int32 {
	return int32(p.PageSize)
}

func (p PageRequest) Offset() int32 {
	return int32((p.Page - 1) * p.PageSize)
}

type Page[T any] struct {
	Items    []T   `json:"items"`
	Count    int64 `json:"count"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// NewPage rejects pages past the end; the first page is always valid, even when empty.
func NewPage[T any](items []T, count int64, req PageRequest) (*Page[T], error) {
	if req.Page > 1 && int64(req.Offset()) >= count {
		return nil, ErrInvalidPage
	}
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Count: count, Page: req.Page, PageSize: req.PageSize}, nil
}

func (p *Page[T]) HasNext() bool {
	return int64(p.Page*p.PageSize) < p.Count
}

func (p *Page[T]) HasPrevious() bool {
	return p.Page > 1
}
