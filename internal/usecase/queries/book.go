package queries

import (
	"context"
	"strings"
	"unicode/utf8"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MinSearchQueryLength = 3
	// PopularLimit caps the popular listing regardless of pagination.
	PopularLimit = 999
)

var ErrInvalidSearchQuery = errs.New("missing or invalid query")

type BookReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	List(ctx context.Context, limit, offset int32) ([]BookView, int64, error)
	Search(ctx context.Context, query string, limit, offset int32) ([]BookView, int64, error)
	Popular(ctx context.Context, maxRows, limit, offset int32) ([]BookView, int64, error)
}

// PopularCache stores rendered popular pages. Implementations must be safe to use when the backend is down.
type PopularCache interface {
	Get(ctx context.Context, req PageRequest) (*Page[BookView], bool)
	Set(ctx context.Context, req PageRequest, page *Page[BookView])
	Invalidate(ctx context.Context)
}

type BookQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	List(ctx context.Context, req PageRequest) (*Page[BookView], error)
	Search(ctx context.Context, query string, req PageRequest) (*Page[BookView], error)
	Popular(ctx context.Context, req PageRequest) (*Page[BookView], error)
}

type bookQueriesImpl struct {
	readStore BookReadStore
	cache     PopularCache
}

func NewBookQueries(readStore BookReadStore, cache PopularCache) BookQueries {
	return &bookQueriesImpl{
		readStore: readStore,
		cache:     cache,
	}
}

func (q *bookQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookView, error) {
	b, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (q *bookQueriesImpl) List(ctx context.Context, req PageRequest) (*Page[BookView], error) {
	items, count, err := q.readStore.List(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	return NewPage(items, count, req)
}

func (q *bookQueriesImpl) Search(ctx context.Context, query string, req PageRequest) (*Page[BookView], error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSearchQueryLength {
		return nil, ErrInvalidSearchQuery
	}
	items, count, err := q.readStore.Search(ctx, query, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	return NewPage(items, count, req)
}

func (q *bookQueriesImpl) Popular(ctx context.Context, req PageRequest) (*Page[BookView], error) {
	if cached, ok := q.cache.Get(ctx, req); ok {
		return cached, nil
	}

	items, count, err := q.readStore.Popular(ctx, PopularLimit, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	page, err := NewPage(items, count, req)
	if err != nil {
		return nil, err
	}

	q.cache.Set(ctx, req, page)
	return page, nil
}
