package queries

import (
	"context"

	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	FindIDByUsername(ctx context.Context, username string) (uuid.UUID, error)
	List(ctx context.Context, limit, offset int32) ([]CustomerView, int64, error)
}

type CustomerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	GetByUsername(ctx context.Context, username string) (*CustomerView, error)
	List(ctx context.Context, req PageRequest) (*Page[CustomerView], error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	c, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, markCustomerNotFound(err)
	}
	return c, nil
}

func (q *customerQueriesImpl) GetByUsername(ctx context.Context, username string) (*CustomerView, error) {
	id, err := q.readStore.FindIDByUsername(ctx, username)
	if err != nil {
		return nil, markCustomerNotFound(err)
	}
	return q.GetByID(ctx, id)
}

func (q *customerQueriesImpl) List(ctx context.Context, req PageRequest) (*Page[CustomerView], error) {
	items, count, err := q.readStore.List(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	return NewPage(items, count, req)
}

func markCustomerNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrCustomerNotFound)
	}
	return err
}
