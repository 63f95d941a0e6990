package queries

import (
	"context"

	"bookstore-api/internal/domain/auth"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]ReservationView, error)
}

type ReservationQueries interface {
	// ListForIdentity returns the caller's reservations, or nothing when the caller has no customer profile.
	ListForIdentity(ctx context.Context, id auth.Identity) ([]ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) ListForIdentity(ctx context.Context, id auth.Identity) ([]ReservationView, error) {
	if id.CustomerID == nil {
		return []ReservationView{}, nil
	}
	items, err := q.readStore.ListByCustomer(ctx, *id.CustomerID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []ReservationView{}
	}
	return items, nil
}
