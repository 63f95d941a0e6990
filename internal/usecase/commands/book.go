package commands

import (
	"context"
	"log/slog"
	"slices"

	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/domain/customer"
	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookCommands interface {
	Create(ctx context.Context, req reqdto.BookRequest) (uuid.UUID, error)
	Replace(ctx context.Context, id uuid.UUID, req reqdto.BookRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookCommandsImpl struct {
	ledger
	uow   shared.UnitOfWork
	cache CacheInvalidator
	clock clock.Clock
}

func NewBookCommands(uow shared.UnitOfWork, cache CacheInvalidator, clock clock.Clock, logger *slog.Logger) BookCommands {
	return &bookCommandsImpl{
		ledger: ledger{logger: logger},
		uow:    uow,
		cache:  cache,
		clock:  clock,
	}
}

func (c *bookCommandsImpl) Create(ctx context.Context, req reqdto.BookRequest) (uuid.UUID, error) {
	b, err := book.NewBook(req.ToDomain(), c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err = tx.Books().Create(ctx, tx.DB(), b)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.cache.Invalidate(ctx)
	return id, nil
}

func (c *bookCommandsImpl) Replace(ctx context.Context, id uuid.UUID, req reqdto.BookRequest) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Books().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return markNotFound(err, errs.ErrBookNotFound)
		}
		if err := b.Replace(req.ToDomain(), c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		return markNotFound(tx.Books().Update(ctx, tx.DB(), b), errs.ErrBookNotFound)
	})
	if err != nil {
		return err
	}

	c.cache.Invalidate(ctx)
	return nil
}

// Delete releases every live reservation on the book before removing it, so customer quotas stay exact.
// Lock order: book, its reservations, then their customers by id.
func (c *bookCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Books().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return markNotFound(err, errs.ErrBookNotFound)
		}

		held, err := tx.Reservations().ListByBookForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}

		customerIDs := make([]uuid.UUID, 0, len(held))
		for _, r := range held {
			customerIDs = append(customerIDs, r.CustomerID())
		}
		customers, err := lockCustomers(ctx, tx, customerIDs)
		if err != nil {
			return err
		}

		for _, r := range held {
			if err := c.release(ctx, tx, b, customers[r.CustomerID()], r); err != nil {
				return err
			}
		}

		return markNotFound(tx.Books().Delete(ctx, tx.DB(), id), errs.ErrBookNotFound)
	})
	if err != nil {
		return err
	}

	c.cache.Invalidate(ctx)
	return nil
}

func lockCustomers(ctx context.Context, tx shared.Tx, ids []uuid.UUID) (map[uuid.UUID]*customer.Customer, error) {
	ids = sortedUnique(ids)
	locked := make(map[uuid.UUID]*customer.Customer, len(ids))
	for _, id := range ids {
		c, err := tx.Customers().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return nil, markNotFound(err, errs.ErrCustomerNotFound)
		}
		locked[id] = c
	}
	return locked, nil
}

func lockBooks(ctx context.Context, tx shared.Tx, ids []uuid.UUID) (map[uuid.UUID]*book.Book, error) {
	ids = sortedUnique(ids)
	locked := make(map[uuid.UUID]*book.Book, len(ids))
	for _, id := range ids {
		b, err := tx.Books().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return nil, markNotFound(err, errs.ErrBookNotFound)
		}
		locked[id] = b
	}
	return locked, nil
}

func sortedUnique(ids []uuid.UUID) []uuid.UUID {
	out := slices.Clone(ids)
	slices.SortFunc(out, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
	return slices.Compact(out)
}
