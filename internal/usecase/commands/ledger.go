package commands

import (
	"context"
	"log/slog"

	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/domain/customer"
	"bookstore-api/internal/domain/reservation"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/shared"
)

// ledger writes counter changes for a reservation and verifies what the database committed.
// Callers must hold row locks on the book and the customer.
type ledger struct {
	logger *slog.Logger
}

func (l ledger) reserve(ctx context.Context, tx shared.Tx, b *book.Book, c *customer.Customer, r *reservation.Reservation) error {
	if _, err := tx.Reservations().Create(ctx, tx.DB(), r); err != nil {
		return err
	}
	return l.apply(ctx, tx, b, c, -r.Quantity(), r.Quantity())
}

func (l ledger) release(ctx context.Context, tx shared.Tx, b *book.Book, c *customer.Customer, r *reservation.Reservation) error {
	if err := reservation.Release(b, c, r); err != nil {
		l.logger.Error("reservation does not match locked counters",
			"reservation_id", r.ID(),
			"book_id", b.ID(),
			"customer_id", c.ID(),
			"error", err.Error())
		return errs.Mark(err, errs.ErrInvariantViolation)
	}
	if err := l.apply(ctx, tx, b, c, r.Quantity(), -r.Quantity()); err != nil {
		return err
	}
	return tx.Reservations().Delete(ctx, tx.DB(), r.ID())
}

// apply moves the stored counters and compares them with the in-memory state computed under lock.
func (l ledger) apply(ctx context.Context, tx shared.Tx, b *book.Book, c *customer.Customer, stockDelta, quotaDelta int32) error {
	stock, err := tx.Books().ApplyStockDelta(ctx, tx.DB(), b.ID(), stockDelta)
	if err != nil {
		return l.checkViolation(err, b, c)
	}
	quota, err := tx.Customers().ApplyReservationDelta(ctx, tx.DB(), c.ID(), quotaDelta)
	if err != nil {
		return l.checkViolation(err, b, c)
	}

	counters := reservation.Counters{
		BookQuantity:        stock,
		CurrentReservations: quota.Current,
		MaxReservations:     quota.Max,
	}
	err = reservation.VerifyInvariants(counters)
	if err == nil && (stock != b.Quantity() || quota.Current != c.CurrentReservations()) {
		err = errs.Newf("%v: committed counters diverged from locked state", reservation.ErrInvariantViolation)
	}
	if err != nil {
		l.logger.Error("reservation invariant violated",
			"book_id", b.ID(),
			"customer_id", c.ID(),
			"book_quantity", stock,
			"current_reservations", quota.Current,
			"max_reservations", quota.Max,
			"error", err.Error())
		return errs.Mark(err, errs.ErrInvariantViolation)
	}
	return nil
}

func (l ledger) checkViolation(err error, b *book.Book, c *customer.Customer) error {
	if !infra.IsKind(err, infra.KindCheckViolated) {
		return err
	}
	l.logger.Error("reservation counters rejected by storage constraint",
		"book_id", b.ID(),
		"customer_id", c.ID(),
		"error", err.Error())
	return errs.Mark(err, errs.ErrInvariantViolation)
}
