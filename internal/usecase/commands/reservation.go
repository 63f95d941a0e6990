package commands

import (
	"context"
	"log/slog"
	"time"

	"bookstore-api/internal/domain/auth"
	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/domain/customer"
	"bookstore-api/internal/domain/reservation"
	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/pkg/metrics"
	"bookstore-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// CacheInvalidator drops read caches that embed book stock.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest, identity auth.Identity) (uuid.UUID, error)
	Cancel(ctx context.Context, reservationID uuid.UUID, identity auth.Identity) error
}

type reservationCommandsImpl struct {
	ledger
	uow     shared.UnitOfWork
	cache   CacheInvalidator
	metrics *metrics.Metrics
	clock   clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	cache CacheInvalidator,
	m *metrics.Metrics,
	clock clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		ledger:  ledger{logger: logger},
		uow:     uow,
		cache:   cache,
		metrics: m,
		clock:   clock,
	}
}

func (r *reservationCommandsImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest, identity auth.Identity) (uuid.UUID, error) {
	started := time.Now()

	customerID, err := resolveCustomer(req.Customer, identity)
	if err != nil {
		return uuid.Nil, err
	}

	qty, err := reservation.NewQuantity(req.Quantity)
	if err != nil {
		return uuid.Nil, fieldError("quantity", err)
	}

	var id uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Books().FindForUpdate(ctx, tx.DB(), req.Book)
		if err != nil {
			return markNotFound(err, errs.ErrBookNotFound)
		}
		if err := b.CanWithdraw(qty.Value()); err != nil {
			return err
		}

		c, err := tx.Customers().FindForUpdate(ctx, tx.DB(), customerID)
		if err != nil {
			return markNotFound(err, errs.ErrCustomerNotFound)
		}

		if err := reservation.Reserve(b, c, qty); err != nil {
			return err
		}

		res := reservation.NewReservation(c.ID(), b.ID(), qty, r.clock.Now())
		if err := r.reserve(ctx, tx, b, c, res); err != nil {
			return err
		}
		id = res.ID()
		return nil
	})

	r.observe(metrics.OperationCreate, err, started)
	if err != nil {
		return uuid.Nil, err
	}

	r.cache.Invalidate(ctx)
	return id, nil
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, reservationID uuid.UUID, identity auth.Identity) error {
	started := time.Now()

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), reservationID)
		if err != nil {
			return markNotFound(err, errs.ErrReservationNotFound)
		}
		// Someone else's reservation is reported as missing.
		if !identity.IsStaff && !identity.OwnsCustomer(res.CustomerID()) {
			return errs.ErrReservationNotFound
		}

		b, err := tx.Books().FindForUpdate(ctx, tx.DB(), res.BookID())
		if err != nil {
			return markNotFound(err, errs.ErrBookNotFound)
		}
		c, err := tx.Customers().FindForUpdate(ctx, tx.DB(), res.CustomerID())
		if err != nil {
			return markNotFound(err, errs.ErrCustomerNotFound)
		}

		return r.release(ctx, tx, b, c, res)
	})

	r.observe(metrics.OperationCancel, err, started)
	if err != nil {
		return err
	}

	r.cache.Invalidate(ctx)
	return nil
}

func (r *reservationCommandsImpl) observe(operation string, err error, started time.Time) {
	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
	case isRejection(err):
		outcome = metrics.OutcomeRejected
	default:
		outcome = metrics.OutcomeError
	}
	r.metrics.ObserveReservation(operation, outcome, time.Since(started).Seconds())
}

func isRejection(err error) bool {
	return errs.IsAny(err,
		book.ErrInsufficientStock,
		customer.ErrReservationLimitExceeded,
		errs.ErrDomainValidation,
		errs.ErrBookNotFound,
		errs.ErrCustomerNotFound,
		errs.ErrReservationNotFound,
		errs.ErrForbidden,
	)
}

// resolveCustomer defaults to the caller's own profile; only staff may reserve for others.
func resolveCustomer(requested *uuid.UUID, identity auth.Identity) (uuid.UUID, error) {
	if requested != nil {
		if identity.IsStaff || identity.OwnsCustomer(*requested) {
			return *requested, nil
		}
		return uuid.Nil, errs.ErrForbidden
	}
	if identity.CustomerID == nil {
		return uuid.Nil, errs.ErrCustomerNotFound
	}
	return *identity.CustomerID, nil
}
