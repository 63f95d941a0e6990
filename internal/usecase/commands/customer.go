package commands

import (
	"context"
	"log/slog"

	"bookstore-api/internal/domain/customer"
	"bookstore-api/internal/domain/user"
	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/pkg/password"
	"bookstore-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUsernameTaken = errs.New("a user with that username already exists")

type CustomerCommands interface {
	Signup(ctx context.Context, req reqdto.SignupRequest) (uuid.UUID, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, changes reqdto.ProfileChanges) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerCommandsImpl struct {
	ledger
	uow             shared.UnitOfWork
	cache           CacheInvalidator
	clock           clock.Clock
	maxReservations int32
}

func NewCustomerCommands(
	uow shared.UnitOfWork,
	cache CacheInvalidator,
	clock clock.Clock,
	logger *slog.Logger,
	maxReservations int32,
) CustomerCommands {
	return &customerCommandsImpl{
		ledger:          ledger{logger: logger},
		uow:             uow,
		cache:           cache,
		clock:           clock,
		maxReservations: maxReservations,
	}
}

func (c *customerCommandsImpl) Signup(ctx context.Context, req reqdto.SignupRequest) (uuid.UUID, error) {
	username, err := user.NewUsername(req.User.Username)
	if err != nil {
		return uuid.Nil, fieldError("username", err)
	}
	if err := password.Validate(req.User.Password); err != nil {
		return uuid.Nil, fieldError("password", err)
	}
	hash, err := password.HashPassword(req.User.Password)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	now := c.clock.Now()
	u, err := user.NewUser(username, hash, user.Profile{
		FirstName: req.User.FirstName,
		LastName:  req.User.LastName,
		Email:     req.User.Email,
	}, now)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	cust, err := customer.NewCustomer(u.ID(), req.MailingAddress, c.maxReservations, now)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().Create(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return fieldError("username", ErrUsernameTaken)
			}
			return err
		}
		_, err := tx.Customers().Create(ctx, tx.DB(), cust)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return cust.ID(), nil
}

func (c *customerCommandsImpl) UpdateProfile(ctx context.Context, id uuid.UUID, changes reqdto.ProfileChanges) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cust, err := tx.Customers().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return markNotFound(err, errs.ErrCustomerNotFound)
		}

		if changes.TouchesUser() {
			u, err := tx.Users().FindByID(ctx, tx.DB(), cust.UserID())
			if err != nil {
				return markNotFound(err, errs.ErrCustomerNotFound)
			}
			if err := u.UpdateProfile(changes.FirstName, changes.LastName, changes.Email); err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			if err := tx.Users().UpdateProfile(ctx, tx.DB(), u); err != nil {
				return err
			}
		}

		if changes.MailingAddress != nil {
			cust.ChangeMailingAddress(changes.MailingAddress, c.clock.Now())
			if err := tx.Customers().UpdateMailingAddress(ctx, tx.DB(), cust); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete cancels every live reservation through the ledger, then removes the customer and its user.
func (c *customerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var released int
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cust, err := tx.Customers().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return markNotFound(err, errs.ErrCustomerNotFound)
		}

		held, err := tx.Reservations().ListByCustomerForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}

		bookIDs := make([]uuid.UUID, 0, len(held))
		for _, r := range held {
			bookIDs = append(bookIDs, r.BookID())
		}
		books, err := lockBooks(ctx, tx, bookIDs)
		if err != nil {
			return err
		}

		for _, r := range held {
			if err := c.release(ctx, tx, books[r.BookID()], cust, r); err != nil {
				return err
			}
		}
		released = len(held)

		if err := tx.Customers().Delete(ctx, tx.DB(), id); err != nil {
			return markNotFound(err, errs.ErrCustomerNotFound)
		}
		return tx.Users().Delete(ctx, tx.DB(), cust.UserID())
	})
	if err != nil {
		return err
	}

	if released > 0 {
		c.cache.Invalidate(ctx)
	}
	return nil
}
