//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bookstore-api/internal/usecase/shared"
	commandsmock "bookstore-api/tests/mock/commands"
	sharedmock "bookstore-api/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// txFixture wires a UnitOfWork mock whose Within runs the callback against mocked repositories.
type txFixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	books        *sharedmock.MockBookRepository
	customers    *sharedmock.MockCustomerRepository
	reservations *sharedmock.MockReservationRepository
	users        *sharedmock.MockUserRepository
	cache        *commandsmock.MockCacheInvalidator
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &txFixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		books:        sharedmock.NewMockBookRepository(ctrl),
		customers:    sharedmock.NewMockCustomerRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		users:        sharedmock.NewMockUserRepository(ctrl),
		cache:        commandsmock.NewMockCacheInvalidator(ctrl),
	}

	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Books().Return(f.books).AnyTimes()
	f.tx.EXPECT().Customers().Return(f.customers).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()

	return f
}
