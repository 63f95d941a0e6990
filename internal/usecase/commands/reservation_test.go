//go:build unit

package commands_test

import (
	"context"
	"testing"

	"bookstore-api/internal/domain/auth"
	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/domain/customer"
	"bookstore-api/internal/domain/reservation"
	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/infra"
	sqlc "bookstore-api/internal/infra/sqlc/generated"
	"bookstore-api/internal/pkg/clock"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/pkg/metrics"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/shared"
	"bookstore-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReservationCommands(f *txFixture, m *metrics.Metrics) commands.ReservationCommands {
	return commands.NewReservationCommands(f.uow, f.cache, m, clock.NewFixedClock(builder.FixedTime), discardLogger)
}

func ownerOf(customerID uuid.UUID) auth.Identity {
	return auth.Identity{UserID: uuid.New(), Username: "reader", CustomerID: &customerID}
}

// =============================================================================
// Create Reservation Tests
// =============================================================================

func TestReservationCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: stock and quota move by quantity", func(t *testing.T) {
		f := newTxFixture(t)
		m := metrics.New()
		cmds := newReservationCommands(f, m)

		bookID, customerID := uuid.New(), uuid.New()
		b := builder.NewBookBuilder().WithQuantity(5).BuildReconstructed(bookID)
		c := builder.NewCustomerBuilder().WithQuota(30, 0).BuildReconstructed(customerID)

		f.books.EXPECT().FindForUpdate(ctx, gomock.Any(), bookID).Return(b, nil)
		f.customers.EXPECT().FindForUpdate(ctx, gomock.Any(), customerID).Return(c, nil)
		f.reservations.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, r *reservation.Reservation) (uuid.UUID, error) {
				assert.Equal(t, int32(2), r.Quantity())
				assert.Equal(t, bookID, r.BookID())
				assert.Equal(t, customerID, r.CustomerID())
				assert.Equal(t, builder.FixedTime, r.Date())
				return r.ID(), nil
			})
		f.books.EXPECT().ApplyStockDelta(ctx, gomock.Any(), bookID, int32(-2)).Return(int32(3), nil)
		f.customers.EXPECT().ApplyReservationDelta(ctx, gomock.Any(), customerID, int32(2)).Return(shared.QuotaCounters{Current: 2, Max: 30}, nil)
		f.cache.EXPECT().Invalidate(ctx)

		id, err := cmds.Create(ctx, reqdto.CreateReservationRequest{Book: bookID, Quantity: 2}, ownerOf(customerID))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, float64(1), promtestutil.ToFloat64(m.ReservationsTotal.WithLabelValues(metrics.OperationCreate, metrics.OutcomeOK)))
	})

	t.Run("rejected: not enough stock leaves customer unlocked", func(t *testing.T) {
		f := newTxFixture(t)
		m := metrics.New()
		cmds := newReservationCommands(f, m)

		bookID := uuid.New()
		f.books.EXPECT().FindForUpdate(ctx, gomock.Any(), bookID).Return(builder.NewBookBuilder().WithQuantity(5).BuildReconstructed(bookID), nil)

		_, err := cmds.Create(ctx, reqdto.CreateReservationRequest{Book: bookID, Quantity: 10}, ownerOf(uuid.New()))
		assert.True(t, errs.Is(err, book.ErrInsufficientStock))
		assert.Equal(t, float64(1), promtestutil.ToFloat64(m.ReservationsTotal.WithLabelValues(metrics.OperationCreate, metrics.OutcomeRejected)))
	})

	t.Run("rejected: quota exceeded", func(t *testing.T) {
		f := newTxFixture(t)
		cmds := newReservationCommands(f, nil)

		bookID, customerID := uuid.New(), uuid.New()
		f.books.EXPECT().FindForUpdate(ctx, gomock.Any(), bookID).Return(builder.NewBookBuilder().WithQuantity(5).BuildReconstructed(bookID), nil)
		f.customers.EXPECT().FindForUpdate(ctx, gomock.Any(), customerID).Return(builder.NewCustomerBuilder().WithQuota(1, 0).BuildReconstructed(customerID), nil)

		_, err := cmds.Create(ctx, reqdto.CreateReservationRequest{Book: bookID, Quantity: 2}, ownerOf(customerID))
		assert.True(t, errs.Is(err, customer.ErrReservationLimitExceeded))
	})

	t.Run("not found: book", func(t *testing.T) {
		f := newTxFixture(t)
		cmds := newReservationCommands(f, nil)

		bookID := uuid.New()
		f.books.EXPECT().FindForUpdate(ctx, gomock.Any(), bookID).Return(nil, infra.WrapRepoErr(discardLogger, infra.KindNotFound, "book not found", pgx.ErrNoRows))

		_, err := cmds.Create(ctx, reqdto.CreateReservationRequest{Book: bookID, Quantity: 1}, ownerOf(uuid.New()))
		assert.True(t, errs.Is(err, errs.ErrBookNotFound))
	})

	t.Run("invalid quantity is rejected before locking", func(t *testing.T) {
		f := newTxFixture(t)
		cmds := newReservationCommands(f, nil)

		_, err := cmds.Create(ctx, reqdto.CreateReservationRequest{Book: uuid.New(), Quantity: -1}, ownerOf(uuid.New()))
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.True(t, errs.Is(err, reservation.ErrInvalidQuantity))

		var fieldErr *commands.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "quantity", fieldErr.Field)
	})

	t.Run("forbidden: non-staff reserving for another customer", func(t *testing.T) {
		f := newTxFixture(t)
		cmds := newReservationCommands(f, nil)

		other := uuid.New()
		_, err := cmds.Create(ctx, reqdto.CreateReservationRequest{Book: uuid.New(), Customer: &other, Quantity: 1}, ownerOf(uuid.New()))
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("not found: caller without customer profile", func(t *testing.T) {
		f := newTxFixture(t)
		cmds := newReservationCommands(f, nil)

		_, err := cmds.Create(ctx, reqdto.CreateReservationRequest{Book: uuid.New(), Quantity: 1}, auth.Identity{UserID: uuid.New()})
		assert.True(t, errs.Is(err, errs.ErrCustomerNotFound))
	})

	t.Run("invariant: committed stock diverges from locked state", func(t *testing.T) {
		f := newTxFixture(t)
		m := metrics.New()
		cmds := newReservationCommands(f, m)

		bookID, customerID := uuid.New(), uuid.New()
		f.books.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), bookID).Return(builder.NewBookBuilder().WithQuantity(5).BuildReconstructed(bookID), nil)
		f.customers.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), customerID).Return(builder.NewCustomerBuilder().WithQuota(30, 0).BuildReconstructed(customerID), nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.books.EXPECT().ApplyStockDelta(gomock.Any(), gomock.Any(), bookID, int32(-2)).Return(int32(1), nil)
		f.customers.EXPECT().ApplyReservationDelta(gomock.Any(), gomock.Any(), customerID, int32(2)).Return(shared.QuotaCounters{Current: 2, Max: 30}, nil)

		_, err := cmds.Create(ctx, reqdto.CreateReservationRequest{Book: bookID, Quantity: 2}, ownerOf(customerID))
		assert.True(t, errs.Is(err, errs.ErrInvariantViolation))
		assert.Equal(t, float64(1), promtestutil.ToFloat64(m.ReservationsTotal.WithLabelValues(metrics.OperationCreate, metrics.OutcomeError)))
	})

	t.Run("invariant: storage check constraint", func(t *testing.T) {
		f := newTxFixture(t)
		cmds := newReservationCommands(f, nil)

		bookID, customerID := uuid.New(), uuid.New()
		checkErr := infra.WrapPgErr(discardLogger, "failed to adjust stock", &pgconn.PgError{Code: "23514", ConstraintName: "books_quantity_non_negative"})
		f.books.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), bookID).Return(builder.NewBookBuilder().WithQuantity(5).BuildReconstructed(bookID), nil)
		f.customers.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), customerID).Return(builder.NewCustomerBuilder().BuildReconstructed(customerID), nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.books.EXPECT().ApplyStockDelta(gomock.Any(), gomock.Any(), bookID, int32(-1)).Return(int32(0), checkErr)

		_, err := cmds.Create(ctx, reqdto.CreateReservationRequest{Book: bookID, Quantity: 1}, ownerOf(customerID))
		assert.True(t, errs.Is(err, errs.ErrInvariantViolation))
	})

	t.Run("staff may reserve for any customer", func(t *testing.T) {
		f := newTxFixture(t)
		cmds := newReservationCommands(f, nil)

		bookID, customerID := uuid.New(), uuid.New()
		f.books.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), bookID).Return(builder.NewBookBuilder().WithQuantity(1).BuildReconstructed(bookID), nil)
		f.customers.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), customerID).Return(builder.NewCustomerBuilder().BuildReconstructed(customerID), nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		f.books.EXPECT().ApplyStockDelta(gomock.Any(), gomock.Any(), bookID, int32(-1)).Return(int32(0), nil)
		f.customers.EXPECT().ApplyReservationDelta(gomock.Any(), gomock.Any(), customerID, int32(1)).Return(shared.QuotaCounters{Current: 1, Max: 30}, nil)
		f.cache.EXPECT().Invalidate(gomock.Any())

		staff := auth.Identity{UserID: uuid.New(), IsStaff: true}
		_, err := cmds.Create(ctx, reqdto.CreateReservationRequest{Book: bookID, Customer: &customerID, Quantity: 1}, staff)
		require.NoError(t, err)
	})
}

// =============================================================================
// Cancel Reservation Tests
// =============================================================================

func TestReservationCommands_Cancel(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*txFixture, *reservation.Reservation) {
		f := newTxFixture(t)
		r := reservation.ReconstructReservation(uuid.New(), uuid.New(), uuid.New(), 1, builder.FixedTime)
		f.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.ID()).Return(r, nil)
		return f, r
	}

	expectRelease := func(f *txFixture, r *reservation.Reservation) {
		f.books.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.BookID()).Return(builder.NewBookBuilder().WithQuantity(5).BuildReconstructed(r.BookID()), nil)
		f.customers.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.CustomerID()).Return(builder.NewCustomerBuilder().WithQuota(30, 1).BuildReconstructed(r.CustomerID()), nil)
		f.books.EXPECT().ApplyStockDelta(gomock.Any(), gomock.Any(), r.BookID(), int32(1)).Return(int32(6), nil)
		f.customers.EXPECT().ApplyReservationDelta(gomock.Any(), gomock.Any(), r.CustomerID(), int32(-1)).Return(shared.QuotaCounters{Current: 0, Max: 30}, nil)
		f.reservations.EXPECT().Delete(gomock.Any(), gomock.Any(), r.ID()).Return(nil)
		f.cache.EXPECT().Invalidate(gomock.Any())
	}

	t.Run("owner cancels: stock and quota restored", func(t *testing.T) {
		f, r := setup(t)
		expectRelease(f, r)

		err := newReservationCommands(f, nil).Cancel(ctx, r.ID(), ownerOf(r.CustomerID()))
		require.NoError(t, err)
	})

	t.Run("staff cancels someone else's reservation", func(t *testing.T) {
		f, r := setup(t)
		expectRelease(f, r)

		err := newReservationCommands(f, nil).Cancel(ctx, r.ID(), auth.Identity{UserID: uuid.New(), IsStaff: true})
		require.NoError(t, err)
	})

	t.Run("other customer sees not found", func(t *testing.T) {
		f, r := setup(t)

		err := newReservationCommands(f, nil).Cancel(ctx, r.ID(), ownerOf(uuid.New()))
		assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
	})

	t.Run("missing reservation", func(t *testing.T) {
		f := newTxFixture(t)
		id := uuid.New()
		f.reservations.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, infra.WrapRepoErr(discardLogger, infra.KindNotFound, "reservation not found", pgx.ErrNoRows))

		err := newReservationCommands(f, nil).Cancel(ctx, id, ownerOf(uuid.New()))
		assert.True(t, errs.Is(err, errs.ErrReservationNotFound))
	})

	t.Run("release beyond held counters is an invariant violation", func(t *testing.T) {
		f, r := setup(t)
		f.books.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.BookID()).Return(builder.NewBookBuilder().BuildReconstructed(r.BookID()), nil)
		f.customers.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), r.CustomerID()).Return(builder.NewCustomerBuilder().WithQuota(30, 0).BuildReconstructed(r.CustomerID()), nil)

		err := newReservationCommands(f, nil).Cancel(ctx, r.ID(), ownerOf(r.CustomerID()))
		assert.True(t, errs.Is(err, errs.ErrInvariantViolation))
	})
}
