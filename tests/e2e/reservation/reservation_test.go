//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"bookstore-api/internal/handler/dto/response"
	"bookstore-api/tests/common/authtest"
	"bookstore-api/tests/common/dbtest"
	"bookstore-api/tests/common/httptest"
	"bookstore-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reservationsURL = "/api/reservations"

type reservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func reservationURL(id uuid.UUID) string {
	return reservationsURL + "/" + id.String()
}

func (s *reservationSuite) reserve(token string, body map[string]any) (int, uuid.UUID) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, body, token)
	if w.Code != http.StatusCreated {
		return w.Code, uuid.Nil
	}
	var created response.CreatedResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	return w.Code, uuid.MustParse(created.ID)
}

func (s *reservationSuite) TestCreate() {
	tests := []struct {
		name            string
		stock           int32
		quota           int32
		held            int32
		body            func(bookID, customerID uuid.UUID) map[string]any
		asStaff         bool
		expectedStatus  int
		expectedMsg     string
		expectedStock   int32
		expectedCurrent int32
	}{
		{
			name:            "自分の予約",
			stock:           5,
			quota:           30,
			body:            func(b, _ uuid.UUID) map[string]any { return map[string]any{"book": b, "quantity": 2} },
			expectedStatus:  http.StatusCreated,
			expectedStock:   3,
			expectedCurrent: 2,
		},
		{
			name:            "在庫ちょうど",
			stock:           2,
			quota:           30,
			body:            func(b, _ uuid.UUID) map[string]any { return map[string]any{"book": b, "quantity": 2} },
			expectedStatus:  http.StatusCreated,
			expectedStock:   0,
			expectedCurrent: 2,
		},
		{
			name:            "スタッフによる代理予約",
			stock:           5,
			quota:           30,
			body:            func(b, c uuid.UUID) map[string]any { return map[string]any{"book": b, "customer": c, "quantity": 1} },
			asStaff:         true,
			expectedStatus:  http.StatusCreated,
			expectedStock:   4,
			expectedCurrent: 1,
		},
		{
			name:            "在庫不足",
			stock:           1,
			quota:           30,
			body:            func(b, _ uuid.UUID) map[string]any { return map[string]any{"book": b, "quantity": 2} },
			expectedStatus:  http.StatusBadRequest,
			expectedMsg:     "Not enough books in stock",
			expectedStock:   1,
			expectedCurrent: 0,
		},
		{
			name:            "上限超過",
			stock:           10,
			quota:           3,
			held:            2,
			body:            func(b, _ uuid.UUID) map[string]any { return map[string]any{"book": b, "quantity": 2} },
			expectedStatus:  http.StatusBadRequest,
			expectedMsg:     "Reservation limit exceeded",
			expectedStock:   10,
			expectedCurrent: 2,
		},
		{
			name:            "他人の代理予約",
			stock:           5,
			quota:           30,
			body:            func(b, _ uuid.UUID) map[string]any { return map[string]any{"book": b, "customer": uuid.New(), "quantity": 1} },
			expectedStatus:  http.StatusForbidden,
			expectedStock:   5,
			expectedCurrent: 0,
		},
		{
			name:            "存在しない本",
			stock:           5,
			quota:           30,
			body:            func(_, _ uuid.UUID) map[string]any { return map[string]any{"book": uuid.New(), "quantity": 1} },
			expectedStatus:  http.StatusNotFound,
			expectedMsg:     "Book not found",
			expectedStock:   5,
			expectedCurrent: 0,
		},
		{
			name:            "負の数量",
			stock:           5,
			quota:           30,
			body:            func(b, _ uuid.UUID) map[string]any { return map[string]any{"book": b, "quantity": -1} },
			expectedStatus:  http.StatusBadRequest,
			expectedStock:   5,
			expectedCurrent: 0,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			bookID := dbtest.CreateTestBook(t, s.DB, "Stocked", tt.stock)
			_, customerID := dbtest.CreateTestCustomer(t, s.DB, "reader", tt.quota)
			if tt.held > 0 {
				_, err := s.DB.Exec(t.Context(), "UPDATE customers SET current_reservations = $2 WHERE id = $1", customerID, tt.held)
				require.NoError(t, err)
			}

			token := authtest.LoginUser(t, s.Router, "reader", dbtest.DefaultPassword).Access
			if tt.asStaff {
				token = authtest.LoginAdmin(t, s.Router)
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, tt.body(bookID, customerID), token)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedMsg != "" {
				httptest.AssertErrorResponse(t, w, tt.expectedStatus, tt.expectedMsg)
			}

			assert.Equal(t, tt.expectedStock, dbtest.BookQuantity(t, s.DB, bookID))
			assert.Equal(t, tt.expectedCurrent, dbtest.CurrentReservations(t, s.DB, customerID))
		})
	}
}

func (s *reservationSuite) TestListAndCancel() {
	s.Run("一覧と取消", func() {
		t := s.T()

		bookID := dbtest.CreateTestBook(t, s.DB, "Listed", 5)
		_, customerID := dbtest.CreateTestCustomer(t, s.DB, "reader", 30)
		token := authtest.LoginUser(t, s.Router, "reader", dbtest.DefaultPassword).Access

		status, id := s.reserve(token, map[string]any{"book": bookID, "quantity": 2})
		require.Equal(t, http.StatusCreated, status)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, token)
		var items []response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &items)
		require.Len(t, items, 1)
		assert.Equal(t, id.String(), items[0].ID)
		assert.Equal(t, customerID.String(), items[0].Customer)
		assert.Equal(t, "Listed", items[0].Book.Title)
		assert.Equal(t, int32(2), items[0].Quantity)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationURL(id), nil, token)
		var msg response.MessageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &msg)
		assert.Equal(t, "Deleted reservation", msg.Message)

		assert.Equal(t, int32(5), dbtest.BookQuantity(t, s.DB, bookID))
		assert.Equal(t, int32(0), dbtest.CurrentReservations(t, s.DB, customerID))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationURL(id), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")
	})

	s.Run("他人の予約は見えない", func() {
		t := s.T()

		bookID := dbtest.CreateTestBook(t, s.DB, "Private", 5)
		dbtest.CreateTestCustomer(t, s.DB, "owner", 30)
		dbtest.CreateTestCustomer(t, s.DB, "stranger", 30)
		ownerToken := authtest.LoginUser(t, s.Router, "owner", dbtest.DefaultPassword).Access
		strangerToken := authtest.LoginUser(t, s.Router, "stranger", dbtest.DefaultPassword).Access

		status, id := s.reserve(ownerToken, map[string]any{"book": bookID, "quantity": 1})
		require.Equal(t, http.StatusCreated, status)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, strangerToken)
		var items []response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &items)
		assert.Empty(t, items)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationURL(id), nil, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")
		assert.Equal(t, int32(4), dbtest.BookQuantity(t, s.DB, bookID))

		// スタッフは誰の予約でも取り消せる
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationURL(id), nil, authtest.LoginAdmin(t, s.Router))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, int32(5), dbtest.BookQuantity(t, s.DB, bookID))
	})
}

func (s *reservationSuite) TestConcurrentReservations() {
	s.Run("在庫を超えて予約されない", func() {
		t := s.T()

		const (
			stock   = 5
			callers = 12
		)
		bookID := dbtest.CreateTestBook(t, s.DB, "Scarce", stock)

		tokens := make([]string, callers)
		for i := range callers {
			username := fmt.Sprintf("racer%02d", i)
			dbtest.CreateTestCustomer(t, s.DB, username, 30)
			tokens[i] = authtest.LoginUser(t, s.Router, username, dbtest.DefaultPassword).Access
		}

		codes := make([]int, callers)
		var wg sync.WaitGroup
		for i := range callers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
					map[string]any{"book": bookID, "quantity": 1}, tokens[i])
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusBadRequest:
			default:
				t.Errorf("unexpected status %d", code)
			}
		}
		assert.Equal(t, stock, created)
		assert.Equal(t, int32(0), dbtest.BookQuantity(t, s.DB, bookID))
		assert.Equal(t, stock, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("上限を超えて予約されない", func() {
		t := s.T()

		const (
			quota   = 3
			callers = 8
		)
		bookID := dbtest.CreateTestBook(t, s.DB, "Plenty", 100)
		_, customerID := dbtest.CreateTestCustomer(t, s.DB, "greedy", quota)
		token := authtest.LoginUser(t, s.Router, "greedy", dbtest.DefaultPassword).Access

		var wg sync.WaitGroup
		for range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
					map[string]any{"book": bookID, "quantity": 1}, token)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(quota), dbtest.CurrentReservations(t, s.DB, customerID))
		assert.Equal(t, int32(100-quota), dbtest.BookQuantity(t, s.DB, bookID))
	})
}
