//go:build e2e

package customer_test

import (
	"net/http"
	"testing"

	"bookstore-api/internal/handler/dto/response"
	"bookstore-api/tests/common/authtest"
	"bookstore-api/tests/common/builder"
	"bookstore-api/tests/common/dbtest"
	"bookstore-api/tests/common/httptest"
	"bookstore-api/tests/common/testutil"
	"bookstore-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	customersURL = "/api/customers"
	signupURL    = customersURL + "/create"
)

type customerSuite struct {
	e2e.SharedSuite
}

func TestCustomerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(customerSuite))
}

func customerURL(id uuid.UUID) string {
	return customersURL + "/" + id.String()
}

func (s *customerSuite) signupBody(mutations ...func(map[string]any)) map[string]any {
	return testutil.DtoMap(s.T(), builder.NewAuthBuilder().BuildSignupDTO(), testutil.Nested("user", mutations...))
}

func (s *customerSuite) TestSignup() {
	tests := []struct {
		name           string
		setup          func()
		body           func() map[string]any
		expectedStatus int
		errorField     string
	}{
		{
			name:           "正常な登録",
			body:           func() map[string]any { return s.signupBody() },
			expectedStatus: http.StatusCreated,
		},
		{
			name: "ユーザー名の重複",
			setup: func() {
				dbtest.CreateTestUser(s.T(), s.DB, "reader", false)
			},
			body:           func() map[string]any { return s.signupBody() },
			expectedStatus: http.StatusBadRequest,
			errorField:     "username",
		},
		{
			name:           "短いパスワード",
			body:           func() map[string]any { return s.signupBody(testutil.Field("password", "short")) },
			expectedStatus: http.StatusBadRequest,
			errorField:     "user.password",
		},
		{
			name:           "不正なメールアドレス",
			body:           func() map[string]any { return s.signupBody(testutil.Field("email", "not-an-email")) },
			expectedStatus: http.StatusBadRequest,
			errorField:     "user.email",
		},
		{
			name:           "ユーザーなし",
			body:           func() map[string]any { return map[string]any{"mailing_address": "1 Main St"} },
			expectedStatus: http.StatusBadRequest,
			errorField:     "user.username",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			if tt.setup != nil {
				tt.setup()
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, tt.body(), "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.errorField != "" {
				httptest.AssertFieldError(t, w, tt.errorField)
				return
			}

			var created response.CreatedResponse
			httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
			assert.Equal(t, "Created customer", created.Message)

			// 登録したユーザーでログインできること
			tokens := authtest.LoginUser(t, s.Router, "reader", "password123")
			got := httptest.PerformRequest(t, s.Router, http.MethodGet, customersURL+"/"+created.ID, nil, tokens.Access)
			var view response.CustomerResponse
			httptest.AssertSuccessResponse(t, got, http.StatusOK, &view)
			assert.Equal(t, "reader", view.User.Username)
			assert.Equal(t, int32(30), view.MaxReservations)
			assert.Equal(t, int32(0), view.CurrentReservations)
		})
	}
}

func (s *customerSuite) TestAccess() {
	tests := []struct {
		name           string
		token          func(self uuid.UUID) string
		target         func(self uuid.UUID) uuid.UUID
		expectedStatus int
	}{
		{
			name:           "本人",
			token:          func(uuid.UUID) string { return authtest.LoginUser(s.T(), s.Router, "owner", dbtest.DefaultPassword).Access },
			target:         func(self uuid.UUID) uuid.UUID { return self },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "スタッフ",
			token:          func(uuid.UUID) string { return authtest.LoginAdmin(s.T(), s.Router) },
			target:         func(self uuid.UUID) uuid.UUID { return self },
			expectedStatus: http.StatusOK,
		},
		{
			name: "他人",
			token: func(uuid.UUID) string {
				dbtest.CreateTestCustomer(s.T(), s.DB, "stranger", 30)
				return authtest.LoginUser(s.T(), s.Router, "stranger", dbtest.DefaultPassword).Access
			},
			target:         func(self uuid.UUID) uuid.UUID { return self },
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "スタッフが存在しない顧客を参照",
			token:          func(uuid.UUID) string { return authtest.LoginAdmin(s.T(), s.Router) },
			target:         func(uuid.UUID) uuid.UUID { return uuid.New() },
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			_, self := dbtest.CreateTestCustomer(t, s.DB, "owner", 30)
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, customerURL(tt.target(self)), nil, tt.token(self))
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *customerSuite) TestListAndLookup() {
	s.Run("スタッフによる一覧", func() {
		t := s.T()

		dbtest.CreateTestCustomer(t, s.DB, "first", 30)
		dbtest.CreateTestCustomer(t, s.DB, "second", 30)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, customersURL, nil, authtest.LoginAdmin(t, s.Router))
		var page response.PageResponse[response.CustomerResponse]
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		assert.Equal(t, int64(2), page.Count)
	})

	s.Run("顧客は一覧できない", func() {
		t := s.T()

		dbtest.CreateTestCustomer(t, s.DB, "first", 30)
		token := authtest.LoginUser(t, s.Router, "first", dbtest.DefaultPassword).Access

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, customersURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("ユーザー名で検索", func() {
		t := s.T()

		_, id := dbtest.CreateTestCustomer(t, s.DB, "findme", 30)
		token := authtest.LoginAdmin(t, s.Router)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, customersURL+"/lookup?username=findme", nil, token)
		var view response.CustomerResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		assert.Equal(t, id.String(), view.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, customersURL+"/lookup?username=ghost", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Customer not found")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, customersURL+"/lookup", nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
		httptest.AssertFieldError(t, w, "username")
	})
}

func (s *customerSuite) TestUpdate() {
	tests := []struct {
		name           string
		body           map[string]any
		expectedStatus int
		check          func(view response.CustomerResponse)
	}{
		{
			name:           "フラットな項目",
			body:           map[string]any{"first_name": "Grace", "mailing_address": "  1 Main St  "},
			expectedStatus: http.StatusOK,
			check: func(view response.CustomerResponse) {
				assert.Equal(s.T(), "Grace", view.User.FirstName)
				require.NotNil(s.T(), view.MailingAddress)
				assert.Equal(s.T(), "1 Main St", *view.MailingAddress)
			},
		},
		{
			name:           "ネストした項目",
			body:           map[string]any{"user": map[string]any{"email": "new@example.com"}},
			expectedStatus: http.StatusOK,
			check: func(view response.CustomerResponse) {
				assert.Equal(s.T(), "new@example.com", view.User.Email)
			},
		},
		{
			name:           "住所のクリア",
			body:           map[string]any{"mailing_address": ""},
			expectedStatus: http.StatusOK,
			check: func(view response.CustomerResponse) {
				assert.Nil(s.T(), view.MailingAddress)
			},
		},
		{
			name:           "不正なメールアドレス",
			body:           map[string]any{"email": "broken"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "変更できない項目",
			body:           map[string]any{"max_reservations": 100},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			_, id := dbtest.CreateTestCustomer(t, s.DB, "owner", 30)
			_, err := s.DB.Exec(t.Context(), "UPDATE customers SET mailing_address = 'old' WHERE id = $1", id)
			require.NoError(t, err)
			token := authtest.LoginUser(t, s.Router, "owner", dbtest.DefaultPassword).Access

			w := httptest.PerformRequest(t, s.Router, http.MethodPatch, customerURL(id), tt.body, token)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.check != nil {
				var view response.CustomerResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
				tt.check(view)
			}
		})
	}
}

func (s *customerSuite) TestDelete() {
	s.Run("予約を解放して削除", func() {
		t := s.T()

		_, id := dbtest.CreateTestCustomer(t, s.DB, "leaving", 30)
		token := authtest.LoginUser(t, s.Router, "leaving", dbtest.DefaultPassword).Access
		bookID := dbtest.CreateTestBook(t, s.DB, "Kept", 4)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations",
			map[string]any{"book": bookID, "quantity": 3}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		require.Equal(t, int32(1), dbtest.BookQuantity(t, s.DB, bookID))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, customerURL(id), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		assert.Equal(t, int32(4), dbtest.BookQuantity(t, s.DB, bookID), "stock is returned")
		assert.Equal(t, 0, dbtest.CountRows(t, s.DB, "customers"))
		assert.Equal(t, 0, dbtest.CountRows(t, s.DB, "reservations"))

		// ユーザーも削除されているためトークンは無効
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reservations", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "User not found or inactive")
	})
}
