//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"bookstore-api/internal/domain/user"
	"bookstore-api/internal/handler/api"
	reqdto "bookstore-api/internal/handler/dto/request"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/pkg/ptr"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/tests/common/builder"
	"bookstore-api/tests/common/httptest"
	commandsmock "bookstore-api/tests/mock/commands"
	queriesmock "bookstore-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CustomerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCustomerCommands
	mockQueries  *queriesmock.MockCustomerQueries
	customerID   uuid.UUID
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCustomerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCustomerQueries(s.mockCtrl)
	s.customerID = uuid.New()
	h := api.NewCustomerHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/customers/create", h.Create)
	g := s.router.Group("/customers", asIdentity(customerIdentity(s.customerID)))
	g.GET("", h.List)
	g.GET("/lookup", h.Lookup)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) TestCreate() {
	url := "/customers/create"
	reqBody := builder.NewAuthBuilder().BuildSignupDTO()

	s.Run("success: returns 201 with the customer id", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), reqBody).Return(s.customerID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Created customer", response.Message)
		s.Equal(s.customerID.String(), response.ID)
	})

	s.Run("error: duplicate username is a field error", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), reqBody).
			Return(uuid.Nil, errs.Mark(&commands.FieldError{Field: "username", Err: commands.ErrUsernameTaken}, errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already exists")
		httptest.AssertFieldError(s.T(), rec, "username")
	})

	s.Run("error: invalid email from the entity", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), reqBody).
			Return(uuid.Nil, errs.Mark(user.ErrInvalidEmail, errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		httptest.AssertFieldError(s.T(), rec, "email")
	})

	s.Run("error: binding reports nested field paths", func() {
		body := map[string]any{"user": map[string]any{"username": "reader", "password": "short"}}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		httptest.AssertFieldError(s.T(), rec, "user.password")
	})

	s.Run("error: quota fields are not writable", func() {
		body := map[string]any{
			"user":             map[string]any{"username": "reader", "password": "password123"},
			"max_reservations": 1000,
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CustomerHandlerTestSuite) TestLookup() {
	s.Run("success", func() {
		view := builder.NewCustomerBuilder().BuildView()
		s.mockQueries.EXPECT().GetByUsername(gomock.Any(), "reader").Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/lookup?username=reader", nil, "")

		var response resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID.String(), response.ID)
		s.Equal("reader", response.User.Username)
		s.Equal(int32(30), response.MaxReservations)
	})

	s.Run("error: unknown username", func() {
		s.mockQueries.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, errs.ErrCustomerNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/lookup?username=ghost", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})

	s.Run("error: missing username", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/lookup", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		httptest.AssertFieldError(s.T(), rec, "username")
	})
}

func (s *CustomerHandlerTestSuite) TestUpdate() {
	url := func() string { return "/customers/" + s.customerID.String() }

	s.Run("success: nested user fields win over flat ones", func() {
		body := map[string]any{
			"first_name":      "Flat",
			"user":            map[string]any{"first_name": "Nested"},
			"mailing_address": "1 Main St",
		}
		view := builder.NewCustomerBuilder().BuildView()

		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), s.customerID, reqdto.ProfileChanges{
			FirstName:      ptr.Of("Nested"),
			MailingAddress: ptr.Of("1 Main St"),
		}).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.customerID).Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url(), body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resdto.CustomerResponse{})
	})

	s.Run("error: quota fields are not writable", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url(), map[string]any{"current_reservations": 0}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: not found", func() {
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), s.customerID, gomock.Any()).Return(errs.ErrCustomerNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url(), map[string]any{"last_name": "X"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})
}

func (s *CustomerHandlerTestSuite) TestDelete() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.customerID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/customers/"+s.customerID.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: not found", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.customerID).Return(errs.ErrCustomerNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/customers/"+s.customerID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})
}
