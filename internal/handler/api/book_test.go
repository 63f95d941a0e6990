//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"bookstore-api/internal/domain/auth"
	"bookstore-api/internal/domain/book"
	"bookstore-api/internal/handler/api"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/queries"
	"bookstore-api/tests/common/builder"
	"bookstore-api/tests/common/httptest"
	"bookstore-api/tests/common/testutil"
	commandsmock "bookstore-api/tests/mock/commands"
	queriesmock "bookstore-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookCommands
	mockQueries  *queriesmock.MockBookQueries
}

func (s *BookHandlerTestSuite) SetupTest() {
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookQueries(s.mockCtrl)
	h := api.NewBookHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/books", asIdentity(auth.Identity{UserID: uuid.New(), IsStaff: true}))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/search", h.Search)
	g.GET("/popular", h.Popular)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Replace)
	g.DELETE("/:id", h.Delete)
}

func (s *BookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookHandlerTestSuite))
}

func pageOf(views []queries.BookView, count int64, page, size int) *queries.Page[queries.BookView] {
	return &queries.Page[queries.BookView]{Items: views, Count: count, Page: page, PageSize: size}
}

func (s *BookHandlerTestSuite) TestList() {
	s.Run("success: middle page links both neighbours", func() {
		views := []queries.BookView{builder.NewBookBuilder().BuildView()}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.PageRequest{Page: 2, PageSize: 1}).
			Return(pageOf(views, 3, 2, 1), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books?page=2&page_size=1", nil, "")

		var response resdto.PageResponse[resdto.BookResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(3), response.Count)
		s.Require().Len(response.Results, 1)
		s.Equal(views[0].ID.String(), response.Results[0].ID)
		s.Equal("Dune", response.Results[0].Title)
		s.Require().NotNil(response.Next)
		s.Equal("http://example.com/books?page=3&page_size=1", *response.Next)
		s.Require().NotNil(response.Previous)
		s.Equal("http://example.com/books?page_size=1", *response.Previous)
	})

	s.Run("error: page past the end", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, queries.ErrInvalidPage)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books?page=9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Invalid page.")
	})

	s.Run("error: non-numeric page", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books?page=abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Invalid page.")
	})
}

func (s *BookHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success", func() {
		view := builder.NewBookBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(&view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/"+id.String(), nil, "")

		var response resdto.BookResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Frank Herbert", response.Author)
		s.Equal(int32(5), response.Quantity)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrBookNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Book not found")
	})

	s.Run("error: malformed id is not found", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/42", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Book not found")
	})
}

func (s *BookHandlerTestSuite) TestCreate() {
	reqBody := builder.NewBookBuilder().BuildDTO()

	s.Run("success: returns 201 with id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(id, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/books", reqBody, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Created book", response.Message)
		s.Equal(id.String(), response.ID)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
			field  string
		}{
			{name: "missing quantity", mutate: testutil.Field("quantity", nil), field: "quantity"},
			{name: "negative quantity", mutate: testutil.Field("quantity", -1), field: "quantity"},
			{name: "missing title", mutate: testutil.Field("title", nil), field: "title"},
			{name: "genre too long", mutate: testutil.Field("genre", strings.Repeat("g", 101)), field: "genre"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/books", requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
				httptest.AssertFieldError(s.T(), rec, tc.field)
			})
		}
	})

	s.Run("error: domain validation names the field", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(book.ErrInvalidTitle, errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/books", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "title")
		httptest.AssertFieldError(s.T(), rec, "title")
	})
}

func (s *BookHandlerTestSuite) TestReplaceAndDelete() {
	id := uuid.New()
	reqBody := builder.NewBookBuilder().WithQuantity(8).BuildDTO()

	s.Run("replace: 204", func() {
		s.mockCommands.EXPECT().Replace(gomock.Any(), id, reqBody).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/books/"+id.String(), reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("replace: not found", func() {
		s.mockCommands.EXPECT().Replace(gomock.Any(), id, reqBody).Return(errs.ErrBookNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/books/"+id.String(), reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Book not found")
	})

	s.Run("delete: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/books/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("delete: storage failure", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(errors.New("db down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/books/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *BookHandlerTestSuite) TestSearchAndPopular() {
	s.Run("search: short query", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "du", gomock.Any()).Return(nil, queries.ErrInvalidSearchQuery)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/search?query=du", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing or invalid query")
	})

	s.Run("search: results", func() {
		views := []queries.BookView{builder.NewBookBuilder().BuildView()}
		s.mockQueries.EXPECT().Search(gomock.Any(), "dune", queries.PageRequest{Page: 1, PageSize: queries.DefaultPageSize}).
			Return(pageOf(views, 1, 1, queries.DefaultPageSize), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/search?query=dune", nil, "")

		var response resdto.PageResponse[resdto.BookResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Results, 1)
		s.Nil(response.Next)
		s.Nil(response.Previous)
	})

	s.Run("popular: empty first page", func() {
		s.mockQueries.EXPECT().Popular(gomock.Any(), gomock.Any()).Return(pageOf([]queries.BookView{}, 0, 1, 50), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/books/popular", nil, "")

		var response resdto.PageResponse[resdto.BookResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Results)
		s.Empty(response.Results)
	})
}
