package api

import (
	"errors"
	"net/http"

	"bookstore-api/internal/domain/book"
	reqdto "bookstore-api/internal/handler/dto/request"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	cmds commands.BookCommands
	q    queries.BookQueries
}

func NewBookHandler(cmds commands.BookCommands, q queries.BookQueries) *BookHandler {
	return &BookHandler{cmds: cmds, q: q}
}

var bookFieldErrors = []struct {
	err   error
	field string
}{
	{book.ErrInvalidTitle, "title"},
	{book.ErrInvalidAuthor, "author"},
	{book.ErrInvalidGenre, "genre"},
	{book.ErrInvalidQuantity, "quantity"},
	{book.ErrInvalidImageURL, "image_url"},
}

// @Summary List books
// @Description Paginated catalog ordered by creation time (staff only)
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} resdto.PageResponse[resdto.BookResponse]
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /books [get]
func (h *BookHandler) List(c *gin.Context) {
	req, ok := parsePage(c)
	if !ok {
		return
	}
	page, err := h.q.List(c.Request.Context(), req)
	if err != nil {
		abortPageError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPageResponse(requestURL(c), page, resdto.FromBookView))
}

// @Summary Get book
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Success 200 {object} resdto.BookResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "Book not found")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Book not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookView(*view))
}

// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookRequest true "Book"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req reqdto.BookRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		h.abortWrite(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{Message: "Created book", ID: id.String()})
}

// @Summary Replace book
// @Tags books
// @Accept json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Param request body reqdto.BookRequest true "Book"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /books/{id} [put]
func (h *BookHandler) Replace(c *gin.Context) {
	id, ok := parseID(c, "id", "Book not found")
	if !ok {
		return
	}
	var req reqdto.BookRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.Replace(c.Request.Context(), id, req); err != nil {
		h.abortWrite(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete book
// @Description Cancels every live reservation on the book, then deletes it
// @Tags books
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "Book not found")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		h.abortWrite(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Search books
// @Description Union of substring, trigram and full-text matches
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param query query string true "Search text (3+ characters)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} resdto.PageResponse[resdto.BookResponse]
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /books/search [get]
func (h *BookHandler) Search(c *gin.Context) {
	req, ok := parsePage(c)
	if !ok {
		return
	}
	page, err := h.q.Search(c.Request.Context(), c.Query("query"), req)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidSearchQuery):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing or invalid query", nil)
		default:
			abortPageError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.NewPageResponse(requestURL(c), page, resdto.FromBookView))
}

// @Summary Popular books
// @Description Books ordered by popularity, capped at 999
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} resdto.PageResponse[resdto.BookResponse]
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /books/popular [get]
func (h *BookHandler) Popular(c *gin.Context) {
	req, ok := parsePage(c)
	if !ok {
		return
	}
	page, err := h.q.Popular(c.Request.Context(), req)
	if err != nil {
		abortPageError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPageResponse(requestURL(c), page, resdto.FromBookView))
}

func (h *BookHandler) abortWrite(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Book not found", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		for _, fe := range bookFieldErrors {
			if errors.Is(err, fe.err) {
				httperr.AbortWithError(c, http.StatusBadRequest, err, fe.err.Error(), httperr.Field(fe.field, fe.err.Error()))
				return
			}
		}
		abortValidation(c, err)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
