package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingIdentity = errors.New("identity missing from context")

func parseID(c *gin.Context, param, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		// unparseable ids cannot exist
		httperr.AbortWithError(c, http.StatusNotFound, err, msg, nil)
		return uuid.Nil, false
	}
	return id, true
}

func parsePage(c *gin.Context) (queries.PageRequest, bool) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Invalid page.", nil)
			return queries.PageRequest{}, false
		}
		page = n
	}
	// bad page sizes fall back to the default
	size, _ := strconv.Atoi(c.Query("page_size"))

	req, err := queries.NewPageRequest(page, size)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Invalid page.", nil)
		return queries.PageRequest{}, false
	}
	return req, true
}

// requestURL is the absolute URL of the current request, used for pagination links.
func requestURL(c *gin.Context) *url.URL {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	u := *c.Request.URL
	u.Scheme = scheme
	u.Host = c.Request.Host
	return &u
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.FieldErrors(err))
		return false
	}
	return true
}

// abortValidation reports a field-level use-case validation failure as 400.
func abortValidation(c *gin.Context, err error) {
	var fe *commands.FieldError
	if errors.As(err, &fe) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, fe.Err.Error(), httperr.Field(fe.Field, fe.Err.Error()))
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
}

func abortPageError(c *gin.Context, err error) {
	if errors.Is(err, queries.ErrInvalidPage) {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Invalid page.", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
