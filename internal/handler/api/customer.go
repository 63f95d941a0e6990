package api

import (
	"errors"
	"net/http"

	"bookstore-api/internal/domain/user"
	reqdto "bookstore-api/internal/handler/dto/request"
	resdto "bookstore-api/internal/handler/dto/response"
	"bookstore-api/internal/handler/httperr"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/usecase/commands"
	"bookstore-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

// @Summary Sign up
// @Description Create a user and its customer profile
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /customers/create [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Signup(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			h.abortProfileValidation(c, err)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{Message: "Created customer", ID: id.String()})
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} resdto.PageResponse[resdto.CustomerResponse]
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	req, ok := parsePage(c)
	if !ok {
		return
	}
	page, err := h.q.List(c.Request.Context(), req)
	if err != nil {
		abortPageError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPageResponse(requestURL(c), page, func(v queries.CustomerView) resdto.CustomerResponse {
		return resdto.FromCustomerView(&v)
	}))
}

// @Summary Look up customer by username
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param username query string true "Username"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/lookup [get]
func (h *CustomerHandler) Lookup(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("username query parameter missing"),
			"Missing username", httperr.Field("username", "This field is required."))
		return
	}
	view, err := h.q.GetByUsername(c.Request.Context(), username)
	if err != nil {
		h.abortRead(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "Customer not found")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.abortRead(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary Update customer
// @Description Partial update of name, email and mailing address
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.UpdateCustomerRequest true "Changes"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [patch]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "Customer not found")
	if !ok {
		return
	}
	var req reqdto.UpdateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdateProfile(c.Request.Context(), id, req.ToChanges()); err != nil {
		switch {
		case errors.Is(err, errs.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			h.abortProfileValidation(c, err)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.abortRead(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary Delete customer
// @Description Cancels every live reservation, then deletes the customer and its user
// @Tags customers
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "Customer not found")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) abortRead(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCustomerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// profile errors raised by the user entity carry no field, so map them here
func (h *CustomerHandler) abortProfileValidation(c *gin.Context, err error) {
	var fe *commands.FieldError
	switch {
	case errors.As(err, &fe):
		abortValidation(c, err)
	case errors.Is(err, user.ErrInvalidEmail):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.Field("email", "Enter a valid email address."))
	case errors.Is(err, user.ErrInvalidName):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.Field("name", user.ErrInvalidName.Error()))
	default:
		abortValidation(c, err)
	}
}
