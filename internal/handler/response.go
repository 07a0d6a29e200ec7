package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ridehail/internal/repository"
)

var (
	errInvalidID      = errors.New("invalid id")
	errMissingID      = errors.New("id is required")
	errInvalidBody    = errors.New("invalid request body")
	errInvalidPayment = errors.New("invalid payment state")
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Ref is the JSON shape of a reference to another entity.
type Ref struct {
	ID int64 `json:"id"`
}

// refOf returns nil for an unset reference so it serializes as null.
func refOf(id int64) *Ref {
	if id == 0 {
		return nil
	}
	return &Ref{ID: id}
}

func (r *Ref) id() int64 {
	if r == nil {
		return 0
	}
	return r.ID
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps handler/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, errInvalidID),
		errors.Is(err, errMissingID),
		errors.Is(err, errInvalidBody),
		errors.Is(err, errInvalidPayment),
		errors.Is(err, repository.ErrInvalidReference),
		errors.Is(err, repository.ErrInvalidValue):
		return http.StatusBadRequest

	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
