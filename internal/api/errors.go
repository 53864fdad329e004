package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

// Status classes. Errors are marked with one of these and mapped to a status
// code when the response is written; anything unmarked is a server fault.
var (
	ErrBadRequest      = errors.New("bad request")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrUnprocessable   = errors.New("unprocessable")
)

const internalErrorMessage = "internal server error"

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnprocessable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrBadRequest)
}
