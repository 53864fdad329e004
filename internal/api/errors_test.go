package api

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "bad request", err: badRequest("field %q is wrong", "a"), want: http.StatusBadRequest},
		{name: "wrapped bad request", err: errors.Wrap(badRequest("x"), "context"), want: http.StatusBadRequest},
		{name: "too large", err: errors.Mark(errors.New("big"), ErrPayloadTooLarge), want: http.StatusRequestEntityTooLarge},
		{name: "unprocessable", err: errors.Mark(errors.New("inf"), ErrUnprocessable), want: http.StatusUnprocessableEntity},
		{name: "unmarked", err: errors.New("disk on fire"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(tt.err))
		})
	}
}

func TestBadRequestKeepsMessage(t *testing.T) {
	err := badRequest("field %q must be a number, got %s", "a", "string")
	assert.Equal(t, `field "a" must be a number, got string`, err.Error())
}
