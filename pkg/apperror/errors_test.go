package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrPermissionDenied, http.StatusForbidden},
		{ErrValidation, http.StatusBadRequest},
		{ErrDuplicate, http.StatusConflict},
		{errors.New("anything else"), http.StatusInternalServerError},
		// Wrapped sentinels still map.
		{fmt.Errorf("%w: email already registered", ErrDuplicate), http.StatusConflict},
		{fmt.Errorf("%w: please verify your email first", ErrUnauthorized), http.StatusUnauthorized},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MapErrorToStatus(tc.err), tc.err.Error())
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	wrapped := New(http.StatusNotFound, "user missing", ErrNotFound)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, ErrNotFound.Error(), wrapped.Error())
}
