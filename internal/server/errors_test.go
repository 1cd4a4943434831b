package server

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jonathan/kandidaten-platform/internal/parser"
	"github.com/jonathan/kandidaten-platform/internal/sharelink"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "missing input",
			err:  &sharelink.MissingInputError{Field: "kandidatId"},
			want: http.StatusBadRequest,
		},
		{
			name: "not found",
			err:  &sharelink.NotFoundError{Resource: "share link", Ref: "abc"},
			want: http.StatusNotFound,
		},
		{
			name: "expired",
			err:  &sharelink.ExpiredError{Token: "abc", ExpiresAt: time.Now()},
			want: http.StatusGone,
		},
		{
			name: "upstream failure",
			err:  &parser.UpstreamError{URL: "https://parser", StatusCode: 502},
			want: http.StatusInternalServerError,
		},
		{
			name: "generic",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestHTTPStatus_WrappedErrors(t *testing.T) {
	err := errors.Join(errors.New("resolving"), &sharelink.ExpiredError{Token: "abc"})
	assert.Equal(t, http.StatusGone, HTTPStatus(err))
}
