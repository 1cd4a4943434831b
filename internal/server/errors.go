// Package server provides the HTTP REST API for the candidate platform.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/kandidaten-platform/internal/parser"
	"github.com/jonathan/kandidaten-platform/internal/sharelink"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var missing *sharelink.MissingInputError
	var notFound *sharelink.NotFoundError
	var expired *sharelink.ExpiredError
	var upstream *parser.UpstreamError

	switch {
	case errors.As(err, &missing):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &expired):
		return http.StatusGone
	case errors.As(err, &upstream):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
