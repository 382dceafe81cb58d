package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/samcharles93/intseq/internal/oeis"
	"github.com/samcharles93/intseq/internal/parser"
	"github.com/samcharles93/intseq/internal/sequence"
	"github.com/samcharles93/intseq/internal/token"
)

// statusClientClosedRequest is the de facto status for a request whose
// client went away before the response was written.
const statusClientClosedRequest = 499

// apiError is the HTTP rendering of a pipeline error.
type apiError struct {
	status int
	typ    string
	code   string
}

func classify(err error) apiError {
	var lexErr *token.LexError
	switch {
	case errors.As(err, &lexErr), errors.Is(err, parser.ErrSyntax):
		return apiError{http.StatusBadRequest, "invalid_request_error", "syntax_error"}
	case errors.Is(err, parser.ErrMalformedLiteral):
		return apiError{http.StatusBadRequest, "invalid_request_error", "malformed_literal"}
	case errors.Is(err, sequence.ErrNoModel):
		return apiError{http.StatusUnprocessableEntity, "expansion_error", "no_model"}
	case errors.Is(err, sequence.ErrPrefixNotFound):
		return apiError{http.StatusUnprocessableEntity, "expansion_error", "prefix_not_found"}
	case errors.Is(err, sequence.ErrDataExhausted):
		return apiError{http.StatusUnprocessableEntity, "expansion_error", "data_exhausted"}
	case errors.Is(err, sequence.ErrDegenerate):
		return apiError{http.StatusUnprocessableEntity, "expansion_error", "degenerate"}
	case errors.Is(err, sequence.ErrTooManyTerms):
		return apiError{http.StatusUnprocessableEntity, "expansion_error", "too_many_terms"}
	case errors.Is(err, oeis.ErrMalformedData):
		return apiError{http.StatusBadGateway, "upstream_error", "malformed_data"}
	case errors.Is(err, oeis.ErrProtocol):
		return apiError{http.StatusBadGateway, "upstream_error", "protocol_error"}
	case errors.Is(err, context.DeadlineExceeded):
		return apiError{http.StatusGatewayTimeout, "upstream_error", "timeout"}
	case errors.Is(err, context.Canceled):
		return apiError{statusClientClosedRequest, "request_error", "canceled"}
	default:
		// Past parsing, the database is the only thing left that fails
		// with an unclassified error.
		return apiError{http.StatusBadGateway, "upstream_error", "lookup_failed"}
	}
}
