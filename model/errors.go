package model

import "errors"

// Error kinds surfaced by the query pipeline. Callers match them with
// errors.Is to map failures to their own error surface.
var (
	// ErrEmptyQuery is a client-input error, rejected before classification
	ErrEmptyQuery = errors.New("query is empty")
	// ErrMalformedHistory is a client-input error for history turns with unknown roles
	ErrMalformedHistory = errors.New("conversation history is malformed")
	// ErrDatastoreUnavailable aborts the request; no degraded retrieval fallback exists
	ErrDatastoreUnavailable = errors.New("datastore unavailable")
	// ErrEmbeddingFailure aborts the request; embedding calls are never retried
	ErrEmbeddingFailure = errors.New("embedding failure")
	// ErrSynthesisFailure aborts the request; the pipeline never fabricates an
	// answer from raw document dumps when synthesis fails
	ErrSynthesisFailure = errors.New("answer synthesis failure")
)
