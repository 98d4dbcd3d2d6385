package brdModel

import "errors"

// Caller-visible errors. Upstream model/embedding failures never reach the
// caller directly - they degrade to fallback content inside the pipeline.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstreamUnavailable marks a recoverable model/embedding outage.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
