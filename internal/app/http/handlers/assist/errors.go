package assist

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable: the outbound call could not be completed at all,
	// including timeouts.
	ErrUnavailable = errors.New("completion service unavailable")
	// ErrEmptyCompletion: the service answered successfully but produced no
	// content.
	ErrEmptyCompletion = errors.New("empty completion response")
	// ErrMalformedResponse: the service produced content that does not parse
	// as the expected JSON object.
	ErrMalformedResponse = errors.New("malformed completion response")
)

// UpstreamError is a non-success status from the completion service, with
// the upstream message passed through.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("openai status %d: %s", e.Status, e.Message)
}
