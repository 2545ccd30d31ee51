package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyMessage rejects a chat request whose message is empty after
// trimming. Surfaced to HTTP callers as a 400; no session state is touched.
var ErrEmptyMessage = errors.New("message is empty")

// CompletionError wraps any upstream completion failure (network, auth,
// quota, malformed response, timeout). It never reaches an HTTP caller as a
// failure: the chat service absorbs it into a degraded reply.
type CompletionError struct {
	Err error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion failed: %v", e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}
