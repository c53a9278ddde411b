package response

import (
	"errors"
	"fmt"
)

// HTTPError is a handler failure carrying the status and message to
// answer with. Handlers return it from Handle to fail a request without
// writing the response themselves.
type HTTPError struct {
	Status  int
	Message string
}

func (e HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

var (
	// ErrCommitted indicates a write was attempted after the response
	// was already committed.
	ErrCommitted = errors.New("response already committed")

	// ErrStreaming indicates a buffered-commit operation was attempted
	// while the response is in streaming mode.
	ErrStreaming = errors.New("response is streaming")

	// ErrStreamClosed indicates an append was attempted on a closed
	// streaming handle.
	ErrStreamClosed = errors.New("stream already closed")

	// ErrNoViews indicates Render was called on a writer that has no
	// view engine attached.
	ErrNoViews = errors.New("no view engine attached")

	// ErrNotFlushable indicates the underlying connection does not
	// support incremental flushing.
	ErrNotFlushable = errors.New("response writer does not support flushing")
)
