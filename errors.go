package edge

import "errors"

var (
	// ErrAlreadyServing indicates Start or StartWith was called twice,
	// or a route was registered after serving began.
	ErrAlreadyServing = errors.New("server is already serving")

	// ErrMissingAddress indicates no listen address was provided.
	ErrMissingAddress = errors.New("listen address is required")
)
