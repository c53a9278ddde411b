package router

import "errors"

var (
	// ErrInvalidPattern indicates the route pattern is malformed,
	// for example it does not start with a slash or contains an
	// unnamed parameter segment.
	ErrInvalidPattern = errors.New("invalid route path pattern")

	// ErrInvalidMethod indicates the HTTP method is not one the
	// table supports.
	ErrInvalidMethod = errors.New("invalid http method")

	// ErrTableFrozen indicates a registration was attempted after
	// the table was frozen for serving.
	ErrTableFrozen = errors.New("route table is frozen")
)
