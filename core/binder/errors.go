package binder

import "errors"

var (
	// ErrUnsupportedMediaType indicates the Content-Type header names a
	// media type the binder does not handle.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrMissingContentType indicates the request lacks a Content-Type
	// header where one is required.
	ErrMissingContentType = errors.New("missing content type")

	// ErrFailedToParseForm indicates malformed URL-encoded or multipart
	// form data.
	ErrFailedToParseForm = errors.New("failed to parse form data")

	// ErrFailedToParseJSON indicates the body is not valid JSON or does
	// not fit the target struct.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")

	// ErrFailedToParseQuery indicates query parameter conversion failed.
	ErrFailedToParseQuery = errors.New("failed to parse query parameters")
)
