package view

import "errors"

var (
	// ErrTemplateNotFound indicates a render was requested for a name
	// that was never registered.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrRenderFailed indicates template execution failed.
	ErrRenderFailed = errors.New("template render failed")
)
