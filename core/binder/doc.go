// Package binder maps HTTP request data onto Go structs. It covers the
// request-body capabilities the framework grants handlers: URL-encoded
// and multipart form fields, JSON bodies, and query parameters.
//
// Binding targets use struct tags per source:
//
//	type LoginForm struct {
//		Username string `form:"username"`
//		Remember bool   `form:"remember"`
//	}
//
//	var f LoginForm
//	if err := binder.Form()(r, &f); err != nil {
//		// malformed input: respond with 400
//	}
//
// Supported field types are the basic scalars, slices of them for
// multi-value fields, and pointers for optional fields. All binding
// failures wrap a package sentinel (ErrFailedToParseForm and friends),
// so callers can map them onto a 400-class response.
package binder
