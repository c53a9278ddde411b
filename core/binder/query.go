package binder

import "net/http"

// Query creates a binder for URL query parameters, using the `query`
// struct tag. Untagged exported fields bind to their lowercased name.
func Query() Binder {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
