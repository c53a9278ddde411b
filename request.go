package edge

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/edge/core/binder"
	"github.com/dmitrymomot/edge/core/cookie"
	"github.com/dmitrymomot/edge/core/router"
)

// Request is the view of an incoming request handed to handlers. It is
// owned by the task handling the request and must not be shared across
// requests; the before hook may mutate it through Set before the route
// callback runs.
type Request struct {
	r        *http.Request
	id       string
	params   router.Params
	segments []string
	values   map[string]any
}

func newRequest(r *http.Request, params router.Params) *Request {
	return &Request{
		r:        r,
		id:       uuid.NewString(),
		params:   params,
		segments: splitPath(r.URL.Path),
	}
}

// ID returns the request identifier assigned at accept time.
func (req *Request) ID() string {
	return req.id
}

// Method returns the HTTP method.
func (req *Request) Method() string {
	return req.r.Method
}

// Path returns the request path split into its segments; "/" yields an
// empty slice.
func (req *Request) Path() []string {
	return req.segments
}

// URL returns the parsed request URL.
func (req *Request) URL() *url.URL {
	return req.r.URL
}

// Param returns the path parameter bound under the given name, or the
// empty string when the pattern did not bind it.
func (req *Request) Param(name string) string {
	v, _ := req.params.Get(name)
	return v
}

// Params returns all bound path parameters in pattern order.
func (req *Request) Params() router.Params {
	return req.params
}

// Tail returns the remainder captured by a static mount's wildcard.
func (req *Request) Tail() string {
	v, _ := req.params.Get(router.WildcardKey)
	return v
}

// Header returns the named request header.
func (req *Request) Header(name string) string {
	return req.r.Header.Get(name)
}

// Headers exposes the full header map.
func (req *Request) Headers() http.Header {
	return req.r.Header
}

// Cookies returns all cookies sent with the request.
func (req *Request) Cookies() []*http.Cookie {
	return req.r.Cookies()
}

// Cookie returns the value of the named cookie, or cookie.ErrNotFound.
func (req *Request) Cookie(name string) (string, error) {
	return cookie.Get(req.r, name)
}

// Form parses the request body as form data and returns the values.
// Malformed input yields an error the handler should turn into a
// 400-class response.
func (req *Request) Form() (url.Values, error) {
	if err := req.r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %v", binder.ErrFailedToParseForm, err)
	}
	return req.r.PostForm, nil
}

// BindForm binds form data onto a struct via the form binder.
func (req *Request) BindForm(v any) error {
	return binder.Form()(req.r, v)
}

// BindJSON binds a JSON body onto a struct via the JSON binder.
func (req *Request) BindJSON(v any) error {
	return binder.JSON()(req.r, v)
}

// BindQuery binds query parameters onto a struct via the query binder.
func (req *Request) BindQuery(v any) error {
	return binder.Query()(req.r, v)
}

// Body exposes the raw request body.
func (req *Request) Body() io.ReadCloser {
	return req.r.Body
}

// Context returns the request-scoped context of the underlying request.
func (req *Request) Context() context.Context {
	return req.r.Context()
}

// Set stores a derived value on the request, typically from the before
// hook. The request is owned by a single task, so no locking applies.
func (req *Request) Set(key string, value any) {
	if req.values == nil {
		req.values = make(map[string]any)
	}
	req.values[key] = value
}

// Get returns a value stored with Set.
func (req *Request) Get(key string) (any, bool) {
	v, ok := req.values[key]
	return v, ok
}

// splitPath breaks a path into its non-empty segments; "/" yields none.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
