package cookie

import (
	"errors"
	"net/http"
	"time"
)

// ErrNotFound indicates the request carries no cookie with that name.
var ErrNotFound = errors.New("cookie not found")

// Option configures a cookie built by New.
type Option func(*http.Cookie)

// WithPath sets the cookie path; the default is "/".
func WithPath(path string) Option {
	return func(c *http.Cookie) {
		if path != "" {
			c.Path = path
		}
	}
}

// WithDomain sets the cookie domain.
func WithDomain(domain string) Option {
	return func(c *http.Cookie) {
		c.Domain = domain
	}
}

// WithMaxAge sets the cookie lifetime in seconds.
func WithMaxAge(seconds int) Option {
	return func(c *http.Cookie) {
		c.MaxAge = seconds
	}
}

// WithExpires sets an absolute expiry time.
func WithExpires(t time.Time) Option {
	return func(c *http.Cookie) {
		c.Expires = t
	}
}

// WithHTTPOnly hides the cookie from client-side scripts.
func WithHTTPOnly() Option {
	return func(c *http.Cookie) {
		c.HttpOnly = true
	}
}

// WithSecure restricts the cookie to TLS connections.
func WithSecure() Option {
	return func(c *http.Cookie) {
		c.Secure = true
	}
}

// WithSameSite sets the SameSite attribute.
func WithSameSite(mode http.SameSite) Option {
	return func(c *http.Cookie) {
		c.SameSite = mode
	}
}

// New builds a cookie with the given name and value. Path defaults to
// "/" and SameSite to Lax; options override both.
func New(name, value string, opts ...Option) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value of the named request cookie.
func Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", ErrNotFound
	}
	return c.Value, nil
}

// Delete builds an expired cookie that instructs the client to drop the
// named cookie.
func Delete(name string, opts ...Option) *http.Cookie {
	c := New(name, "", opts...)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}
