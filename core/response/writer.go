package response

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

type state int

const (
	stateBuilding state = iota
	stateStreaming
	stateCommitted
)

// Renderer turns a named template and a data value into rendered text.
// It is the contract the writer needs from a view engine; see core/view
// for the implementation shipped with the framework.
type Renderer interface {
	Render(name string, data any) (string, error)
}

// Writer builds exactly one HTTP response for a request. Methods are safe
// for concurrent use. A handler that wants to keep writing after it
// returns switches to the streaming state via Stream; a writer still in
// the Building state when its handler returns is committed by the
// dispatcher.
type Writer struct {
	mu     sync.Mutex
	w      http.ResponseWriter
	views  Renderer
	status int
	state  state
	done   chan struct{}
}

// Option configures a Writer during creation.
type Option func(*Writer)

// WithViews attaches a view engine so handlers can call Render.
func WithViews(r Renderer) Option {
	return func(w *Writer) {
		w.views = r
	}
}

// NewWriter wraps an http.ResponseWriter in a fresh Building-state writer.
func NewWriter(w http.ResponseWriter, opts ...Option) *Writer {
	wr := &Writer{
		w:    w,
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(wr)
	}
	return wr
}

// Status sets the status code used when the response commits.
func (w *Writer) Status(code int) *Writer {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == stateBuilding {
		w.status = code
	}
	return w
}

// ContentType sets the Content-Type header.
func (w *Writer) ContentType(ct string) *Writer {
	return w.SetHeader("Content-Type", ct)
}

// SetHeader sets a response header. It has no effect once the response
// left the Building state.
func (w *Writer) SetHeader(key, value string) *Writer {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == stateBuilding {
		w.w.Header().Set(key, value)
	}
	return w
}

// Header exposes the underlying header map for multi-value headers.
func (w *Writer) Header() http.Header {
	return w.w.Header()
}

// SetCookie adds a Set-Cookie header to the pending response.
func (w *Writer) SetCookie(c *http.Cookie) *Writer {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == stateBuilding {
		http.SetCookie(w.w, c)
	}
	return w
}

// Send commits the response with the given body, moving the writer from
// Building to Committed. The status defaults to 200 unless Status was
// called earlier.
func (w *Writer) Send(body []byte) error {
	return w.commit(0, body)
}

// SendString commits the response with a string body.
func (w *Writer) SendString(body string) error {
	return w.commit(0, []byte(body))
}

// Error commits a plain-text error response with the given status.
func (w *Writer) Error(status int, msg string) error {
	w.mu.Lock()
	if w.state == stateBuilding {
		w.w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.w.Header().Set("X-Content-Type-Options", "nosniff")
	}
	w.mu.Unlock()
	return w.commit(status, []byte(msg))
}

// Redirect commits an empty response with a Location header. A zero
// status defaults to 302 Found; values outside the 3xx range are
// coerced to 302.
func (w *Writer) Redirect(url string, status int) error {
	if status < 300 || status >= 400 {
		status = http.StatusFound
	}
	w.SetHeader("Location", url)
	return w.commit(status, nil)
}

// Render executes the named template through the attached view engine
// and commits the result as text/html. A render failure commits a 500
// response and reports the original error to the caller.
func (w *Writer) Render(name string, data any) error {
	if w.views == nil {
		return ErrNoViews
	}

	html, err := w.views.Render(name, data)
	if err != nil {
		_ = w.Error(http.StatusInternalServerError, "internal server error")
		return fmt.Errorf("render %q: %w", name, err)
	}

	w.ContentType("text/html; charset=utf-8")
	return w.commit(0, []byte(html))
}

// Handle runs fn and commits its outcome: on success the returned
// status with an empty body, on an HTTPError that error's status and
// message, and on any other error a plain 500. The original error is
// returned either way.
func (w *Writer) Handle(fn func() (int, error)) error {
	status, err := fn()
	if err != nil {
		var httpErr HTTPError
		if errors.As(err, &httpErr) {
			_ = w.Error(httpErr.Status, httpErr.Message)
		} else {
			_ = w.Error(http.StatusInternalServerError, "internal server error")
		}
		return err
	}
	return w.commit(status, nil)
}

// Committed reports whether the response has been finalized.
func (w *Writer) Committed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state == stateCommitted
}

// Done returns a channel closed when the response commits, either via a
// buffered send or when a streaming handle closes. The connection owner
// waits on it so handlers may finish the response from other goroutines.
func (w *Writer) Done() <-chan struct{} {
	return w.done
}

// Abort finalizes the response after a handler failure. In the Building
// state it commits a plain 500; mid-stream it marks the response
// committed so the connection owner is released and later appends fail.
func (w *Writer) Abort() {
	w.mu.Lock()
	switch w.state {
	case stateCommitted:
		w.mu.Unlock()
		return
	case stateStreaming:
		w.state = stateCommitted
		close(w.done)
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()
	_ = w.Error(http.StatusInternalServerError, "internal server error")
}

// commit finalizes the response under the writer lock. status zero means
// "use the staged status", which itself defaults to 200.
func (w *Writer) commit(status int, body []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case stateCommitted:
		return ErrCommitted
	case stateStreaming:
		return ErrStreaming
	}
	w.state = stateCommitted
	defer close(w.done)

	if status == 0 {
		status = w.status
	}
	if status == 0 {
		status = http.StatusOK
	}
	w.w.WriteHeader(status)

	if len(body) > 0 {
		if _, err := w.w.Write(body); err != nil {
			return fmt.Errorf("write response body: %w", err)
		}
	}
	return nil
}
