package edge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/edge/core/logger"
	"github.com/dmitrymomot/edge/core/response"
	"github.com/dmitrymomot/edge/core/router"
	"github.com/dmitrymomot/edge/core/view"
	"github.com/dmitrymomot/edge/pkg/pool"
)

// Response is the writer handlers commit exactly one response through.
type Response = response.Writer

// Callback is a handler bound to the application type: it receives the
// per-request instance alongside the request and response.
type Callback[T any] func(app *T, req *Request, res *Response)

// Static is a handler with no application instance, used for
// file-serving mounts.
type Static func(req *Request, res *Response)

// Hook is the before-middleware capability: it runs on the fresh
// application instance ahead of the matched callback and may mutate the
// request, but cannot write the response.
type Hook[T any] func(app *T, req *Request)

// descriptor is the registered handler: exactly one of the two callback
// kinds is set.
type descriptor[T any] struct {
	instance Callback[T]
	static   Static
}

// Edge is a server for one application type T. Register routes and the
// before hook first, then call Start or StartWith; registration is not
// allowed once serving begins.
type Edge[T any] struct {
	cfg    Config
	logger *slog.Logger
	views  *view.Engine

	routes        *router.Table[descriptor[T]]
	before        Hook[T]
	newApp        func() (*T, error)
	customFactory bool

	workers   *pool.Pool
	poolOnce  sync.Once
	serving   atomic.Bool
	mu        sync.Mutex
	servers   []*http.Server
	listeners []net.Listener
}

// New creates a server for the application type T listening on addr.
// An empty addr falls back to the configured address.
func New[T any](addr string, opts ...Option[T]) *Edge[T] {
	e := &Edge[T]{
		cfg:    DefaultConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		routes: router.New[descriptor[T]](),
	}

	for _, opt := range opts {
		opt(e)
	}

	if addr != "" {
		e.cfg.Addr = addr
	}
	if e.views == nil {
		e.views = view.New(view.WithRoot(e.cfg.ViewsDir))
	}
	if e.newApp == nil {
		e.newApp = func() (*T, error) { return new(T), nil }
	}
	return e
}

// Get registers a callback for GET requests on the given pattern.
func (e *Edge[T]) Get(pattern string, cb Callback[T]) {
	e.insert(http.MethodGet, pattern, descriptor[T]{instance: cb})
}

// Post registers a callback for POST requests on the given pattern.
func (e *Edge[T]) Post(pattern string, cb Callback[T]) {
	e.insert(http.MethodPost, pattern, descriptor[T]{instance: cb})
}

// Put registers a callback for PUT requests on the given pattern.
func (e *Edge[T]) Put(pattern string, cb Callback[T]) {
	e.insert(http.MethodPut, pattern, descriptor[T]{instance: cb})
}

// Delete registers a callback for DELETE requests on the given pattern.
func (e *Edge[T]) Delete(pattern string, cb Callback[T]) {
	e.insert(http.MethodDelete, pattern, descriptor[T]{instance: cb})
}

// Head registers a callback for HEAD requests on the given pattern.
func (e *Edge[T]) Head(pattern string, cb Callback[T]) {
	e.insert(http.MethodHead, pattern, descriptor[T]{instance: cb})
}

// GetStatic mounts a static callback under a path prefix for GET
// requests. The callback receives the remaining path via Request.Tail.
func (e *Edge[T]) GetStatic(prefix string, cb Static) {
	if e.serving.Load() {
		panic(fmt.Errorf("%w: cannot register GET %s", ErrAlreadyServing, prefix))
	}
	e.routes.AddWildcard(http.MethodGet, prefix, descriptor[T]{static: cb})
}

// Use installs the before hook. The last call wins; the default is a
// no-op.
func (e *Edge[T]) Use(hook Hook[T]) {
	if e.serving.Load() {
		panic(fmt.Errorf("%w: cannot install middleware", ErrAlreadyServing))
	}
	e.before = hook
}

// RegisterTemplate loads the named template from the views directory so
// handlers can render it.
func (e *Edge[T]) RegisterTemplate(name string) error {
	return e.views.Register(name)
}

// Views exposes the template engine, primarily for registering partials
// or extra helpers at startup.
func (e *Edge[T]) Views() *view.Engine {
	return e.views
}

func (e *Edge[T]) insert(method, pattern string, d descriptor[T]) {
	if e.serving.Load() {
		panic(fmt.Errorf("%w: cannot register %s %s", ErrAlreadyServing, method, pattern))
	}
	e.routes.Add(method, pattern, d)
}

// Start serves requests, creating a zero-value instance of T for each
// one. It blocks until Shutdown is called or serving fails.
func (e *Edge[T]) Start() error {
	return e.serve(func() (*T, error) { return new(T), nil })
}

// StartWith serves requests, handing each one a copy of the seed value.
// Suitable when the application state is a set of shareable handles
// rather than owned mutable data. It blocks like Start.
func (e *Edge[T]) StartWith(seed T) error {
	return e.serve(func() (*T, error) {
		app := seed
		return &app, nil
	})
}

func (e *Edge[T]) serve(factory func() (*T, error)) error {
	if e.cfg.Addr == "" {
		return ErrMissingAddress
	}
	if !e.serving.CompareAndSwap(false, true) {
		return ErrAlreadyServing
	}

	// A custom factory installed via WithFactory wins over the mode
	// implied by Start/StartWith.
	if !e.customFactory {
		e.newApp = factory
	}

	// Partials live under <views>/partials and load automatically; a
	// missing directory is fine.
	if err := e.views.RegisterPartials(filepath.Join(e.views.Root(), "partials")); err != nil {
		e.serving.Store(false)
		return fmt.Errorf("register partials: %w", err)
	}

	// Routes are frozen before the first connection; the table is then
	// read-shared without synchronization.
	e.routes.Freeze()
	e.startPool()

	n := threadCount(e.cfg.Listeners)
	listeners, err := listenGroup(e.cfg.Addr, n)
	if err != nil {
		// Startup failed before any listener ran; a retry must not be
		// mistaken for a second concurrent Start.
		e.serving.Store(false)
		return fmt.Errorf("bind %s: %w", e.cfg.Addr, err)
	}

	e.mu.Lock()
	e.listeners = listeners
	errCh := make(chan error, n)
	var wg sync.WaitGroup
	for i, ln := range listeners {
		ln := ln
		srv := &http.Server{
			Handler:        e,
			ReadTimeout:    e.cfg.ReadTimeout,
			WriteTimeout:   e.cfg.WriteTimeout,
			IdleTimeout:    e.cfg.IdleTimeout,
			MaxHeaderBytes: e.cfg.MaxHeaderBytes,
		}
		e.servers = append(e.servers, srv)

		e.logger.Info("listener started",
			slog.Int("listener", i),
			logger.Addr(ln.Addr().String()),
		)

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}
	e.mu.Unlock()

	wg.Wait()
	e.workers.Close()

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

// Shutdown stops the listeners gracefully, waiting up to the configured
// shutdown timeout for in-flight requests, then joins the worker pool.
func (e *Edge[T]) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	servers := e.servers
	e.mu.Unlock()

	shutdownCtx, cancel := context.WithTimeout(ctx, e.cfg.ShutdownTimeout)
	defer cancel()

	var errs []error
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Addr returns the address of the first bound listener, or the
// configured address before serving starts. Useful with ":0".
func (e *Edge[T]) Addr() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.listeners) > 0 {
		return e.listeners[0].Addr().String()
	}
	return e.cfg.Addr
}

// startPool creates the worker pool on first use so ServeHTTP works
// both under Start and when the server is driven as an http.Handler.
func (e *Edge[T]) startPool() {
	e.poolOnce.Do(func() {
		e.workers = pool.New(
			threadCount(e.cfg.Workers),
			pool.WithQueueDepth(e.cfg.QueueDepth),
		)
	})
}
