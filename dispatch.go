package edge

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/edge/core/logger"
	"github.com/dmitrymomot/edge/core/response"
	"github.com/dmitrymomot/edge/pkg/pool"
)

// ServeHTTP is the accept side of the dispatch pipeline: it matches the
// route, hands the work to the bounded worker pool, and blocks until the
// handler commits a response or finishes streaming. Implementing
// http.Handler directly also lets tests drive the server through
// httptest without binding a socket.
func (e *Edge[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.startPool()

	res := response.NewWriter(w, response.WithViews(e.views))

	m, ok := e.routes.Match(r.Method, r.URL.Path)
	if !ok {
		_ = res.Error(http.StatusNotFound, "not found")
		return
	}

	req := newRequest(r, m.Params)

	err := e.workers.Submit(func() {
		e.dispatch(req, res, m.Handler)
	})
	if err != nil {
		if errors.Is(err, pool.ErrClosed) {
			_ = res.Error(http.StatusServiceUnavailable, "server shutting down")
			return
		}
		e.logger.Error("dispatch failed",
			logger.RequestID(req.ID()),
			logger.Error(err),
		)
		_ = res.Error(http.StatusInternalServerError, "internal server error")
		return
	}

	// The handler may outlive this goroutine's useful work (streaming,
	// slow template render); the connection must stay open until the
	// response is fully committed.
	<-res.Done()
}

// dispatch runs on a worker goroutine. A panicking handler is contained
// here: it is logged and converted to a 500 unless a response was
// already committed.
func (e *Edge[T]) dispatch(req *Request, res *Response, d descriptor[T]) {
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Error("handler panic",
				logger.RequestID(req.ID()),
				logger.Method(req.Method()),
				logger.Path(req.URL().Path),
				logger.Panic(rec),
			)
			res.Abort()
		}
	}()

	if d.static != nil {
		d.static(req, res)
		_ = res.Send(nil)
		return
	}

	app, err := e.newApp()
	if err != nil {
		e.logger.Error("application instance creation failed",
			logger.RequestID(req.ID()),
			logger.Error(err),
		)
		_ = res.Error(http.StatusInternalServerError, "internal server error")
		return
	}

	if e.before != nil {
		e.before(app, req)
	}
	d.instance(app, req, res)

	// A callback that returns while still building gets its staged
	// response committed; a connection is never left hanging. Streaming
	// responses are finalized by their own Close instead.
	_ = res.Send(nil)

	e.logger.Debug("request handled",
		logger.RequestID(req.ID()),
		logger.Method(req.Method()),
		logger.Path(req.URL().Path),
		logger.Duration(time.Since(start)),
	)
}
