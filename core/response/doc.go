// Package response implements the response side of a request: a Writer
// that moves through an explicit Building -> Committed or Building ->
// Streaming -> Committed state machine over an http.ResponseWriter.
//
// While building, a handler may set the status, headers, and cookies, and
// then commit a complete body in one call:
//
//	res.Status(http.StatusOK).ContentType("text/plain")
//	res.Send([]byte("Hello, world!"))
//
// Alternatively the handler switches to streaming once and appends chunks
// that are flushed to the live connection in call order:
//
//	s, err := res.Stream()
//	if err != nil {
//		return
//	}
//	defer s.Close()
//	s.Append([]byte("toto"))
//	s.Append([]byte("tata"))
//
// Exactly one response is produced per request. Once committed, further
// writes fail with ErrCommitted; a peer disconnect mid-stream makes
// subsequent appends report the write error without affecting anything
// else. Done exposes a channel closed at commit time so the goroutine
// that owns the connection can wait for handlers that finish the
// response asynchronously.
//
// Writer is safe for concurrent use: a handler may hand the writer to a
// goroutine of its own and return immediately.
package response
