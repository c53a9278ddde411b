package response

import (
	"fmt"
	"net/http"
)

// Stream is an append-only handle for a streaming response. Chunks are
// written and flushed to the connection in call order. The handle must
// be closed to finalize the response; until then the connection stays
// open for further appends.
type Stream struct {
	w       *Writer
	flusher http.Flusher
	closed  bool
	// first write failure, sticky so later appends keep reporting it
	err error
}

// Stream transitions the writer from Building to Streaming, writes the
// staged status and headers, and returns the append handle. It fails if
// the response was already committed or the connection cannot flush.
func (w *Writer) Stream() (*Stream, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case stateCommitted:
		return nil, ErrCommitted
	case stateStreaming:
		return nil, ErrStreaming
	}

	flusher, ok := w.w.(http.Flusher)
	if !ok {
		return nil, ErrNotFlushable
	}
	w.state = stateStreaming

	status := w.status
	if status == 0 {
		status = http.StatusOK
	}
	w.w.WriteHeader(status)
	flusher.Flush()

	return &Stream{w: w, flusher: flusher}, nil
}

// Append writes one chunk and flushes it immediately. After a peer
// disconnect the first write error is recorded and every later append
// reports it; the stream itself stays usable-for-close and nothing
// escapes to other requests.
func (s *Stream) Append(chunk []byte) error {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	if s.closed || s.w.state != stateStreaming {
		return ErrStreamClosed
	}
	if s.err != nil {
		return s.err
	}

	if _, err := s.w.w.Write(chunk); err != nil {
		s.err = fmt.Errorf("write stream chunk: %w", err)
		return s.err
	}
	s.flusher.Flush()
	return nil
}

// Close finalizes the response, moving the writer from Streaming to
// Committed. It is idempotent, and a no-op when the writer was already
// finalized elsewhere, such as by Abort after a handler panic.
func (s *Stream) Close() error {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.w.state != stateStreaming {
		return nil
	}
	s.w.state = stateCommitted
	close(s.w.done)
	return nil
}
