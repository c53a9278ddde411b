package response

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
)

// SendFile commits the contents of a file as the response body, with the
// content type derived from the file extension. A missing file or a
// directory commits a 404 response; any other read failure commits a 500.
// In both failure cases the original error is returned to the caller.
func (w *Writer) SendFile(path string) error {
	cleanPath := filepath.Clean(path)

	f, err := os.Open(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			_ = w.Error(http.StatusNotFound, "404 Not Found")
		} else {
			_ = w.Error(http.StatusInternalServerError, "internal server error")
		}
		return fmt.Errorf("open %q: %w", cleanPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		_ = w.Error(http.StatusInternalServerError, "internal server error")
		return fmt.Errorf("stat %q: %w", cleanPath, err)
	}
	if info.IsDir() {
		_ = w.Error(http.StatusNotFound, "404 Not Found")
		return fmt.Errorf("open %q: %w", cleanPath, os.ErrNotExist)
	}

	if ct := mime.TypeByExtension(filepath.Ext(cleanPath)); ct != "" {
		w.SetHeader("Content-Type", ct)
	}
	w.SetHeader("Content-Length", strconv.FormatInt(info.Size(), 10))

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

	status := w.status
	if status == 0 {
		status = http.StatusOK
	}
	w.w.WriteHeader(status)

	if _, err := io.Copy(w.w, f); err != nil {
		return fmt.Errorf("send %q: %w", cleanPath, err)
	}
	return nil
}
