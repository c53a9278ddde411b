package static

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/edge"
)

type dirConfig struct {
	index string
}

// DirOption configures directory serving behavior.
type DirOption func(*dirConfig)

// WithIndex serves the named file when the request resolves to a
// directory, instead of answering 404.
func WithIndex(name string) DirOption {
	return func(c *dirConfig) {
		c.index = name
	}
}

// Dir returns a mount callback serving files under root. Directory
// listing is disabled; requests resolving to a directory answer 404
// unless WithIndex is set. Panics at startup if root does not exist or
// is not a directory.
func Dir(root string, opts ...DirOption) edge.Static {
	cfg := &dirConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		panic("static.Dir: " + err.Error())
	}
	if !info.IsDir() {
		panic("static.Dir: not a directory: " + root)
	}

	return func(req *edge.Request, res *edge.Response) {
		target, ok := resolve(root, req.Tail())
		if !ok {
			_ = res.Error(http.StatusNotFound, "404 Not Found")
			return
		}

		if info, err := os.Stat(target); err == nil && info.IsDir() {
			if cfg.index == "" {
				_ = res.Error(http.StatusNotFound, "404 Not Found")
				return
			}
			target = filepath.Join(target, cfg.index)
		}

		_ = res.SendFile(target)
	}
}

// resolve maps the captured path remainder onto the root directory.
// path.Clean on a rooted copy of the tail collapses any ".." runs, so
// the joined result cannot climb out of root.
func resolve(root, tail string) (string, bool) {
	if strings.Contains(tail, "\x00") {
		return "", false
	}
	clean := path.Clean("/" + tail)
	return filepath.Join(root, filepath.FromSlash(clean)), true
}
