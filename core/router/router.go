package router

import (
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
)

type segmentKind int

const (
	segLiteral segmentKind = iota
	segParam
)

type segment struct {
	kind segmentKind
	// literal text or parameter name, depending on kind
	value string
}

type route[H any] struct {
	pattern  string
	segments []segment
	wildcard bool
	handler  H
}

// Match is the result of a successful lookup: the registered handler
// payload, the bound path parameters, and the pattern that matched.
type Match[H any] struct {
	Handler H
	Params  Params
	Pattern string
}

// Table maps (method, pattern) pairs to handler payloads of type H.
// Registration order is preserved and acts as the tie-break when more
// than one pattern could match a path.
type Table[H any] struct {
	routes map[string][]route[H]
	frozen atomic.Bool
}

// New creates an empty route table.
func New[H any]() *Table[H] {
	return &Table[H]{
		routes: make(map[string][]route[H]),
	}
}

var supportedMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodDelete: {},
	http.MethodHead:   {},
}

// Add registers a handler for the given method and pattern.
// It panics on a malformed pattern, an unsupported method, or when the
// table has been frozen; route registration is a startup-time concern
// and misuse is a programming error.
func (t *Table[H]) Add(method, pattern string, h H) {
	t.insert(method, pattern, h, false)
}

// AddWildcard registers a handler for the given method under a path
// prefix. The route matches the prefix itself and every path below it,
// binding the joined remainder under WildcardKey.
func (t *Table[H]) AddWildcard(method, prefix string, h H) {
	t.insert(method, prefix, h, true)
}

func (t *Table[H]) insert(method, pattern string, h H, wildcard bool) {
	if t.frozen.Load() {
		panic(fmt.Errorf("%w: cannot register %s %s", ErrTableFrozen, method, pattern))
	}
	if _, ok := supportedMethods[method]; !ok {
		panic(fmt.Errorf("%w: %q", ErrInvalidMethod, method))
	}
	segments, err := parsePattern(pattern)
	if err != nil {
		panic(err)
	}
	if wildcard {
		for _, s := range segments {
			if s.kind == segParam {
				panic(fmt.Errorf("%w: wildcard mount %q cannot contain parameters", ErrInvalidPattern, pattern))
			}
		}
	}

	t.routes[method] = append(t.routes[method], route[H]{
		pattern:  pattern,
		segments: segments,
		wildcard: wildcard,
		handler:  h,
	})
}

// Freeze marks registration as complete. After Freeze the table is
// read-only and safe to share across goroutines without locking.
func (t *Table[H]) Freeze() {
	t.frozen.Store(true)
}

// Match resolves the first registered route for the method that matches
// the path, extracting parameters as it goes. A miss is a normal
// outcome, reported via the boolean, not an error.
func (t *Table[H]) Match(method, path string) (Match[H], bool) {
	segs := splitPath(path)

	for _, rt := range t.routes[method] {
		params, ok := rt.match(segs)
		if !ok {
			continue
		}
		return Match[H]{
			Handler: rt.handler,
			Params:  params,
			Pattern: rt.pattern,
		}, true
	}
	return Match[H]{}, false
}

// Len returns the number of routes registered for the method.
func (t *Table[H]) Len(method string) int {
	return len(t.routes[method])
}

func (r route[H]) match(segs []string) (Params, bool) {
	var params Params

	if r.wildcard {
		if len(segs) < len(r.segments) {
			return params, false
		}
	} else if len(segs) != len(r.segments) {
		return params, false
	}

	for i, s := range r.segments {
		switch s.kind {
		case segLiteral:
			if segs[i] != s.value {
				return params, false
			}
		case segParam:
			if segs[i] == "" {
				return params, false
			}
			params.add(s.value, segs[i])
		}
	}

	if r.wildcard {
		params.add(WildcardKey, strings.Join(segs[len(r.segments):], "/"))
	}
	return params, true
}

// parsePattern splits a pattern into segments, turning ":name" segments
// into parameter captures.
func parsePattern(pattern string) ([]segment, error) {
	if pattern == "" || pattern[0] != '/' {
		return nil, fmt.Errorf("%w: %q must start with '/'", ErrInvalidPattern, pattern)
	}

	raw := splitPath(pattern)
	segments := make([]segment, 0, len(raw))
	for _, s := range raw {
		if strings.HasPrefix(s, ":") {
			name := s[1:]
			if name == "" {
				return nil, fmt.Errorf("%w: %q has an unnamed parameter segment", ErrInvalidPattern, pattern)
			}
			segments = append(segments, segment{kind: segParam, value: name})
			continue
		}
		segments = append(segments, segment{kind: segLiteral, value: s})
	}
	return segments, nil
}

// splitPath breaks a path into its non-empty segments; "/" yields none.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
