// Package router provides an ordered route table mapping HTTP method and
// path pattern pairs to application-defined handlers. Patterns are made of
// literal segments, named parameter segments (prefixed with a colon), and
// trailing wildcard mounts that capture the remaining path.
//
// The table is generic over the handler payload, so callers decide what a
// handler is; the router only stores and resolves it.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/edge/core/router"
//
//	t := router.New[http.HandlerFunc]()
//	t.Add(http.MethodGet, "/hello/:first_name/:last_name", helloHandler)
//	t.AddWildcard(http.MethodGet, "/static", fileHandler)
//
//	m, ok := t.Match(http.MethodGet, "/hello/Jane/Doe")
//	if ok {
//		first, _ := m.Params.Get("first_name") // "Jane"
//		m.Handler(w, r)
//	}
//
// # Matching Rules
//
// Routes are evaluated in registration order and the first match wins, so
// overlapping patterns (for example a literal route and a wildcard mount
// covering the same path) resolve deterministically to whichever was
// registered first.
//
// A literal segment must equal the path segment exactly. A parameter
// segment matches any single non-empty segment and binds it under the
// parameter name, preserving pattern order. A wildcard route matches when
// its prefix segments match, and binds the joined remainder of the path
// under the "*" key.
//
// Lookup cost is linear in the number of routes registered for the method.
// That is deliberate: tables of this kind hold tens to low hundreds of
// routes, and the external contract does not change if the scan is ever
// replaced with a trie.
//
// # Concurrency
//
// The table is not synchronized. Complete all registration before sharing
// it across goroutines; once frozen via Freeze, it is safe for concurrent
// lookups and further registration panics.
package router
