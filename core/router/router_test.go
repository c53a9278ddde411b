package router_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/edge/core/router"
)

func TestTableMatchLiteral(t *testing.T) {
	t.Parallel()

	tbl := router.New[string]()
	tbl.Add(http.MethodGet, "/", "home")
	tbl.Add(http.MethodGet, "/settings", "settings")
	tbl.Add(http.MethodPost, "/login", "login")

	m, ok := tbl.Match(http.MethodGet, "/")
	require.True(t, ok)
	assert.Equal(t, "home", m.Handler)
	assert.Equal(t, "/", m.Pattern)
	assert.Zero(t, m.Params.Len())

	m, ok = tbl.Match(http.MethodGet, "/settings")
	require.True(t, ok)
	assert.Equal(t, "settings", m.Handler)

	m, ok = tbl.Match(http.MethodPost, "/login")
	require.True(t, ok)
	assert.Equal(t, "login", m.Handler)
}

func TestTableMatchParams(t *testing.T) {
	t.Parallel()

	tbl := router.New[string]()
	tbl.Add(http.MethodGet, "/hello/:first_name/:last_name", "hello")

	m, ok := tbl.Match(http.MethodGet, "/hello/Jane/Doe")
	require.True(t, ok)
	assert.Equal(t, "hello", m.Handler)

	first, ok := m.Params.Get("first_name")
	require.True(t, ok)
	assert.Equal(t, "Jane", first)

	last, ok := m.Params.Get("last_name")
	require.True(t, ok)
	assert.Equal(t, "Doe", last)

	// Parameters keep pattern order.
	assert.Equal(t, []string{"first_name", "last_name"}, m.Params.Keys())
}

func TestTableMatchWildcard(t *testing.T) {
	t.Parallel()

	tbl := router.New[string]()
	tbl.AddWildcard(http.MethodGet, "/static", "files")

	m, ok := tbl.Match(http.MethodGet, "/static/css/site.css")
	require.True(t, ok)
	assert.Equal(t, "files", m.Handler)

	tail, ok := m.Params.Get(router.WildcardKey)
	require.True(t, ok)
	assert.Equal(t, "css/site.css", tail)

	// The mount itself matches with an empty remainder.
	m, ok = tbl.Match(http.MethodGet, "/static")
	require.True(t, ok)
	tail, ok = m.Params.Get(router.WildcardKey)
	require.True(t, ok)
	assert.Empty(t, tail)

	// A sibling path sharing the prefix string does not match.
	_, ok = tbl.Match(http.MethodGet, "/staticky")
	assert.False(t, ok)
}

func TestTableMiss(t *testing.T) {
	t.Parallel()

	tbl := router.New[string]()
	tbl.Add(http.MethodGet, "/hello/:first_name/:last_name", "hello")

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"missing segments", http.MethodGet, "/hello"},
		{"extra segments", http.MethodGet, "/hello/a/b/c"},
		{"wrong method", http.MethodPost, "/hello/Jane/Doe"},
		{"unregistered path", http.MethodGet, "/goodbye"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, ok := tbl.Match(tt.method, tt.path)
			assert.False(t, ok)
		})
	}
}

func TestTableFirstRegisteredWins(t *testing.T) {
	t.Parallel()

	t.Run("duplicate pattern", func(t *testing.T) {
		t.Parallel()

		tbl := router.New[string]()
		tbl.Add(http.MethodGet, "/page", "first")
		tbl.Add(http.MethodGet, "/page", "second")

		m, ok := tbl.Match(http.MethodGet, "/page")
		require.True(t, ok)
		assert.Equal(t, "first", m.Handler)
	})

	t.Run("literal before wildcard", func(t *testing.T) {
		t.Parallel()

		tbl := router.New[string]()
		tbl.Add(http.MethodGet, "/static/index.html", "literal")
		tbl.AddWildcard(http.MethodGet, "/static", "files")

		m, ok := tbl.Match(http.MethodGet, "/static/index.html")
		require.True(t, ok)
		assert.Equal(t, "literal", m.Handler)

		m, ok = tbl.Match(http.MethodGet, "/static/other.html")
		require.True(t, ok)
		assert.Equal(t, "files", m.Handler)
	})

	t.Run("wildcard before literal shadows it", func(t *testing.T) {
		t.Parallel()

		tbl := router.New[string]()
		tbl.AddWildcard(http.MethodGet, "/static", "files")
		tbl.Add(http.MethodGet, "/static/index.html", "literal")

		m, ok := tbl.Match(http.MethodGet, "/static/index.html")
		require.True(t, ok)
		assert.Equal(t, "files", m.Handler)
	})
}

func TestTableParamBeforeLiteral(t *testing.T) {
	t.Parallel()

	tbl := router.New[string]()
	tbl.Add(http.MethodGet, "/users/:id", "byID")
	tbl.Add(http.MethodGet, "/users/me", "me")

	// The earlier parameter route captures the literal path too.
	m, ok := tbl.Match(http.MethodGet, "/users/me")
	require.True(t, ok)
	assert.Equal(t, "byID", m.Handler)

	id, ok := m.Params.Get("id")
	require.True(t, ok)
	assert.Equal(t, "me", id)
}

func TestTableInvalidRegistration(t *testing.T) {
	t.Parallel()

	t.Run("pattern without leading slash", func(t *testing.T) {
		t.Parallel()

		tbl := router.New[string]()
		assert.PanicsWithError(t, `invalid route path pattern: "hello" must start with '/'`, func() {
			tbl.Add(http.MethodGet, "hello", "h")
		})
	})

	t.Run("unnamed parameter", func(t *testing.T) {
		t.Parallel()

		tbl := router.New[string]()
		assert.Panics(t, func() {
			tbl.Add(http.MethodGet, "/hello/:", "h")
		})
	})

	t.Run("unsupported method", func(t *testing.T) {
		t.Parallel()

		tbl := router.New[string]()
		assert.Panics(t, func() {
			tbl.Add(http.MethodPatch, "/hello", "h")
		})
	})

	t.Run("wildcard with parameter", func(t *testing.T) {
		t.Parallel()

		tbl := router.New[string]()
		assert.Panics(t, func() {
			tbl.AddWildcard(http.MethodGet, "/static/:dir", "h")
		})
	})

	t.Run("frozen table", func(t *testing.T) {
		t.Parallel()

		tbl := router.New[string]()
		tbl.Add(http.MethodGet, "/", "home")
		tbl.Freeze()

		assert.Panics(t, func() {
			tbl.Add(http.MethodGet, "/late", "late")
		})

		// Lookups still work after freezing.
		m, ok := tbl.Match(http.MethodGet, "/")
		require.True(t, ok)
		assert.Equal(t, "home", m.Handler)
	})
}
