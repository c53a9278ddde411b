package binder_test

import (
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/edge/core/binder"
)

type loginForm struct {
	Username string   `form:"username"`
	Remember bool     `form:"remember"`
	Tags     []string `form:"tags"`
	Age      *int     `form:"age"`
	Secret   string   `form:"-"`
	Plain    string
}

func TestFormURLEncoded(t *testing.T) {
	t.Parallel()

	body := "username=jane&remember=on&tags=go&tags=web&age=30&plain=hi&secret=nope"
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var f loginForm
	require.NoError(t, binder.Form()(r, &f))

	assert.Equal(t, "jane", f.Username)
	assert.True(t, f.Remember)
	assert.Equal(t, []string{"go", "web"}, f.Tags)
	require.NotNil(t, f.Age)
	assert.Equal(t, 30, *f.Age)
	assert.Equal(t, "hi", f.Plain)
	assert.Empty(t, f.Secret)
}

func TestFormMultipart(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("username", "jane"))
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(buf.String()))
	r.Header.Set("Content-Type", mw.FormDataContentType())

	var f loginForm
	require.NoError(t, binder.Form()(r, &f))
	assert.Equal(t, "jane", f.Username)
}

func TestFormErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("a=b"))

		var f loginForm
		assert.ErrorIs(t, binder.Form()(r, &f), binder.ErrMissingContentType)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{}"))
		r.Header.Set("Content-Type", "application/json")

		var f loginForm
		assert.ErrorIs(t, binder.Form()(r, &f), binder.ErrUnsupportedMediaType)
	})

	t.Run("bad field value", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("age=notanumber"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var f loginForm
		assert.ErrorIs(t, binder.Form()(r, &f), binder.ErrFailedToParseForm)
	})

	t.Run("non-struct target", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("a=b"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var s string
		assert.ErrorIs(t, binder.Form()(r, &s), binder.ErrFailedToParseForm)
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"jane","age":30}`))
		r.Header.Set("Content-Type", "application/json; charset=utf-8")

		var p payload
		require.NoError(t, binder.JSON()(r, &p))
		assert.Equal(t, "jane", p.Name)
		assert.Equal(t, 30, p.Age)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"nope":1}`))
		r.Header.Set("Content-Type", "application/json")

		var p payload
		assert.ErrorIs(t, binder.JSON()(r, &p), binder.ErrFailedToParseJSON)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(""))
		r.Header.Set("Content-Type", "application/json")

		var p payload
		assert.ErrorIs(t, binder.JSON()(r, &p), binder.ErrFailedToParseJSON)
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"a"}{"name":"b"}`))
		r.Header.Set("Content-Type", "application/json")

		var p payload
		assert.ErrorIs(t, binder.JSON()(r, &p), binder.ErrFailedToParseJSON)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	type search struct {
		Q    string   `query:"q"`
		Page int      `query:"page"`
		Tags []string `query:"tags"`
	}

	r := httptest.NewRequest(http.MethodGet, "/search?q=edge&page=2&tags=go,web", nil)

	var s search
	require.NoError(t, binder.Query()(r, &s))
	assert.Equal(t, "edge", s.Q)
	assert.Equal(t, 2, s.Page)
	assert.Equal(t, []string{"go", "web"}, s.Tags)
}
