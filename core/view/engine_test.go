package view_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/edge/core/view"
)

func writeTemplate(t *testing.T, dir, name, src string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
}

func TestEngineRegisterAndRender(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTemplate(t, dir, "hello.html", "<h1>Hello, {{.first_name}} {{.last_name}}!</h1>")

	e := view.New(view.WithRoot(dir))
	require.NoError(t, e.Register("hello"))

	html, err := e.Render("hello", map[string]any{
		"first_name": "Jane",
		"last_name":  "Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hello, Jane Doe!</h1>", html)
}

func TestEngineRegisterMissingFile(t *testing.T) {
	t.Parallel()

	e := view.New(view.WithRoot(t.TempDir()))
	assert.Error(t, e.Register("absent"))
}

func TestEngineRenderUnknownName(t *testing.T) {
	t.Parallel()

	e := view.New(view.WithRoot(t.TempDir()))

	_, err := e.Render("ghost", nil)
	assert.ErrorIs(t, err, view.ErrTemplateNotFound)
}

func TestEngineRenderFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTemplate(t, dir, "bad.html", `{{call .missing}}`)

	e := view.New(view.WithRoot(dir))
	require.NoError(t, e.Register("bad"))

	_, err := e.Render("bad", map[string]any{})
	assert.ErrorIs(t, err, view.ErrRenderFailed)
}

func TestEngineMarkdownHelper(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTemplate(t, dir, "page.html", "{{markdown .content}}")

	e := view.New(view.WithRoot(dir))
	require.NoError(t, e.Register("page"))

	html, err := e.Render("page", map[string]any{
		"content": "## Contents\n\n- item 1\n- item 2\n",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "<h2>Contents</h2>")
	assert.Contains(t, html, "<li>item 1</li>")
	assert.Contains(t, html, "<li>item 2</li>")
}

func TestEnginePartials(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	partials := filepath.Join(dir, "partials")
	writeTemplate(t, dir, "index.html", `{{template "header" .}}<main>{{.body}}</main>`)
	writeTemplate(t, partials, "header.html", "<header>{{.title}}</header>")

	e := view.New(view.WithRoot(dir))
	require.NoError(t, e.RegisterPartials(partials))
	require.NoError(t, e.Register("index"))

	html, err := e.Render("index", map[string]any{"title": "home", "body": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "<header>home</header><main>hi</main>", html)
}

func TestEnginePartialsMissingDir(t *testing.T) {
	t.Parallel()

	e := view.New(view.WithRoot(t.TempDir()))
	assert.NoError(t, e.RegisterPartials(filepath.Join(t.TempDir(), "partials")))
}

func TestEngineCustomFunc(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTemplate(t, dir, "v.html", "{{shout .word}}")

	e := view.New(
		view.WithRoot(dir),
		view.WithFunc("shout", func(s string) string { return s + "!" }),
	)
	require.NoError(t, e.Register("v"))

	html, err := e.Render("v", map[string]any{"word": "go"})
	require.NoError(t, err)
	assert.Equal(t, "go!", html)
}

func TestMarkdownTables(t *testing.T) {
	t.Parallel()

	html, err := view.Markdown("| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, string(html), "<table>")
}
