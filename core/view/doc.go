// Package view implements the template engine collaborator used for
// rendered responses: a registry of named html/template views loaded from
// a directory on disk, with partial support and a markdown helper.
//
// Templates are registered by logical name and resolved against the views
// root with the configured extension:
//
//	views := view.New()                  // root "views", ext ".html"
//	if err := views.Register("hello"); err != nil { // views/hello.html
//		log.Fatal(err)
//	}
//	_ = views.RegisterPartials("views/partials")
//
//	html, err := views.Render("hello", map[string]any{"first_name": "Jane"})
//
// Inside a template the markdown helper converts a markdown string to
// trusted HTML, with tables and footnotes enabled:
//
//	{{markdown .content}}
//
// Render fails with ErrTemplateNotFound for unregistered names and with
// the underlying template error for execution failures; callers surface
// both as internal errors on whichever response invoked the render.
package view
