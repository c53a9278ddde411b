// Package static builds mount callbacks that serve files from a
// directory tree. A callback produced by Dir plugs into a wildcard
// route: the route captures the path remainder and the callback maps it
// onto the directory, refusing anything that would escape the root.
package static
