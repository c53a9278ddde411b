// Package cookie provides small helpers for reading and building HTTP
// cookies with functional options, so handlers do not assemble
// http.Cookie structs by hand.
//
//	c := cookie.New("name", username,
//		cookie.WithDomain("localhost"),
//		cookie.WithHTTPOnly(),
//	)
//	res.SetCookie(c)
//
// Reading mirrors the request side:
//
//	value, err := cookie.Get(r, "name")
//
// Deletion is expressed as an expired cookie with the same name and path:
//
//	res.SetCookie(cookie.Delete("name"))
package cookie
