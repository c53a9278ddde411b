// Package edge is a small web framework built around an application
// structure: you declare a struct holding your per-request state,
// register methods of that struct as handlers for method+path patterns,
// and the framework routes, instantiates, and dispatches for you.
//
// # Overview
//
// A fresh instance of the application type is created for every request,
// either by zero-value construction (Start) or by copying a seed value
// (StartWith), so handlers never observe another request's state unless
// the application embeds an explicitly shared handle such as an atomic
// counter.
//
//	type Hello struct{}
//
//	func home(app *Hello, req *edge.Request, res *edge.Response) {
//		res.ContentType("text/plain")
//		res.Send([]byte("Hello, world!"))
//	}
//
//	func main() {
//		e := edge.New[Hello]("0.0.0.0:3000")
//		e.Get("/", home)
//		if err := e.Start(); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Patterns may contain named parameters and static mounts:
//
//	e.Get("/hello/:first_name/:last_name", hello)
//	e.GetStatic("/static", static.Dir("web"))
//
// # Concurrency model
//
// Start binds max(NumCPU/2, 1) listening sockets to the same address
// with SO_REUSEPORT so the kernel spreads incoming connections across an
// equal number of accept loops, and runs handler callbacks on a bounded
// worker pool of the same size. A handler that blocks (disk, templates,
// deliberate sleeps) stalls only its worker; connection acceptance keeps
// going. When every worker is busy, matched requests queue FIFO until
// one frees up.
//
// # Asynchronous and streaming responses
//
// A handler does not have to finish the response body before returning:
// switching the Response to streaming lets it, or a goroutine it spawns,
// append chunks while the connection stays open. The connection is held
// until the response commits or the stream handle is closed; a handler
// that returns without writing anything commits its staged status
// instead.
//
//	func streaming(app *Hello, req *edge.Request, res *edge.Response) {
//		s, err := res.Stream()
//		if err != nil {
//			return
//		}
//		defer s.Close()
//		s.Append([]byte("toto"))
//		time.Sleep(time.Second)
//		s.Append([]byte("tata"))
//	}
//
// # Middleware
//
// A single before hook runs on the freshly created application instance
// ahead of the matched callback. It may inspect or derive request values
// but cannot terminate the request; responses are produced only by
// handlers.
//
//	e.Use(func(app *Hello, req *edge.Request) {
//		req.Set("user", lookupUser(req))
//	})
package edge
