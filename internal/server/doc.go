// Package server provides HTTP routing, middleware, and server lifecycle for the showcase web front end.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] runs in the order it was added: the first added is the outermost wrapper.
//
// The [BasicRouter] implementation uses [http.ServeMux] method patterns ("GET /path") internally,
// so a path registered for one method answers 405 for the others.
//
// # Middleware
//
//   - [RequestID] tags every request with an X-Request-ID (generated when the client sends none)
//   - [Logging] records method, path, status and duration per request
//   - [RateLimit] throttles mutating requests with a token bucket
//   - [Recover] turns handler panics into 500 responses
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
//
// # Server
//
// [Server] wraps [http.Server] and shuts down gracefully when its context is cancelled.
package server
