// Package middleware groups the HTTP middleware of the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key or Bearer token).
//   - rayid: assigns every request a RayID, stored in the context and echoed
//     in the X-Ray-ID response header for tracing.
//
// The start command registers rayid first, then the request logger, then auth.
package middleware
