// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: Implements API key validation (X-API-Key) to protect endpoints.
//   - RayID: Assigns a unique Request ID (RayID) to every incoming request,
//     storing it in the context locals and the X-Ray-ID response header for tracing.
//
// These middleware components are registered globally in the start command.
package middleware
