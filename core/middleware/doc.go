// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or api_key query parameter).
//   - rayid: Assigns a request id (RayID) to every request, stores it in the
//     Fiber locals for logger.WithRayID and echoes it in the X-Ray-ID header.
//
// RayID must be registered first so every later log line carries the id.
package middleware
