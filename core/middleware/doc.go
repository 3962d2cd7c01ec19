// Package middleware groups the HTTP middleware of the Fiber application.
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: a per-request ray ID stored in Locals and echoed in the X-Ray-ID
//     response header, picked up by logger.WithRayID.
package middleware
