// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application; this package only defines the
// listen port, the API key guarding every route, and the graceful shutdown
// window.
package server
