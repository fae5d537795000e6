// Package server holds the HTTP server configuration.
//
// The serve command owns the Fiber application; this package only defines the
// listen port, the API key protecting every route, and the read/write timeouts.
package server
