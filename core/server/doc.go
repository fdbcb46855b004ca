// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application; this package only defines the
// settings it needs (listen port and API key) and small helpers around them.
package server
