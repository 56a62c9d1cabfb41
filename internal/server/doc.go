// Package server runs the HTTP transport of the buy-from-me server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown bounded by a timeout.
package server
