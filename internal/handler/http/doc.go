// Package http implements the HTTP transport layer of the buy-from-me server.
//
// It exposes route wiring, request handlers and middleware for the REST API.
// Cross-cutting concerns such as bearer authentication, request tracing,
// access logging, metrics and response compression are handled here before
// requests are delegated to the service layer.
package http
