// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing and access logging are
// handled in this package before requests are delegated to the service layer.
// Authentication is not a middleware concern here: bearer tokens travel in
// the request path and are resolved by the service layer.
package http
