// Package http implements the HTTP transport layer of the account service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, and token authentication are handled
// in this package before requests are delegated to the service layer. Every
// error reply is a JSON object with a single "error" string.
package http
