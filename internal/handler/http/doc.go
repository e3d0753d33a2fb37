// Package http implements the HTTP transport layer of the todo server.
//
// It wires the chi router, the static public directory, the unauthenticated
// /auth route group and the token-protected /todos route group. Request
// tracing, access logging, response compression, CORS and JSON body checks
// are handled here before requests reach the service layer.
package http
