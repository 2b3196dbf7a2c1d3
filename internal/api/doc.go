// Package api handles incoming HTTP requests, request parsing, and response
// formatting. It acts as an adapter between external clients and the lookup
// service, translating HTTP concerns to a lookup and every lookup error to a
// fixed status code and JSON error body.
package api
