// Package shared holds the HTTP helpers used by both the handlers and the
// middleware: JSON response writers and the request trace ID carried in the
// context.
package shared
