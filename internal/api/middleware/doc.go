// Package middleware contains the HTTP middleware wrapped around the gateway
// router: trace IDs and request-scoped loggers, access logging, JSON panic
// recovery, CORS and Prometheus request metrics.
package middleware
