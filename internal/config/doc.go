// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to the gateway settings (listen port, log level, upstream base URL
// and timeout) while keeping configuration details separate from the
// request-handling logic.
package config
