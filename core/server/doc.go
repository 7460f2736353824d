// Package server holds the HTTP server configuration.
//
// The Config struct defines the HTTP port, the API key protecting every route and the path
// Prometheus metrics are served on. The start command reads it through core/config.
package server
