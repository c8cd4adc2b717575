// Package server holds the HTTP server configuration.
//
// The Config struct defines the HTTP port and the API key that protects every
// route except the Swagger documentation. It is embedded by core/config and
// read by the start command.
package server
