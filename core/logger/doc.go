// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for the HTTP server and a console
// logger for command line use.
//
// # Context Awareness
//
// The WithRayID helper extracts the request id set by the rayid middleware
// from a Fiber context and attaches it to the log entry, so all logs of one
// request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
