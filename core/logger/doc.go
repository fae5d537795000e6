// Package logger provides a structured logging facility based on Zap.
//
// New builds a production (json) or development (console) logger from Config.
// Logs are written to stderr so that command output on stdout stays machine
// readable.
//
// # Context Awareness
//
// WithRayID extracts the RayID set by the rayid middleware from a Fiber context
// and attaches it to the logger. WithRunID does the same for a reconciliation
// run, so every line written while reconciling one resource carries run_id.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
