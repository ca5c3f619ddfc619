// Package logger provides structured logging on top of Uber's zap.
//
// NewLoggerClient returns a *LoggerClient that satisfies the Logger interface.
// Every method takes a message, an optional error and any number of field maps:
//
//	log, _ := logger.NewLoggerClient(logger.Config{Level: logger.Info, ServiceName: "indexer"})
//	log.Info("point inserted", nil, map[string]interface{}{"collection": "docs"})
//	log.Error("search failed", err, map[string]interface{}{"collection": "docs"})
//
// The *WithContext variants add trace_id and span_id when Config.EnableTracing
// is set and the context carries an OpenTelemetry span.
//
// FXModule provides both the concrete type and the interface and syncs the
// logger on shutdown.
package logger
