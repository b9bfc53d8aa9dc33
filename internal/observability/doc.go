// Package observability provides structured logging and lightweight
// in-process metrics for the translation service.
//
// Logging is zap-based; the context-aware Logger attaches the request ID
// set by the chi RequestID middleware to every line. Metrics are plain
// atomic counters exposed through the status endpoint rather than a
// scrape surface.
package observability
