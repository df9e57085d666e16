// Package logging provides a minimal logging facade for the rc5 package.
//
// The Logger interface wraps a subset of log/slog so applications can plug in
// their own logger, a test recorder, or a redaction policy.
//
// # Backends
//
//	// slog.Default()
//	logger := logging.New(nil)
//
//	// custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
//	// logrus
//	logger = logging.NewLogrus(logrus.NewEntry(logrus.StandardLogger()))
//
//	// discard
//	logger = logging.Nop()
//
// # Redaction
//
// Key bytes are never logged. Redacted produces an attribute whose value is
// Placeholder():
//
//	logger.Debug(ctx, "key schedule expanded", "rounds", 12, logging.Redacted("key"))
//	// Logs: rounds=12 key="[redacted]"
package logging
