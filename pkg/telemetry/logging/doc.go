// Package logging builds the process logger on top of log/slog.
//
// # Usage
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json"})
//	if err != nil {
//	    return err
//	}
//	slog.SetDefault(logger)
//
//	ctx = logging.WithRequestID(ctx, "3f0c...")
//	logger.InfoContext(ctx, "got request", "path", r.URL.Path) // includes request_id
package logging
