package logger

// Logger is the logging interface used by the ActiveCampaign client and
// the provisioning steps. Plug in any implementation (slog, zap, the
// standard log package) or use Noop to disable logging entirely.
//
// The logger is used for:
// - API request/response debugging (the api_key is never logged)
// - Retry attempt tracking
// - Provisioning progress
//
// Usage Example:
//
//	client := activecampaign.NewClient(url, key, activecampaign.WithLogger(logger.NewSlog(slog.Default())))
//
//	// Disable logging entirely
//	client := activecampaign.NewClient(url, key, activecampaign.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
