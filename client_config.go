package activecampaign

import (
	"net/http"
	"time"

	"github.com/lo5an/ActiveCampaignDemo/logger"
	"github.com/lo5an/ActiveCampaignDemo/rate"
	"github.com/lo5an/ActiveCampaignDemo/retry"
)

type config struct {
	// transport specifies the HTTP transport mechanism
	// for making requests.
	// It's useful for mocking or for adding extra logging, headers, etc.
	// default: http.DefaultTransport
	transport http.RoundTripper

	// timeout sets the maximum duration for HTTP requests
	// before they are cancelled
	// default: 10 seconds
	timeout time.Duration

	// logger provides logging functionality for all internal
	// client operations
	// default: logger.Noop
	logger logger.Logger

	// limiter is consulted before every request
	// default: rate.NoopLimiter
	limiter rate.Limiter

	// retry and retryAttempts apply to the read actions
	// (address_list, list_list); writes are sent exactly once.
	// default: exponential retry, 1 attempt (no retry)
	retry         retry.Retry
	retryAttempts int
}

func defaultConfig() *config {
	return &config{
		transport:     http.DefaultTransport,
		timeout:       10 * time.Second,
		logger:        logger.Noop{},
		limiter:       &rate.NoopLimiter{},
		retryAttempts: 1,
	}
}

type ConfigOption func(c *config)

func WithTransport(transport http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}

func WithRateLimiter(limiter rate.Limiter) ConfigOption {
	return func(c *config) {
		c.limiter = limiter
	}
}

func WithRetry(r retry.Retry) ConfigOption {
	return func(c *config) {
		c.retry = r
	}
}

func WithRetryAttempts(attempts int) ConfigOption {
	return func(c *config) {
		c.retryAttempts = attempts
	}
}
