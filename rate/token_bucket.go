package rate

import (
	"net/http"

	xrate "golang.org/x/time/rate"
)

type tokenBucket struct {
	limiter *xrate.Limiter
}

var _ Limiter = &tokenBucket{}

// NewTokenBucket allows perSecond requests per second with the given
// burst. A perSecond <= 0 returns a NoopLimiter.
func NewTokenBucket(perSecond float64, burst int) Limiter {
	if perSecond <= 0 {
		return &NoopLimiter{}
	}
	if burst < 1 {
		burst = 1
	}
	return &tokenBucket{
		limiter: xrate.NewLimiter(xrate.Limit(perSecond), burst),
	}
}

func (t *tokenBucket) Limit(req *http.Request) error {
	return t.limiter.Wait(req.Context())
}
