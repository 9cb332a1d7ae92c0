package rate

import "net/http"

// Limiter controls the request rate to the ActiveCampaign API.
//
// ActiveCampaign throttles accounts to a handful of requests per second;
// the client calls Limit before every request so a burst of
// contact_sync calls does not trip the throttle.
//
// Limit should block until the request may be sent. It returns an error
// when the request's context is done before a slot frees up.
type Limiter interface {
	Limit(req *http.Request) error
}
