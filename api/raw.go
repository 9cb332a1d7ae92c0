package api

import (
	"context"
	"net/url"
)

// Raw exposes the untyped form of every call: an action name plus form
// fields in, the decoded JSON object out. Use it for actions that have
// no typed wrapper.
type Raw struct {
	api *apiClient
}

func NewRawApi(s Settings) *Raw {
	return &Raw{
		api: newApiClient(s),
	}
}

func (c *Raw) Call(ctx context.Context, action string, params url.Values) (map[string]any, error) {
	res, err := c.api.call(ctx, action, params)
	return toNilErr(res, err)
}
