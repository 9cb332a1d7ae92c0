package api

import (
	"context"

	"github.com/lo5an/ActiveCampaignDemo/types"
)

type Messages struct {
	api *apiClient
}

func NewMessagesApi(s Settings) *Messages {
	return &Messages{
		api: newApiClient(s),
	}
}

func (c *Messages) Add(ctx context.Context, req types.MessageAddRequest) (types.ID, error) {
	id, err := c.api.add(ctx, ActionMessageAdd, req.Values())
	return toNilErr(id, err)
}
