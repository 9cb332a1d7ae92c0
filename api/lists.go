package api

import (
	"context"

	"github.com/lo5an/ActiveCampaignDemo/types"
)

// Lists implements the list_* actions.
// See: https://www.activecampaign.com/api/example.php?call=list_list
type Lists struct {
	api *apiClient
}

func NewListsApi(s Settings) *Lists {
	return &Lists{
		api: newApiClient(s),
	}
}

func (c *Lists) List(ctx context.Context, req types.ListListRequest) (types.Listing[types.List], error) {
	res, err := listing[types.List](ctx, c.api, ActionListList, req.Values())
	return toNilErr(res, err)
}

func (c *Lists) Add(ctx context.Context, req types.ListAddRequest) (types.ID, error) {
	id, err := c.api.add(ctx, ActionListAdd, req.Values())
	return toNilErr(id, err)
}
