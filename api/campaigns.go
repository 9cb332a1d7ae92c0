package api

import (
	"context"

	"github.com/lo5an/ActiveCampaignDemo/types"
)

// Campaigns implements campaign_create.
// See: https://www.activecampaign.com/api/example.php?call=campaign_create
type Campaigns struct {
	api *apiClient
}

func NewCampaignsApi(s Settings) *Campaigns {
	return &Campaigns{
		api: newApiClient(s),
	}
}

func (c *Campaigns) Create(ctx context.Context, req types.CampaignCreateRequest) (types.ID, error) {
	id, err := c.api.add(ctx, ActionCampaignCreate, req.Values())
	return toNilErr(id, err)
}
