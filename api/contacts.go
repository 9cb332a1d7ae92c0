package api

import (
	"context"

	"github.com/lo5an/ActiveCampaignDemo/types"
)

// Contacts implements contact_sync, which creates the contact or
// updates the existing one with the same email.
type Contacts struct {
	api *apiClient
}

func NewContactsApi(s Settings) *Contacts {
	return &Contacts{
		api: newApiClient(s),
	}
}

func (c *Contacts) Sync(ctx context.Context, req types.ContactSyncRequest) (*types.ContactSyncResponse, error) {
	var res types.ContactSyncResponse
	return toNilErr(&res, c.api.postResult(
		ctx,
		ActionContactSync,
		req.Values(),
		&res,
		&res.Result,
	))
}
