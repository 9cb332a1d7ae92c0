package provision

import (
	"context"

	activecampaign "github.com/lo5an/ActiveCampaignDemo"
	"github.com/lo5an/ActiveCampaignDemo/types"
)

// Client is the subset of the ActiveCampaign API the provisioning steps
// need. *activecampaign.Client satisfies it through FromClient.
type Client interface {
	// HasAddress reports whether the account has at least one address.
	HasAddress(ctx context.Context) (bool, error)
	AddAddress(ctx context.Context, req types.AddressAddRequest) (types.ID, error)
	ListLists(ctx context.Context, req types.ListListRequest) (types.Listing[types.List], error)
	AddList(ctx context.Context, req types.ListAddRequest) (types.ID, error)
	SyncContact(ctx context.Context, req types.ContactSyncRequest) (*types.ContactSyncResponse, error)
	AddMessage(ctx context.Context, req types.MessageAddRequest) (types.ID, error)
	CreateCampaign(ctx context.Context, req types.CampaignCreateRequest) (types.ID, error)
}

type clientAdapter struct {
	c *activecampaign.Client
}

var _ Client = &clientAdapter{}

func FromClient(c *activecampaign.Client) Client {
	return &clientAdapter{c: c}
}

func (a *clientAdapter) HasAddress(ctx context.Context) (bool, error) {
	return a.c.Addresses().Exists(ctx)
}

func (a *clientAdapter) AddAddress(ctx context.Context, req types.AddressAddRequest) (types.ID, error) {
	return a.c.Addresses().Add(ctx, req)
}

func (a *clientAdapter) ListLists(ctx context.Context, req types.ListListRequest) (types.Listing[types.List], error) {
	return a.c.Lists().List(ctx, req)
}

func (a *clientAdapter) AddList(ctx context.Context, req types.ListAddRequest) (types.ID, error) {
	return a.c.Lists().Add(ctx, req)
}

func (a *clientAdapter) SyncContact(ctx context.Context, req types.ContactSyncRequest) (*types.ContactSyncResponse, error) {
	return a.c.Contacts().Sync(ctx, req)
}

func (a *clientAdapter) AddMessage(ctx context.Context, req types.MessageAddRequest) (types.ID, error) {
	return a.c.Messages().Add(ctx, req)
}

func (a *clientAdapter) CreateCampaign(ctx context.Context, req types.CampaignCreateRequest) (types.ID, error) {
	return a.c.Campaigns().Create(ctx, req)
}
