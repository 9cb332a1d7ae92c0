package api

import (
	"context"
	"encoding/json"

	"github.com/lo5an/ActiveCampaignDemo/types"
)

// Addresses implements the address_* actions.
// See: https://www.activecampaign.com/api/example.php?call=address_list
type Addresses struct {
	api *apiClient
}

func NewAddressesApi(s Settings) *Addresses {
	return &Addresses{
		api: newApiClient(s),
	}
}

func (c *Addresses) List(ctx context.Context) (types.Listing[types.Address], error) {
	res, err := listing[types.Address](ctx, c.api, ActionAddressList, nil)
	return toNilErr(res, err)
}

// Exists reports whether address_list returned a "0" entry. Entries are
// not decoded, so their field types do not matter.
func (c *Addresses) Exists(ctx context.Context) (bool, error) {
	res, err := listing[json.RawMessage](ctx, c.api, ActionAddressList, nil)
	return toNilErr(res.HasFirst, err)
}

func (c *Addresses) Add(ctx context.Context, req types.AddressAddRequest) (types.ID, error) {
	id, err := c.api.add(ctx, ActionAddressAdd, req.Values())
	return toNilErr(id, err)
}
