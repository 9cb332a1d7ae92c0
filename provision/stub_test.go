package provision

import (
	"context"
	"fmt"

	"github.com/lo5an/ActiveCampaignDemo/types"
)

type stubCall struct {
	action string
	req    any
}

// stubClient records every call and answers from canned responses.
type stubClient struct {
	calls []stubCall

	addresses   types.Listing[types.Address]
	lists       types.Listing[types.List]
	addListId   types.ID
	messageId   types.ID
	campaignId  types.ID
	failOn      string
	contactSync int
}

var _ Client = &stubClient{}

func (s *stubClient) record(action string, req any) error {
	s.calls = append(s.calls, stubCall{action: action, req: req})
	if s.failOn == action {
		return fmt.Errorf("%s failed", action)
	}
	return nil
}

func (s *stubClient) actions() []string {
	out := make([]string, 0, len(s.calls))
	for _, c := range s.calls {
		out = append(out, c.action)
	}
	return out
}

func (s *stubClient) requests(action string) []any {
	var out []any
	for _, c := range s.calls {
		if c.action == action {
			out = append(out, c.req)
		}
	}
	return out
}

func (s *stubClient) HasAddress(_ context.Context) (bool, error) {
	return s.addresses.HasFirst, s.record("address_list", nil)
}

func (s *stubClient) AddAddress(_ context.Context, req types.AddressAddRequest) (types.ID, error) {
	return "1", s.record("address_add", req)
}

func (s *stubClient) ListLists(_ context.Context, req types.ListListRequest) (types.Listing[types.List], error) {
	return s.lists, s.record("list_list", req)
}

func (s *stubClient) AddList(_ context.Context, req types.ListAddRequest) (types.ID, error) {
	return s.addListId, s.record("list_add", req)
}

func (s *stubClient) SyncContact(_ context.Context, req types.ContactSyncRequest) (*types.ContactSyncResponse, error) {
	s.contactSync++
	return &types.ContactSyncResponse{SubscriberId: types.ID(fmt.Sprint(s.contactSync))}, s.record("contact_sync", req)
}

func (s *stubClient) AddMessage(_ context.Context, req types.MessageAddRequest) (types.ID, error) {
	return s.messageId, s.record("message_add", req)
}

func (s *stubClient) CreateCampaign(_ context.Context, req types.CampaignCreateRequest) (types.ID, error) {
	return s.campaignId, s.record("campaign_create", req)
}

func foundList(id string) types.Listing[types.List] {
	return types.Listing[types.List]{
		Result:   types.Result{Code: 1},
		HasFirst: true,
		Items:    []types.List{{Id: types.ID(id)}},
	}
}

func noLists() types.Listing[types.List] {
	return types.Listing[types.List]{
		Result: types.Result{Code: 0, Message: "Failed: Nothing is returned"},
		Items:  []types.List{},
	}
}

func oneAddress() types.Listing[types.Address] {
	return types.Listing[types.Address]{
		Result:   types.Result{Code: 1},
		HasFirst: true,
		Items:    []types.Address{{Id: "1"}},
	}
}
