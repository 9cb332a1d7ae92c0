package types

import "net/url"

type ContactSyncRequest struct {
	FirstName string
	LastName  string
	Email     string
	Tags      string
	ListIds   []string
}

var _ Params = ContactSyncRequest{}

func (r ContactSyncRequest) Values() url.Values {
	v := url.Values{}
	v.Set("first_name", r.FirstName)
	v.Set("last_name", r.LastName)
	v.Set("email", r.Email)
	if r.Tags != "" {
		v.Set("tags", r.Tags)
	}
	for _, listId := range r.ListIds {
		v.Set(ListMembership(listId))
	}
	return v
}

type ContactSyncResponse struct {
	Result
	SubscriberId ID `json:"subscriber_id"`
}
