package types

import "net/url"

type List struct {
	Id         ID     `json:"id"`
	Name       string `json:"name"`
	SenderName string `json:"sender_name"`
	Cdate      string `json:"cdate"`
}

type ListListRequest struct {
	// Ids is either a comma separated list of ids or "all".
	Ids  string
	Name string
}

var _ Params = ListListRequest{}

func (r ListListRequest) Values() url.Values {
	v := url.Values{}
	ids := r.Ids
	if ids == "" {
		ids = "all"
	}
	v.Set("ids", ids)
	if r.Name != "" {
		v.Set("filters[name]", r.Name)
	}
	return v
}

type ListAddRequest struct {
	Name           string
	SenderName     string
	SenderAddr1    string
	SenderZip      string
	SenderCity     string
	SenderCountry  string
	SenderUrl      string
	SenderReminder string
}

var _ Params = ListAddRequest{}

func (r ListAddRequest) Values() url.Values {
	v := url.Values{}
	v.Set("name", r.Name)
	v.Set("sender_name", r.SenderName)
	v.Set("sender_addr1", r.SenderAddr1)
	v.Set("sender_zip", r.SenderZip)
	v.Set("sender_city", r.SenderCity)
	v.Set("sender_country", r.SenderCountry)
	v.Set("sender_url", r.SenderUrl)
	v.Set("sender_reminder", r.SenderReminder)
	return v
}
