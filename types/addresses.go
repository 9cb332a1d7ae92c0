package types

import "net/url"

type Address struct {
	Id          ID     `json:"id"`
	CompanyName string `json:"company_name"`
	Address1    string `json:"address_1"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Country     string `json:"country"`
}

type AddressAddRequest struct {
	CompanyName string
	Address1    string
	City        string
	State       string
	Zip         string
	Country     string
}

var _ Params = AddressAddRequest{}

func (r AddressAddRequest) Values() url.Values {
	v := url.Values{}
	v.Set("company_name", r.CompanyName)
	v.Set("address_1", r.Address1)
	v.Set("city", r.City)
	v.Set("state", r.State)
	v.Set("zip", r.Zip)
	v.Set("country", r.Country)
	return v
}
