package api

// ActiveCampaign v1 api_action names.
// See: https://www.activecampaign.com/api/overview.php
const (
	ActionAddressList    = "address_list"
	ActionAddressAdd     = "address_add"
	ActionListList       = "list_list"
	ActionListAdd        = "list_add"
	ActionContactSync    = "contact_sync"
	ActionMessageAdd     = "message_add"
	ActionCampaignCreate = "campaign_create"
)
