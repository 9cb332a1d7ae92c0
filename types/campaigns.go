package types

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

const CampaignTypeSingle = "single"

// CampaignSendDateFormat is the layout ActiveCampaign expects in "sdate".
const CampaignSendDateFormat = "2006-01-02 15:04:05"

// CampaignSendDate formats d in local time, the way the sdate field is
// interpreted by the account.
func CampaignSendDate(d time.Time) string {
	return d.Local().Format(CampaignSendDateFormat)
}

type CampaignCreateRequest struct {
	Type   string
	Name   string
	SendAt string
	// Status 1 schedules the campaign, 0 leaves it as a draft.
	Status     int
	Public     bool
	TrackLinks bool
	ListIds    []string
	// Messages maps a message id to its split percentage.
	Messages map[string]int
}

var _ Params = CampaignCreateRequest{}

func (r CampaignCreateRequest) Values() url.Values {
	v := url.Values{}
	v.Set("type", r.Type)
	v.Set("name", r.Name)
	v.Set("sdate", r.SendAt)
	v.Set("status", strconv.Itoa(r.Status))
	v.Set("public", boolFlag(r.Public))
	v.Set("tracklinks", boolFlag(r.TrackLinks))
	for _, listId := range r.ListIds {
		v.Set(ListMembership(listId))
	}
	for messageId, percentage := range r.Messages {
		v.Set(fmt.Sprintf("m[%s]", messageId), strconv.Itoa(percentage))
	}
	return v
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
