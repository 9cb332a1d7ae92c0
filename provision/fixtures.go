package provision

import (
	"fmt"

	"github.com/lo5an/ActiveCampaignDemo/types"
)

const (
	TestListName = "Test List"
	TestTag      = "test"
	ContactCount = 5
)

var testAddress = types.AddressAddRequest{
	CompanyName: "Test Company",
	Address1:    "1234 Test Blvd",
	City:        "Norman",
	State:       "Oklahoma",
	Zip:         "73069",
	Country:     "US",
}

var testList = types.ListAddRequest{
	Name:           TestListName,
	SenderName:     "Test Company",
	SenderAddr1:    "123 Test Blvd",
	SenderZip:      "73069",
	SenderCity:     "Norman",
	SenderCountry:  "US",
	SenderUrl:      "https://vlrst.com",
	SenderReminder: "You are one of my test addresses",
}

func testContact(i int, listId string) types.ContactSyncRequest {
	return types.ContactSyncRequest{
		FirstName: "Testy",
		LastName:  fmt.Sprintf("McTest%d", i),
		Email:     fmt.Sprintf("test123+%d@vlrst.com", i),
		Tags:      TestTag,
		ListIds:   []string{listId},
	}
}

func testMessage(listId string, tag string) types.MessageAddRequest {
	return types.MessageAddRequest{
		Format:    types.MessageFormatText,
		Subject:   "Test Message " + tag,
		FromEmail: "test123@vlrst.com",
		FromName:  "Testy McTest",
		ReplyTo:   "test234@vlrst.com",
		Priority:  "3",
		Charset:   "utf8",
		Encoding:  "quoted-printable",
		Text:      "This is a test!",
		ListIds:   []string{listId},
	}
}

func testCampaign(listId, messageId, tag, sendAt string) types.CampaignCreateRequest {
	return types.CampaignCreateRequest{
		Type:       types.CampaignTypeSingle,
		Name:       "Test Campaign " + tag,
		SendAt:     sendAt,
		Status:     1,
		Public:     false,
		TrackLinks: false,
		ListIds:    []string{listId},
		Messages:   map[string]int{messageId: 100},
	}
}
