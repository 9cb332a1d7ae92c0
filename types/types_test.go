package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		input     string
		expect    ID
		expectErr bool
	}{
		{input: `"42"`, expect: "42"},
		{input: `42`, expect: "42"},
		{input: `null`, expect: ""},
		{input: `true`, expectErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.input, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, id)
		})
	}
}

func TestAddResponse(t *testing.T) {
	var res AddResponse
	require.NoError(t, json.Unmarshal(
		[]byte(`{"result_code":"1","result_message":"Message added","id":15}`), &res,
	))
	assert.True(t, res.Succeeded())
	assert.Equal(t, ID("15"), res.Id)
	assert.Equal(t, "Message added", res.Message)
}

func TestListListRequest_Values(t *testing.T) {
	v := ListListRequest{Name: "Test List"}.Values()
	assert.Equal(t, "all", v.Get("ids"))
	assert.Equal(t, "Test List", v.Get("filters[name]"))

	v = ListListRequest{Ids: "1,2"}.Values()
	assert.Equal(t, "1,2", v.Get("ids"))
	assert.False(t, v.Has("filters[name]"))
}

func TestCampaignCreateRequest_Values(t *testing.T) {
	v := CampaignCreateRequest{
		Type:       CampaignTypeSingle,
		Name:       "Test Campaign 1",
		SendAt:     "2026-10-18 10:00:30",
		Status:     1,
		Public:     true,
		TrackLinks: false,
		ListIds:    []string{"3"},
		Messages:   map[string]int{"9": 100},
	}.Values()

	assert.Equal(t, "single", v.Get("type"))
	assert.Equal(t, "1", v.Get("public"))
	assert.Equal(t, "0", v.Get("tracklinks"))
	assert.Equal(t, "3", v.Get("p[3]"))
	assert.Equal(t, "100", v.Get("m[9]"))
}

func TestCampaignSendDate(t *testing.T) {
	d := time.Date(2026, 1, 2, 3, 4, 5, 999, time.Local)
	assert.Equal(t, "2026-01-02 03:04:05", CampaignSendDate(d))
}

func TestContactSyncRequest_Values(t *testing.T) {
	v := ContactSyncRequest{
		FirstName: "Testy",
		LastName:  "McTest3",
		Email:     "test123+3@vlrst.com",
		ListIds:   []string{"7"},
	}.Values()

	assert.Equal(t, "McTest3", v.Get("last_name"))
	assert.Equal(t, "7", v.Get("p[7]"))
	assert.False(t, v.Has("tags"))
}

func TestParams_never_set_api_fields(t *testing.T) {
	params := []Params{
		AddressAddRequest{CompanyName: "Test Company"},
		ListListRequest{Name: "Test List"},
		ListAddRequest{Name: "Test List"},
		ContactSyncRequest{Email: "test123+0@vlrst.com", ListIds: []string{"1"}},
		MessageAddRequest{Subject: "Test Message 1", ListIds: []string{"1"}},
		CampaignCreateRequest{Name: "Test Campaign 1", Messages: map[string]int{"2": 100}},
	}

	for _, p := range params {
		v := p.Values()
		assert.NotEmpty(t, v)
		for _, key := range []string{"api_action", "api_key", "api_output"} {
			assert.False(t, v.Has(key), "%T sets %s", p, key)
		}
	}
}
