package provision

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	activecampaign "github.com/lo5an/ActiveCampaignDemo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// actionTransport answers each api_action with a canned body.
type actionTransport struct {
	responses map[string]string
	actions   []string
}

func (a *actionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	body, _ := io.ReadAll(req.Body)
	form, _ := url.ParseQuery(string(body))
	action := form.Get("api_action")
	a.actions = append(a.actions, action)

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(a.responses[action])),
		Request:    req,
	}, nil
}

func TestEnsureAddress_FromClient_ignores_entry_fields(t *testing.T) {
	testCases := []struct {
		name          string
		addressList   string
		expectActions []string
	}{
		{
			name:          "odd-typed existing address",
			addressList:   `{"0":{"id":"1","zip":73069,"state":false},"result_code":1}`,
			expectActions: []string{"address_list"},
		},
		{
			name:          "no address",
			addressList:   `{"result_code":0,"result_message":"Failed: Nothing is returned"}`,
			expectActions: []string{"address_list", "address_add"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			tr := &actionTransport{responses: map[string]string{
				"address_list": tt.addressList,
				"address_add":  `{"result_code":1,"id":3}`,
			}}
			c := activecampaign.NewClient("https://example.api-us1.com/admin/api.php", "key",
				activecampaign.WithTransport(tr),
			)
			p := New(FromClient(c), WithOutput(&bytes.Buffer{}))

			require.NoError(t, p.EnsureAddress(context.Background()))
			assert.Equal(t, tt.expectActions, tr.actions)
		})
	}
}
