package activecampaign

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lo5an/ActiveCampaignDemo/api"
)

type Client struct {
	httpClient *http.Client

	raw       *api.Raw
	addresses *api.Addresses
	lists     *api.Lists
	contacts  *api.Contacts
	messages  *api.Messages
	campaigns *api.Campaigns
}

// NewClient returns a client for the ActiveCampaign v1 API at apiUrl
// (for example https://<account>.api-us1.com/admin/api.php).
// The url and key are fixed for the lifetime of the client.
func NewClient(apiUrl string, apiKey string, opts ...ConfigOption) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout

	s := api.Settings{
		Url:           apiUrl,
		ApiKey:        apiKey,
		HttpClient:    httpClient,
		Logger:        cfg.logger,
		Limiter:       cfg.limiter,
		Retry:         cfg.retry,
		RetryAttempts: cfg.retryAttempts,
	}

	return &Client{
		httpClient: httpClient,
		raw:        api.NewRawApi(s),
		addresses:  api.NewAddressesApi(s),
		lists:      api.NewListsApi(s),
		contacts:   api.NewContactsApi(s),
		messages:   api.NewMessagesApi(s),
		campaigns:  api.NewCampaignsApi(s),
	}
}

// Call submits any api_action with the given fields and returns the
// decoded JSON object. Values are formatted with fmt.Sprint.
func (c *Client) Call(ctx context.Context, action string, params map[string]any) (map[string]any, error) {
	form := url.Values{}
	for k, v := range params {
		form.Set(k, fmt.Sprint(v))
	}
	return c.raw.Call(ctx, action, form)
}

func (c *Client) Addresses() *api.Addresses {
	return c.addresses
}

func (c *Client) Lists() *api.Lists {
	return c.lists
}

func (c *Client) Contacts() *api.Contacts {
	return c.contacts
}

func (c *Client) Messages() *api.Messages {
	return c.messages
}

func (c *Client) Campaigns() *api.Campaigns {
	return c.campaigns
}
