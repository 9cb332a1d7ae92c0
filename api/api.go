package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/lo5an/ActiveCampaignDemo/errors"
	"github.com/lo5an/ActiveCampaignDemo/logger"
	"github.com/lo5an/ActiveCampaignDemo/parsers"
	"github.com/lo5an/ActiveCampaignDemo/rate"
	"github.com/lo5an/ActiveCampaignDemo/retry"
	"github.com/lo5an/ActiveCampaignDemo/types"
)

const (
	fieldAction = "api_action"
	fieldKey    = "api_key"
	fieldOutput = "api_output"

	outputJson = "json"
)

// Settings carries everything the resource APIs share. It is built once
// by the root client and never modified afterwards.
type Settings struct {
	Url        string
	ApiKey     string
	HttpClient *http.Client
	Logger     logger.Logger
	Limiter    rate.Limiter

	// Retry and RetryAttempts apply to read actions only.
	Retry         retry.Retry
	RetryAttempts int
}

type apiClient struct {
	url           string
	apiKey        string
	httpClient    *http.Client
	logger        logger.Logger
	limiter       rate.Limiter
	retry         retry.Retry
	retryAttempts int
}

func newApiClient(s Settings) *apiClient {
	c := &apiClient{
		url:           s.Url,
		apiKey:        s.ApiKey,
		httpClient:    s.HttpClient,
		logger:        s.Logger,
		limiter:       s.Limiter,
		retry:         s.Retry,
		retryAttempts: s.RetryAttempts,
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.logger == nil {
		c.logger = &logger.Noop{}
	}
	if c.limiter == nil {
		c.limiter = &rate.NoopLimiter{}
	}
	if c.retry == nil {
		c.retry = retry.NewExponentialRetry(retry.WithLogger(c.logger))
	}
	if c.retryAttempts < 1 {
		c.retryAttempts = 1
	}
	return c
}

// call posts action and decodes the response into a generic map.
func (c *apiClient) call(
	ctx context.Context,
	action string,
	params url.Values,
) (map[string]any, *errors.ApiError) {
	res := map[string]any{}
	if err := c.postJson(ctx, action, params, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// add posts a create-style action and requires result_code=1 and an id.
func (c *apiClient) add(
	ctx context.Context,
	action string,
	params url.Values,
) (types.ID, *errors.ApiError) {
	var res types.AddResponse
	if err := c.postResult(ctx, action, params, &res, &res.Result); err != nil {
		return "", err
	}
	if res.Id == "" {
		return "", &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_INVALID_DATA,
			Action:         action,
			SourceErr:      fmt.Errorf("response has no id"),
			HttpStatusCode: http.StatusOK,
		}
	}
	return res.Id, nil
}

// postResult is postJson followed by a result_code check.
func (c *apiClient) postResult(
	ctx context.Context,
	action string,
	params url.Values,
	resData any,
	result *types.Result,
) *errors.ApiError {
	if err := c.postJson(ctx, action, params, resData); err != nil {
		return err
	}
	if !result.Succeeded() {
		return &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_API_RESULT,
			Action:         action,
			HttpStatusCode: http.StatusOK,
			ResultMessage:  result.Message,
		}
	}
	return nil
}

func (c *apiClient) postJson(
	ctx context.Context,
	action string,
	params url.Values,
	resData any,
) *errors.ApiError {
	body, err := c.send(ctx, action, params)
	if err != nil {
		if len(err.Body) > 0 {
			if res, ok := parsers.ResultFromBytes(err.Body); ok {
				err.ResultMessage = res.Message
			}
		}
		return err
	}
	jsonErr := json.Unmarshal(body, resData)
	if jsonErr != nil {
		return &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_JSON_PARSE,
			Action:         action,
			SourceErr:      jsonErr,
			Body:           body,
			HttpStatusCode: http.StatusOK,
		}
	}
	return nil
}

// listing runs a read action, retrying transient failures, and decodes
// the index-keyed entries. An empty result (result_code=0) is not an
// error here; callers decide what "nothing found" means.
func listing[T any](
	ctx context.Context,
	c *apiClient,
	action string,
	params url.Values,
) (types.Listing[T], *errors.ApiError) {
	var res types.Listing[T]
	var apiErr *errors.ApiError

	_ = c.retry.Do(ctx, c.retryAttempts, action, func(attempt int) (error, retry.ExitStrategy) {
		var body []byte
		body, apiErr = c.send(ctx, action, params)
		if apiErr != nil {
			return apiErr, retry.ExitStrategy(!isTransient(apiErr))
		}

		var parseErr error
		res, parseErr = parsers.ListingFromBytes[T](body)
		if parseErr != nil {
			apiErr = &errors.ApiError{
				Stage:          errors.STAGE_AFTER_REQUEST,
				Type:           errors.TYPE_JSON_PARSE,
				Action:         action,
				SourceErr:      parseErr,
				Body:           body,
				HttpStatusCode: http.StatusOK,
			}
			return apiErr, retry.StopNow
		}
		return nil, retry.StopNow
	})

	return res, apiErr
}

func isTransient(err *errors.ApiError) bool {
	switch {
	case err.Type == errors.TYPE_IO:
		return true
	case err.Type == errors.TYPE_HTTP_STATUS:
		return err.HttpStatusCode == http.StatusTooManyRequests ||
			err.HttpStatusCode >= http.StatusInternalServerError
	}
	return false
}

// send posts one form-encoded request. The api_action, api_key and
// api_output fields are applied after the caller's params, so they win
// on a name collision.
func (c *apiClient) send(
	ctx context.Context,
	action string,
	params url.Values,
) ([]byte, *errors.ApiError) {
	if action == "" {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: fmt.Errorf("action must not be empty"),
		}
	}

	form := url.Values{}
	for k, v := range params {
		form[k] = append([]string(nil), v...)
	}
	form.Set(fieldAction, action)
	form.Set(fieldKey, c.apiKey)
	form.Set(fieldOutput, outputJson)

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			Action:    action,
			SourceErr: err,
		}
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	if err := c.limiter.Limit(req); err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_IO,
			Action:    action,
			SourceErr: err,
		}
	}

	c.logger.Debugf("POST %s action=%s fields=%d", c.url, action, len(params))

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			Action:    action,
			SourceErr: err,
		}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var body []byte
		if res.Body != nil {
			body, _ = io.ReadAll(res.Body)
			defer func() { _ = res.Body.Close() }()
		}
		c.logger.Warnf("action=%s returned http status %d", action, res.StatusCode)
		return body, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_HTTP_STATUS,
			Action:         action,
			Body:           body,
			HttpStatusCode: res.StatusCode,
		}
	}

	body, err := io.ReadAll(res.Body)
	defer func() { _ = res.Body.Close() }()
	if err != nil {
		return body, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_IO,
			Action:         action,
			Body:           body,
			HttpStatusCode: res.StatusCode,
			SourceErr:      err,
		}
	}

	return body, nil
}

// toNilErr converts a *errors.ApiError type to be a true nil interface.
// Internally, a Go interface has a Type and Value.
// An interface value is nil only if the V and T are both unset.
// See: https://go.dev/doc/faq#nil_error
func toNilErr[T any](r T, e *errors.ApiError) (T, error) {
	if e != nil {
		return r, e
	}
	return r, nil
}
