package types

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ResultCode is the "result_code" field ActiveCampaign attaches to every
// response. The API is not consistent about its JSON type, so both
// 1 and "1" decode to the same value.
type ResultCode int

const (
	ResultFailure ResultCode = 0
	ResultSuccess ResultCode = 1
)

func (c *ResultCode) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("result_code %q is not a number: %w", s, err)
		}
		*c = ResultCode(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = ResultCode(n)
	return nil
}

// Result is the envelope shared by all ActiveCampaign v1 responses.
type Result struct {
	Code    ResultCode `json:"result_code"`
	Message string     `json:"result_message"`
	Output  string     `json:"result_output"`
}

func (r Result) Succeeded() bool {
	return r.Code == ResultSuccess
}

// ID is an opaque ActiveCampaign identifier. Depending on the action it
// comes back as a JSON string or a JSON number.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

// AddResponse is returned by the *_add and *_create actions.
type AddResponse struct {
	Result
	Id ID `json:"id"`
}

// Listing is the decoded form of a *_list response. ActiveCampaign
// returns list results as sibling keys "0", "1", ... of the envelope.
type Listing[T any] struct {
	Result

	// HasFirst reports whether the response carried the "0" key.
	HasFirst bool
	Items    []T
}

// Params is implemented by every request payload.
type Params interface {
	Values() url.Values
}

// ListMembership returns the "p[<listId>]=<listId>" form field that
// attaches contacts, messages and campaigns to a list.
func ListMembership(listId string) (string, string) {
	return fmt.Sprintf("p[%s]", listId), listId
}
