package parsers

import (
	"testing"

	"github.com/lo5an/ActiveCampaignDemo/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultFromBytes(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expectOk bool
		expect   types.Result
	}{
		{
			name:     "numeric code",
			input:    `{"result_code":1,"result_message":"Success: Something is returned","result_output":"json"}`,
			expectOk: true,
			expect:   types.Result{Code: 1, Message: "Success: Something is returned", Output: "json"},
		},
		{
			name:     "string code",
			input:    `{"result_code":"0","result_message":"Failed: Nothing is returned"}`,
			expectOk: true,
			expect:   types.Result{Code: 0, Message: "Failed: Nothing is returned"},
		},
		{
			name:     "not json",
			input:    `<html>nope</html>`,
			expectOk: false,
		},
		{
			name:     "bad code",
			input:    `{"result_code":"yes"}`,
			expectOk: false,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := ResultFromBytes([]byte(tt.input))
			assert.Equal(t, tt.expectOk, ok)
			assert.Equal(t, tt.expect, res)
		})
	}
}

func TestListingFromBytes(t *testing.T) {
	data := []byte(`{
		"1": {"id": "7", "name": "Second"},
		"0": {"id": 42, "name": "Test List"},
		"10": {"id": "9", "name": "Eleventh"},
		"01": {"id": "x", "name": "not an index"},
		"result_code": 1,
		"result_message": "Success: Something is returned",
		"result_output": "json"
	}`)

	listing, err := ListingFromBytes[types.List](data)
	require.NoError(t, err)

	assert.True(t, listing.HasFirst)
	assert.True(t, listing.Succeeded())
	require.Len(t, listing.Items, 3)
	assert.Equal(t, types.ID("42"), listing.Items[0].Id)
	assert.Equal(t, "Test List", listing.Items[0].Name)
	assert.Equal(t, types.ID("7"), listing.Items[1].Id)
	assert.Equal(t, types.ID("9"), listing.Items[2].Id)
}

func TestListingFromBytes_empty(t *testing.T) {
	listing, err := ListingFromBytes[types.Address]([]byte(
		`{"result_code":0,"result_message":"Failed: Nothing is returned","result_output":"json"}`,
	))
	require.NoError(t, err)

	assert.False(t, listing.HasFirst)
	assert.False(t, listing.Succeeded())
	assert.Empty(t, listing.Items)
}

func TestListingFromBytes_errors(t *testing.T) {
	_, err := ListingFromBytes[types.List]([]byte(`{"0":`))
	assert.Error(t, err)

	_, err = ListingFromBytes[types.List]([]byte(`{"0": "not an object", "result_code": 1}`))
	assert.Error(t, err)
}
