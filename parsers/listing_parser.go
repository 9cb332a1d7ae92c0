package parsers

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/lo5an/ActiveCampaignDemo/types"
)

// ResultFromBytes extracts the result envelope from any response body.
func ResultFromBytes(data []byte) (types.Result, bool) {
	var result types.Result
	if err := json.Unmarshal(data, &result); err != nil {
		var empty types.Result
		return empty, false
	}
	return result, true
}

// ListingFromBytes decodes a *_list response. Entries live next to the
// envelope fields under decimal keys ("0", "1", ...); they are returned
// in numeric key order. Non-numeric keys other than the envelope are
// ignored.
func ListingFromBytes[T any](data []byte) (types.Listing[T], error) {
	var listing types.Listing[T]

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return listing, err
	}
	if err := json.Unmarshal(data, &listing.Result); err != nil {
		return listing, err
	}

	indexes := make([]int, 0, len(raw))
	for key := range raw {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || strconv.Itoa(idx) != key {
			continue
		}
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	_, listing.HasFirst = raw["0"]
	listing.Items = make([]T, 0, len(indexes))
	for _, idx := range indexes {
		var item T
		if err := json.Unmarshal(raw[strconv.Itoa(idx)], &item); err != nil {
			return listing, fmt.Errorf("entry %d: %w", idx, err)
		}
		listing.Items = append(listing.Items, item)
	}
	return listing, nil
}
