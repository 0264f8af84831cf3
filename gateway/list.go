package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const resultsKey = "results"

// UnwrapList normalises a list response. The API answers list endpoints
// with either a bare array or an object carrying the array under
// "results"; a few endpoints use another key, passed in keys. null, an
// empty body, or an object with none of the keys give an empty slice.
func UnwrapList[T any](raw json.RawMessage, keys ...string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	switch trimmed[0] {
	case '[':
		out := []T{}
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, err
		}
		return out, nil
	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, err
		}
		for _, k := range append([]string{resultsKey}, keys...) {
			inner, ok := envelope[k]
			if !ok {
				continue
			}
			inner = bytes.TrimSpace(inner)
			if len(inner) == 0 || inner[0] != '[' {
				continue
			}
			out := []T{}
			if err := json.Unmarshal(inner, &out); err != nil {
				return nil, err
			}
			return out, nil
		}
		return []T{}, nil
	}
	return nil, fmt.Errorf("unexpected list response starting with %q", trimmed[0])
}
