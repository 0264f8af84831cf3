package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	ID string `json:"id"`
}

func TestUnwrapList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		keys []string
		want []item
	}{
		{"bare array", `[{"id":"a"},{"id":"b"}]`, nil, []item{{"a"}, {"b"}}},
		{"results", `{"results":[{"id":"a"}],"next":null}`, nil, []item{{"a"}}},
		{"custom key", `{"hospitals":[{"id":"h"}],"count":1}`, []string{"hospitals"}, []item{{"h"}}},
		{"results wins", `{"results":[{"id":"r"}],"hospitals":[{"id":"h"}]}`, []string{"hospitals"}, []item{{"r"}}},
		{"null", `null`, nil, []item{}},
		{"empty", ``, nil, []item{}},
		{"unknown envelope", `{"count":0}`, nil, []item{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnwrapList[item](json.RawMessage(tt.raw), tt.keys...)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnwrapListRejectsScalars(t *testing.T) {
	_, err := UnwrapList[item](json.RawMessage(`"nope"`))
	assert.Error(t, err)
}

func TestErrorMessageFallsBackToStatus(t *testing.T) {
	assert.Equal(t, "HTTP 404", errorMessage(404, []byte(`{"count": 3}`)))
	assert.Equal(t, "HTTP 404", errorMessage(404, []byte(`not json`)))
}
