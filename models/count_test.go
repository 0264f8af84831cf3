package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountMarshal(t *testing.T) {
	tests := []struct {
		in   Count
		want string
	}{
		{"4", `4`},
		{" 12 ", `12`},
		{"+3", `3`},
		{"", `0`},
		{"five", `"five"`},
		{"2.5", `"2.5"`},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}

func TestCountUnmarshal(t *testing.T) {
	h := Hospital{}
	err := json.Unmarshal([]byte(`{"total_ambulances": 4, "available_ambulances": null}`), &h)
	assert.NoError(t, err)
	assert.Equal(t, Count("4"), h.TotalAmbulances)
	assert.Equal(t, Count(""), h.AvailableAmbulances)

	err = json.Unmarshal([]byte(`{"total_ambulances": "7"}`), &h)
	assert.NoError(t, err)
	n, ok := h.TotalAmbulances.Int()
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	assert.Error(t, json.Unmarshal([]byte(`{"total_ambulances": true}`), &h))
}
