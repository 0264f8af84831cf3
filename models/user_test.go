package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileUpdateSendsClearedFields(t *testing.T) {
	b, err := json.Marshal(ProfileUpdate{FirstName: "Asha"})
	assert.NoError(t, err)
	body := map[string]interface{}{}
	assert.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, "", body["medications"])
	assert.Equal(t, "", body["blood_group"])
	assert.Len(t, body, 11)
}

func TestProfileUpdateApply(t *testing.T) {
	user := User{ID: "u1", Username: "asha", FirstName: "Asha", FullName: "Asha Rao", Medications: "Metformin"}
	got := ProfileUpdate{FirstName: "Asha", LastName: "Iyer", Medications: ""}.Apply(user)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "asha", got.Username)
	assert.Equal(t, "Iyer", got.LastName)
	assert.Empty(t, got.Medications)
	assert.Equal(t, "Asha Iyer", got.DisplayName())
}
