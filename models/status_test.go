package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusActions(t *testing.T) {
	tests := []struct {
		status Status
		want   []Action
	}{
		{StatusPending, []Action{ActionCancel}},
		{StatusAcknowledged, nil},
		{StatusDispatched, nil},
		{StatusInProgress, []Action{ActionResolve}},
		{StatusCompleted, nil},
		{StatusCancelled, nil},
		{Status("ON_HOLD"), nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Actions())
			assert.Equal(t, tt.want != nil && tt.want[0] == ActionCancel, tt.status.Allows(ActionCancel))
			assert.Equal(t, tt.want != nil && tt.want[0] == ActionResolve, tt.status.Allows(ActionResolve))
		})
	}
}

func TestStatusActionsReturnsCopy(t *testing.T) {
	actions := StatusPending.Actions()
	actions[0] = ActionResolve

	assert.Equal(t, []Action{ActionCancel}, StatusPending.Actions())
}

func TestStatusLifecycle(t *testing.T) {
	assert.True(t, StatusPending.CanTransition(StatusAcknowledged))
	assert.True(t, StatusPending.CanTransition(StatusCancelled))
	assert.True(t, StatusDispatched.CanTransition(StatusInProgress))
	assert.True(t, StatusInProgress.CanTransition(StatusCompleted))
	assert.False(t, StatusDispatched.CanTransition(StatusCancelled))
	assert.False(t, StatusCompleted.CanTransition(StatusPending))
	assert.False(t, StatusCancelled.CanTransition(StatusPending))

	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusDispatched.Active())
	assert.False(t, Status("ON_HOLD").Known())
	assert.False(t, Status("ON_HOLD").Active())

	assert.Equal(t, StatusCancelled, ActionCancel.Target())
	assert.Equal(t, StatusCompleted, ActionResolve.Target())
}

func TestPriorityValid(t *testing.T) {
	for _, p := range Priorities {
		assert.True(t, p.Valid(), p)
	}
	assert.False(t, Priority("URGENT").Valid())
	assert.False(t, Priority("").Valid())
}

func TestEmergencyDisplay(t *testing.T) {
	e := Emergency{ID: "8f14e45f-ceea-467f-a0e6-0a3b3c9d1e2f", LocationLatitude: "12.971600", LocationLongitude: "77.594600"}
	assert.Equal(t, "8f14e45f", e.ShortID())
	assert.Equal(t, "12.971600, 77.594600", e.Location())

	e.LocationAddress = "12 MG Road"
	assert.Equal(t, "12 MG Road", e.Location())

	assert.Equal(t, "GPS Location", Emergency{}.Location())
	assert.Equal(t, "e1", Emergency{ID: "e1"}.ShortID())
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "Asha Rao", User{Username: "asha", FirstName: "Asha", LastName: "Rao"}.DisplayName())
	assert.Equal(t, "Asha", User{Username: "asha", FirstName: "Asha"}.DisplayName())
	assert.Equal(t, "Rao", User{Username: "asha", LastName: "Rao"}.DisplayName())
	assert.Equal(t, "asha", User{Username: "asha"}.DisplayName())
}

func TestNotificationRead(t *testing.T) {
	now := time.Now()
	assert.False(t, Notification{Status: "SENT"}.Read())
	assert.True(t, Notification{Status: "READ"}.Read())
	assert.True(t, Notification{Status: "SENT", ReadAt: &now}.Read())
}
