package models

// Status is the server-owned lifecycle state of an emergency
type Status string

// Statuses reported by the emergencies endpoint
const (
	StatusPending      Status = "PENDING"
	StatusAcknowledged Status = "ACKNOWLEDGED"
	StatusDispatched   Status = "DISPATCHED"
	StatusInProgress   Status = "IN_PROGRESS"
	StatusCompleted    Status = "COMPLETED"
	StatusCancelled    Status = "CANCELLED"
)

// Action is something the patient may ask the API to do to an emergency
type Action string

// Patient actions
const (
	ActionCancel  Action = "cancel"
	ActionResolve Action = "resolve"
)

// lifecycle is the set of transitions the remote dispatch system is
// observed to make. Only the patientActions entries are ever requested
// from this side.
var lifecycle = map[Status][]Status{
	StatusPending:      {StatusAcknowledged, StatusDispatched, StatusCancelled},
	StatusAcknowledged: {StatusDispatched, StatusCancelled},
	StatusDispatched:   {StatusInProgress},
	StatusInProgress:   {StatusCompleted},
}

var patientActions = map[Status][]Action{
	StatusPending:    {ActionCancel},
	StatusInProgress: {ActionResolve},
}

// Known reports whether s is a status this client understands
func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusAcknowledged, StatusDispatched, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is expected
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Active reports whether the emergency is still being handled
func (s Status) Active() bool {
	return s.Known() && !s.Terminal()
}

// CanTransition reports whether the lifecycle allows moving from s to next
func (s Status) CanTransition(next Status) bool {
	for _, n := range lifecycle[s] {
		if n == next {
			return true
		}
	}
	return false
}

// Actions returns the patient actions offered while in s. A nil slice
// means no action may be offered.
func (s Status) Actions() []Action {
	actions := patientActions[s]
	if len(actions) == 0 {
		return nil
	}
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// Allows reports whether action a is offered while in s
func (s Status) Allows(a Action) bool {
	for _, v := range patientActions[s] {
		if v == a {
			return true
		}
	}
	return false
}

// Target returns the status the API is asked to move to for a
func (a Action) Target() Status {
	switch a {
	case ActionCancel:
		return StatusCancelled
	case ActionResolve:
		return StatusCompleted
	}
	return ""
}
