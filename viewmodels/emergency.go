package viewmodels

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/emergency-dashboard/geo"
	"github.com/linesmerrill/emergency-dashboard/models"
)

// Notes sent with the patient's own commands
const (
	CancelNotes     = "Cancelled by patient"
	CompletionNotes = "Emergency resolved through patient interface"
)

// Emergencies is the emergency view-model
type Emergencies struct {
	api        EmergencyAPI
	geoTimeout time.Duration
}

// NewEmergencies returns the emergency view-model. geoTimeout bounds the
// location attempt made when raising an alert.
func NewEmergencies(api EmergencyAPI, geoTimeout time.Duration) *Emergencies {
	return &Emergencies{api: api, geoTimeout: geoTimeout}
}

// EmergencyForm is the alert form
type EmergencyForm struct {
	Priority    models.Priority
	Description string
	Address     string
}

// CreateResult reports what was raised and whether a position was attached
type CreateResult struct {
	models.EmergencyCreated
	Located bool
}

// EmergencyDetail is everything the detail page shows
type EmergencyDetail struct {
	Emergency     models.Emergency
	Notifications []models.Notification
	Actions       []models.Action
	// NotificationsError is set when the emergency loaded but its notifications did not
	NotificationsError string
}

// Can reports whether the page may offer a
func (d EmergencyDetail) Can(a models.Action) bool {
	for _, v := range d.Actions {
		if v == a {
			return true
		}
	}
	return false
}

// List returns the patient's emergencies in API order
func (e *Emergencies) List(ctx context.Context) ([]models.Emergency, error) {
	return e.api.GetEmergencies(ctx)
}

// History returns every emergency raised by userID
func (e *Emergencies) History(ctx context.Context, userID string) ([]models.Emergency, error) {
	return e.api.GetEmergencyHistory(ctx, userID)
}

// Detail loads an emergency, its notifications and the actions its status offers
func (e *Emergencies) Detail(ctx context.Context, id string) (EmergencyDetail, error) {
	emergency, err := e.api.GetEmergency(ctx, id)
	if err != nil {
		return EmergencyDetail{}, err
	}
	detail := EmergencyDetail{
		Emergency: emergency,
		Actions:   emergency.Status.Actions(),
	}
	notifications, err := e.api.GetEmergencyNotifications(ctx, id)
	if err != nil {
		zap.S().Warnw("failed to load emergency notifications", "emergency", id, "error", err)
		detail.NotificationsError = err.Error()
		return detail, nil
	}
	detail.Notifications = notifications
	return detail, nil
}

// Create raises an alert. The locator gets one bounded attempt; without a
// position the alert goes out with the address only.
func (e *Emergencies) Create(ctx context.Context, form EmergencyForm, locator geo.Locator) (CreateResult, error) {
	if form.Priority == "" {
		form.Priority = models.PriorityHigh
	}
	if !form.Priority.Valid() {
		return CreateResult{}, fmt.Errorf("%w: %q", ErrInvalidPriority, form.Priority)
	}

	req := models.EmergencyRequest{
		Priority:        form.Priority,
		Description:     strings.TrimSpace(form.Description),
		LocationAddress: strings.TrimSpace(form.Address),
	}
	coords, located := geo.Resolve(ctx, locator, e.geoTimeout)
	if located {
		req.LocationLatitude = coords.LatitudeString()
		req.LocationLongitude = coords.LongitudeString()
	}

	created, err := e.api.CreateEmergency(ctx, req)
	if err != nil {
		return CreateResult{}, err
	}
	zap.S().Infow("emergency raised",
		"emergency", created.Emergency.ID,
		"priority", req.Priority,
		"located", located,
		"notifications_sent", created.NotificationsSent,
	)
	return CreateResult{EmergencyCreated: created, Located: located}, nil
}

// Cancel asks the API to cancel a pending emergency and returns the re-read detail
func (e *Emergencies) Cancel(ctx context.Context, id string) (EmergencyDetail, error) {
	return e.command(ctx, id, models.ActionCancel, func() error {
		_, err := e.api.UpdateEmergencyStatus(ctx, id, models.StatusUpdate{
			Status:        models.ActionCancel.Target(),
			ResponseNotes: CancelNotes,
		})
		return err
	})
}

// Resolve asks the API to complete an in-progress emergency and returns the re-read detail
func (e *Emergencies) Resolve(ctx context.Context, id string) (EmergencyDetail, error) {
	return e.command(ctx, id, models.ActionResolve, func() error {
		_, err := e.api.CompleteEmergency(ctx, id, models.Completion{CompletionNotes: CompletionNotes})
		return err
	})
}

// command checks the action against the API's current status, sends it,
// then reads the emergency again. The command's own response is not trusted
// for the status shown.
func (e *Emergencies) command(ctx context.Context, id string, action models.Action, send func() error) (EmergencyDetail, error) {
	current, err := e.api.GetEmergency(ctx, id)
	if err != nil {
		return EmergencyDetail{}, err
	}
	if !current.Status.Allows(action) {
		return EmergencyDetail{}, fmt.Errorf("%w: cannot %s while %s", ErrActionNotAllowed, action, current.Status)
	}
	if err := send(); err != nil {
		return EmergencyDetail{}, err
	}
	zap.S().Infow("emergency command sent", "emergency", id, "action", action)
	return e.Detail(ctx, id)
}
