package viewmodels

import (
	"context"

	"github.com/linesmerrill/emergency-dashboard/models"
)

// Ambulances is the ambulance view-model
type Ambulances struct {
	api AmbulanceAPI
}

// NewAmbulances returns the ambulance view-model
func NewAmbulances(api AmbulanceAPI) *Ambulances {
	return &Ambulances{api: api}
}

// List returns every ambulance, or only those free to dispatch
func (a *Ambulances) List(ctx context.Context, availableOnly bool) ([]models.Ambulance, error) {
	if availableOnly {
		return a.api.GetAvailableAmbulances(ctx)
	}
	return a.api.GetAmbulances(ctx)
}

// Create registers an ambulance
func (a *Ambulances) Create(ctx context.Context, ambulance models.Ambulance) (models.Ambulance, error) {
	return a.api.CreateAmbulance(ctx, ambulance)
}
