package gateway

import (
	"context"

	"github.com/linesmerrill/emergency-dashboard/models"
)

// GetAmbulances lists every registered ambulance
func (c *Client) GetAmbulances(ctx context.Context) ([]models.Ambulance, error) {
	return getList[models.Ambulance](ctx, c, "/ambulances/")
}

// GetAvailableAmbulances lists ambulances free to dispatch
func (c *Client) GetAvailableAmbulances(ctx context.Context) ([]models.Ambulance, error) {
	return getList[models.Ambulance](ctx, c, "/ambulances/available/", "ambulances")
}

// CreateAmbulance registers an ambulance with a hospital
func (c *Client) CreateAmbulance(ctx context.Context, a models.Ambulance) (models.Ambulance, error) {
	created := models.Ambulance{}
	err := c.post(ctx, "/ambulances/", a, &created)
	return created, err
}
