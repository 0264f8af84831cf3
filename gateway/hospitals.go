package gateway

import (
	"context"
	"encoding/json"

	"github.com/linesmerrill/emergency-dashboard/models"
)

// GetHospitals lists the hospital directory
func (c *Client) GetHospitals(ctx context.Context) ([]models.Hospital, error) {
	return getList[models.Hospital](ctx, c, "/hospitals/")
}

// CreateHospital registers a hospital and returns the stored record
func (c *Client) CreateHospital(ctx context.Context, h models.Hospital) (models.Hospital, error) {
	created := models.Hospital{}
	err := c.post(ctx, "/hospitals/", h, &created)
	return created, err
}

// GetNearbyHospitals searches around a point. The API answers with
// {"hospitals": [...], "count": n}.
func (c *Client) GetNearbyHospitals(ctx context.Context, search models.NearbySearch) ([]models.Hospital, error) {
	var raw json.RawMessage
	if err := c.post(ctx, "/hospitals/nearby/", search, &raw); err != nil {
		return nil, err
	}
	return unwrap[models.Hospital](c, "/hospitals/nearby/", raw, "hospitals")
}

// RespondToEmergency records a hospital taking on an emergency
func (c *Client) RespondToEmergency(ctx context.Context, hospitalID string, resp models.EmergencyResponse) (models.CommandResult, error) {
	result := models.CommandResult{}
	err := c.post(ctx, itemPath("/hospitals/", hospitalID, "respond-emergency/"), resp, &result)
	return result, err
}
