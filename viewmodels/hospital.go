package viewmodels

import (
	"context"
	"time"

	"github.com/linesmerrill/emergency-dashboard/geo"
	"github.com/linesmerrill/emergency-dashboard/models"
)

// NearbyRadiusKM is the search radius of the nearby hospitals search
const NearbyRadiusKM = 10

// Hospitals is the hospital view-model
type Hospitals struct {
	api        HospitalAPI
	geoTimeout time.Duration
}

// NewHospitals returns the hospital view-model
func NewHospitals(api HospitalAPI, geoTimeout time.Duration) *Hospitals {
	return &Hospitals{api: api, geoTimeout: geoTimeout}
}

// NearbyResult is a one-off search result. It is never merged into the directory.
type NearbyResult struct {
	Hospitals           []models.Hospital
	Origin              geo.Coordinates
	LocationUnavailable bool
}

// Directory lists every hospital
func (h *Hospitals) Directory(ctx context.Context) ([]models.Hospital, error) {
	return h.api.GetHospitals(ctx)
}

// Nearby searches for emergency-capable hospitals around the patient. When
// no position can be resolved no request is made.
func (h *Hospitals) Nearby(ctx context.Context, locator geo.Locator) (NearbyResult, error) {
	origin, ok := geo.Resolve(ctx, locator, h.geoTimeout)
	if !ok {
		return NearbyResult{Hospitals: []models.Hospital{}, LocationUnavailable: true}, nil
	}

	hospitals, err := h.api.GetNearbyHospitals(ctx, models.NearbySearch{
		Latitude:              origin.Latitude,
		Longitude:             origin.Longitude,
		RadiusKM:              NearbyRadiusKM,
		EmergencyServicesOnly: true,
	})
	if err != nil {
		return NearbyResult{}, err
	}
	for i := range hospitals {
		if hospitals[i].DistanceToUser != nil {
			continue
		}
		at, err := geo.ParseCoordinates(hospitals[i].Latitude, hospitals[i].Longitude)
		if err != nil {
			continue
		}
		d := geo.DistanceKm(origin, at)
		hospitals[i].DistanceToUser = &d
	}
	return NearbyResult{Hospitals: hospitals, Origin: origin}, nil
}

// Create registers a hospital. Validation is left to the API, whose message is returned as is.
func (h *Hospitals) Create(ctx context.Context, hospital models.Hospital) (models.Hospital, error) {
	return h.api.CreateHospital(ctx, hospital)
}

// Respond records a hospital taking on an emergency
func (h *Hospitals) Respond(ctx context.Context, hospitalID string, resp models.EmergencyResponse) (models.CommandResult, error) {
	return h.api.RespondToEmergency(ctx, hospitalID, resp)
}
