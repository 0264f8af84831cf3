package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/linesmerrill/emergency-dashboard/geo"
	"github.com/linesmerrill/emergency-dashboard/models"
	"github.com/linesmerrill/emergency-dashboard/viewmodels"
)

// Hospital serves the hospital directory, nearby search and responses
type Hospital struct {
	pages
	VM     *viewmodels.Hospitals
	Locate func(r *http.Request) geo.Locator
}

type hospitalsData struct {
	Hospitals []models.Hospital
	Nearby    *viewmodels.NearbyResult
	Form      models.Hospital
}

// HospitalsHandler lists every hospital
func (h Hospital) HospitalsHandler(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, http.StatusOK, hospitalsData{Form: models.Hospital{HasEmergencyServices: true}})
}

// CreateHospitalHandler registers a hospital
func (h Hospital) CreateHospitalHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	f := r.PostForm
	hospital := models.Hospital{
		Name:                 strings.TrimSpace(f.Get("name")),
		RegistrationNumber:   strings.TrimSpace(f.Get("registration_number")),
		PhoneNumber:          f.Get("phone_number"),
		Email:                f.Get("email"),
		Website:              f.Get("website"),
		Address:              f.Get("address"),
		City:                 f.Get("city"),
		State:                f.Get("state"),
		Pincode:              f.Get("pincode"),
		Latitude:             f.Get("latitude"),
		Longitude:            f.Get("longitude"),
		HasEmergencyServices: formBool(f, "has_emergency_services"),
		HasAmbulance:         formBool(f, "has_ambulance"),
		Operates24x7:         formBool(f, "operates_24x7"),
		TotalAmbulances:      models.Count(f.Get("total_ambulances")),
		AvailableAmbulances:  models.Count(f.Get("available_ambulances")),
		Specializations:      f.Get("specializations"),
	}
	if _, err := h.VM.Create(r.Context(), hospital); err != nil {
		list, _ := h.VM.Directory(r.Context())
		h.fail(w, r, err, "Hospitals", "hospitals", hospitalsData{Hospitals: list, Form: hospital})
		return
	}
	redirect(w, r, "/hospitals", "hospital_created")
}

// NearbyHospitalsHandler searches around the patient's position and shows
// the results above the directory
func (h Hospital) NearbyHospitalsHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	nearby, err := h.VM.Nearby(r.Context(), h.Locate(r))
	if err != nil {
		h.fail(w, r, err, "Hospitals", "", nil)
		return
	}
	h.show(w, r, http.StatusOK, hospitalsData{Nearby: &nearby, Form: models.Hospital{HasEmergencyServices: true}})
}

// RespondHandler records a hospital responding to an emergency
func (h Hospital) RespondHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	resp := models.EmergencyResponse{
		EmergencyID:             strings.TrimSpace(r.PostForm.Get("emergency_id")),
		EstimatedArrivalMinutes: models.Count(r.PostForm.Get("estimated_arrival_minutes")),
		ResponseNotes:           r.PostForm.Get("response_notes"),
	}
	if _, err := h.VM.Respond(r.Context(), mux.Vars(r)["hospital_id"], resp); err != nil {
		h.fail(w, r, err, "Hospitals", "", nil)
		return
	}
	redirect(w, r, "/emergencies/"+resp.EmergencyID, "responded")
}

func (h Hospital) show(w http.ResponseWriter, r *http.Request, status int, data hospitalsData) {
	list, err := h.VM.Directory(r.Context())
	if err != nil {
		h.fail(w, r, err, "Hospitals", "hospitals", data)
		return
	}
	data.Hospitals = list
	h.render(w, status, "hospitals", h.page(r, "Hospitals", data))
}
