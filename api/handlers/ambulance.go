package handlers

import (
	"net/http"
	"strings"

	"github.com/linesmerrill/emergency-dashboard/models"
	"github.com/linesmerrill/emergency-dashboard/viewmodels"
)

// Ambulance serves the ambulance fleet page
type Ambulance struct {
	pages
	VM        *viewmodels.Ambulances
	Hospitals *viewmodels.Hospitals
}

type ambulancesData struct {
	Ambulances    []models.Ambulance
	AvailableOnly bool
	Hospitals     []models.Hospital
	Form          models.Ambulance
}

// AmbulancesHandler lists ambulances, only available ones with ?available=1
func (a Ambulance) AmbulancesHandler(w http.ResponseWriter, r *http.Request) {
	availableOnly := formBool(r.URL.Query(), "available")
	list, err := a.VM.List(r.Context(), availableOnly)
	if err != nil {
		a.fail(w, r, err, "Ambulances", "", nil)
		return
	}
	data := ambulancesData{Ambulances: list, AvailableOnly: availableOnly, Form: models.Ambulance{HasOxygen: true}}
	data.Hospitals, err = a.Hospitals.Directory(r.Context())
	if err != nil {
		a.fail(w, r, err, "Ambulances", "ambulances", data)
		return
	}
	a.render(w, http.StatusOK, "ambulances", a.page(r, "Ambulances", data))
}

// CreateAmbulanceHandler registers an ambulance with a hospital
func (a Ambulance) CreateAmbulanceHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	f := r.PostForm
	ambulance := models.Ambulance{
		Hospital:         f.Get("hospital"),
		VehicleNumber:    strings.TrimSpace(f.Get("vehicle_number")),
		DriverName:       strings.TrimSpace(f.Get("driver_name")),
		DriverPhone:      strings.TrimSpace(f.Get("driver_phone")),
		HasVentilator:    formBool(f, "has_ventilator"),
		HasDefibrillator: formBool(f, "has_defibrillator"),
		HasOxygen:        formBool(f, "has_oxygen"),
	}
	if _, err := a.VM.Create(r.Context(), ambulance); err != nil {
		data := ambulancesData{Form: ambulance}
		data.Ambulances, _ = a.VM.List(r.Context(), false)
		data.Hospitals, _ = a.Hospitals.Directory(r.Context())
		a.fail(w, r, err, "Ambulances", "ambulances", data)
		return
	}
	redirect(w, r, "/ambulances", "ambulance_created")
}
