package handlers

import (
	"net/http"

	"github.com/linesmerrill/emergency-dashboard/geo"
	"github.com/linesmerrill/emergency-dashboard/models"
	"github.com/linesmerrill/emergency-dashboard/viewmodels"
)

// Dashboard serves the landing page: the alert form and the patient's overview
type Dashboard struct {
	pages
	VM          *viewmodels.Dashboard
	Emergencies *viewmodels.Emergencies
	Locate      func(r *http.Request) geo.Locator
}

type dashboardData struct {
	Priorities []models.Priority
	Form       viewmodels.EmergencyForm
	Summary    viewmodels.Summary
}

// DashboardHandler shows the stats and the five most recent emergencies
func (d Dashboard) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	data := dashboardData{Priorities: models.Priorities, Form: viewmodels.EmergencyForm{Priority: models.PriorityHigh}}
	summary, err := d.VM.Load(r.Context())
	if err != nil {
		d.fail(w, r, err, "Dashboard", "dashboard", data)
		return
	}
	data.Summary = summary
	d.render(w, http.StatusOK, "dashboard", d.page(r, "Dashboard", data))
}

// CreateEmergencyHandler raises an alert and shows it
func (d Dashboard) CreateEmergencyHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	form := viewmodels.EmergencyForm{
		Priority:    models.Priority(r.PostForm.Get("priority")),
		Description: r.PostForm.Get("description"),
		Address:     r.PostForm.Get("location_address"),
	}
	result, err := d.Emergencies.Create(r.Context(), form, d.Locate(r))
	if err != nil {
		d.fail(w, r, err, "Dashboard", "dashboard", dashboardData{Priorities: models.Priorities, Form: form})
		return
	}
	redirect(w, r, "/emergencies/"+result.Emergency.ID, "raised")
}
