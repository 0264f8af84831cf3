package handlers

import (
	"net/http"
	"strings"

	"github.com/linesmerrill/emergency-dashboard/models"
	"github.com/linesmerrill/emergency-dashboard/viewmodels"
)

// Profile serves the patient's profile
type Profile struct {
	pages
	VM *viewmodels.Profile
}

// ProfileHandler shows the profile as the API has it
func (p Profile) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	user, err := p.VM.Get(r.Context())
	if err != nil {
		p.fail(w, r, err, "Profile", "", nil)
		return
	}
	p.render(w, http.StatusOK, "profile", p.page(r, "Profile", user))
}

// UpdateProfileHandler saves the editable fields
func (p Profile) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	f := r.PostForm
	update := models.ProfileUpdate{
		FirstName:                    strings.TrimSpace(f.Get("first_name")),
		LastName:                     strings.TrimSpace(f.Get("last_name")),
		Email:                        strings.TrimSpace(f.Get("email")),
		PhoneNumber:                  f.Get("phone_number"),
		Address:                      f.Get("address"),
		EmergencyContactName:         f.Get("emergency_contact_name"),
		EmergencyContactPhone:        f.Get("emergency_contact_phone"),
		EmergencyContactRelationship: f.Get("emergency_contact_relationship"),
		BloodGroup:                   f.Get("blood_group"),
		MedicalConditions:            f.Get("medical_conditions"),
		Medications:                  f.Get("medications"),
	}
	if _, err := p.VM.Update(r.Context(), update); err != nil {
		user, _ := p.session.CurrentUser()
		p.fail(w, r, err, "Profile", "profile", update.Apply(user))
		return
	}
	redirect(w, r, "/profile", "profile_updated")
}
