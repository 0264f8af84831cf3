package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/linesmerrill/emergency-dashboard/models"
	"github.com/linesmerrill/emergency-dashboard/viewmodels"
)

// Emergency serves the emergency list and detail pages
type Emergency struct {
	pages
	VM *viewmodels.Emergencies
	// UserID falls back to the token claims when the profile carries no id
	UserID func() string
}

type emergenciesData struct {
	Emergencies []models.Emergency
	History     bool
}

// EmergenciesHandler lists the patient's emergencies, or the full history with ?history=1
func (e Emergency) EmergenciesHandler(w http.ResponseWriter, r *http.Request) {
	history := formBool(r.URL.Query(), "history")

	var (
		list []models.Emergency
		err  error
	)
	if history {
		list, err = e.VM.History(r.Context(), e.currentUserID())
	} else {
		list, err = e.VM.List(r.Context())
	}
	if err != nil {
		e.fail(w, r, err, "Emergencies", "", nil)
		return
	}
	e.render(w, http.StatusOK, "emergencies", e.page(r, "Emergencies", emergenciesData{Emergencies: list, History: history}))
}

// EmergencyByIDHandler shows one emergency with the actions its status allows
func (e Emergency) EmergencyByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["emergency_id"]
	detail, err := e.VM.Detail(r.Context(), id)
	if err != nil {
		e.fail(w, r, err, "Emergency", "", nil)
		return
	}
	e.render(w, http.StatusOK, "emergency", e.page(r, "Emergency #"+detail.Emergency.ShortID(), detail))
}

// CancelEmergencyHandler cancels a pending emergency
func (e Emergency) CancelEmergencyHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["emergency_id"]
	_, err := e.VM.Cancel(r.Context(), id)
	e.finish(w, r, id, "cancelled", err)
}

// ResolveEmergencyHandler marks an in-progress emergency resolved
func (e Emergency) ResolveEmergencyHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["emergency_id"]
	_, err := e.VM.Resolve(r.Context(), id)
	e.finish(w, r, id, "resolved", err)
}

// finish redirects to the re-read detail, or shows the detail again with the
// error when the status no longer allows the action
func (e Emergency) finish(w http.ResponseWriter, r *http.Request, id, done string, err error) {
	if err == nil {
		redirect(w, r, "/emergencies/"+id, done)
		return
	}
	if errors.Is(err, viewmodels.ErrActionNotAllowed) {
		if detail, derr := e.VM.Detail(r.Context(), id); derr == nil {
			e.fail(w, r, err, "Emergency #"+detail.Emergency.ShortID(), "emergency", detail)
			return
		}
	}
	e.fail(w, r, err, "Emergency", "", nil)
}

func (e Emergency) currentUserID() string {
	if user, ok := e.session.CurrentUser(); ok && user.ID != "" {
		return user.ID
	}
	if e.UserID != nil {
		return e.UserID()
	}
	return ""
}
