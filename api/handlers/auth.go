package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/linesmerrill/emergency-dashboard/models"
)

// Auth handles login, registration and logout
type Auth struct {
	pages
}

// LoginPageHandler shows the login form
func (a Auth) LoginPageHandler(w http.ResponseWriter, r *http.Request) {
	if a.session.Authenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	a.render(w, http.StatusOK, "login", a.page(r, "Log in", models.Credentials{}))
}

// LoginHandler signs the patient in
func (a Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	creds := models.Credentials{
		Username: strings.TrimSpace(r.PostForm.Get("username")),
		Password: r.PostForm.Get("password"),
	}
	user, err := a.session.Login(r.Context(), creds)
	if err != nil {
		a.fail(w, r, err, "Log in", "login", models.Credentials{Username: creds.Username})
		return
	}
	zap.S().Infow("patient logged in", "user", user.Username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RegisterPageHandler shows the registration form
func (a Auth) RegisterPageHandler(w http.ResponseWriter, r *http.Request) {
	if a.session.Authenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	a.render(w, http.StatusOK, "register", a.page(r, "Register", models.Registration{}))
}

// RegisterHandler creates the account and signs it in
func (a Auth) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	f := r.PostForm
	reg := models.Registration{
		Username:                     strings.TrimSpace(f.Get("username")),
		Email:                        strings.TrimSpace(f.Get("email")),
		Password:                     f.Get("password"),
		PasswordConfirm:              f.Get("password_confirm"),
		FirstName:                    strings.TrimSpace(f.Get("first_name")),
		LastName:                     strings.TrimSpace(f.Get("last_name")),
		PhoneNumber:                  f.Get("phone_number"),
		DateOfBirth:                  f.Get("date_of_birth"),
		Address:                      f.Get("address"),
		EmergencyContactName:         f.Get("emergency_contact_name"),
		EmergencyContactPhone:        f.Get("emergency_contact_phone"),
		EmergencyContactRelationship: f.Get("emergency_contact_relationship"),
		BloodGroup:                   f.Get("blood_group"),
		MedicalConditions:            f.Get("medical_conditions"),
		Medications:                  f.Get("medications"),
		IsElderly:                    formBool(f, "is_elderly"),
	}
	if _, err := a.session.Register(r.Context(), reg); err != nil {
		reg.Password, reg.PasswordConfirm = "", ""
		a.fail(w, r, err, "Register", "register", reg)
		return
	}
	redirect(w, r, "/", "registered")
}

// LogoutHandler signs out. The local session ends even if the API is unreachable.
func (a Auth) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.session.Logout(r.Context()); err != nil {
		zap.S().Warnw("logout could not reach the API", "error", err)
	}
	redirect(w, r, "/login", "logged_out")
}
