package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/linesmerrill/emergency-dashboard/api"
	"github.com/linesmerrill/emergency-dashboard/config"
	"github.com/linesmerrill/emergency-dashboard/gateway"
	"github.com/linesmerrill/emergency-dashboard/session"
	templates "github.com/linesmerrill/emergency-dashboard/templates/html"
	"github.com/linesmerrill/emergency-dashboard/viewmodels"
)

// notices shown after a redirect, keyed by the done query parameter
var notices = map[string]string{
	"raised":            "Emergency alert sent.",
	"cancelled":         "Emergency cancelled.",
	"resolved":          "Emergency marked resolved.",
	"responded":         "Hospital response recorded.",
	"hospital_created":  "Hospital registered.",
	"contact_created":   "Contact added.",
	"contact_updated":   "Contact updated.",
	"contact_deleted":   "Contact deleted.",
	"read":              "Notification marked read.",
	"all_read":          "All notifications marked read.",
	"ambulance_created": "Ambulance registered.",
	"profile_updated":   "Profile saved.",
	"registered":        "Welcome! Your account is ready.",
	"logged_out":        "You have been logged out.",
	"expired":           "Your session has expired. Please log in again.",
}

// pages holds what every page handler needs to render
type pages struct {
	session *session.Session
	views   *templates.Renderer
}

func (p pages) page(r *http.Request, title string, data interface{}) templates.Page {
	page := templates.Page{Title: title, Data: data, Notice: notices[r.URL.Query().Get("done")]}
	if user, ok := p.session.CurrentUser(); ok {
		page.User = &user
	}
	return page
}

func (p pages) render(w http.ResponseWriter, status int, name string, page templates.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := p.views.Render(w, name, page); err != nil {
		zap.S().Errorw("failed to render page", "page", name, "error", err)
	}
}

// fail renders the error on page name with data, or on the error page when
// name is empty. A token the API rejects ends the session.
func (p pages) fail(w http.ResponseWriter, r *http.Request, err error, title, name string, data interface{}) {
	if apiErr, ok := gateway.AsAPIError(err); ok && apiErr.Unauthorized() && p.session.Authenticated() {
		p.session.Expire(r.Context())
		redirect(w, r, "/login", "expired")
		return
	}
	zap.S().Errorw("request failed",
		"path", r.URL.Path,
		"request_id", api.RequestIDFromContext(r.Context()),
		"error", err,
	)
	if name == "" {
		name = "error"
	}
	page := p.page(r, title, data)
	page.Notice = ""
	page.Error = gateway.Message(err, "Something went wrong")
	p.render(w, statusFor(err), name, page)
}

// requireSession sends signed out visitors to the login page
func (p pages) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !p.session.Authenticated() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, viewmodels.ErrActionNotAllowed):
		return http.StatusConflict
	case errors.Is(err, viewmodels.ErrInvalidPriority), errors.Is(err, session.ErrPasswordMismatch):
		return http.StatusBadRequest
	}
	if apiErr, ok := gateway.AsAPIError(err); ok {
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode
		}
		return http.StatusBadGateway
	}
	return http.StatusBadRequest
}

// redirect finishes a command with a 303 to the page that re-reads the result
func redirect(w http.ResponseWriter, r *http.Request, path, done string) {
	if done != "" {
		path += "?done=" + url.QueryEscape(done)
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		config.ErrorStatus("failed to parse form", http.StatusBadRequest, w, err)
		return false
	}
	return true
}

func formBool(v url.Values, key string) bool {
	switch v.Get(key) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
