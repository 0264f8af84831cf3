package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/linesmerrill/emergency-dashboard/models"
	"github.com/linesmerrill/emergency-dashboard/viewmodels"
)

// Contact serves the emergency contacts pages
type Contact struct {
	pages
	VM *viewmodels.Contacts
}

type contactsData struct {
	Contacts      []models.EmergencyContact
	PrimaryCount  int
	Relationships []models.Relationship
	Form          models.EmergencyContact
}

// ContactsHandler lists the contacts with the add form
func (c Contact) ContactsHandler(w http.ResponseWriter, r *http.Request) {
	c.show(w, r, models.EmergencyContact{Relationship: models.RelationshipOther}, nil)
}

// CreateContactHandler adds a contact
func (c Contact) CreateContactHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	contact := contactFromForm(r.PostForm)
	if _, err := c.VM.Create(r.Context(), contact); err != nil {
		c.show(w, r, contact, err)
		return
	}
	redirect(w, r, "/contacts", "contact_created")
}

// UpdateContactHandler replaces a contact
func (c Contact) UpdateContactHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	if _, err := c.VM.Update(r.Context(), mux.Vars(r)["contact_id"], contactFromForm(r.PostForm)); err != nil {
		c.show(w, r, models.EmergencyContact{Relationship: models.RelationshipOther}, err)
		return
	}
	redirect(w, r, "/contacts", "contact_updated")
}

// ConfirmDeleteContactHandler asks before a contact is removed
func (c Contact) ConfirmDeleteContactHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.VM.List(r.Context())
	if err != nil {
		c.fail(w, r, err, "Contacts", "", nil)
		return
	}
	contact, ok := viewmodels.Find(list, mux.Vars(r)["contact_id"])
	if !ok {
		page := c.page(r, "Contacts", nil)
		page.Error = "Contact not found"
		c.render(w, http.StatusNotFound, "error", page)
		return
	}
	c.render(w, http.StatusOK, "contact_delete", c.page(r, "Delete "+contact.Name, contact))
}

// DeleteContactHandler removes the contact once the confirmation form was submitted
func (c Contact) DeleteContactHandler(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	err := c.VM.Delete(r.Context(), mux.Vars(r)["contact_id"], r.PostForm.Get("confirm") == "yes")
	switch {
	case errors.Is(err, viewmodels.ErrNotConfirmed):
		redirect(w, r, "/contacts", "")
	case err != nil:
		c.show(w, r, models.EmergencyContact{Relationship: models.RelationshipOther}, err)
	default:
		redirect(w, r, "/contacts", "contact_deleted")
	}
}

func (c Contact) show(w http.ResponseWriter, r *http.Request, form models.EmergencyContact, cause error) {
	data := contactsData{Relationships: models.Relationships, Form: form}
	list, err := c.VM.List(r.Context())
	if err == nil {
		data.Contacts = list
		data.PrimaryCount = viewmodels.PrimaryCount(list)
	}
	if cause == nil {
		cause = err
	}
	if cause != nil {
		c.fail(w, r, cause, "Emergency contacts", "contacts", data)
		return
	}
	c.render(w, http.StatusOK, "contacts", c.page(r, "Emergency contacts", data))
}

func contactFromForm(f url.Values) models.EmergencyContact {
	return models.EmergencyContact{
		Name:         strings.TrimSpace(f.Get("name")),
		PhoneNumber:  strings.TrimSpace(f.Get("phone_number")),
		Email:        strings.TrimSpace(f.Get("email")),
		Relationship: models.Relationship(f.Get("relationship")),
		Address:      f.Get("address"),
		Notes:        f.Get("notes"),
		IsPrimary:    formBool(f, "is_primary"),
	}
}
