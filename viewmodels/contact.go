package viewmodels

import (
	"context"

	"github.com/linesmerrill/emergency-dashboard/models"
)

// Contacts is the emergency contact view-model
type Contacts struct {
	api ContactAPI
}

// NewContacts returns the contact view-model
func NewContacts(api ContactAPI) *Contacts {
	return &Contacts{api: api}
}

// List returns the patient's contacts
func (c *Contacts) List(ctx context.Context) ([]models.EmergencyContact, error) {
	return c.api.GetEmergencyContacts(ctx)
}

// Create adds a contact. Several contacts may be marked primary.
func (c *Contacts) Create(ctx context.Context, contact models.EmergencyContact) (models.EmergencyContact, error) {
	if contact.Relationship == "" {
		contact.Relationship = models.RelationshipOther
	}
	return c.api.CreateEmergencyContact(ctx, contact)
}

// Update replaces a contact
func (c *Contacts) Update(ctx context.Context, id string, contact models.EmergencyContact) (models.EmergencyContact, error) {
	return c.api.UpdateEmergencyContact(ctx, id, contact)
}

// Delete removes a contact once confirmed. Without confirmation nothing is
// sent. Callers re-read the list with List.
func (c *Contacts) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	return c.api.DeleteEmergencyContact(ctx, id)
}

// Find returns the contact with id from list
func Find(list []models.EmergencyContact, id string) (models.EmergencyContact, bool) {
	for _, contact := range list {
		if contact.ID == id {
			return contact, true
		}
	}
	return models.EmergencyContact{}, false
}

// PrimaryCount counts contacts marked primary
func PrimaryCount(list []models.EmergencyContact) int {
	n := 0
	for _, contact := range list {
		if contact.IsPrimary {
			n++
		}
	}
	return n
}
