package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/linesmerrill/emergency-dashboard/models"
)

const contactsPath = "/emergency-contacts/"

func contactPath(id string) string {
	return contactsPath + url.PathEscape(id) + "/"
}

// GetEmergencyContacts lists the patient's emergency contacts
func (c *Client) GetEmergencyContacts(ctx context.Context) ([]models.EmergencyContact, error) {
	return getList[models.EmergencyContact](ctx, c, contactsPath)
}

// CreateEmergencyContact adds a contact
func (c *Client) CreateEmergencyContact(ctx context.Context, contact models.EmergencyContact) (models.EmergencyContact, error) {
	created := models.EmergencyContact{}
	err := c.post(ctx, contactsPath, contact, &created)
	return created, err
}

// UpdateEmergencyContact replaces a contact
func (c *Client) UpdateEmergencyContact(ctx context.Context, id string, contact models.EmergencyContact) (models.EmergencyContact, error) {
	updated := models.EmergencyContact{}
	err := c.Request(ctx, http.MethodPut, contactPath(id), contact, &updated)
	return updated, err
}

// DeleteEmergencyContact removes a contact
func (c *Client) DeleteEmergencyContact(ctx context.Context, id string) error {
	return c.Request(ctx, http.MethodDelete, contactPath(id), nil, nil)
}
