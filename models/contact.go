package models

// Relationship of an emergency contact to the patient
type Relationship string

// Relationships accepted by the contacts endpoint
const (
	RelationshipSpouse    Relationship = "SPOUSE"
	RelationshipChild     Relationship = "CHILD"
	RelationshipParent    Relationship = "PARENT"
	RelationshipSibling   Relationship = "SIBLING"
	RelationshipFriend    Relationship = "FRIEND"
	RelationshipCaregiver Relationship = "CAREGIVER"
	RelationshipOther     Relationship = "OTHER"
)

// Relationships in form order
var Relationships = []Relationship{
	RelationshipSpouse,
	RelationshipChild,
	RelationshipParent,
	RelationshipSibling,
	RelationshipFriend,
	RelationshipCaregiver,
	RelationshipOther,
}

// EmergencyContact holds a person the API notifies when the patient raises an alert
type EmergencyContact struct {
	ID           string       `json:"id,omitempty"`
	Name         string       `json:"name"`
	PhoneNumber  string       `json:"phone_number"`
	Email        string       `json:"email"`
	Relationship Relationship `json:"relationship"`
	Address      string       `json:"address"`
	Notes        string       `json:"notes"`
	IsPrimary    bool         `json:"is_primary"`
}
