package models

// User holds the profile of the signed in patient as returned by the API
type User struct {
	ID                           string `json:"id"`
	Username                     string `json:"username"`
	FirstName                    string `json:"first_name"`
	LastName                     string `json:"last_name"`
	FullName                     string `json:"full_name,omitempty"`
	Email                        string `json:"email"`
	PhoneNumber                  string `json:"phone_number"`
	DateOfBirth                  string `json:"date_of_birth,omitempty"`
	Address                      string `json:"address,omitempty"`
	Role                         string `json:"role,omitempty"`
	EmergencyContactName         string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone        string `json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship,omitempty"`
	BloodGroup                   string `json:"blood_group,omitempty"`
	MedicalConditions            string `json:"medical_conditions,omitempty"`
	Medications                  string `json:"medications,omitempty"`
	IsElderly                    bool   `json:"is_elderly"`
}

// DisplayName prefers the first and last name over the username
func (u User) DisplayName() string {
	if u.FirstName != "" || u.LastName != "" {
		if u.LastName == "" {
			return u.FirstName
		}
		if u.FirstName == "" {
			return u.LastName
		}
		return u.FirstName + " " + u.LastName
	}
	return u.Username
}

// ProfileUpdate holds the editable subset of the profile, sent with PATCH.
// Every field is sent so a cleared input clears the stored value.
type ProfileUpdate struct {
	FirstName                    string `json:"first_name"`
	LastName                     string `json:"last_name"`
	Email                        string `json:"email"`
	PhoneNumber                  string `json:"phone_number"`
	Address                      string `json:"address"`
	EmergencyContactName         string `json:"emergency_contact_name"`
	EmergencyContactPhone        string `json:"emergency_contact_phone"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship"`
	BloodGroup                   string `json:"blood_group"`
	MedicalConditions            string `json:"medical_conditions"`
	Medications                  string `json:"medications"`
}

// Apply returns user with the editable fields replaced by the update
func (p ProfileUpdate) Apply(user User) User {
	user.FirstName = p.FirstName
	user.LastName = p.LastName
	user.FullName = ""
	user.Email = p.Email
	user.PhoneNumber = p.PhoneNumber
	user.Address = p.Address
	user.EmergencyContactName = p.EmergencyContactName
	user.EmergencyContactPhone = p.EmergencyContactPhone
	user.EmergencyContactRelationship = p.EmergencyContactRelationship
	user.BloodGroup = p.BloodGroup
	user.MedicalConditions = p.MedicalConditions
	user.Medications = p.Medications
	return user
}
