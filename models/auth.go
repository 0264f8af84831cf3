package models

// Registration is the patient registration form. PasswordConfirm is sent
// along because the API validates it too.
type Registration struct {
	Username                     string `json:"username" validate:"required"`
	Email                        string `json:"email" validate:"required,email"`
	Password                     string `json:"password" validate:"required"`
	PasswordConfirm              string `json:"password_confirm" validate:"required"`
	FirstName                    string `json:"first_name" validate:"required"`
	LastName                     string `json:"last_name" validate:"required"`
	PhoneNumber                  string `json:"phone_number"`
	DateOfBirth                  string `json:"date_of_birth,omitempty"`
	Address                      string `json:"address"`
	EmergencyContactName         string `json:"emergency_contact_name"`
	EmergencyContactPhone        string `json:"emergency_contact_phone"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship"`
	BloodGroup                   string `json:"blood_group"`
	MedicalConditions            string `json:"medical_conditions"`
	Medications                  string `json:"medications"`
	IsElderly                    bool   `json:"is_elderly"`
}

// Credentials is the login form
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is the body of commands that only acknowledge
type MessageResponse struct {
	Message string `json:"message"`
}
