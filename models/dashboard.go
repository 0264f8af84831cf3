package models

// DashboardStats holds the per-patient counters of the dashboard endpoint
type DashboardStats struct {
	MyEmergencies        int `json:"my_emergencies"`
	ActiveEmergencies    int `json:"active_emergencies"`
	CompletedEmergencies int `json:"completed_emergencies"`
	MyMedicalRecords     int `json:"my_medical_records"`
	EmergencyContacts    int `json:"emergency_contacts"`
	UnreadNotifications  int `json:"unread_notifications"`
}

// HealthCheckResponse is the body of the health check
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
