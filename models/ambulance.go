package models

// Ambulance holds a vehicle registered to a hospital
type Ambulance struct {
	ID               string `json:"id,omitempty"`
	Hospital         string `json:"hospital"`
	HospitalName     string `json:"hospital_name,omitempty"`
	VehicleNumber    string `json:"vehicle_number"`
	DriverName       string `json:"driver_name"`
	DriverPhone      string `json:"driver_phone"`
	Status           string `json:"status,omitempty"`
	HasVentilator    bool   `json:"has_ventilator"`
	HasDefibrillator bool   `json:"has_defibrillator"`
	HasOxygen        bool   `json:"has_oxygen"`
	EquipmentNotes   string `json:"equipment_notes,omitempty"`
}
