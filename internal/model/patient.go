package model

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// EmergencyContact is the person to call on the patient's behalf.
type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// Patient is a registered portal user. Email doubles as the sign-in key
// and must be unique; uniqueness is enforced by the patient service at
// registration time, not by the store.
type Patient struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	DateOfBirth        string           `json:"dateOfBirth"`
	Gender             Gender           `json:"gender"`
	Address            string           `json:"address"`
	EmergencyContact   EmergencyContact `json:"emergencyContact"`
	MedicalHistory     []string         `json:"medicalHistory"`
	Allergies          []string         `json:"allergies"`
	CurrentMedications []string         `json:"currentMedications"`
	LastVisit          string           `json:"lastVisit,omitempty"`
	RegistrationDate   string           `json:"registrationDate"`
}

func (p Patient) EntityID() string { return p.ID }
