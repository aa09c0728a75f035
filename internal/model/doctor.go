package model

type DoctorStatus string

const (
	DoctorStatusAvailable DoctorStatus = "available"
	DoctorStatusBusy      DoctorStatus = "busy"
	DoctorStatusOffline   DoctorStatus = "offline"
)

// Availability lists the weekdays a doctor consults and the bookable
// "HH:MM" slots on those days.
type Availability struct {
	Days      []string `json:"days"`
	TimeSlots []string `json:"timeSlots"`
}

type Doctor struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Specialization  string       `json:"specialization"`
	Qualifications  []string     `json:"qualifications"`
	Experience      int          `json:"experience"`
	Rating          float64      `json:"rating"`
	ReviewCount     int          `json:"reviewCount"`
	Image           string       `json:"image"`
	Availability    Availability `json:"availability"`
	ConsultationFee float64      `json:"consultationFee"`
	Status          DoctorStatus `json:"status"`
	Languages       []string     `json:"languages"`
	Location        string       `json:"location"`
	Bio             string       `json:"bio"`
}

func (d Doctor) EntityID() string { return d.ID }
