// Package export builds the admin view's downloadable snapshot. It is a
// read-only projection of the store, not a second copy of the data.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shifahealth/clinic-portal/internal/model"
	"github.com/shifahealth/clinic-portal/internal/repository"
)

// Snapshot mirrors the JSON document the admin panel downloads.
type Snapshot struct {
	Patients     []model.Patient     `json:"patients"`
	Doctors      []model.Doctor      `json:"doctors"`
	Appointments []model.Appointment `json:"appointments"`
	ChatHistory  []model.ChatMessage `json:"chatHistory"`
	ExportDate   string              `json:"exportDate"`
}

type Exporter struct {
	patients     *repository.PatientRepository
	doctors      *repository.DoctorRepository
	appointments *repository.AppointmentRepository
	chats        *repository.ChatRepository
}

func NewExporter(patients *repository.PatientRepository, doctors *repository.DoctorRepository,
	appointments *repository.AppointmentRepository, chats *repository.ChatRepository) *Exporter {
	return &Exporter{
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		chats:        chats,
	}
}

// Snapshot captures the current contents of every collection.
func (e *Exporter) Snapshot() Snapshot {
	return Snapshot{
		Patients:     e.patients.All(),
		Doctors:      e.doctors.All(),
		Appointments: e.appointments.All(),
		ChatHistory:  e.chats.All(),
		ExportDate:   time.Now().UTC().Format(time.RFC3339),
	}
}

// WriteJSON renders the snapshot as indented JSON for download.
func (e *Exporter) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e.Snapshot()); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}
