// Package seed bootstraps the demo dataset on first run.
package seed

import (
	"fmt"

	"github.com/shifahealth/clinic-portal/internal/model"
	"github.com/shifahealth/clinic-portal/internal/repository"
	"github.com/shifahealth/clinic-portal/pkg/logger"
)

// Repositories are the collections the loader populates.
type Repositories struct {
	Patients     *repository.PatientRepository
	Doctors      *repository.DoctorRepository
	Appointments *repository.AppointmentRepository
	Chats        *repository.ChatRepository
}

// Run populates the demo data unless doctors already exist, making it
// idempotent across restarts. Reports whether seeding happened.
func Run(repos Repositories, log *logger.Logger) (bool, error) {
	if len(repos.Doctors.All()) > 0 {
		return false, nil
	}

	if err := repos.Doctors.Replace(sampleDoctors()); err != nil {
		return false, fmt.Errorf("failed to seed doctors: %w", err)
	}
	if err := repos.Patients.Replace([]model.Patient{samplePatient()}); err != nil {
		return false, fmt.Errorf("failed to seed patients: %w", err)
	}
	if err := repos.Appointments.Replace([]model.Appointment{}); err != nil {
		return false, fmt.Errorf("failed to seed appointments: %w", err)
	}
	if err := repos.Chats.Replace([]model.ChatMessage{}); err != nil {
		return false, fmt.Errorf("failed to seed chat history: %w", err)
	}

	log.Info("demo data seeded", "doctors", 4, "patients", 1)
	return true, nil
}

func sampleDoctors() []model.Doctor {
	return []model.Doctor{
		{
			ID:             "1",
			Name:           "Dr. Sarah Johnson",
			Specialization: "Cardiology",
			Qualifications: []string{"MBBS", "MD Cardiology", "FACC"},
			Experience:     12,
			Rating:         4.8,
			ReviewCount:    127,
			Image:          "/api/placeholder/300/300",
			Availability: model.Availability{
				Days:      []string{"Monday", "Tuesday", "Wednesday", "Friday"},
				TimeSlots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"},
			},
			ConsultationFee: 150,
			Status:          model.DoctorStatusAvailable,
			Languages:       []string{"English", "Urdu"},
			Location:        "Block A, 2nd Floor",
			Bio:             "Experienced cardiologist with expertise in interventional cardiology and heart disease prevention.",
		},
		{
			ID:             "2",
			Name:           "Dr. Ahmed Khan",
			Specialization: "Orthopedics",
			Qualifications: []string{"MBBS", "MS Orthopedics", "FRCS"},
			Experience:     15,
			Rating:         4.9,
			ReviewCount:    203,
			Image:          "/api/placeholder/300/300",
			Availability: model.Availability{
				Days:      []string{"Monday", "Tuesday", "Thursday", "Saturday"},
				TimeSlots: []string{"08:00", "09:00", "10:00", "11:00", "15:00", "16:00"},
			},
			ConsultationFee: 120,
			Status:          model.DoctorStatusAvailable,
			Languages:       []string{"English", "Urdu", "Hindi"},
			Location:        "Block B, 1st Floor",
			Bio:             "Specialist in joint replacement surgery and sports medicine with international training.",
		},
		{
			ID:             "3",
			Name:           "Dr. Fatima Ali",
			Specialization: "Dermatology",
			Qualifications: []string{"MBBS", "MD Dermatology", "DDV"},
			Experience:     8,
			Rating:         4.7,
			ReviewCount:    89,
			Image:          "/api/placeholder/300/300",
			Availability: model.Availability{
				Days:      []string{"Tuesday", "Wednesday", "Thursday", "Friday"},
				TimeSlots: []string{"10:00", "11:00", "12:00", "14:00", "15:00"},
			},
			ConsultationFee: 100,
			Status:          model.DoctorStatusBusy,
			Languages:       []string{"English", "Urdu"},
			Location:        "Block C, 3rd Floor",
			Bio:             "Expert in cosmetic dermatology and skin cancer treatment with latest laser technologies.",
		},
		{
			ID:             "4",
			Name:           "Dr. Michael Chen",
			Specialization: "Neurology",
			Qualifications: []string{"MBBS", "MD Neurology", "DM"},
			Experience:     18,
			Rating:         4.9,
			ReviewCount:    156,
			Image:          "/api/placeholder/300/300",
			Availability: model.Availability{
				Days:      []string{"Monday", "Wednesday", "Friday"},
				TimeSlots: []string{"09:00", "10:00", "11:00", "14:00", "15:00"},
			},
			ConsultationFee: 200,
			Status:          model.DoctorStatusAvailable,
			Languages:       []string{"English", "Chinese"},
			Location:        "Block A, 4th Floor",
			Bio:             "Leading neurologist specializing in stroke treatment and neurological disorders.",
		},
	}
}

func samplePatient() model.Patient {
	return model.Patient{
		ID:          "patient-1",
		Name:        "John Doe",
		Email:       "john.doe@example.com",
		Phone:       "+92-300-1234567",
		DateOfBirth: "1985-06-15",
		Gender:      model.GenderMale,
		Address:     "123 Main Street, Karachi",
		EmergencyContact: model.EmergencyContact{
			Name:     "Jane Doe",
			Phone:    "+92-300-7654321",
			Relation: "Wife",
		},
		MedicalHistory:     []string{"Hypertension", "Diabetes Type 2"},
		Allergies:          []string{"Penicillin", "Peanuts"},
		CurrentMedications: []string{"Metformin 500mg", "Lisinopril 10mg"},
		LastVisit:          "2024-08-20",
		RegistrationDate:   "2024-01-15",
	}
}
