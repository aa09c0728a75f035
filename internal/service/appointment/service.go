package appointment

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/shifahealth/clinic-portal/internal/model"
	"github.com/shifahealth/clinic-portal/internal/repository"
	apperrors "github.com/shifahealth/clinic-portal/pkg/errors"
	"github.com/shifahealth/clinic-portal/pkg/logger"
)

type BookRequest struct {
	PatientID string                `validate:"required"`
	DoctorID  string                `validate:"required"`
	Date      string                `validate:"required"`
	Time      string                `validate:"required"`
	Type      model.AppointmentType `validate:"omitempty,oneof=consultation follow-up emergency"`
	Notes     string                `validate:"-"`
	Symptoms  string                `validate:"-"`
}

type Service struct {
	appointments *repository.AppointmentRepository
	validate     *validator.Validate
	logger       *logger.Logger
}

func NewService(appointments *repository.AppointmentRepository, log *logger.Logger) *Service {
	return &Service{
		appointments: appointments,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       log,
	}
}

// Book persists a new scheduled appointment. A date and time slot must
// be chosen, but no availability or overlap check is made against the
// doctor's declared slots or existing bookings: double booking is
// permitted, matching the portal's behavior.
func (s *Service) Book(req BookRequest) (model.Appointment, error) {
	if err := s.validate.Struct(req); err != nil {
		return model.Appointment{}, apperrors.BadRequest("date and time slot are required", err)
	}

	apptType := req.Type
	if apptType == "" {
		apptType = model.AppointmentTypeConsultation
	}

	appt := model.Appointment{
		ID:        model.NewID("apt"),
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Type:      apptType,
		Status:    model.AppointmentStatusScheduled,
		Notes:     req.Notes,
		Symptoms:  req.Symptoms,
	}

	if err := s.appointments.Put(appt); err != nil {
		return model.Appointment{}, fmt.Errorf("failed to book appointment: %w", err)
	}

	s.logger.Info("appointment booked", "id", appt.ID, "doctor", appt.DoctorID, "date", appt.Date, "time", appt.Time)
	return appt, nil
}

// Cancel marks the appointment cancelled by re-putting it with the new
// status. The record stays in the collection.
func (s *Service) Cancel(id string) (model.Appointment, error) {
	appt, ok := s.appointments.Find(id)
	if !ok {
		return model.Appointment{}, apperrors.NotFound("appointment", nil)
	}

	appt.Status = model.AppointmentStatusCancelled
	if err := s.appointments.Put(appt); err != nil {
		return model.Appointment{}, fmt.Errorf("failed to cancel appointment: %w", err)
	}
	return appt, nil
}

// Complete marks the appointment completed.
func (s *Service) Complete(id string) (model.Appointment, error) {
	appt, ok := s.appointments.Find(id)
	if !ok {
		return model.Appointment{}, apperrors.NotFound("appointment", nil)
	}

	appt.Status = model.AppointmentStatusCompleted
	if err := s.appointments.Put(appt); err != nil {
		return model.Appointment{}, fmt.Errorf("failed to complete appointment: %w", err)
	}
	return appt, nil
}

// ForPatient lists the patient's appointments in storage order.
func (s *Service) ForPatient(patientID string) []model.Appointment {
	return s.appointments.ByPatient(patientID)
}

// ForDoctor lists the doctor's appointments in storage order.
func (s *Service) ForDoctor(doctorID string) []model.Appointment {
	return s.appointments.ByDoctor(doctorID)
}
