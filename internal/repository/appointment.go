package repository

import (
	"github.com/shifahealth/clinic-portal/internal/model"
	"github.com/shifahealth/clinic-portal/internal/storage"
	"github.com/shifahealth/clinic-portal/pkg/logger"
	"github.com/shifahealth/clinic-portal/pkg/metrics"
)

type AppointmentRepository struct {
	*Collection[model.Appointment]
}

func NewAppointmentRepository(store *storage.Store, log *logger.Logger, m *metrics.Metrics) *AppointmentRepository {
	return &AppointmentRepository{
		Collection: NewCollection[model.Appointment](store, storage.CollectionAppointments, log, m),
	}
}

// ByPatient returns every appointment referencing the patient id, in
// storage order.
func (r *AppointmentRepository) ByPatient(patientID string) []model.Appointment {
	results := []model.Appointment{}
	for _, a := range r.All() {
		if a.PatientID == patientID {
			results = append(results, a)
		}
	}
	return results
}

// ByDoctor returns every appointment referencing the doctor id.
func (r *AppointmentRepository) ByDoctor(doctorID string) []model.Appointment {
	results := []model.Appointment{}
	for _, a := range r.All() {
		if a.DoctorID == doctorID {
			results = append(results, a)
		}
	}
	return results
}
