package repository

import (
	"github.com/shifahealth/clinic-portal/internal/model"
	"github.com/shifahealth/clinic-portal/internal/storage"
	"github.com/shifahealth/clinic-portal/pkg/logger"
	"github.com/shifahealth/clinic-portal/pkg/metrics"
)

type PatientRepository struct {
	*Collection[model.Patient]
}

func NewPatientRepository(store *storage.Store, log *logger.Logger, m *metrics.Metrics) *PatientRepository {
	return &PatientRepository{
		Collection: NewCollection[model.Patient](store, storage.CollectionPatients, log, m),
	}
}

// FindByEmail returns the first patient with an exactly matching email.
// Matching is case-sensitive; email is the sign-in key.
func (r *PatientRepository) FindByEmail(email string) (model.Patient, bool) {
	for _, p := range r.All() {
		if p.Email == email {
			return p, true
		}
	}
	return model.Patient{}, false
}
