package repository

import (
	"strings"

	"github.com/shifahealth/clinic-portal/internal/model"
	"github.com/shifahealth/clinic-portal/internal/storage"
	"github.com/shifahealth/clinic-portal/pkg/logger"
	"github.com/shifahealth/clinic-portal/pkg/metrics"
)

type DoctorRepository struct {
	*Collection[model.Doctor]
}

func NewDoctorRepository(store *storage.Store, log *logger.Logger, m *metrics.Metrics) *DoctorRepository {
	return &DoctorRepository{
		Collection: NewCollection[model.Doctor](store, storage.CollectionDoctors, log, m),
	}
}

// Search filters the directory. An empty query matches every doctor;
// otherwise the query must be a case-insensitive substring of the name
// or the specialization. A non-empty specialization narrows to exact,
// case-sensitive matches. Both filters must hold.
func (r *DoctorRepository) Search(query, specialization string) []model.Doctor {
	q := strings.ToLower(query)

	results := []model.Doctor{}
	for _, d := range r.All() {
		matchesQuery := q == "" ||
			strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Specialization), q)

		matchesSpecialization := specialization == "" || d.Specialization == specialization

		if matchesQuery && matchesSpecialization {
			results = append(results, d)
		}
	}
	return results
}
