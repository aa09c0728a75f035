package seed

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shifahealth/clinic-portal/internal/model"
	"github.com/shifahealth/clinic-portal/internal/repository"
	"github.com/shifahealth/clinic-portal/internal/storage"
	"github.com/shifahealth/clinic-portal/pkg/logger"
	"github.com/shifahealth/clinic-portal/pkg/metrics"
)

func newTestRepos(t *testing.T) (Repositories, *logger.Logger) {
	t.Helper()
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	m := metrics.NewMetrics("portal_test", t.Name())

	store, err := storage.Open(filepath.Join(t.TempDir(), "portal.db"), log, m)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return Repositories{
		Patients:     repository.NewPatientRepository(store, log, m),
		Doctors:      repository.NewDoctorRepository(store, log, m),
		Appointments: repository.NewAppointmentRepository(store, log, m),
		Chats:        repository.NewChatRepository(store, log, m),
	}, log
}

func TestRunSeedsEmptyStore(t *testing.T) {
	repos, log := newTestRepos(t)

	seeded, err := Run(repos, log)
	require.NoError(t, err)
	assert.True(t, seeded)

	doctors := repos.Doctors.All()
	require.Len(t, doctors, 4)
	assert.Equal(t, "Dr. Sarah Johnson", doctors[0].Name)
	assert.Equal(t, "Cardiology", doctors[0].Specialization)

	patients := repos.Patients.All()
	require.Len(t, patients, 1)
	assert.Equal(t, "john.doe@example.com", patients[0].Email)

	assert.Empty(t, repos.Appointments.All())
	assert.Empty(t, repos.Chats.All())
}

func TestRunIsIdempotent(t *testing.T) {
	repos, log := newTestRepos(t)

	seeded, err := Run(repos, log)
	require.NoError(t, err)
	require.True(t, seeded)

	// Later state must survive re-running the loader.
	require.NoError(t, repos.Appointments.Put(model.Appointment{ID: "apt-1", PatientID: "patient-1", DoctorID: "1"}))

	seeded, err = Run(repos, log)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Len(t, repos.Appointments.All(), 1)
	assert.Len(t, repos.Doctors.All(), 4)
}

func TestRunSkipsNonEmptyDoctorCollection(t *testing.T) {
	repos, log := newTestRepos(t)

	custom := model.Doctor{ID: "custom-1", Name: "Dr. Custom", Specialization: "Oncology"}
	require.NoError(t, repos.Doctors.Put(custom))

	seeded, err := Run(repos, log)
	require.NoError(t, err)
	assert.False(t, seeded)

	doctors := repos.Doctors.All()
	require.Len(t, doctors, 1)
	assert.Equal(t, "custom-1", doctors[0].ID)
}
