package patient

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shifahealth/clinic-portal/internal/repository"
	"github.com/shifahealth/clinic-portal/internal/session"
	"github.com/shifahealth/clinic-portal/internal/storage"
	apperrors "github.com/shifahealth/clinic-portal/pkg/errors"
	"github.com/shifahealth/clinic-portal/pkg/logger"
	"github.com/shifahealth/clinic-portal/pkg/metrics"
)

func newTestService(t *testing.T) (*Service, *repository.PatientRepository) {
	t.Helper()
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	m := metrics.NewMetrics("portal_test", t.Name())

	store, err := storage.Open(filepath.Join(t.TempDir(), "portal.db"), log, m)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	patients := repository.NewPatientRepository(store, log, m)
	sessions := session.NewManager(store, patients, log)
	return NewService(patients, sessions, log), patients
}

func validRequest() RegisterRequest {
	return RegisterRequest{
		Name:        "Jane Smith",
		Email:       "p@x.com",
		Phone:       "+92-300-1112233",
		DateOfBirth: "1990-01-01",
		Gender:      "female",
	}
}

func TestRegisterThenSignIn(t *testing.T) {
	svc, patients := newTestService(t)

	registered, err := svc.Register(validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, registered.ID)
	assert.NotEmpty(t, registered.RegistrationDate)

	found, ok := patients.FindByEmail("p@x.com")
	require.True(t, ok)
	assert.Equal(t, registered.ID, found.ID)

	// Registration signs the patient in.
	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, registered.ID, current.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(validRequest())
	require.NoError(t, err)

	_, err = svc.Register(validRequest())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrConflict))
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc, patients := newTestService(t)

	req := validRequest()
	req.Phone = ""
	_, err := svc.Register(req)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrBadRequest))

	req = validRequest()
	req.Email = "not-an-email"
	_, err = svc.Register(req)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrBadRequest))

	assert.Empty(t, patients.All())
}

func TestSignInUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SignIn("missing@x.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}

func TestSignOutClearsSession(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Register(validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.SignOut())
	_, ok := svc.Current()
	assert.False(t, ok)
}
