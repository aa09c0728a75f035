package patient

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/shifahealth/clinic-portal/internal/model"
	"github.com/shifahealth/clinic-portal/internal/repository"
	"github.com/shifahealth/clinic-portal/internal/session"
	apperrors "github.com/shifahealth/clinic-portal/pkg/errors"
	"github.com/shifahealth/clinic-portal/pkg/logger"
)

// RegisterRequest carries the registration form. Required fields mirror
// the portal's registration screen.
type RegisterRequest struct {
	Name               string                 `validate:"required"`
	Email              string                 `validate:"required,email"`
	Phone              string                 `validate:"required"`
	DateOfBirth        string                 `validate:"required"`
	Gender             model.Gender           `validate:"omitempty,oneof=male female"`
	Address            string                 `validate:"-"`
	EmergencyContact   model.EmergencyContact `validate:"-"`
	MedicalHistory     []string               `validate:"-"`
	Allergies          []string               `validate:"-"`
	CurrentMedications []string               `validate:"-"`
}

// Service owns registration and sign-in. Validation happens here, at
// the service boundary: the repositories persist whatever they are
// given.
type Service struct {
	patients *repository.PatientRepository
	sessions *session.Manager
	validate *validator.Validate
	logger   *logger.Logger
}

func NewService(patients *repository.PatientRepository, sessions *session.Manager, log *logger.Logger) *Service {
	return &Service{
		patients: patients,
		sessions: sessions,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   log,
	}
}

// Register validates the form, rejects duplicate emails, persists the
// new patient and signs them in.
func (s *Service) Register(req RegisterRequest) (model.Patient, error) {
	if err := s.validate.Struct(req); err != nil {
		return model.Patient{}, apperrors.BadRequest("invalid registration data", err)
	}

	if _, exists := s.patients.FindByEmail(req.Email); exists {
		return model.Patient{}, apperrors.Conflict("an account with this email already exists", nil)
	}

	patient := model.Patient{
		ID:                 model.NewID("patient"),
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		DateOfBirth:        req.DateOfBirth,
		Gender:             req.Gender,
		Address:            req.Address,
		EmergencyContact:   req.EmergencyContact,
		MedicalHistory:     emptyIfNil(req.MedicalHistory),
		Allergies:          emptyIfNil(req.Allergies),
		CurrentMedications: emptyIfNil(req.CurrentMedications),
		RegistrationDate:   time.Now().UTC().Format("2006-01-02"),
	}

	if err := s.patients.Put(patient); err != nil {
		return model.Patient{}, fmt.Errorf("failed to register patient: %w", err)
	}
	if err := s.sessions.SignIn(patient); err != nil {
		return model.Patient{}, fmt.Errorf("failed to start session: %w", err)
	}

	s.logger.Info("patient registered", "id", patient.ID, "email", patient.Email)
	return patient, nil
}

// SignIn looks the patient up by email and starts a session. This is
// placeholder authentication: there are no credentials to verify.
func (s *Service) SignIn(email string) (model.Patient, error) {
	if strings.TrimSpace(email) == "" {
		return model.Patient{}, apperrors.BadRequest("email is required", nil)
	}

	patient, ok := s.patients.FindByEmail(email)
	if !ok {
		return model.Patient{}, apperrors.NotFound("patient", nil)
	}

	if err := s.sessions.SignIn(patient); err != nil {
		return model.Patient{}, fmt.Errorf("failed to start session: %w", err)
	}
	return patient, nil
}

// SignOut clears the current session.
func (s *Service) SignOut() error {
	return s.sessions.SignOut()
}

// Current reports the signed-in patient, if any.
func (s *Service) Current() (model.Patient, bool) {
	return s.sessions.Current()
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
