// Package session tracks which patient the client is acting as. The
// store holds a durable token record (patient id plus issue time), not
// a copy of the patient, so the resolved profile is always current.
package session

import (
	"encoding/json"
	"time"

	"github.com/shifahealth/clinic-portal/internal/model"
	"github.com/shifahealth/clinic-portal/internal/repository"
	"github.com/shifahealth/clinic-portal/internal/storage"
	"github.com/shifahealth/clinic-portal/pkg/logger"
)

type record struct {
	PatientID string `json:"patientId"`
	IssuedAt  string `json:"issuedAt"`
}

type Manager struct {
	store    *storage.Store
	patients *repository.PatientRepository
	logger   *logger.Logger
}

func NewManager(store *storage.Store, patients *repository.PatientRepository, log *logger.Logger) *Manager {
	return &Manager{store: store, patients: patients, logger: log}
}

// SignIn persists a session token for the patient.
func (m *Manager) SignIn(p model.Patient) error {
	blob, err := json.Marshal(record{
		PatientID: p.ID,
		IssuedAt:  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return m.store.Set(storage.CollectionCurrentUser, blob)
}

// SignOut clears the session token.
func (m *Manager) SignOut() error {
	return m.store.Delete(storage.CollectionCurrentUser)
}

// Current resolves the session token to a patient. Absent token,
// corrupt record, or a dangling patient id all report no session.
func (m *Manager) Current() (model.Patient, bool) {
	blob := m.store.Get(storage.CollectionCurrentUser)
	if blob == nil {
		return model.Patient{}, false
	}

	var rec record
	if err := json.Unmarshal(blob, &rec); err != nil || rec.PatientID == "" {
		if err != nil {
			m.logger.Warn("corrupt session record, treating as signed out", "error", err.Error())
		}
		return model.Patient{}, false
	}
	return m.patients.Find(rec.PatientID)
}
