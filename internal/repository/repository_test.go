package repository

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shifahealth/clinic-portal/internal/model"
	"github.com/shifahealth/clinic-portal/internal/storage"
	"github.com/shifahealth/clinic-portal/pkg/logger"
	"github.com/shifahealth/clinic-portal/pkg/metrics"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	m := metrics.NewMetrics("portal_test", t.Name())

	store, err := storage.Open(filepath.Join(t.TempDir(), "portal.db"), log, m)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newAppointmentCollection(t *testing.T) *Collection[model.Appointment] {
	t.Helper()
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	m := metrics.NewMetrics("portal_test", t.Name()+"_coll")
	return NewCollection[model.Appointment](newTestStore(t), storage.CollectionAppointments, log, m)
}

func appt(id string) model.Appointment {
	return model.Appointment{
		ID:        id,
		PatientID: "pt-1",
		DoctorID:  "dr-1",
		Date:      "2024-09-01",
		Time:      "09:00",
		Type:      model.AppointmentTypeConsultation,
		Status:    model.AppointmentStatusScheduled,
	}
}

func TestAllOnEmptyStore(t *testing.T) {
	coll := newAppointmentCollection(t)
	assert.Empty(t, coll.All())
	assert.NotNil(t, coll.All())
}

func TestPutIsIdempotent(t *testing.T) {
	coll := newAppointmentCollection(t)

	require.NoError(t, coll.Put(appt("apt-1")))
	require.NoError(t, coll.Put(appt("apt-1")))

	items := coll.All()
	require.Len(t, items, 1)
	assert.Equal(t, "apt-1", items[0].ID)
}

func TestPutReplacesInPlace(t *testing.T) {
	coll := newAppointmentCollection(t)
	require.NoError(t, coll.Put(appt("apt-1")))
	require.NoError(t, coll.Put(appt("apt-2")))
	require.NoError(t, coll.Put(appt("apt-3")))

	updated := appt("apt-2")
	updated.Status = model.AppointmentStatusCancelled
	require.NoError(t, coll.Put(updated))

	items := coll.All()
	require.Len(t, items, 3)
	assert.Equal(t, []string{"apt-1", "apt-2", "apt-3"}, []string{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, model.AppointmentStatusCancelled, items[1].Status)
}

func TestDeleteAbsentIsNoOp(t *testing.T) {
	coll := newAppointmentCollection(t)
	require.NoError(t, coll.Put(appt("apt-1")))

	require.NoError(t, coll.Delete("nonexistent-id"))

	items := coll.All()
	require.Len(t, items, 1)
	assert.Equal(t, "apt-1", items[0].ID)
}

func TestDeleteRemovesMatch(t *testing.T) {
	coll := newAppointmentCollection(t)
	require.NoError(t, coll.Put(appt("apt-1")))
	require.NoError(t, coll.Put(appt("apt-2")))

	require.NoError(t, coll.Delete("apt-1"))

	items := coll.All()
	require.Len(t, items, 1)
	assert.Equal(t, "apt-2", items[0].ID)
}

func TestFindAbsence(t *testing.T) {
	coll := newAppointmentCollection(t)

	_, ok := coll.Find("apt-1")
	assert.False(t, ok)

	require.NoError(t, coll.Put(appt("apt-1")))
	found, ok := coll.Find("apt-1")
	assert.True(t, ok)
	assert.Equal(t, "apt-1", found.ID)
}

func TestMutatorsPropagateWriteFailure(t *testing.T) {
	store := newTestStore(t)
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	m := metrics.NewMetrics("portal_test", t.Name()+"_closed")
	coll := NewCollection[model.Appointment](store, storage.CollectionAppointments, log, m)

	require.NoError(t, coll.Put(appt("apt-1")))
	require.NoError(t, store.Close())

	// Write failures surface to the caller instead of being dropped.
	assert.Error(t, coll.Put(appt("apt-2")))
	assert.Error(t, coll.Delete("apt-1"))
	assert.Error(t, coll.Replace([]model.Appointment{}))
}

func TestCorruptBlobRecoversAsEmpty(t *testing.T) {
	store := newTestStore(t)
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	m := metrics.NewMetrics("portal_test", t.Name()+"_corrupt")
	coll := NewCollection[model.Appointment](store, storage.CollectionAppointments, log, m)

	require.NoError(t, store.Set(storage.CollectionAppointments, []byte(`{"definitely": "not an array"`)))

	assert.Empty(t, coll.All())

	// The collection stays usable after recovery.
	require.NoError(t, coll.Put(appt("apt-1")))
	assert.Len(t, coll.All(), 1)
}
