package storage

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shifahealth/clinic-portal/pkg/logger"
	"github.com/shifahealth/clinic-portal/pkg/metrics"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	m := metrics.NewMetrics("portal_test", "storage")

	store, err := Open(filepath.Join(t.TempDir(), "portal.db"), log, m)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGetMissingKeyReturnsNil(t *testing.T) {
	store := newTestStore(t)
	assert.Nil(t, store.Get("no_such_collection"))
}

func TestSetGetRoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set(CollectionDoctors, []byte(`[{"id":"1"}]`)))
	assert.Equal(t, []byte(`[{"id":"1"}]`), store.Get(CollectionDoctors))

	// Second read is served from cache and must be identical.
	assert.Equal(t, []byte(`[{"id":"1"}]`), store.Get(CollectionDoctors))
}

func TestSetOverwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set(CollectionPatients, []byte(`[1]`)))
	require.NoError(t, store.Set(CollectionPatients, []byte(`[2]`)))
	assert.Equal(t, []byte(`[2]`), store.Get(CollectionPatients))
}

func TestDeleteRemovesKey(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set(CollectionCurrentUser, []byte(`{"patientId":"p-1"}`)))
	require.NoError(t, store.Delete(CollectionCurrentUser))
	assert.Nil(t, store.Get(CollectionCurrentUser))
}

func TestSetReturnsErrorWhenSubstrateUnavailable(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Close())

	err := store.Set(CollectionDoctors, []byte(`[]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), CollectionDoctors)

	// Reads stay non-failing: the unavailable substrate surfaces as
	// an empty result, not an error.
	assert.Nil(t, store.Get(CollectionDoctors))
}

func TestDataSurvivesReopen(t *testing.T) {
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	m := metrics.NewMetrics("portal_test", "storage_reopen")
	path := filepath.Join(t.TempDir(), "portal.db")

	store, err := Open(path, log, m)
	require.NoError(t, err)
	require.NoError(t, store.Set(CollectionAppointments, []byte(`[{"id":"apt-1"}]`)))
	require.NoError(t, store.Close())

	m2 := metrics.NewMetrics("portal_test", "storage_reopen2")
	reopened, err := Open(path, log, m2)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, []byte(`[{"id":"apt-1"}]`), reopened.Get(CollectionAppointments))
}
