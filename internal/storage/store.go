package storage

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	bolt "go.etcd.io/bbolt"

	"github.com/shifahealth/clinic-portal/pkg/logger"
	"github.com/shifahealth/clinic-portal/pkg/metrics"
)

// Collection names as persisted in the key-value substrate.
const (
	CollectionPatients     = "patients"
	CollectionDoctors      = "doctors"
	CollectionAppointments = "appointments"
	CollectionChatHistory  = "chat_history"
	CollectionCurrentUser  = "current_user"
)

// bucketName holds every collection key; one bucket keeps the file
// layout flat and the keys enumerable.
var bucketName = []byte("collections")

const (
	cacheTTL     = 5 * time.Minute
	cacheCleanup = 10 * time.Minute
)

// Store is the durable key-value substrate. Each collection name maps
// to a single JSON blob. Reads never fail: a missing key or an I/O
// error surfaces as a nil blob. Writes are logged and counted on
// failure and the error is returned so callers can decide what to do
// with it.
type Store struct {
	db      *bolt.DB
	cache   *cache.Cache
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// Open opens (creating if needed) the store file at path.
func Open(path string, log *logger.Logger, m *metrics.Metrics) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &Store{
		db:      db,
		cache:   cache.New(cacheTTL, cacheCleanup),
		logger:  log,
		metrics: m,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the raw blob stored under name, or nil when the key is
// absent or the read fails. Recently written or read blobs are served
// from an in-memory cache.
func (s *Store) Get(name string) []byte {
	start := time.Now()
	defer func() {
		s.metrics.StoreLatency.WithLabelValues("get").Observe(time.Since(start).Seconds())
	}()
	s.metrics.StoreReads.WithLabelValues(name).Inc()

	if blob, ok := s.cache.Get(name); ok {
		s.metrics.CacheHits.Inc()
		return blob.([]byte)
	}
	s.metrics.CacheMisses.Inc()

	var blob []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(name)); v != nil {
			blob = make([]byte, len(v))
			copy(blob, v)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("store read failed, treating as empty", "collection", name, "error", err.Error())
		return nil
	}
	if blob != nil {
		s.cache.Set(name, blob, cache.DefaultExpiration)
	}
	return blob
}

// Set writes blob under name. Failures are logged and counted, then
// returned; the in-memory cache is refreshed only on success so a
// failed write cannot mask the durable state.
func (s *Store) Set(name string, blob []byte) error {
	start := time.Now()
	defer func() {
		s.metrics.StoreLatency.WithLabelValues("set").Observe(time.Since(start).Seconds())
	}()
	s.metrics.StoreWrites.WithLabelValues(name).Inc()

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(name), blob)
	})
	if err != nil {
		s.metrics.StoreWriteErrors.WithLabelValues(name).Inc()
		s.logger.Error(err, "store write failed", "collection", name)
		s.cache.Delete(name)
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}

	s.cache.Set(name, blob, cache.DefaultExpiration)
	return nil
}

// Delete removes the key entirely. Used for clearing the session record.
func (s *Store) Delete(name string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(name))
	})
	s.cache.Delete(name)
	if err != nil {
		s.metrics.StoreWriteErrors.WithLabelValues(name).Inc()
		s.logger.Error(err, "store delete failed", "collection", name)
		return fmt.Errorf("failed to delete collection %s: %w", name, err)
	}
	return nil
}
