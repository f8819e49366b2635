package store

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"idvault/internal/domain"
)

// Partition names.
const (
	PartitionSelf     = "self"
	PartitionOthers   = "others"
	PartitionProfiles = "profiles"
)

var (
	bucketSelf     = []byte(PartitionSelf)
	bucketOthers   = []byte(PartitionOthers)
	bucketProfiles = []byte(PartitionProfiles)

	// bucketProfilesByNetwork is the non-unique secondary index on the
	// profiles partition. Entries are network + 0x00 + primary key.
	bucketProfilesByNetwork = []byte("profiles.network")

	bucketMeta       = []byte("meta")
	keySchemaVersion = []byte("schema_version")
)

// schemaVersion is the version this build writes and expects.
const schemaVersion = 1

// migrations[i] upgrades the schema from version i to i+1. Steps are additive
// and monotonic; each runs exactly once, in order, inside the opening
// transaction.
var migrations = []func(tx *bolt.Tx) error{
	migrateInitial,
}

// migrateInitial (0 -> 1) creates the three partitions and the
// profiles-by-network index.
func migrateInitial(tx *bolt.Tx) error {
	for _, name := range [][]byte{bucketSelf, bucketOthers, bucketProfiles, bucketProfilesByNetwork} {
		if _, err := tx.CreateBucketIfNotExists(name); err != nil {
			return err
		}
	}
	return nil
}

// Manager owns the shared database handle.
//
// The handle is lazily constructed: the first call to DB opens the file and
// migrates the schema, and concurrent first calls are coalesced so the engine
// is opened exactly once. All record stores in this package share one Manager.
type Manager struct {
	path string
	log  *zap.Logger

	group singleflight.Group
	mu    sync.RWMutex
	db    *bolt.DB
}

// NewManager returns a Manager for the database file at path. The file is not
// touched until first use. A nil logger disables logging.
func NewManager(path string, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{path: path, log: log}
}

// DB returns the shared handle, opening and migrating the database on first
// call.
func (m *Manager) DB() (*bolt.DB, error) {
	m.mu.RLock()
	db := m.db
	m.mu.RUnlock()
	if db != nil {
		return db, nil
	}

	v, err, _ := m.group.Do("open", func() (any, error) {
		m.mu.RLock()
		cached := m.db
		m.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		opened, err := m.open()
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.db = opened
		m.mu.Unlock()
		return opened, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*bolt.DB), nil
}

func (m *Manager) open() (*bolt.DB, error) {
	db, err := bolt.Open(m.path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	if err := m.migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	m.log.Info("store opened", zap.String("path", m.path))
	return db, nil
}

// migrate runs every missing schema step, oldest first, in one transaction.
// A store written by a newer build aborts with *domain.SchemaError.
func (m *Manager) migrate(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		meta, err := tx.CreateBucketIfNotExists(bucketMeta)
		if err != nil {
			return err
		}
		from := 0
		if raw := meta.Get(keySchemaVersion); raw != nil {
			from = int(binary.BigEndian.Uint64(raw))
		}
		if from > schemaVersion {
			return &domain.SchemaError{Have: from, Want: schemaVersion}
		}
		for v := from; v < schemaVersion; v++ {
			m.log.Info("migrating store schema", zap.Int("from", v), zap.Int("to", v+1))
			if err := migrations[v](tx); err != nil {
				return fmt.Errorf("schema step %d->%d: %w", v, v+1, err)
			}
		}
		var raw [8]byte
		binary.BigEndian.PutUint64(raw[:], uint64(schemaVersion))
		return meta.Put(keySchemaVersion, raw[:])
	})
}

// Close releases the handle if it was ever opened. A closed Manager reopens
// on the next call to DB.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}
