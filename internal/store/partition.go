package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// A Partition is a handle to one named bucket, bound to the Manager's shared
// database. Keys are canonical identifier strings; values are encoded rows.
//
// Partition covers single-bucket access. Operations that must touch more than
// one bucket at once (partition moves, index maintenance) run their own
// transactions in the record stores instead.
type Partition struct {
	m    *Manager
	name []byte
}

// Partition returns a handle bound to the named partition.
func (m *Manager) Partition(name string) Partition {
	return Partition{m: m, name: []byte(name)}
}

func (p Partition) bucket(tx *bolt.Tx) (*bolt.Bucket, error) {
	b := tx.Bucket(p.name)
	if b == nil {
		return nil, fmt.Errorf("unknown partition %q", p.name)
	}
	return b, nil
}

// Get returns the raw row stored under key, or nil when absent.
func (p Partition) Get(key string) ([]byte, error) {
	db, err := p.m.DB()
	if err != nil {
		return nil, err
	}
	var out []byte
	err = db.View(func(tx *bolt.Tx) error {
		b, err := p.bucket(tx)
		if err != nil {
			return err
		}
		if v := b.Get([]byte(key)); v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, err
}

// Put stores value under key, overwriting any existing row.
func (p Partition) Put(key string, value []byte) error {
	db, err := p.m.DB()
	if err != nil {
		return err
	}
	return db.Update(func(tx *bolt.Tx) error {
		b, err := p.bucket(tx)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
}

// Delete removes key; deleting a missing key is a no-op.
func (p Partition) Delete(key string) error {
	db, err := p.m.DB()
	if err != nil {
		return err
	}
	return db.Update(func(tx *bolt.Tx) error {
		b, err := p.bucket(tx)
		if err != nil {
			return err
		}
		return b.Delete([]byte(key))
	})
}

// ForEach calls fn for every row in the partition, in key order.
func (p Partition) ForEach(fn func(key string, value []byte) error) error {
	db, err := p.m.DB()
	if err != nil {
		return err
	}
	return db.View(func(tx *bolt.Tx) error {
		b, err := p.bucket(tx)
		if err != nil {
			return err
		}
		return b.ForEach(func(k, v []byte) error {
			return fn(string(k), v)
		})
	})
}

// Count returns the number of rows in the partition.
func (p Partition) Count() (int, error) {
	n := 0
	err := p.ForEach(func(string, []byte) error {
		n++
		return nil
	})
	return n, err
}
