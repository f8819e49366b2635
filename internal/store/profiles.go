package store

import (
	"bytes"
	"context"
	"time"

	bolt "go.etcd.io/bbolt"

	"idvault/internal/domain"
)

// indexSep separates the indexed value from the primary key in index entries.
const indexSep = 0x00

// Profiles implements domain.ProfileStore over the profiles partition and its
// network index. Every write maintains the index entry for the row inside the
// same transaction.
type Profiles struct {
	m *Manager
}

// NewProfiles returns a Profiles store backed by m.
func NewProfiles(m *Manager) *Profiles { return &Profiles{m: m} }

func networkIndexKey(network, id string) []byte {
	key := make([]byte, 0, len(network)+1+len(id))
	key = append(key, network...)
	key = append(key, indexSep)
	key = append(key, id...)
	return key
}

// putProfile writes rec and repairs the network index, removing the entry for
// prevNetwork when the network changed.
func putProfile(tx *bolt.Tx, rec domain.Profile, hadPrev bool, prevNetwork string) error {
	raw, err := encodeProfile(rec)
	if err != nil {
		return err
	}
	id := rec.ID.String()
	idx := tx.Bucket(bucketProfilesByNetwork)
	if hadPrev && prevNetwork != rec.Network {
		if err := idx.Delete(networkIndexKey(prevNetwork, id)); err != nil {
			return err
		}
	}
	if err := idx.Put(networkIndexKey(rec.Network, id), []byte(id)); err != nil {
		return err
	}
	return tx.Bucket(bucketProfiles).Put([]byte(id), raw)
}

// Create writes rec, overwriting any existing profile with the same
// identifier.
func (s *Profiles) Create(ctx context.Context, rec domain.Profile) error {
	db, err := s.m.DB()
	if err != nil {
		return err
	}
	key := []byte(rec.ID.String())
	return db.Update(func(tx *bolt.Tx) error {
		hadPrev := false
		prevNetwork := ""
		if v := tx.Bucket(bucketProfiles).Get(key); v != nil {
			prev, err := decodeProfile(v)
			if err != nil {
				return err
			}
			hadPrev, prevNetwork = true, prev.Network
		}
		return putProfile(tx, rec, hadPrev, prevNetwork)
	})
}

// Get returns the profile stored under id.
func (s *Profiles) Get(ctx context.Context, id domain.PersonID) (domain.Profile, bool, error) {
	db, err := s.m.DB()
	if err != nil {
		return domain.Profile{}, false, err
	}
	var raw []byte
	err = db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketProfiles).Get([]byte(id.String())); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil || raw == nil {
		return domain.Profile{}, false, err
	}
	rec, err := decodeProfile(raw)
	if err != nil {
		return domain.Profile{}, false, err
	}
	return rec, true, nil
}

// Find returns the first decoded profile satisfying match, in key order.
func (s *Profiles) Find(ctx context.Context, match func(domain.Profile) bool) (domain.Profile, bool, error) {
	var (
		found domain.Profile
		ok    bool
	)
	err := s.scan(func(rec domain.Profile) bool {
		if match(rec) {
			found, ok = rec, true
			return false
		}
		return true
	})
	return found, ok, err
}

// FindAll returns every decoded profile satisfying match; a nil match selects
// everything.
func (s *Profiles) FindAll(ctx context.Context, match func(domain.Profile) bool) ([]domain.Profile, error) {
	var out []domain.Profile
	err := s.scan(func(rec domain.Profile) bool {
		if match == nil || match(rec) {
			out = append(out, rec)
		}
		return true
	})
	return out, err
}

func (s *Profiles) scan(fn func(domain.Profile) bool) error {
	db, err := s.m.DB()
	if err != nil {
		return err
	}
	return db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketProfiles).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			rec, err := decodeProfile(v)
			if err != nil {
				return err
			}
			if !fn(rec) {
				return nil
			}
		}
		return nil
	})
}

// FindByNetwork returns every profile on the named network, resolved through
// the secondary index rather than a partition scan.
func (s *Profiles) FindByNetwork(ctx context.Context, network string) ([]domain.Profile, error) {
	db, err := s.m.DB()
	if err != nil {
		return nil, err
	}
	prefix := networkIndexKey(network, "")
	var out []domain.Profile
	err = db.View(func(tx *bolt.Tx) error {
		rows := tx.Bucket(bucketProfiles)
		c := tx.Bucket(bucketProfilesByNetwork).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			raw := rows.Get(v)
			if raw == nil {
				// Stale index entry; skip rather than fail the lookup.
				continue
			}
			rec, err := decodeProfile(raw)
			if err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update merges patch into the stored profile in overwrite mode. A missing
// record yields ErrNotFound.
func (s *Profiles) Update(ctx context.Context, patch domain.ProfilePatch) (domain.Profile, error) {
	db, err := s.m.DB()
	if err != nil {
		return domain.Profile{}, err
	}
	key := []byte(patch.ID.String())
	var merged domain.Profile
	err = db.Update(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketProfiles).Get(key)
		if raw == nil {
			return domain.ErrNotFound
		}
		cur, err := decodeProfile(raw)
		if err != nil {
			return err
		}
		merged = mergeProfile(cur, patch)
		merged.UpdatedAt = time.Now().UTC()
		return putProfile(tx, merged, true, cur.Network)
	})
	if err != nil {
		return domain.Profile{}, err
	}
	return merged, nil
}

// Delete removes id and its index entry. A missing identifier is a no-op.
func (s *Profiles) Delete(ctx context.Context, id domain.PersonID) error {
	db, err := s.m.DB()
	if err != nil {
		return err
	}
	key := []byte(id.String())
	return db.Update(func(tx *bolt.Tx) error {
		rows := tx.Bucket(bucketProfiles)
		raw := rows.Get(key)
		if raw == nil {
			return nil
		}
		rec, err := decodeProfile(raw)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketProfilesByNetwork).Delete(networkIndexKey(rec.Network, rec.ID.String())); err != nil {
			return err
		}
		return rows.Delete(key)
	})
}

// mergeProfile folds the fields present in patch into cur (overwrite
// semantics). Unlink clears the linked identity; no cascade runs on the
// identity side.
func mergeProfile(cur domain.Profile, patch domain.ProfilePatch) domain.Profile {
	out := cur
	if patch.Nickname != nil {
		out.Nickname = *patch.Nickname
	}
	if patch.Network != nil {
		out.Network = *patch.Network
	}
	if patch.LocalKey != nil {
		lk := *patch.LocalKey
		out.LocalKey = &lk
	}
	if patch.Unlink {
		out.Linked = nil
	} else if patch.Linked != nil {
		k := *patch.Linked
		out.Linked = &k
	}
	return out
}

// Compile-time assertion that Profiles implements domain.ProfileStore.
var _ domain.ProfileStore = (*Profiles)(nil)
