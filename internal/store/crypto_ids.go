package store

import (
	"bytes"
	"context"
	"time"

	bolt "go.etcd.io/bbolt"

	"idvault/internal/domain"
)

// CryptoIDs implements domain.CryptoIDStore across the self/others
// partitions.
type CryptoIDs struct {
	m *Manager
}

// NewCryptoIDs returns a CryptoIDs store backed by m.
func NewCryptoIDs(m *Manager) *CryptoIDs { return &CryptoIDs{m: m} }

// cryptoIDBuckets is the lookup order for key-based identifiers.
var cryptoIDBuckets = [][]byte{bucketSelf, bucketOthers}

// partitionFor routes a record by the presence of private key material.
func partitionFor(rec domain.CryptoID) []byte {
	if rec.IsSelf() {
		return bucketSelf
	}
	return bucketOthers
}

// Create writes rec into the partition matching its key material. An existing
// record with the same identifier is overwritten, even when it sits in the
// opposite partition, so the identifier stays unique across both.
func (s *CryptoIDs) Create(ctx context.Context, rec domain.CryptoID) error {
	db, err := s.m.DB()
	if err != nil {
		return err
	}
	raw, err := encodeCryptoID(rec)
	if err != nil {
		return err
	}
	key := []byte(rec.ID.String())
	to := partitionFor(rec)
	return db.Update(func(tx *bolt.Tx) error {
		for _, name := range cryptoIDBuckets {
			if bytes.Equal(name, to) {
				continue
			}
			if err := tx.Bucket(name).Delete(key); err != nil {
				return err
			}
		}
		return tx.Bucket(to).Put(key, raw)
	})
}

// Get looks id up in "self" first, then "others".
func (s *CryptoIDs) Get(ctx context.Context, id domain.KeyID) (domain.CryptoID, bool, error) {
	db, err := s.m.DB()
	if err != nil {
		return domain.CryptoID{}, false, err
	}
	key := []byte(id.String())
	var raw []byte
	err = db.View(func(tx *bolt.Tx) error {
		for _, name := range cryptoIDBuckets {
			if v := tx.Bucket(name).Get(key); v != nil {
				raw = append([]byte(nil), v...)
				return nil
			}
		}
		return nil
	})
	if err != nil || raw == nil {
		return domain.CryptoID{}, false, err
	}
	rec, err := decodeCryptoID(raw)
	if err != nil {
		return domain.CryptoID{}, false, err
	}
	return rec, true, nil
}

// Find returns the first decoded record satisfying match, scanning "self"
// before "others".
func (s *CryptoIDs) Find(ctx context.Context, match func(domain.CryptoID) bool) (domain.CryptoID, bool, error) {
	var (
		found domain.CryptoID
		ok    bool
	)
	err := s.scan(func(rec domain.CryptoID) bool {
		if match(rec) {
			found, ok = rec, true
			return false
		}
		return true
	})
	return found, ok, err
}

// FindAll returns every decoded record satisfying match; a nil match selects
// everything.
func (s *CryptoIDs) FindAll(ctx context.Context, match func(domain.CryptoID) bool) ([]domain.CryptoID, error) {
	var out []domain.CryptoID
	err := s.scan(func(rec domain.CryptoID) bool {
		if match == nil || match(rec) {
			out = append(out, rec)
		}
		return true
	})
	return out, err
}

// scan decodes records partition by partition until fn returns false.
func (s *CryptoIDs) scan(fn func(domain.CryptoID) bool) error {
	db, err := s.m.DB()
	if err != nil {
		return err
	}
	return db.View(func(tx *bolt.Tx) error {
		for _, name := range cryptoIDBuckets {
			c := tx.Bucket(name).Cursor()
			for k, v := c.First(); k != nil; k, v = c.Next() {
				rec, err := decodeCryptoID(v)
				if err != nil {
					return err
				}
				if !fn(rec) {
					return nil
				}
			}
		}
		return nil
	})
}

// Update merges patch into the stored record. When the merge changes which
// partition the record belongs to, the delete from the old partition and the
// put into the new one happen in the same transaction, so callers never
// observe the record in neither or both.
func (s *CryptoIDs) Update(ctx context.Context, patch domain.CryptoIDPatch, mode domain.MergeMode) (domain.CryptoID, error) {
	db, err := s.m.DB()
	if err != nil {
		return domain.CryptoID{}, err
	}
	key := []byte(patch.ID.String())
	var merged domain.CryptoID
	err = db.Update(func(tx *bolt.Tx) error {
		var raw, from []byte
		for _, name := range cryptoIDBuckets {
			if v := tx.Bucket(name).Get(key); v != nil {
				raw, from = v, name
				break
			}
		}
		if raw == nil {
			return domain.ErrNotFound
		}
		cur, err := decodeCryptoID(raw)
		if err != nil {
			return err
		}
		merged = mergeCryptoID(cur, patch, mode)
		merged.UpdatedAt = time.Now().UTC()

		out, err := encodeCryptoID(merged)
		if err != nil {
			return err
		}
		to := partitionFor(merged)
		if !bytes.Equal(from, to) {
			if err := tx.Bucket(from).Delete(key); err != nil {
				return err
			}
		}
		return tx.Bucket(to).Put(key, out)
	})
	if err != nil {
		return domain.CryptoID{}, err
	}
	return merged, nil
}

// Delete removes id from whichever partition holds it. A missing identifier
// is a no-op.
func (s *CryptoIDs) Delete(ctx context.Context, id domain.KeyID) error {
	db, err := s.m.DB()
	if err != nil {
		return err
	}
	key := []byte(id.String())
	return db.Update(func(tx *bolt.Tx) error {
		for _, name := range cryptoIDBuckets {
			if err := tx.Bucket(name).Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// mergeCryptoID folds the fields present in patch into cur. Append mode
// unions the attached-profiles set; every other field present in the patch
// replaces the stored value in either mode.
func mergeCryptoID(cur domain.CryptoID, patch domain.CryptoIDPatch, mode domain.MergeMode) domain.CryptoID {
	out := cur
	if patch.PublicKey != nil {
		out.PublicKey = *patch.PublicKey
	}
	if patch.PrivateKey != nil {
		pk := *patch.PrivateKey
		out.PrivateKey = &pk
	}
	if patch.LocalKey != nil {
		lk := *patch.LocalKey
		out.LocalKey = &lk
	}
	if patch.Nickname != nil {
		out.Nickname = *patch.Nickname
	}
	if patch.Profiles != nil {
		if mode == domain.MergeAppend {
			out.Profiles = unionPersonIDs(cur.Profiles, patch.Profiles)
		} else {
			out.Profiles = unionPersonIDs(nil, patch.Profiles)
		}
	}
	return out
}

// unionPersonIDs merges b into a, dropping duplicates and keeping first-seen
// order.
func unionPersonIDs(a, b []domain.PersonID) []domain.PersonID {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]domain.PersonID, 0, len(a)+len(b))
	for _, ids := range [][]domain.PersonID{a, b} {
		for _, id := range ids {
			if _, dup := seen[id.String()]; dup {
				continue
			}
			seen[id.String()] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// Compile-time assertion that CryptoIDs implements domain.CryptoIDStore.
var _ domain.CryptoIDStore = (*CryptoIDs)(nil)
