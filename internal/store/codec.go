package store

import (
	"encoding/json"
	"time"

	"idvault/internal/domain"
)

// Rows are the storage form of records: identifiers flattened to their
// canonical strings so the engine can key and index on them. Decoding
// restores the concrete identifier variant for the primary key and for every
// nested identifier, so callers get values they can dispatch on.

type cryptoIDRow struct {
	ID         string             `json:"id"`
	PublicKey  domain.PublicKey   `json:"public_key"`
	PrivateKey *domain.PrivateKey `json:"private_key,omitempty"`
	LocalKey   *domain.LocalKey   `json:"local_key,omitempty"`
	Nickname   string             `json:"nickname,omitempty"`
	Profiles   []string           `json:"profiles,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type profileRow struct {
	ID        string           `json:"id"`
	Nickname  string           `json:"nickname,omitempty"`
	Network   string           `json:"network,omitempty"`
	LocalKey  *domain.LocalKey `json:"local_key,omitempty"`
	Linked    string           `json:"linked_crypto_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func encodeCryptoID(rec domain.CryptoID) ([]byte, error) {
	row := cryptoIDRow{
		ID:         rec.ID.String(),
		PublicKey:  rec.PublicKey,
		PrivateKey: rec.PrivateKey,
		LocalKey:   rec.LocalKey,
		Nickname:   rec.Nickname,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
	for _, p := range rec.Profiles {
		row.Profiles = append(row.Profiles, p.String())
	}
	return json.Marshal(row)
}

func decodeCryptoID(raw []byte) (domain.CryptoID, error) {
	var row cryptoIDRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return domain.CryptoID{}, err
	}
	id, err := domain.ParseKeyID(row.ID)
	if err != nil {
		return domain.CryptoID{}, err
	}
	rec := domain.CryptoID{
		ID:         id,
		PublicKey:  row.PublicKey,
		PrivateKey: row.PrivateKey,
		LocalKey:   row.LocalKey,
		Nickname:   row.Nickname,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	for _, s := range row.Profiles {
		p, err := domain.ParsePersonID(s)
		if err != nil {
			return domain.CryptoID{}, err
		}
		rec.Profiles = append(rec.Profiles, p)
	}
	return rec, nil
}

func encodeProfile(rec domain.Profile) ([]byte, error) {
	row := profileRow{
		ID:        rec.ID.String(),
		Nickname:  rec.Nickname,
		Network:   rec.Network,
		LocalKey:  rec.LocalKey,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.Linked != nil {
		row.Linked = rec.Linked.String()
	}
	return json.Marshal(row)
}

func decodeProfile(raw []byte) (domain.Profile, error) {
	var row profileRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return domain.Profile{}, err
	}
	id, err := domain.ParsePersonID(row.ID)
	if err != nil {
		return domain.Profile{}, err
	}
	rec := domain.Profile{
		ID:        id,
		Nickname:  row.Nickname,
		Network:   row.Network,
		LocalKey:  row.LocalKey,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Linked != "" {
		// Only key-based identities can be linked; any other tag here means
		// the row is unreadable by this build.
		k, err := domain.ParseKeyID(row.Linked)
		if err != nil {
			return domain.Profile{}, err
		}
		rec.Linked = &k
	}
	return rec, nil
}
