package app

import (
	"os"

	"go.uber.org/zap"

	"idvault/internal/domain"
	identitysvc "idvault/internal/services/identity"
	profilesvc "idvault/internal/services/profile"
	"idvault/internal/store"
)

// Wire bundles the store manager, record stores, and high-level services.
type Wire struct {
	Manager   *store.Manager
	CryptoIDs domain.CryptoIDStore
	Profiles  domain.ProfileStore
	Identity  *identitysvc.Service
	Profile   *profilesvc.Service
	Log       *zap.Logger
}

// NewWire constructs the dependency graph from cfg. The database itself is
// not opened until a store operation needs it.
func NewWire(cfg Config, log *zap.Logger) (*Wire, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	m := store.NewManager(cfg.DBPath(), log)
	cryptoIDs := store.NewCryptoIDs(m)
	profiles := store.NewProfiles(m)

	return &Wire{
		Manager:   m,
		CryptoIDs: cryptoIDs,
		Profiles:  profiles,
		Identity:  identitysvc.New(cryptoIDs),
		Profile:   profilesvc.New(profiles, cryptoIDs),
		Log:       log,
	}, nil
}

// Close releases the store handle.
func (w *Wire) Close() error { return w.Manager.Close() }
