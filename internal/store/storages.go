package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trackspense/internal/config"
	"github.com/MKhiriev/go-trackspense/internal/crypto"
	"github.com/MKhiriev/go-trackspense/internal/logger"
)

// Storages groups the local persistence of the client.
type Storages struct {
	// Session holds the token and the cached user summary.
	Session KeyValueStore

	db *DB
}

// NewStorages opens and migrates the SQLite database from cfg and builds the
// session store on top of it. A non-empty secret seals every stored value.
func NewStorages(ctx context.Context, cfg config.ClientStorage, secret string, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating session store: %w", err)
	}

	var session KeyValueStore = NewSQLiteKeyValueStore(db, log)
	if secret != "" {
		session = NewSealedKeyValueStore(session, crypto.NewSealer(), secret)
	}

	return &Storages{Session: session, db: db}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
