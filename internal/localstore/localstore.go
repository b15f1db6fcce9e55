// Package localstore persists the small amount of client state that must
// survive restarts: the auth token and the favorites list. It is the Go
// counterpart of browser localStorage, backed by Badger.
package localstore

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Keys under which client state is stored.
const (
	tokenKey     = "eastlify:token"
	favoritesKey = "eastlify:favorites"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("localstore: not found")

// Store is the persistence surface the session store depends on.
// Badger provides the durable implementation; Memory backs tests.
type Store interface {
	// Token returns the persisted auth token, or ErrNotFound.
	Token() (string, error)
	// SetToken persists the auth token.
	SetToken(token string) error
	// DeleteToken removes the persisted auth token. Deleting a missing
	// token is not an error.
	DeleteToken() error

	// Favorites returns the persisted favorite shop IDs. A missing key
	// yields an empty slice, not an error.
	Favorites() ([]string, error)
	// SetFavorites persists the favorite shop IDs.
	SetFavorites(ids []string) error

	// Close releases underlying resources.
	Close() error
}

// Badger is the durable Store backed by a Badger database.
type Badger struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ Store = (*Badger)(nil)

// Open opens (or creates) the local store at the given directory.
func Open(path string, logger *slog.Logger) (*Badger, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil      // Disable Badger's internal logging
	opts.SyncWrites = true // Token loss on crash would force a re-login

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("local store opened", "path", path)
	}

	return &Badger{db: db, logger: logger}, nil
}

// Close gracefully closes the database.
func (b *Badger) Close() error {
	if b.logger != nil {
		b.logger.Info("closing local store")
	}
	return b.db.Close()
}

// Token returns the persisted auth token.
func (b *Badger) Token() (string, error) {
	var token string
	err := b.get([]byte(tokenKey), &token)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get token: %w", err)
	}
	return token, nil
}

// SetToken persists the auth token.
func (b *Badger) SetToken(token string) error {
	if err := b.set([]byte(tokenKey), token); err != nil {
		return fmt.Errorf("set token: %w", err)
	}
	return nil
}

// DeleteToken removes the persisted auth token.
func (b *Badger) DeleteToken() error {
	if err := b.delete([]byte(tokenKey)); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

// Favorites returns the persisted favorite shop IDs.
func (b *Badger) Favorites() ([]string, error) {
	var ids []string
	err := b.get([]byte(favoritesKey), &ids)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// SetFavorites persists the favorite shop IDs.
func (b *Badger) SetFavorites(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	if err := b.set([]byte(favoritesKey), ids); err != nil {
		return fmt.Errorf("set favorites: %w", err)
	}
	return nil
}

// get retrieves a value by key.
func (b *Badger) get(key []byte, dest any) error {
	return b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
}

// set stores a value by key.
func (b *Badger) set(key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// delete removes a key. Missing keys are not an error.
func (b *Badger) delete(key []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}
