package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/Liban-hassan-noor/eastlify-client/internal/config"
	"github.com/Liban-hassan-noor/eastlify-client/internal/localstore"
	"github.com/Liban-hassan-noor/eastlify-client/internal/logger"
)

// LocalStoreHandle wraps the local Badger store with shutdown capability.
type LocalStoreHandle struct {
	*localstore.Badger
}

// Shutdown implements do.Shutdownable.
func (h *LocalStoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideLocalStore provides the on-disk store for the auth token and favorites.
func ProvideLocalStore(i do.Injector) (*LocalStoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.Dir, "db")
	db, err := localstore.Open(dbPath, log.WithComponent("localstore").Logger)
	if err != nil {
		return nil, err
	}

	log.Debug("Local store opened", "path", dbPath)

	return &LocalStoreHandle{Badger: db}, nil
}
