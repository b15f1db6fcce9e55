package providers

import (
	"github.com/samber/do/v2"

	"github.com/Liban-hassan-noor/eastlify-client/internal/logger"
	"github.com/Liban-hassan-noor/eastlify-client/internal/store"
)

// ProvideSessionStore provides the client-side session and data store.
func ProvideSessionStore(i do.Injector) (*store.Store, error) {
	client := do.MustInvoke[*APIClientHandle](i)
	local := do.MustInvoke[*LocalStoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return store.New(client.Client, local.Badger, log.WithComponent("store").Logger), nil
}
