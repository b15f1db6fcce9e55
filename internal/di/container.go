// Package di provides dependency injection configuration for the Eastlify client.
package di

import (
	"github.com/samber/do/v2"

	"github.com/Liban-hassan-noor/eastlify-client/internal/auth"
	"github.com/Liban-hassan-noor/eastlify-client/internal/config"
	"github.com/Liban-hassan-noor/eastlify-client/internal/di/providers"
	"github.com/Liban-hassan-noor/eastlify-client/internal/logger"
	"github.com/Liban-hassan-noor/eastlify-client/internal/store"
)

// NewContainer creates and configures the DI container with all providers.
// Providers are lazy; only the bootstrap path that is invoked gets built.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideSlogLogger)

	// Client side: local state, backend client, session store
	do.Provide(injector, providers.ProvideLocalStore)
	do.Provide(injector, providers.ProvideAPIClient)
	do.Provide(injector, providers.ProvideSessionStore)

	// Mock backend: token service and HTTP server
	do.Provide(injector, providers.ProvideAuthKey)
	do.Provide(injector, providers.ProvideTokenService)
	do.Provide(injector, providers.ProvideMockServer)

	return injector
}

// Bootstrap initializes the client-side services: the local store, the
// backend client and the session store.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.LocalStoreHandle](injector)
	_ = do.MustInvoke[*providers.APIClientHandle](injector)
	_ = do.MustInvoke[*store.Store](injector)

	return nil
}

// BootstrapMock initializes the mock backend and starts it listening.
func BootstrapMock(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[providers.AuthKey](injector)
	_ = do.MustInvoke[*auth.TokenService](injector)
	_ = do.MustInvoke[*providers.MockServerHandle](injector)

	return nil
}
