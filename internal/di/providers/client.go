package providers

import (
	"github.com/samber/do/v2"

	"github.com/Liban-hassan-noor/eastlify-client/internal/api"
	"github.com/Liban-hassan-noor/eastlify-client/internal/config"
	"github.com/Liban-hassan-noor/eastlify-client/internal/logger"
)

// APIClientHandle wraps the backend HTTP client with shutdown capability.
type APIClientHandle struct {
	*api.Client
}

// Shutdown implements do.Shutdownable.
func (h *APIClientHandle) Shutdown() error {
	h.Close()
	return nil
}

// ProvideAPIClient provides the Eastlify backend HTTP client.
func ProvideAPIClient(i do.Injector) (*APIClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := api.New(api.Config{
		BaseURL:       cfg.API.BaseURL,
		Timeout:       cfg.API.Timeout,
		ActivityRPS:   cfg.API.ActivityRPS,
		ActivityBurst: cfg.API.ActivityBurst,
	}, log.WithComponent("api").Logger)

	return &APIClientHandle{Client: client}, nil
}
