package providers

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/Liban-hassan-noor/eastlify-client/internal/auth"
	"github.com/Liban-hassan-noor/eastlify-client/internal/config"
	"github.com/Liban-hassan-noor/eastlify-client/internal/logger"
	"github.com/Liban-hassan-noor/eastlify-client/internal/mockapi"
)

// MockServerHandle wraps the mock backend's http.Server with Shutdownable.
type MockServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *MockServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideMockServer provides the seeded mock backend, listening in the
// background on the configured port.
func ProvideMockServer(i do.Injector) (*MockServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	tokens := do.MustInvoke[*auth.TokenService](i)
	log := do.MustInvoke[*logger.Logger](i)

	srv := mockapi.NewServer(tokens, log.WithComponent("mockapi").Logger)
	if err := srv.Seed(); err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:    ":" + cfg.Mock.Port,
		Handler: srv,
	}

	go func() {
		log.Info("Mock backend listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Mock backend stopped", "error", err)
		}
	}()

	return &MockServerHandle{Server: server}, nil
}
