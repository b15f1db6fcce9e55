// Package main provides the entry point for the Eastlify mock backend.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/Liban-hassan-noor/eastlify-client/internal/di"
	"github.com/Liban-hassan-noor/eastlify-client/internal/logger"
)

func main() {
	injector := di.NewContainer()

	if err := di.BootstrapMock(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start mock backend: %v\n", err)
		os.Exit(1)
	}

	log := do.MustInvoke[*logger.Logger](injector)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down mock backend...")

	if err := injector.Shutdown(); err != nil {
		log.Error("Shutdown error", "error", err)
	}

	log.Info("Mock backend stopped")
}
