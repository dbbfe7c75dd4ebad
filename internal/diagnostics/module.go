package diagnostics

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/octofit/internal/module"
	"github.com/nfrund/octofit/internal/registry"
)

// Module subscribes the lifecycle log to the bus at boot.
type Module struct {
	module.BaseModule
	logger *slog.Logger
}

// NewModule creates the diagnostics module. A nil logger means slog.Default.
func NewModule(logger *slog.Logger) *Module {
	if logger == nil {
		logger = slog.Default()
	}
	return &Module{logger: logger}
}

func (m *Module) Name() string { return "diagnostics" }

// Boot starts consuming lifecycle events for the lifetime of ctx.
func (m *Module) Boot(ctx context.Context, _ *echo.Group, reg *registry.Registry) error {
	sub := registry.MustGet(reg, registry.SubscriberKey)
	m.logger.Info("Booting diagnostics: subscribing to lifecycle events", "topic", LifecycleEvent.Name())
	return Subscribe(ctx, sub, m.logger)
}
