package module

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/octofit/internal/registry"
)

// Module is a feature booted by the server: a dashboard, or a background
// service such as diagnostics. Shared services (shell, bus, API client)
// are placed in the registry by the server before any module boots.
type Module interface {
	Name() string

	// Boot attaches routes to router and starts background work bound to
	// ctx, which lives as long as the server.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown runs in reverse boot order after the HTTP server stopped.
	Shutdown(ctx context.Context) error
}

// BaseModule is embedded by modules with nothing to do on one of the hooks.
type BaseModule struct{}

func (m *BaseModule) Boot(context.Context, *echo.Group, *registry.Registry) error { return nil }
func (m *BaseModule) Shutdown(context.Context) error                              { return nil }
