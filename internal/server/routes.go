package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nfrund/octofit/internal/middleware"
	"github.com/nfrund/octofit/web"
)

// RegisterRoutes sets up the routes the server owns itself. Dashboard pages
// are attached by their modules at boot.
func (s *Server) RegisterRoutes() {
	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	s.E.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.Shell.Register(s.E, middleware.RateLimiter(middleware.DefaultSelectRate, middleware.DefaultSelectBurst))
}
