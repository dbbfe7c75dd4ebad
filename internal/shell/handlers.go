package shell

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/octofit/internal/dataview"
	"github.com/nfrund/octofit/internal/domain"
	"github.com/nfrund/octofit/internal/middleware"
	"github.com/nfrund/octofit/internal/module"
	"github.com/nfrund/octofit/web/src/templates/layouts"
	"github.com/nfrund/octofit/web/src/templates/pages"
	"github.com/nfrund/octofit/web/src/templates/partials"
)

// StatusStopPolling tells htmx to stop a polling trigger.
const StatusStopPolling = 286

// Register mounts the shell's own routes: the home page and the view
// endpoints used by htmx. Mutating endpoints take extra middleware, such as
// a rate limiter.
func (s *Shell) Register(e *echo.Echo, mutating ...echo.MiddlewareFunc) {
	e.GET("/", s.home)
	e.GET("/views/:id", s.fragment)
	e.GET("/views/:id/touch", s.touch)
	e.POST("/views/:id/select/:key", s.selectView, mutating...)
	e.POST("/views/:id/release", s.release, mutating...)
}

// Attach adds d to the navigation and serves its page on router.
func (s *Shell) Attach(router *echo.Group, d module.Dashboard) {
	s.mu.Lock()
	s.nav = append(s.nav, d.Route())
	s.mu.Unlock()
	router.GET(d.Route().Path, s.page(d))
}

func (s *Shell) chrome(title, active string) layouts.Chrome {
	now := s.now()
	return layouts.Chrome{
		Title:  title,
		Active: active,
		Nav:    s.Nav(),
		Now:    now,
		Uptime: now.Sub(s.started),
		PingMS: s.decor.Between(10, 29),
		Glitch: s.decor.Chance(0.1),
	}
}

func (s *Shell) home(c echo.Context) error {
	s.UnmountSession(middleware.SessionIDFrom(c))
	return s.renderer.RenderPage(c, http.StatusOK, layouts.Base(s.chrome("", "/"), pages.HomeContent()))
}

func (s *Shell) page(d module.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		sid := middleware.SessionIDFrom(c)
		panel := s.Mount(sid, d)
		middleware.FromContext(c.Request().Context()).Info("Serving dashboard",
			"resource", panel.Resource(), "mount_id", panel.ID())
		route := d.Route()
		return s.renderer.RenderPage(c, http.StatusOK, layouts.Base(s.chrome(route.Title, route.Path), panel.Render()))
	}
}

// owned resolves the view addressed by the request, provided it belongs to
// the requesting session.
func (s *Shell) owned(c echo.Context, id string) (module.Panel, bool) {
	m, ok := s.lookup(id)
	if !ok || m.session != middleware.SessionIDFrom(c) {
		return nil, false
	}
	return m.panel, true
}

func (s *Shell) fragment(c echo.Context) error {
	var req viewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	panel, ok := s.owned(c, req.ID)
	if !ok {
		return s.expired(c, req.ID)
	}
	return s.renderer.RenderPage(c, http.StatusOK, panel.Render())
}

func (s *Shell) selectView(c echo.Context) error {
	var req selectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	key, err := url.PathUnescape(req.Key)
	if err != nil {
		key = req.Key
	}

	panel, ok := s.owned(c, req.ID)
	if !ok {
		return s.expired(c, req.ID)
	}
	switch err := panel.Select(key); {
	case errors.Is(err, domain.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "no such record")
	case errors.Is(err, dataview.ErrNotReady), errors.Is(err, dataview.ErrNoSelection):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case err != nil:
		return err
	}
	return s.renderer.RenderPage(c, http.StatusOK, panel.Render())
}

// touch is the keepalive of a settled view. A view that is gone stops the
// keepalive; the next click shows it severed.
func (s *Shell) touch(c echo.Context) error {
	var req viewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if _, ok := s.owned(c, req.ID); !ok {
		return c.NoContent(StatusStopPolling)
	}
	return c.NoContent(http.StatusNoContent)
}

// release is sent by the page when it is discarded.
func (s *Shell) release(c echo.Context) error {
	var req viewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if _, ok := s.owned(c, req.ID); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "view not mounted")
	}
	s.Unmount(req.ID)
	return c.NoContent(http.StatusOK)
}

// expired answers requests for views that are gone. htmx polls are told to
// stop and get a notice to swap in.
func (s *Shell) expired(c echo.Context, id string) error {
	if c.Request().Header.Get("HX-Request") == "" {
		return echo.NewHTTPError(http.StatusNotFound, "view not mounted")
	}
	return s.renderer.RenderPage(c, StatusStopPolling, partials.Severed(id,
		partials.NoData("VIEW LINK SEVERED", "Reload the page to re-establish the neural link."),
	))
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
