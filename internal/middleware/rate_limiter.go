package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// Default budget for card selection and explicit unmounts.
const (
	DefaultSelectRate  = 5
	DefaultSelectBurst = 10
)

// RateLimiter throttles the mutating view endpoints per browser session,
// falling back to the client IP when SessionID has not run. Throttled
// requests get a 429 whose body htmx swaps into nothing.
func RateLimiter(perSecond float64, burst int) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if sid := SessionIDFrom(c); sid != "" {
				return "session:" + sid, nil
			}
			return "ip:" + c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			FromContext(c.Request().Context()).Warn("Selection throttled", "client", identifier)
			return c.String(http.StatusTooManyRequests, "NEURAL LINK THROTTLED")
		},
	})
}
