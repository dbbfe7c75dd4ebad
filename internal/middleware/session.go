package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// SessionName is the cookie session holding the browser's id.
	SessionName = "octofit"

	sessionIDKey = "sid"
)

// SessionID gives every browser a stable id stored in its cookie session.
// It must run after the echo-contrib session middleware.
func SessionID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// A cookie that no longer decodes yields a fresh session and an
		// error; the fresh session is what we want.
		sess, err := session.Get(SessionName, c)
		if sess == nil {
			return err
		}

		id, _ := sess.Values[sessionIDKey].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values[sessionIDKey] = id
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				return err
			}
		}
		c.Set(sessionIDKey, id)
		return next(c)
	}
}

// SessionIDFrom returns the id set by SessionID, or "".
func SessionIDFrom(c echo.Context) string {
	id, _ := c.Get(sessionIDKey).(string)
	return id
}
