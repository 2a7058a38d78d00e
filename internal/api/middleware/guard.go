package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

// SessionKey is the echo context key the guard stores the session snapshot
// under for downstream handlers.
const SessionKey = "session"

// Guard enforces the role-to-route access rules on every protected
// navigation. The decision is derived purely from the current session
// snapshot and the route's allowed-roles list; no I/O happens here.
//
//   - No authenticated session: redirect to /login, preserving the requested
//     path for post-login redirect.
//   - Authenticated but role not allowed: redirect to /unauthorized. That page
//     is terminal; the user navigates away manually.
//   - Authenticated and allowed: inject the snapshot and continue.
func Guard(store ports.SessionStore, log zerolog.Logger, allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snap := store.Snapshot()

			if !snap.IsAuthenticated || snap.User == nil {
				target := "/login?from=" + url.QueryEscape(c.Request().URL.Path)
				return c.Redirect(http.StatusFound, target)
			}

			if _, ok := allowed[snap.User.Role]; !ok {
				log.Warn().
					Str("role", string(snap.User.Role)).
					Str("path", c.Request().URL.Path).
					Msg("unauthorized access")
				return c.Redirect(http.StatusFound, "/unauthorized")
			}

			c.Set(SessionKey, snap)
			return next(c)
		}
	}
}
