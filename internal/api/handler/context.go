package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/api/middleware"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
)

// ctxSession extracts the session snapshot injected by the Guard middleware.
// Its presence proves the guard ran; a handler reached without it is a wiring
// bug surfaced as 401 rather than a panic.
func ctxSession(c echo.Context) (domain.Session, error) {
	snap, ok := c.Get(middleware.SessionKey).(domain.Session)
	if !ok || snap.User == nil {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return snap, nil
}
