package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/suraj-kumar23/Agrinova-Main/internal/api/middleware"
	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
)

// ctxSessionUser returns the user injected by the Session middleware. Its
// absence means the route was mounted without the middleware; treat it as an
// unauthenticated request.
func ctxSessionUser(c echo.Context) (*domain.SessionUser, error) {
	user, _ := c.Get(middleware.SessionUserKey).(*domain.SessionUser)
	if user == nil {
		return nil, domain.ErrNoActiveSession
	}
	return user, nil
}
