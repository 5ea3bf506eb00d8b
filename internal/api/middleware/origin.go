package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// OriginGate rejects cross-origin requests from origins outside the
// allow-list before any handler runs. Requests without an Origin header
// (curl, same-origin navigation) pass through.
func OriginGate(allowedOrigins ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			if origin == "" {
				return next(c)
			}
			if _, ok := allowed[origin]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Not allowed by CORS").
					SetInternal(fmt.Errorf("origin %q not allowed", origin))
			}
			return next(c)
		}
	}
}

// CORS answers preflights and decorates responses for allowed origins.
// Credentials are allowed so the browser sends the session cookie.
func CORS(allowedOrigins ...string) echo.MiddlewareFunc {
	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		MaxAge:           600,
	})
}
