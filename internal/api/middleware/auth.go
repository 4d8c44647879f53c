package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskcase/task-api/internal/api/metrics"
	"github.com/taskcase/task-api/internal/core/ports"
)

// UserContextKey is the echo context key under which the resolved user is stored.
const UserContextKey = "user"

// Auth extracts the bearer token, resolves the authenticated user, and
// injects it into the request context. Each request re-resolves
// independently; any failure is a uniform 401.
func Auth(resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := resolver.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
