package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskcase/task-api/internal/core/domain"
)

// ctxUser extracts the user injected by the Auth middleware and performs a
// fast-fail check before any service call: presence proves the middleware
// ran, so a missing user means the route is miswired, not a bad credential.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return user, nil
}
