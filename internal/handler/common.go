package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/choonlive/gig-platform/internal/guard"
	"github.com/choonlive/gig-platform/internal/model"
	"github.com/choonlive/gig-platform/internal/workflow"
)

// currentActor rebuilds the acting identity from the claims the JWT
// middleware stored in the context via `c.Set("user_id")` and
// `c.Set("role")`.  JWT numeric claims arrive as float64; older tokens
// may carry the subject as a string.
func currentActor(c echo.Context) (guard.Actor, error) {
	var id uint64
	switch v := c.Get("user_id").(type) {
	case uint64:
		id = v
	case int:
		id = uint64(v)
	case int64:
		id = uint64(v)
	case float64:
		id = uint64(v)
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return guard.Actor{}, errors.New("invalid user_id in context")
		}
		id = n
	default:
		return guard.Actor{}, errors.New("missing user_id in context")
	}
	roleStr, _ := c.Get("role").(string)
	role, ok := model.ParseRole(roleStr)
	if !ok {
		return guard.Actor{}, errors.New("invalid role in context")
	}
	return guard.Actor{ID: id, Role: role}, nil
}

// pathID parses a numeric path parameter, returning 0 when absent or
// malformed so the caller can reject with a 400.
func pathID(c echo.Context, name string) uint64 {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// respondError maps workflow errors onto HTTP statuses.  Authorization
// failures deliberately collapse to a generic 403 so the response never
// leaks which predicate denied the request.
func respondError(c echo.Context, err error) error {
	var ve *workflow.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error()})
	case errors.Is(err, workflow.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, workflow.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, workflow.ErrStaleState):
		return c.JSON(http.StatusConflict, echo.Map{"error": "state has changed, refresh and retry"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
