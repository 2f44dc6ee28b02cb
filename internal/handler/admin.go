package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/choonlive/gig-platform/internal/repository"
	"github.com/choonlive/gig-platform/internal/workflow"
)

// AdminHandler is the back-office surface: venue request review, venue
// removal, gig moderation and operator grants.  Every operation passes
// through the engine, which re-checks the admin role itself; the route
// guard is just the first gate.
type AdminHandler struct {
	Engine   *workflow.Engine
	Requests *repository.VenueRequestRepo
	Gigs     *repository.GigRepo
}

func NewAdminHandler(e *workflow.Engine, requests *repository.VenueRequestRepo, gigs *repository.GigRepo) *AdminHandler {
	return &AdminHandler{Engine: e, Requests: requests, Gigs: gigs}
}

// PendingRequests lists venue requests awaiting review, oldest first.
func (h *AdminHandler) PendingRequests(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	out, err := h.Requests.ListPending(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"requests": out})
}

type reviewReq struct {
	Decision string `json:"decision"` // approve | reject
}

// ReviewRequest decides a pending venue request.  On approval the
// response reports how many blocked gigs the cascade released.
func (h *AdminHandler) ReviewRequest(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request id"})
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	out, err := h.Engine.ReviewVenueRequest(ctx, actor, id, req.Decision)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// RemoveVenue deletes a venue and cascades over its gigs and
// memberships.  The response reports the blast radius.
func (h *AdminHandler) RemoveVenue(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	out, err := h.Engine.RemoveVenue(ctx, actor, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type grantOperatorReq struct {
	UserID uint64 `json:"user_id"`
}

// GrantOperator gives a back-office account an explicit owner
// membership on a venue.
func (h *AdminHandler) GrantOperator(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	venueID := pathID(c, "id")
	if venueID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}
	var req grantOperatorReq
	if err := c.Bind(&req); err != nil || req.UserID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Engine.GrantPlatformOperator(ctx, actor, venueID, req.UserID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// FlaggedGigs lists gigs still carrying the review flag, oldest first.
func (h *AdminHandler) FlaggedGigs(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	out, err := h.Gigs.ListFlagged(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"gigs": out})
}

type setStatusReq struct {
	Status    string `json:"status"`
	AdminNote string `json:"admin_note"`
}

// SetGigStatus applies a moderation transition to a gig.
func (h *AdminHandler) SetGigStatus(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid gig id"})
	}
	var req setStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	gig, err := h.Engine.SetGigStatus(ctx, actor, id, req.Status, req.AdminNote)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, gig)
}

// DismissReview clears a gig's review flag without changing status.
func (h *AdminHandler) DismissReview(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid gig id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Engine.DismissGigReviewFlag(ctx, actor, id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveGig moves a gig to the terminal removed status.
func (h *AdminHandler) RemoveGig(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid gig id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Engine.RemoveGig(ctx, actor, id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
