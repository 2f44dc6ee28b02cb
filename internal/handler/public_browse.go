package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/choonlive/gig-platform/internal/model"
	"github.com/choonlive/gig-platform/internal/repository"
)

// PublicHandler is the unauthenticated browse surface.  It only ever
// shows approved venues and approved gigs; everything provisional,
// hidden or removed is invisible here no matter what id is probed.
type PublicHandler struct {
	VenueRepo *repository.VenueRepo
	GigRepo   *repository.GigRepo
}

func NewPublicHandler(venues *repository.VenueRepo, gigs *repository.GigRepo) *PublicHandler {
	return &PublicHandler{VenueRepo: venues, GigRepo: gigs}
}

// Venues lists every approved venue.
func (h *PublicHandler) Venues(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	out, err := h.VenueRepo.ListApproved(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"venues": out})
}

// Venue returns one approved venue; provisional venues 404 here.
func (h *PublicHandler) Venue(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v, err := h.VenueRepo.GetByID(ctx, id)
	if err != nil || !v.Approved {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, v)
}

// Gigs lists approved gigs at approved venues, filterable by venue,
// suburb and date range via query parameters.
func (h *PublicHandler) Gigs(c echo.Context) error {
	var f repository.PublicFilter
	if v := c.QueryParam("venue_id"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			f.VenueID = n
		}
	}
	f.Suburb = c.QueryParam("suburb")
	f.DateFrom = c.QueryParam("date_from")
	f.DateTo = c.QueryParam("date_to")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	out, err := h.GigRepo.ListPublic(ctx, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"gigs": out})
}

// Gig returns one gig, visible only while it is approved and its venue
// is approved.
func (h *PublicHandler) Gig(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid gig id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	g, err := h.GigRepo.GetByID(ctx, id)
	if err != nil || g.Status != model.GigApproved {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	v, err := h.VenueRepo.GetByID(ctx, g.VenueID)
	if err != nil || !v.Approved {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"gig": g, "venue": v})
}
