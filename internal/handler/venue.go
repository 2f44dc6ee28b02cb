package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/choonlive/gig-platform/internal/model"
	"github.com/choonlive/gig-platform/internal/repository"
	"github.com/choonlive/gig-platform/internal/workflow"
)

// VenueHandler covers the venue-admin side: submitting a venue for
// review and seeing the venues the caller manages.
type VenueHandler struct {
	Engine      *workflow.Engine
	Venues      *repository.VenueRepo
	Memberships *repository.MembershipRepo
}

func NewVenueHandler(e *workflow.Engine, venues *repository.VenueRepo, memberships *repository.MembershipRepo) *VenueHandler {
	return &VenueHandler{Engine: e, Venues: venues, Memberships: memberships}
}

type venueRequestReq struct {
	VenueName string  `json:"venue_name"`
	Address   string  `json:"address"`
	Suburb    string  `json:"suburb"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Postcode  string  `json:"postcode"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Website   string  `json:"website"`
	Instagram string  `json:"instagram"`
	Notes     string  `json:"notes"`
}

func (r venueRequestReq) toInput() workflow.VenueRequestInput {
	return workflow.VenueRequestInput{
		VenueName: r.VenueName,
		Address:   r.Address,
		Suburb:    r.Suburb,
		City:      r.City,
		State:     r.State,
		Postcode:  r.Postcode,
		Lat:       r.Lat,
		Lng:       r.Lng,
		Website:   r.Website,
		Instagram: r.Instagram,
		Notes:     r.Notes,
	}
}

// SubmitRequest files a venue for admin review.  The caller gets a
// provisional venue they can manage right away; it stays invisible to
// the public until approved.
func (h *VenueHandler) SubmitRequest(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req venueRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	out, err := h.Engine.SubmitVenueRequest(ctx, actor, req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// Mine lists the venues the caller holds an approved membership on,
// provisional ones included.
func (h *VenueHandler) Mine(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ids, err := h.Memberships.ListVenueIDsForUser(ctx, actor.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	venues := make([]model.Venue, 0, len(ids))
	for _, id := range ids {
		v, err := h.Venues.GetByID(ctx, id)
		if err != nil {
			continue // membership to a venue removed mid-flight
		}
		venues = append(venues, v)
	}
	return c.JSON(http.StatusOK, echo.Map{"venues": venues})
}
