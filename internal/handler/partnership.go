package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/choonlive/gig-platform/internal/repository"
	"github.com/choonlive/gig-platform/internal/workflow"
)

// PartnershipHandler covers collaboration requests between venues and
// artist profiles; either side may initiate or answer.
type PartnershipHandler struct {
	Engine       *workflow.Engine
	Partnerships *repository.PartnershipRepo
}

func NewPartnershipHandler(e *workflow.Engine, partnerships *repository.PartnershipRepo) *PartnershipHandler {
	return &PartnershipHandler{Engine: e, Partnerships: partnerships}
}

type partnershipReq struct {
	VenueID  uint64 `json:"venue_id"`
	ArtistID uint64 `json:"artist_id"`
}
type partnershipRespondReq struct {
	Decision string `json:"decision"` // accept | decline
}

// Request asks for (or revives) a partnership on a pair.
func (h *PartnershipHandler) Request(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req partnershipReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Engine.RequestPartnership(ctx, actor, req.VenueID, req.ArtistID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// Respond records the counter-party's accept or decline.
func (h *PartnershipHandler) Respond(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid partnership id"})
	}
	var req partnershipRespondReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Engine.RespondPartnership(ctx, actor, id, req.Decision)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// ForVenue lists every partnership on a venue.
func (h *PartnershipHandler) ForVenue(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	out, err := h.Partnerships.ListForVenue(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"partnerships": out})
}

// ForArtist lists every partnership on an artist profile.
func (h *PartnershipHandler) ForArtist(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	out, err := h.Partnerships.ListForArtist(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"partnerships": out})
}
