package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/choonlive/gig-platform/internal/repository"
	"github.com/choonlive/gig-platform/internal/workflow"
)

// GigHandler exposes the gig lifecycle to artists and venue admins.
type GigHandler struct {
	Engine *workflow.Engine
	Gigs   *repository.GigRepo
}

func NewGigHandler(e *workflow.Engine, gigs *repository.GigRepo) *GigHandler {
	return &GigHandler{Engine: e, Gigs: gigs}
}

type gigReq struct {
	VenueID          uint64  `json:"venue_id"`
	ArtistName       string  `json:"artist_name"`
	ArtistID         *uint64 `json:"artist_id"`
	Date             string  `json:"date"`
	StartTime        string  `json:"start_time"`
	EndTime          string  `json:"end_time"`
	PriceType        string  `json:"price_type"`
	TicketPriceCents uint32  `json:"ticket_price_cents"`
	TicketURL        string  `json:"ticket_url"`
	Description      string  `json:"description"`
	Genres           string  `json:"genres"`
	VibeTags         string  `json:"vibe_tags"`
	PosterURL        string  `json:"poster_url"`
}

func (r gigReq) toInput() workflow.GigInput {
	return workflow.GigInput{
		VenueID:          r.VenueID,
		ArtistName:       r.ArtistName,
		ArtistID:         r.ArtistID,
		Date:             r.Date,
		StartTime:        r.StartTime,
		EndTime:          r.EndTime,
		PriceType:        r.PriceType,
		TicketPriceCents: r.TicketPriceCents,
		TicketURL:        r.TicketURL,
		Description:      r.Description,
		Genres:           r.Genres,
		VibeTags:         r.VibeTags,
		PosterURL:        r.PosterURL,
	}
}

// Create posts a new gig.  The status in the response tells the caller
// whether it went live immediately or is waiting on venue approval.
func (h *GigHandler) Create(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req gigReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	gig, err := h.Engine.CreateGig(ctx, actor, req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, gig)
}

// Update rewrites a gig's content fields; status and moderation state
// are untouched.
func (h *GigHandler) Update(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid gig id"})
	}
	var req gigReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	gig, err := h.Engine.EditGig(ctx, actor, id, req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, gig)
}

// Cancel pulls one of the caller's own gigs out of circulation.
func (h *GigHandler) Cancel(c echo.Context) error { return h.toggle(c, "cancel") }

// Resubmit revives a cancelled gig; its publish state is recomputed
// from the venue's current approval.
func (h *GigHandler) Resubmit(c echo.Context) error { return h.toggle(c, "resubmit") }

func (h *GigHandler) toggle(c echo.Context, action string) error {
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

	gig, err := h.Engine.CancelOrResubmitGig(ctx, actor, id, action)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, gig)
}

// Mine lists every gig the caller created, excluding removed ones.
func (h *GigHandler) Mine(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	gigs, err := h.Gigs.ListByCreator(ctx, actor.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"gigs": gigs})
}
