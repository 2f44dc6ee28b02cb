package router

import (
	"github.com/labstack/echo/v4"

	"github.com/choonlive/gig-platform/internal/handler"
	"github.com/choonlive/gig-platform/internal/middleware"
)

// RegisterMember registers the authenticated, non-admin surface.  The
// role middleware is only the first gate on these routes; the workflow
// engine re-derives authorization from the database on every call, so
// a stale or overly broad token never widens what an actor can do.
func RegisterMember(e *echo.Echo, g *handler.GigHandler, v *handler.VenueHandler, p *handler.PartnershipHandler, ar *handler.ArtistHandler, jwtSecret string) {
	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))

	// ---- Gigs ----
	creators := auth.Group("", middleware.RequireRole("artist", "venue_admin"))
	creators.POST("/gigs", g.Create)
	creators.PUT("/gigs/:id", g.Update)
	creators.PATCH("/gigs/:id", g.Update)
	creators.POST("/gigs/:id/cancel", g.Cancel)
	creators.POST("/gigs/:id/resubmit", g.Resubmit)
	creators.GET("/my/gigs", g.Mine)

	// ---- Venues ----
	venueAdmins := auth.Group("", middleware.RequireRole("venue_admin"))
	venueAdmins.POST("/venue-requests", v.SubmitRequest)
	venueAdmins.GET("/my/venues", v.Mine)

	// ---- Partnerships ----
	partners := auth.Group("", middleware.RequireRole("artist", "venue_admin"))
	partners.POST("/partnerships", p.Request)
	partners.POST("/partnerships/:id/respond", p.Respond)
	partners.GET("/venues/:id/partnerships", p.ForVenue)
	partners.GET("/artists/:id/partnerships", p.ForArtist)

	// ---- Artist profiles ----
	artists := auth.Group("", middleware.RequireRole("artist"))
	artists.POST("/artists", ar.Create)
}
