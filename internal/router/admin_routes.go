package router

import (
	"github.com/labstack/echo/v4"

	"github.com/choonlive/gig-platform/internal/handler"
	"github.com/choonlive/gig-platform/internal/middleware"
)

// RegisterAdmin registers the back-office surface under /v1/admin.
// All routes require a valid JWT with the admin role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("admin"),
	)

	// ---- Venue requests ----
	g.GET("/venue-requests", a.PendingRequests)
	g.POST("/venue-requests/:id/review", a.ReviewRequest)

	// ---- Venues ----
	g.DELETE("/venues/:id", a.RemoveVenue)
	g.POST("/venues/:id/operators", a.GrantOperator)

	// ---- Gig moderation ----
	g.GET("/gigs/flagged", a.FlaggedGigs)
	g.POST("/gigs/:id/status", a.SetGigStatus)
	g.POST("/gigs/:id/dismiss-review", a.DismissReview)
	g.DELETE("/gigs/:id", a.RemoveGig)
}
