package router

import (
	"github.com/labstack/echo/v4"

	"github.com/choonlive/gig-platform/internal/handler"
	"github.com/choonlive/gig-platform/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth wires the authentication endpoints.  Register, login and
// refresh live under /v1/auth without a session; /v1/me requires one.
// Logout is reachable both ways: with a refresh token in the body it
// needs no JWT, authenticated it revokes every session.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	auth.POST("/logout", a.Logout)
}

// RegisterPublic registers the unauthenticated browse surface.  The
// optional cache middleware (nil to disable) fronts these read-only
// endpoints only; nothing authenticated is ever cached.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, ar *handler.ArtistHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")
	if cache != nil {
		g.Use(cache)
	}
	g.GET("/venues", p.Venues)
	g.GET("/venues/:id", p.Venue)
	g.GET("/gigs", p.Gigs)
	g.GET("/gigs/:id", p.Gig)
	g.GET("/artists", ar.List)
	g.GET("/artists/:id", ar.Get)
}
