package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/choonlive/gig-platform/internal/config"
	"github.com/choonlive/gig-platform/internal/database"
	"github.com/choonlive/gig-platform/internal/handler"
	"github.com/choonlive/gig-platform/internal/middleware"
	"github.com/choonlive/gig-platform/internal/queue"
	"github.com/choonlive/gig-platform/internal/repository"
	"github.com/choonlive/gig-platform/internal/router"
	"github.com/choonlive/gig-platform/internal/workflow"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Repositories.
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	venues := repository.NewVenueRepo(db)
	memberships := repository.NewMembershipRepo(db)
	requests := repository.NewVenueRequestRepo(db)
	gigs := repository.NewGigRepo(db)
	partnerships := repository.NewPartnershipRepo(db)
	artists := repository.NewArtistRepo(db)

	engine := workflow.NewEngine(db, venues, memberships, requests, gigs, partnerships, artists)

	// Redis is optional: when unreachable, caching and rate limiting
	// simply switch off and the API runs uncached and unthrottled.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Moderation audit trail consumer; reconnects on its own.
	go func() {
		if err := queue.StartAuditConsumer(); err != nil {
			log.Printf("audit consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(rateMW)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens, engine), cfg.JWTSecret)
	router.RegisterPublic(e, handler.NewPublicHandler(venues, gigs), handler.NewArtistHandler(artists), cacheMW)
	router.RegisterMember(e,
		handler.NewGigHandler(engine, gigs),
		handler.NewVenueHandler(engine, venues, memberships),
		handler.NewPartnershipHandler(engine, partnerships),
		handler.NewArtistHandler(artists),
		cfg.JWTSecret,
	)
	router.RegisterAdmin(e, handler.NewAdminHandler(engine, requests, gigs), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
