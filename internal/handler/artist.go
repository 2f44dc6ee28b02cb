package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/choonlive/gig-platform/internal/model"
	"github.com/choonlive/gig-platform/internal/repository"
)

// ArtistHandler manages artist profiles.  A profile is the identity a
// partnership attaches to, distinct from the user account behind it.
type ArtistHandler struct {
	Artists *repository.ArtistRepo
}

func NewArtistHandler(artists *repository.ArtistRepo) *ArtistHandler {
	return &ArtistHandler{Artists: artists}
}

type artistReq struct {
	DisplayName string `json:"display_name"`
	Instagram   string `json:"instagram"`
}

// Create registers an artist profile owned by the caller.
func (h *ArtistHandler) Create(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req artistReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if req.DisplayName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "display_name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a := model.Artist{
		DisplayName:     req.DisplayName,
		Instagram:       strings.TrimSpace(req.Instagram),
		CreatedByUserID: actor.ID,
	}
	if err := h.Artists.Create(ctx, &a); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create artist failed"})
	}
	return c.JSON(http.StatusCreated, a)
}

// Get returns a single artist profile.
func (h *ArtistHandler) Get(c echo.Context) error {
	id := pathID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, a)
}

// List returns all artist profiles.
func (h *ArtistHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	out, err := h.Artists.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"artists": out})
}
