package workflow

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/choonlive/gig-platform/internal/guard"
	"github.com/choonlive/gig-platform/internal/model"
	"github.com/choonlive/gig-platform/internal/queue"
	queue_publisher "github.com/choonlive/gig-platform/internal/service"
)

// Fallback content applied when a submission leaves these blank, so a
// venue-submitted gig can publish before the details arrive.
const (
	fallbackGigDescription = "Details coming soon. This gig was submitted by the venue and will be updated shortly."
	fallbackPosterURL      = "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=1200"
)

// GigInput is the payload for CreateGig and EditGig.
type GigInput struct {
	VenueID          uint64
	ArtistName       string
	ArtistID         *uint64
	Date             string
	StartTime        string
	EndTime          string
	PriceType        string
	TicketPriceCents uint32
	TicketURL        string
	Description      string
	Genres           string // JSON array
	VibeTags         string // JSON array
	PosterURL        string
}

func (in *GigInput) validate() error {
	if in.VenueID == 0 {
		return invalid("venue_id", "is required")
	}
	if strings.TrimSpace(in.ArtistName) == "" {
		return invalid("artist_name", "is required")
	}
	if in.Date == "" {
		return invalid("date", "is required")
	}
	if in.StartTime == "" {
		return invalid("start_time", "is required")
	}
	pt, ok := model.ParsePriceType(in.PriceType)
	if !ok {
		return invalid("price_type", "must be Free, Door or Ticketed")
	}
	if pt == model.PriceFree {
		in.TicketPriceCents = 0
	}
	if in.Genres == "" {
		in.Genres = "[]"
	}
	if in.VibeTags == "" {
		in.VibeTags = "[]"
	}
	if strings.TrimSpace(in.Description) == "" {
		in.Description = fallbackGigDescription
	}
	if strings.TrimSpace(in.PosterURL) == "" {
		in.PosterURL = fallbackPosterURL
	}
	return nil
}

// CreateGig creates a listing.  The initial status is computed, never
// chosen by the caller: under an approved venue the gig publishes
// immediately with the review flag raised (publish-then-review);
// under a provisional venue it waits in pending_venue_approval for
// the approval cascade.
func (e *Engine) CreateGig(ctx context.Context, actor guard.Actor, in GigInput) (model.Gig, error) {
	// Authorization first, validation second, same as every other
	// facade method: a caller the guard denies learns nothing about
	// what a well-formed payload looks like.  The membership fact only
	// matters for venue admins, so nobody else costs a query.
	hasMembership := false
	if actor.Role == model.RoleVenueAdmin && in.VenueID != 0 {
		var err error
		hasMembership, err = e.Memberships.HasApproved(ctx, in.VenueID, actor.ID)
		if err != nil {
			return model.Gig{}, err
		}
	}
	if d := guard.CanPostGigForVenue(actor, hasMembership); !d.Allowed {
		return model.Gig{}, denied(d.Predicate)
	}
	if err := in.validate(); err != nil {
		return model.Gig{}, err
	}

	var gig model.Gig
	var venue model.Venue
	err := e.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		venue, err = e.Venues.GetByIDTx(ctx, tx, in.VenueID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		gig = model.Gig{
			VenueID:          in.VenueID,
			ArtistName:       strings.TrimSpace(in.ArtistName),
			ArtistID:         in.ArtistID,
			Date:             in.Date,
			StartTime:        in.StartTime,
			EndTime:          in.EndTime,
			PriceType:        model.PriceType(in.PriceType),
			TicketPrice:      in.TicketPriceCents,
			TicketURL:        in.TicketURL,
			Description:      in.Description,
			Genres:           in.Genres,
			VibeTags:         in.VibeTags,
			PosterURL:        in.PosterURL,
			Status:           model.InitialGigStatus(venue.Approved),
			CreatedByUserID:  actor.ID,
			NeedsReview:      true,
		}
		return e.Gigs.CreateTx(ctx, tx, &gig)
	})
	if err != nil {
		return model.Gig{}, err
	}

	if gig.Status == model.GigApproved {
		_ = queue_publisher.PublishGigPublished(ctx, queue.GigPublishedEvent{
			GigID:       gig.ID,
			VenueID:     venue.ID,
			VenueName:   venue.Name,
			ArtistName:  gig.ArtistName,
			Date:        gig.Date,
			StartTime:   gig.StartTime,
			NeedsReview: gig.NeedsReview,
			PublishedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}
	return gig, nil
}

// EditGig rewrites a gig's content fields.  Status, the review flag
// and any admin note are untouched; moderation owns those.
func (e *Engine) EditGig(ctx context.Context, actor guard.Actor, gigID uint64, in GigInput) (model.Gig, error) {
	gig, err := e.Gigs.GetByID(ctx, gigID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Gig{}, ErrNotFound
		}
		return model.Gig{}, err
	}
	hasMembership, err := e.Memberships.HasApproved(ctx, gig.VenueID, actor.ID)
	if err != nil {
		return model.Gig{}, err
	}
	if d := guard.CanEditGig(actor, gig.CreatedByUserID, hasMembership); !d.Allowed {
		return model.Gig{}, denied(d.Predicate)
	}
	in.VenueID = gig.VenueID // the venue is not editable
	if err := in.validate(); err != nil {
		return model.Gig{}, err
	}

	gig.ArtistName = strings.TrimSpace(in.ArtistName)
	gig.Date = in.Date
	gig.StartTime = in.StartTime
	gig.EndTime = in.EndTime
	gig.PriceType = model.PriceType(in.PriceType)
	gig.TicketPrice = in.TicketPriceCents
	gig.TicketURL = in.TicketURL
	gig.Description = in.Description
	gig.Genres = in.Genres
	gig.VibeTags = in.VibeTags
	gig.PosterURL = in.PosterURL
	if _, err := e.Gigs.UpdateContent(ctx, gig); err != nil {
		return model.Gig{}, err
	}
	return e.Gigs.GetByID(ctx, gigID)
}

// SetGigStatus applies an admin moderation transition.  The target
// must be a moderation status; info_requested additionally requires a
// non-empty note, rejected here before anything reaches the store.
// The write clears the review flag and refuses to touch a removed
// gig.  Racing moderation actions are last-writer-wins on status and
// note.
func (e *Engine) SetGigStatus(ctx context.Context, actor guard.Actor, gigID uint64, status, note string) (model.Gig, error) {
	if d := guard.IsAdmin(actor); !d.Allowed {
		return model.Gig{}, denied(d.Predicate)
	}
	target := model.GigStatus(status)
	if !target.ModerationTarget() {
		return model.Gig{}, invalid("status", "is not a moderation status")
	}
	if target.RequiresAdminNote() && strings.TrimSpace(note) == "" {
		return model.Gig{}, invalid("admin_note", "is required when requesting info")
	}

	err := e.withTx(ctx, func(tx *sql.Tx) error {
		n, err := e.Gigs.SetStatusTx(ctx, tx, gigID, target, note)
		if err != nil {
			return err
		}
		if n == 0 {
			gig, err := e.Gigs.GetByIDTx(ctx, tx, gigID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return ErrNotFound
				}
				return err
			}
			if gig.Status == model.GigRemoved {
				return ErrStaleState
			}
			// Identical repeat of the same moderation action; nothing
			// to change.
		}
		return nil
	})
	if err != nil {
		return model.Gig{}, err
	}
	return e.Gigs.GetByID(ctx, gigID)
}

// DismissGigReviewFlag clears needs_review without changing status.
// The flag is monotonic down: once any moderation action has touched
// the gig, nothing raises it again short of a fresh creation, so a
// repeat dismissal is simply a no-op success.
func (e *Engine) DismissGigReviewFlag(ctx context.Context, actor guard.Actor, gigID uint64) error {
	if d := guard.IsAdmin(actor); !d.Allowed {
		return denied(d.Predicate)
	}
	return e.withTx(ctx, func(tx *sql.Tx) error {
		n, err := e.Gigs.DismissReviewTx(ctx, tx, gigID)
		if err != nil {
			return err
		}
		if n == 0 {
			if _, err := e.Gigs.GetByIDTx(ctx, tx, gigID); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return ErrNotFound
				}
				return err
			}
		}
		return nil
	})
}

// RemoveGig moves a gig to the terminal removed status.  Any admin
// note already on the row is preserved.
func (e *Engine) RemoveGig(ctx context.Context, actor guard.Actor, gigID uint64) error {
	if d := guard.IsAdmin(actor); !d.Allowed {
		return denied(d.Predicate)
	}
	return e.withTx(ctx, func(tx *sql.Tx) error {
		n, err := e.Gigs.RemoveTx(ctx, tx, gigID)
		if err != nil {
			return err
		}
		if n == 0 {
			if _, err := e.Gigs.GetByIDTx(ctx, tx, gigID); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return ErrNotFound
				}
				return err
			}
			return ErrStaleState // already removed
		}
		return nil
	})
}

// CancelOrResubmitGig is the one status transition a non-admin may
// perform, scoped strictly to rows the actor created.  Cancel parks a
// live or waiting gig; resubmit recomputes the publish state from the
// venue's current approval, exactly like a fresh creation, except the
// review flag is left alone.
func (e *Engine) CancelOrResubmitGig(ctx context.Context, actor guard.Actor, gigID uint64, action string) (model.Gig, error) {
	if action != "cancel" && action != "resubmit" {
		return model.Gig{}, invalid("action", "must be cancel or resubmit")
	}
	gig, err := e.Gigs.GetByID(ctx, gigID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Gig{}, ErrNotFound
		}
		return model.Gig{}, err
	}
	if d := guard.CanCancelOrResubmitGig(actor, gig.CreatedByUserID); !d.Allowed {
		return model.Gig{}, denied(d.Predicate)
	}

	err = e.withTx(ctx, func(tx *sql.Tx) error {
		var from []model.GigStatus
		var to model.GigStatus
		if action == "cancel" {
			from = []model.GigStatus{model.GigApproved, model.GigPending, model.GigPendingVenueApproval}
			to = model.GigCancelled
		} else {
			venue, err := e.Venues.GetByIDTx(ctx, tx, gig.VenueID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return ErrInvariant // gig referencing a missing venue
				}
				return err
			}
			from = []model.GigStatus{model.GigCancelled}
			to = model.InitialGigStatus(venue.Approved)
		}
		n, err := e.Gigs.ToggleByCreatorTx(ctx, tx, gigID, actor.ID, from, to)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrStaleState
		}
		return nil
	})
	if err != nil {
		return model.Gig{}, err
	}
	return e.Gigs.GetByID(ctx, gigID)
}
