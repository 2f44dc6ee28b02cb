package workflow

import (
	"context"
	"database/sql"
	"errors"

	"github.com/choonlive/gig-platform/internal/guard"
	"github.com/choonlive/gig-platform/internal/model"
)

// partnershipFacts loads the relationship facts the guard needs for a
// given actor and pair: does the actor manage the venue side, and do
// they own the artist profile side.
func (e *Engine) partnershipFacts(ctx context.Context, actor guard.Actor, venueID, artistID uint64) (managesVenue, ownsArtist bool, err error) {
	if actor.Role == model.RoleVenueAdmin {
		managesVenue, err = e.Memberships.HasApproved(ctx, venueID, actor.ID)
		if err != nil {
			return false, false, err
		}
	}
	if actor.Role == model.RoleArtist {
		ownsArtist, err = e.Artists.IsOwnedBy(ctx, artistID, actor.ID)
		if err != nil {
			return false, false, err
		}
	}
	return managesVenue, ownsArtist, nil
}

// RequestPartnership asks for (or revives) a collaboration between a
// venue and an artist.  Either side may initiate.  The write is an
// upsert keyed on the pair, so a declined partnership comes back to
// pending on the same row; the pair never accumulates duplicates.
func (e *Engine) RequestPartnership(ctx context.Context, actor guard.Actor, venueID, artistID uint64) (model.Partnership, error) {
	if venueID == 0 {
		return model.Partnership{}, invalid("venue_id", "is required")
	}
	if artistID == 0 {
		return model.Partnership{}, invalid("artist_id", "is required")
	}
	managesVenue, ownsArtist, err := e.partnershipFacts(ctx, actor, venueID, artistID)
	if err != nil {
		return model.Partnership{}, err
	}
	if d := guard.CanActOnPartnership(actor, managesVenue, ownsArtist); !d.Allowed {
		return model.Partnership{}, denied(d.Predicate)
	}
	// Both sides of the pair must resolve before the upsert.
	if _, err := e.Venues.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Partnership{}, ErrNotFound
		}
		return model.Partnership{}, err
	}
	if _, err := e.Artists.GetByID(ctx, artistID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Partnership{}, ErrNotFound
		}
		return model.Partnership{}, err
	}
	if err := e.Partnerships.UpsertRequest(ctx, venueID, artistID, actor.ID, actor.Role); err != nil {
		return model.Partnership{}, err
	}
	// Read the row back through its pair; the upsert may have reused
	// an existing id rather than inserting.
	return e.Partnerships.GetByPair(ctx, venueID, artistID)
}

// RespondPartnership records the counter-party's decision on a
// pending request.  The requester cannot answer their own ask, and
// the status write is conditional on pending, so answering an
// already-decided partnership returns a stale-state outcome rather
// than silently overwriting it.
func (e *Engine) RespondPartnership(ctx context.Context, actor guard.Actor, partnershipID uint64, decision string) (model.Partnership, error) {
	status, ok := model.ParsePartnershipDecision(decision)
	if !ok {
		return model.Partnership{}, invalid("decision", "must be accept or decline")
	}
	p, err := e.Partnerships.GetByID(ctx, partnershipID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Partnership{}, ErrNotFound
		}
		return model.Partnership{}, err
	}
	// Only the side that did not make the request may answer it.
	if actor.Role == p.RequestedByRole {
		return model.Partnership{}, denied("canActOnPartnership")
	}
	managesVenue, ownsArtist, err := e.partnershipFacts(ctx, actor, p.VenueID, p.ArtistID)
	if err != nil {
		return model.Partnership{}, err
	}
	if d := guard.CanActOnPartnership(actor, managesVenue, ownsArtist); !d.Allowed {
		return model.Partnership{}, denied(d.Predicate)
	}
	okResp, err := e.Partnerships.Respond(ctx, partnershipID, status)
	if err != nil {
		return model.Partnership{}, err
	}
	if !okResp {
		return model.Partnership{}, ErrStaleState
	}
	return e.Partnerships.GetByID(ctx, partnershipID)
}
