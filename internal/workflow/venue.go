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

// Default coordinates used when a request does not carry its own.
// Geocoding accuracy is out of scope; the map UI recenters later.
const (
	defaultLat = -28.0167
	defaultLng = 153.4
)

// VenueRequestInput is the payload for SubmitVenueRequest.
type VenueRequestInput struct {
	VenueName string
	Address   string
	Suburb    string
	City      string
	State     string
	Postcode  string
	Lat       float64
	Lng       float64
	Website   string
	Instagram string
	Notes     string
}

// SubmitVenueRequest creates the provisional venue, the pre-approved
// self-membership and the pending request as one atomic unit: all
// three rows or none.  The requester can preview and manage the
// provisional venue immediately, but nothing is publicly visible
// until an admin approves.
func (e *Engine) SubmitVenueRequest(ctx context.Context, actor guard.Actor, in VenueRequestInput) (model.VenueRequest, error) {
	if d := guard.CanSubmitVenueRequest(actor); !d.Allowed {
		return model.VenueRequest{}, denied(d.Predicate)
	}
	in.VenueName = strings.TrimSpace(in.VenueName)
	if in.VenueName == "" {
		return model.VenueRequest{}, invalid("venue_name", "is required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return model.VenueRequest{}, invalid("address", "is required")
	}
	if in.City == "" {
		in.City = "Gold Coast"
	}
	if in.State == "" {
		in.State = "QLD"
	}
	if in.Lat == 0 && in.Lng == 0 {
		in.Lat, in.Lng = defaultLat, defaultLng
	}

	// One review in flight per ask: a second identical request while
	// the first is still pending is rejected up front.
	dup, err := e.Requests.HasPendingForRequester(ctx, actor.ID, in.VenueName)
	if err != nil {
		return model.VenueRequest{}, err
	}
	if dup {
		return model.VenueRequest{}, invalid("venue_name", "already has a pending request")
	}

	var out model.VenueRequest
	err = e.withTx(ctx, func(tx *sql.Tx) error {
		venue := model.Venue{
			Name: in.VenueName, Address: in.Address, Suburb: in.Suburb,
			City: in.City, State: in.State, Postcode: in.Postcode,
			Lat: in.Lat, Lng: in.Lng, Website: in.Website, Instagram: in.Instagram,
		}
		if err := e.Venues.CreateProvisionalTx(ctx, tx, &venue); err != nil {
			return err
		}
		if err := e.Memberships.UpsertApprovedOwnerTx(ctx, tx, venue.ID, actor.ID); err != nil {
			return err
		}
		out = model.VenueRequest{
			RequestedByUserID:  actor.ID,
			VenueName:          in.VenueName,
			Address:            in.Address,
			Suburb:             in.Suburb,
			City:               in.City,
			State:              in.State,
			Postcode:           in.Postcode,
			Website:            in.Website,
			Instagram:          in.Instagram,
			Notes:              in.Notes,
			ProvisionalVenueID: venue.ID,
		}
		return e.Requests.CreateTx(ctx, tx, &out)
	})
	if err != nil {
		return model.VenueRequest{}, err
	}
	return out, nil
}

// ReviewResult reports what a venue request review did.
type ReviewResult struct {
	RequestID    uint64
	Decision     model.VenueRequestStatus
	VenueID      uint64
	CascadedGigs int64
}

// ReviewVenueRequest decides a pending request.  Approval runs the
// full cascade in one transaction: flip the provisional venue live,
// re-grant the requester's membership, release every gig blocked on
// the venue, stamp the request.  The decision write is conditional on
// status=pending, so of two racing reviews exactly one wins and the
// other returns a stale-state outcome.
func (e *Engine) ReviewVenueRequest(ctx context.Context, actor guard.Actor, requestID uint64, decision string) (ReviewResult, error) {
	if d := guard.IsAdmin(actor); !d.Allowed {
		return ReviewResult{}, denied(d.Predicate)
	}
	var target model.VenueRequestStatus
	switch decision {
	case "approve", "approved":
		target = model.VenueRequestApproved
	case "reject", "rejected":
		target = model.VenueRequestRejected
	default:
		return ReviewResult{}, invalid("decision", "must be approve or reject")
	}

	var out ReviewResult
	err := e.withTx(ctx, func(tx *sql.Tx) error {
		req, err := e.Requests.GetByIDTx(ctx, tx, requestID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		ok, err := e.Requests.MarkReviewedTx(ctx, tx, requestID, target, actor.ID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrStaleState
		}
		out = ReviewResult{RequestID: requestID, Decision: target, VenueID: req.ProvisionalVenueID}
		if target == model.VenueRequestRejected {
			// The provisional venue stays unapproved and invisible; it
			// is kept as a historical trace, not deleted.
			return nil
		}
		n, err := e.Venues.ApproveTx(ctx, tx, req.ProvisionalVenueID, req)
		if err != nil {
			return err
		}
		if n == 0 {
			// A pending request must reference an existing provisional
			// venue; abort the whole approval.
			return ErrInvariant
		}
		if err := e.Memberships.UpsertApprovedOwnerTx(ctx, tx, req.ProvisionalVenueID, req.RequestedByUserID); err != nil {
			return err
		}
		out.CascadedGigs, err = e.Gigs.CascadeApproveByVenueTx(ctx, tx, req.ProvisionalVenueID)
		return err
	})
	if err != nil {
		return ReviewResult{}, err
	}

	if out.Decision == model.VenueRequestApproved {
		req, rerr := e.Requests.GetByID(ctx, requestID)
		if rerr == nil {
			_ = queue_publisher.PublishVenueApproved(ctx, queue.VenueApprovedEvent{
				RequestID:    out.RequestID,
				VenueID:      out.VenueID,
				VenueName:    req.VenueName,
				RequestedBy:  req.RequestedByUserID,
				ReviewedBy:   actor.ID,
				CascadedGigs: out.CascadedGigs,
				ApprovedAt:   time.Now().UTC().Format(time.RFC3339),
			})
		}
	}
	return out, nil
}

// RemoveVenueResult reports the blast radius of a venue removal.
type RemoveVenueResult struct {
	VenueID            uint64
	RemovedGigs        int64
	DeletedMemberships int64
}

// RemoveVenue is the one irreversible, fully cascading admin action:
// every non-removed gig under the venue goes to removed, every
// membership is deleted, then the venue row itself.  All inside one
// transaction so a crash can never leave memberships pointing at a
// deleted venue.
func (e *Engine) RemoveVenue(ctx context.Context, actor guard.Actor, venueID uint64) (RemoveVenueResult, error) {
	if d := guard.IsAdmin(actor); !d.Allowed {
		return RemoveVenueResult{}, denied(d.Predicate)
	}
	var out RemoveVenueResult
	err := e.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := e.Venues.GetByIDTx(ctx, tx, venueID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		var err error
		out.VenueID = venueID
		if out.RemovedGigs, err = e.Gigs.CascadeRemoveByVenueTx(ctx, tx, venueID); err != nil {
			return err
		}
		if out.DeletedMemberships, err = e.Memberships.DeleteByVenueTx(ctx, tx, venueID); err != nil {
			return err
		}
		n, err := e.Venues.DeleteTx(ctx, tx, venueID)
		if err != nil {
			return err
		}
		if n == 0 {
			// Read above saw the row; a concurrent removal beat us.
			return ErrStaleState
		}
		return nil
	})
	if err != nil {
		return RemoveVenueResult{}, err
	}
	return out, nil
}

// GrantPlatformOperator gives a back-office account an explicit,
// auditable owner membership on a venue.  Nothing grants this
// implicitly any more; it is its own admin action so its presence or
// absence can be asserted directly.
func (e *Engine) GrantPlatformOperator(ctx context.Context, actor guard.Actor, venueID, userID uint64) error {
	if d := guard.IsAdmin(actor); !d.Allowed {
		return denied(d.Predicate)
	}
	if _, err := e.Venues.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return e.withTx(ctx, func(tx *sql.Tx) error {
		return e.Memberships.UpsertApprovedOwnerTx(ctx, tx, venueID, userID)
	})
}
