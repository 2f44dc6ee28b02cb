package model

import "time"

// GigStatus is the closed set of gig lifecycle states.  Removed is
// terminal and excludes the gig from every public listing.  Cancelled
// is the creator-side parked state reachable only through the
// self-service cancel/resubmit loop.
type GigStatus string

const (
    GigPending              GigStatus = "pending"
    GigPendingVenueApproval GigStatus = "pending_venue_approval"
    GigApproved             GigStatus = "approved"
    GigOnHold               GigStatus = "on_hold"
    GigInfoRequested        GigStatus = "info_requested"
    GigHidden               GigStatus = "hidden"
    GigRemoved              GigStatus = "removed"
    GigCancelled            GigStatus = "cancelled"
)

// PriceType is the closed set of ticket pricing modes.
type PriceType string

const (
    PriceFree     PriceType = "Free"
    PriceDoor     PriceType = "Door"
    PriceTicketed PriceType = "Ticketed"
)

// ParsePriceType validates a raw pricing mode string.
func ParsePriceType(s string) (PriceType, bool) {
    switch s {
    case "Free":
        return PriceFree, true
    case "Door":
        return PriceDoor, true
    case "Ticketed":
        return PriceTicketed, true
    }
    return "", false
}

// Gig is an event listing as stored in the `gigs` table.
//
// Fields:
//  ID              – primary key identifier.
//  VenueID         – the venue hosting the gig (must exist).
//  ArtistName      – free-text performer name shown on the listing.
//  ArtistID        – optional link to a registered artist profile.
//  Date            – event date (YYYY-MM-DD).
//  StartTime       – start time (HH:MM).
//  EndTime         – optional end time.
//  PriceType       – Free, Door or Ticketed.
//  TicketPrice     – price in cents; zero when PriceType is Free.
//  TicketURL       – optional ticketing link.
//  Description     – listing body text.
//  Genres          – JSON-encoded genre tags.
//  VibeTags        – JSON-encoded vibe tags.
//  PosterURL       – poster image URL.
//  Status          – lifecycle state; see GigStatus.
//  NeedsReview     – transient publish-then-review marker, cleared by
//                    the first admin moderation action and never set
//                    back to true except at creation.
//  AdminNote       – moderator note attached on status transitions.
//  CreatedByUserID – the artist or venue_admin who created the gig.
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type Gig struct {
    ID              uint64    // gigs.id
    VenueID         uint64    // gigs.venue_id
    ArtistName      string    // gigs.artist_name
    ArtistID        *uint64   // gigs.artist_id (nullable)
    Date            string    // gigs.date
    StartTime       string    // gigs.start_time
    EndTime         string    // gigs.end_time
    PriceType       PriceType // gigs.price_type
    TicketPrice     uint32    // gigs.ticket_price_cents
    TicketURL       string    // gigs.ticket_url
    Description     string    // gigs.description
    Genres          string    // gigs.genres (JSON array)
    VibeTags        string    // gigs.vibe_tags (JSON array)
    PosterURL       string    // gigs.poster_url
    Status          GigStatus // gigs.status
    NeedsReview     bool      // gigs.needs_review
    AdminNote       string    // gigs.admin_note
    CreatedByUserID uint64    // gigs.created_by_user_id
    CreatedAt       time.Time // gigs.created_at
    UpdatedAt       time.Time // gigs.updated_at
}

// InitialGigStatus computes the status a freshly created gig starts
// in.  The caller never chooses it: a gig under an already-approved
// venue publishes immediately (and is flagged for a first moderation
// pass), while a gig under a provisional venue waits for the venue
// approval cascade.
func InitialGigStatus(venueApproved bool) GigStatus {
    if venueApproved {
        return GigApproved
    }
    return GigPendingVenueApproval
}

// ModerationTarget reports whether an admin may set this status
// through the set-status moderation action.  Terminal and creator-side
// states are reached through their own operations.
func (s GigStatus) ModerationTarget() bool {
    switch s {
    case GigApproved, GigHidden, GigOnHold, GigInfoRequested, GigRemoved:
        return true
    }
    return false
}

// RequiresAdminNote reports whether a moderation transition to this
// status must carry a non-empty admin note.  Requesting more
// information without saying what is missing is rejected before it
// reaches the store.
func (s GigStatus) RequiresAdminNote() bool { return s == GigInfoRequested }

// CanCancel reports whether the creator may park a gig currently in
// the given state.  Moderation states and terminal states stay under
// admin control.
func (s GigStatus) CanCancel() bool {
    switch s {
    case GigApproved, GigPending, GigPendingVenueApproval:
        return true
    }
    return false
}

// CanResubmit reports whether the creator may bring a gig back from
// the parked state.
func (s GigStatus) CanResubmit() bool { return s == GigCancelled }
