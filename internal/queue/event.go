// Package queue defines message payloads exchanged over the message broker.
package queue

// VenueApprovedQueue and GigPublishedQueue are the durable queues the
// publisher writes to and the audit consumer reads from.
const (
    VenueApprovedQueue = "venue.approved"
    GigPublishedQueue  = "gig.published"
)

// VenueApprovedEvent is published when an admin approves a venue
// request.  It carries enough for downstream consumers to log or
// notify without querying the primary database, including how many
// blocked gigs the approval cascade released.
type VenueApprovedEvent struct {
    RequestID     uint64 `json:"request_id"`
    VenueID       uint64 `json:"venue_id"`
    VenueName     string `json:"venue_name"`
    RequestedBy   uint64 `json:"requested_by_user_id"`
    ReviewedBy    uint64 `json:"reviewed_by_user_id"`
    CascadedGigs  int64  `json:"cascaded_gigs"`
    ApprovedAt    string `json:"approved_at"`
}

// GigPublishedEvent is published when a gig goes live immediately at
// creation under an approved venue.  Gigs released later by a venue
// approval are not announced one by one; that batch is reported as
// VenueApprovedEvent.CascadedGigs.
type GigPublishedEvent struct {
    GigID       uint64 `json:"gig_id"`
    VenueID     uint64 `json:"venue_id"`
    VenueName   string `json:"venue_name"`
    ArtistName  string `json:"artist_name"`
    Date        string `json:"date"`
    StartTime   string `json:"start_time"`
    NeedsReview bool   `json:"needs_review"`
    PublishedAt string `json:"published_at"`
}
