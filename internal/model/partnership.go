package model

import "time"

// PartnershipStatus is the closed set of partnership states.  Unlike
// gig states, declined is re-enterable: either side can revive a
// declined partnership back to pending.
type PartnershipStatus string

const (
    PartnershipPending  PartnershipStatus = "pending"
    PartnershipAccepted PartnershipStatus = "accepted"
    PartnershipDeclined PartnershipStatus = "declined"
)

// Partnership is a collaboration relation between one venue and one
// artist, stored in the `partnerships` table and unique on
// (VenueID, ArtistID).  Re-requesting after a decline overwrites the
// existing row back to pending rather than inserting a second one, so
// the pair always has exactly one relationship record.
//
// Fields:
//  ID                – primary key identifier.
//  VenueID           – venue side of the pair.
//  ArtistID          – artist profile side of the pair.
//  RequestedByUserID – user who made (or last re-made) the request.
//  RequestedByRole   – role of the requester (artist or venue_admin).
//  Status            – pending, accepted or declined.
//  RespondedAt       – decision timestamp; cleared on re-request.
//  CreatedAt         – first request timestamp.
type Partnership struct {
    ID                uint64            // partnerships.id
    VenueID           uint64            // partnerships.venue_id
    ArtistID          uint64            // partnerships.artist_id
    RequestedByUserID uint64            // partnerships.requested_by_user_id
    RequestedByRole   Role              // partnerships.requested_by_role
    Status            PartnershipStatus // partnerships.status
    RespondedAt       *time.Time        // partnerships.responded_at (nullable)
    CreatedAt         time.Time         // partnerships.created_at
}

// ParsePartnershipDecision maps a response payload onto the terminal
// status it produces.  Both the verb and the state name are accepted
// because both appear in caller forms.
func ParsePartnershipDecision(s string) (PartnershipStatus, bool) {
    switch s {
    case "accept", "accepted":
        return PartnershipAccepted, true
    case "decline", "declined":
        return PartnershipDeclined, true
    }
    return "", false
}
