package model

import "time"

// Venue represents a live-music venue as stored in the `venues` table.
// A venue enters the system either pre-seeded by an admin with
// Approved=true, or as a provisional row (Approved=false) created
// alongside a pending VenueRequest.  Approved flips to true only
// through admin review; a rejected request leaves the provisional row
// in place, unapproved and never surfaced publicly.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name of the venue.
//  Address   – street address.
//  Suburb    – suburb or locality.
//  City      – city name.
//  State     – state or territory code.
//  Postcode  – postal code.
//  Lat, Lng  – coordinates used by the map UI; stored as-is.
//  Website   – optional website URL.
//  Instagram – optional Instagram handle.
//  Approved  – whether the venue is live and publicly listed.
//  CreatedAt – creation timestamp.
type Venue struct {
    ID        uint64    // venues.id
    Name      string    // venues.name
    Address   string    // venues.address
    Suburb    string    // venues.suburb
    City      string    // venues.city
    State     string    // venues.state
    Postcode  string    // venues.postcode
    Lat       float64   // venues.lat
    Lng       float64   // venues.lng
    Website   string    // venues.website
    Instagram string    // venues.instagram
    Approved  bool      // venues.approved
    CreatedAt time.Time // venues.created_at
}

// VenueMembership maps a venue_admin user to a venue they manage.
// Unique on (VenueID, UserID).  An approved membership is the sole
// fact establishing management rights over a venue in every
// authorization check.
type VenueMembership struct {
    ID        uint64    // venue_memberships.id
    VenueID   uint64    // venue_memberships.venue_id
    UserID    uint64    // venue_memberships.user_id
    Role      string    // venue_memberships.role (always "owner")
    Approved  bool      // venue_memberships.approved
    CreatedAt time.Time // venue_memberships.created_at
}

// MembershipRoleOwner is the only membership role currently issued.
const MembershipRoleOwner = "owner"
