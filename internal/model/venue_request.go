package model

import "time"

// VenueRequestStatus is the closed set of venue request states.
// Approved and rejected are terminal; an approved request's
// provisional venue becomes the live venue and the request is never
// reopened.
type VenueRequestStatus string

const (
    VenueRequestPending  VenueRequestStatus = "pending"
    VenueRequestApproved VenueRequestStatus = "approved"
    VenueRequestRejected VenueRequestStatus = "rejected"
)

// VenueRequest is a venue_admin's application to list a venue,
// stored in the `venue_requests` table.  Each request references the
// provisional venue row created with it.
//
// Fields:
//  ID                 – primary key identifier.
//  RequestedByUserID  – the venue_admin who submitted the request.
//  VenueName          – requested venue name (copied onto the venue at approval).
//  Address, Suburb, City, State, Postcode – address fields as submitted.
//  Website, Instagram – optional links as submitted.
//  Notes              – free-form notes for the reviewer.
//  ProvisionalVenueID – the unapproved venue row backing this request.
//  Status             – pending, approved or rejected.
//  ReviewedByUserID   – admin who decided the request (null while pending).
//  ReviewedAt         – decision timestamp (null while pending).
//  CreatedAt          – submission timestamp.
type VenueRequest struct {
    ID                 uint64             // venue_requests.id
    RequestedByUserID  uint64             // venue_requests.requested_by_user_id
    VenueName          string             // venue_requests.venue_name
    Address            string             // venue_requests.address
    Suburb             string             // venue_requests.suburb
    City               string             // venue_requests.city
    State              string             // venue_requests.state
    Postcode           string             // venue_requests.postcode
    Website            string             // venue_requests.website
    Instagram          string             // venue_requests.instagram
    Notes              string             // venue_requests.notes
    ProvisionalVenueID uint64             // venue_requests.provisional_venue_id
    Status             VenueRequestStatus // venue_requests.status
    ReviewedByUserID   *uint64            // venue_requests.reviewed_by_user_id (nullable)
    ReviewedAt         *time.Time         // venue_requests.reviewed_at (nullable)
    CreatedAt          time.Time          // venue_requests.created_at
}
