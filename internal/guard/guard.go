// Package guard holds the authorization predicates for every workflow
// transition.  The predicates are pure: they never touch the database
// themselves but take the relationship facts (membership, ownership)
// already loaded by the caller.  Each predicate returns a Decision
// carrying its own name so denials can be logged and surfaced as a
// typed unauthorized outcome without leaking which fact failed.
package guard

import "github.com/choonlive/gig-platform/internal/model"

// Actor is the resolved identity a predicate judges: who is acting
// and with which role.
type Actor struct {
    ID   uint64
    Role model.Role
}

// Decision is the outcome of one predicate evaluation.
type Decision struct {
    Allowed   bool
    Predicate string
}

func allow(name string) Decision { return Decision{Allowed: true, Predicate: name} }
func deny(name string) Decision  { return Decision{Allowed: false, Predicate: name} }

// CanPostGigForVenue decides whether the actor may create a gig under
// the given venue.  Artists may post anywhere; a venue_admin needs an
// approved membership on the target venue.  Admins moderate, they do
// not author, so they are denied here like everyone else.
func CanPostGigForVenue(actor Actor, hasApprovedMembership bool) Decision {
    const name = "canPostGigForVenue"
    switch actor.Role {
    case model.RoleArtist:
        return allow(name)
    case model.RoleVenueAdmin:
        if hasApprovedMembership {
            return allow(name)
        }
        return deny(name)
    case model.RoleFan, model.RoleAdmin:
        return deny(name)
    }
    return deny(name)
}

// CanEditGig decides whether the actor may rewrite a gig's content
// fields.  The creator always may; a venue_admin with an approved
// membership on the gig's venue may as well.  Admin edits go through
// the moderation predicates instead.
func CanEditGig(actor Actor, createdByUserID uint64, hasApprovedMembership bool) Decision {
    const name = "canEditGig"
    if actor.ID == createdByUserID {
        return allow(name)
    }
    switch actor.Role {
    case model.RoleVenueAdmin:
        if hasApprovedMembership {
            return allow(name)
        }
        return deny(name)
    case model.RoleFan, model.RoleArtist, model.RoleAdmin:
        return deny(name)
    }
    return deny(name)
}

// CanCancelOrResubmitGig gates the only status transition a non-admin
// may perform.  It is scoped strictly to rows the actor created.
func CanCancelOrResubmitGig(actor Actor, createdByUserID uint64) Decision {
    const name = "canCancelOrResubmitGig"
    if actor.ID == createdByUserID {
        return allow(name)
    }
    return deny(name)
}

// CanSubmitVenueRequest decides whether the actor may ask to list a
// venue.  Only venue_admin accounts submit requests; admins create
// venues directly rather than through review.
func CanSubmitVenueRequest(actor Actor) Decision {
    const name = "canSubmitVenueRequest"
    switch actor.Role {
    case model.RoleVenueAdmin:
        return allow(name)
    case model.RoleFan, model.RoleArtist, model.RoleAdmin:
        return deny(name)
    }
    return deny(name)
}

// CanManageVenue decides whether the actor manages the venue.  An
// approved membership is the sole basis; role alone grants nothing.
func CanManageVenue(actor Actor, hasApprovedMembership bool) Decision {
    const name = "canManageVenue"
    if hasApprovedMembership {
        return allow(name)
    }
    return deny(name)
}

// CanActOnPartnership decides whether the actor sits on either side
// of a partnership pair: managing the venue side, or owning the
// artist profile on the artist side.
func CanActOnPartnership(actor Actor, managesVenue, ownsArtistProfile bool) Decision {
    const name = "canActOnPartnership"
    switch actor.Role {
    case model.RoleVenueAdmin:
        if managesVenue {
            return allow(name)
        }
        return deny(name)
    case model.RoleArtist:
        if ownsArtistProfile {
            return allow(name)
        }
        return deny(name)
    case model.RoleFan, model.RoleAdmin:
        return deny(name)
    }
    return deny(name)
}

// IsAdmin gates every moderation and venue-request review transition.
func IsAdmin(actor Actor) Decision {
    const name = "isAdmin"
    switch actor.Role {
    case model.RoleAdmin:
        return allow(name)
    case model.RoleFan, model.RoleArtist, model.RoleVenueAdmin:
        return deny(name)
    }
    return deny(name)
}
