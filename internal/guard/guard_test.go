package guard

import (
    "testing"

    "github.com/choonlive/gig-platform/internal/model"
)

func TestCanPostGigForVenue(t *testing.T) {
    cases := []struct {
        name       string
        role       model.Role
        membership bool
        want       bool
    }{
        {"artist posts anywhere", model.RoleArtist, false, true},
        {"venue admin with approved membership", model.RoleVenueAdmin, true, true},
        {"venue admin without membership", model.RoleVenueAdmin, false, false},
        {"fan never posts", model.RoleFan, true, false},
        {"admin never authors", model.RoleAdmin, true, false},
        {"unknown role denied", model.Role("superuser"), true, false},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            d := CanPostGigForVenue(Actor{ID: 1, Role: tc.role}, tc.membership)
            if d.Allowed != tc.want {
                t.Errorf("allowed = %v, want %v", d.Allowed, tc.want)
            }
            if d.Predicate != "canPostGigForVenue" {
                t.Errorf("predicate = %q", d.Predicate)
            }
        })
    }
}

func TestCanEditGig(t *testing.T) {
    cases := []struct {
        name       string
        actor      Actor
        createdBy  uint64
        membership bool
        want       bool
    }{
        {"creator edits own gig", Actor{ID: 5, Role: model.RoleArtist}, 5, false, true},
        {"fan creator still edits own row", Actor{ID: 5, Role: model.RoleFan}, 5, false, true},
        {"venue admin with membership edits", Actor{ID: 9, Role: model.RoleVenueAdmin}, 5, true, true},
        {"venue admin without membership denied", Actor{ID: 9, Role: model.RoleVenueAdmin}, 5, false, false},
        {"other artist denied", Actor{ID: 9, Role: model.RoleArtist}, 5, false, false},
        {"admin uses moderation path, not edit", Actor{ID: 9, Role: model.RoleAdmin}, 5, true, false},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            d := CanEditGig(tc.actor, tc.createdBy, tc.membership)
            if d.Allowed != tc.want {
                t.Errorf("allowed = %v, want %v", d.Allowed, tc.want)
            }
        })
    }
}

func TestCanCancelOrResubmitGig(t *testing.T) {
    if d := CanCancelOrResubmitGig(Actor{ID: 3, Role: model.RoleArtist}, 3); !d.Allowed {
        t.Errorf("creator should cancel own gig")
    }
    if d := CanCancelOrResubmitGig(Actor{ID: 4, Role: model.RoleAdmin}, 3); d.Allowed {
        t.Errorf("non-creator must not use the self-service loop")
    }
}

func TestCanManageVenue(t *testing.T) {
    // Membership is the sole basis: even an admin without one is denied here.
    if d := CanManageVenue(Actor{ID: 1, Role: model.RoleAdmin}, false); d.Allowed {
        t.Errorf("role alone must not grant management")
    }
    if d := CanManageVenue(Actor{ID: 1, Role: model.RoleVenueAdmin}, true); !d.Allowed {
        t.Errorf("approved membership must grant management")
    }
}

func TestCanActOnPartnership(t *testing.T) {
    cases := []struct {
        name         string
        role         model.Role
        managesVenue bool
        ownsArtist   bool
        want         bool
    }{
        {"venue admin managing venue side", model.RoleVenueAdmin, true, false, true},
        {"venue admin without venue", model.RoleVenueAdmin, false, true, false},
        {"artist owning profile", model.RoleArtist, false, true, true},
        {"artist without profile", model.RoleArtist, true, false, false},
        {"fan denied", model.RoleFan, true, true, false},
        {"admin denied", model.RoleAdmin, true, true, false},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            d := CanActOnPartnership(Actor{ID: 2, Role: tc.role}, tc.managesVenue, tc.ownsArtist)
            if d.Allowed != tc.want {
                t.Errorf("allowed = %v, want %v", d.Allowed, tc.want)
            }
        })
    }
}

func TestIsAdmin(t *testing.T) {
    for _, role := range []model.Role{model.RoleFan, model.RoleArtist, model.RoleVenueAdmin} {
        if d := IsAdmin(Actor{ID: 1, Role: role}); d.Allowed {
            t.Errorf("role %s must not pass isAdmin", role)
        }
    }
    if d := IsAdmin(Actor{ID: 1, Role: model.RoleAdmin}); !d.Allowed {
        t.Errorf("admin must pass isAdmin")
    }
    if d := IsAdmin(Actor{ID: 1, Role: model.Role("moderator")}); d.Allowed {
        t.Errorf("unknown role must not pass isAdmin")
    }
}
