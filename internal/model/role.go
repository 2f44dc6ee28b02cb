package model

// Role is the closed set of account roles.  Roles are assigned at
// registration and never change afterwards; there is no role-change
// operation anywhere in the system.  Authorization code must switch
// exhaustively over these values so that an unknown role can never
// slip past a check.
type Role string

const (
    RoleFan        Role = "fan"         // consumer account, browse only
    RoleArtist     Role = "artist"      // may post gigs and own artist profiles
    RoleVenueAdmin Role = "venue_admin" // manages venues through approved memberships
    RoleAdmin      Role = "admin"       // platform moderator; seeded, never self-assigned
)

// ParseRole maps a raw string onto a Role.  The legacy value "user" is
// accepted as an alias for fan because older accounts were created with
// it.  The boolean result is false for anything outside the closed set.
func ParseRole(s string) (Role, bool) {
    switch s {
    case "fan", "user":
        return RoleFan, true
    case "artist":
        return RoleArtist, true
    case "venue_admin":
        return RoleVenueAdmin, true
    case "admin":
        return RoleAdmin, true
    }
    return "", false
}

// Registerable reports whether a role may be chosen at self-registration.
// Admin accounts are seeded out of band.
func (r Role) Registerable() bool {
    switch r {
    case RoleFan, RoleArtist, RoleVenueAdmin:
        return true
    case RoleAdmin:
        return false
    }
    return false
}

func (r Role) String() string { return string(r) }
