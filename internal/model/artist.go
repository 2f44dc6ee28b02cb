package model

import "time"

// Artist is a performer profile from the `artists` table.  Ownership
// of a profile (CreatedByUserID) is what authorizes a user to act on
// the artist side of a partnership.
type Artist struct {
    ID              uint64    // artists.id
    DisplayName     string    // artists.display_name
    Instagram       string    // artists.instagram
    CreatedByUserID uint64    // artists.created_by_user_id
    CreatedAt       time.Time // artists.created_at
}
