package repository

import (
	"context"
	"database/sql"
)

// MembershipRepo persists venue memberships.  A membership with
// approved=1 is the single fact every authorization check consults to
// decide "this user manages this venue".
type MembershipRepo struct{ DB *sql.DB }

func NewMembershipRepo(db *sql.DB) *MembershipRepo { return &MembershipRepo{DB: db} }

// HasApproved reports whether an approved membership exists for the
// (venue, user) pair.
func (r *MembershipRepo) HasApproved(ctx context.Context, venueID, userID uint64) (bool, error) {
	var id uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM venue_memberships WHERE venue_id=? AND user_id=? AND approved=1 LIMIT 1",
		venueID, userID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpsertApprovedOwnerTx grants (or re-grants) an approved owner
// membership.  Keyed on the (venue_id, user_id) unique constraint so
// repeated grants collapse onto the one row.
func (r *MembershipRepo) UpsertApprovedOwnerTx(ctx context.Context, tx *sql.Tx, venueID, userID uint64) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO venue_memberships (venue_id, user_id, role, approved) VALUES (?,?,?,1)
		 ON DUPLICATE KEY UPDATE role=VALUES(role), approved=1`,
		venueID, userID, "owner")
	return err
}

// DeleteByVenueTx removes every membership for a venue.  Only the
// venue removal cascade calls this, inside its transaction.
func (r *MembershipRepo) DeleteByVenueTx(ctx context.Context, tx *sql.Tx, venueID uint64) (int64, error) {
	res, err := tx.ExecContext(ctx, "DELETE FROM venue_memberships WHERE venue_id=?", venueID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListVenueIDsForUser returns the venues the user holds an approved
// membership on, for the venue-admin dashboard.
func (r *MembershipRepo) ListVenueIDsForUser(ctx context.Context, userID uint64) ([]uint64, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT venue_id FROM venue_memberships WHERE user_id=? AND approved=1 ORDER BY venue_id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := make([]uint64, 0)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
