package repository

import (
	"context"
	"database/sql"

	"github.com/choonlive/gig-platform/internal/model"
)

// PartnershipRepo persists venue/artist partnerships.  The table is
// unique on (venue_id, artist_id); requesting is an upsert so a
// declined pair can be revived without ever growing a second row, and
// responding is conditional on status=pending so a stale response
// observes zero affected rows instead of clobbering a decision.
type PartnershipRepo struct{ DB *sql.DB }

func NewPartnershipRepo(db *sql.DB) *PartnershipRepo { return &PartnershipRepo{DB: db} }

const partnershipCols = "id,venue_id,artist_id,requested_by_user_id,requested_by_role,status,responded_at,created_at"

// UpsertRequest inserts a pending partnership for the pair, or resets
// an existing one (any state) back to pending with the new requester
// recorded and the response timestamp cleared.
func (r *PartnershipRepo) UpsertRequest(ctx context.Context, venueID, artistID, requestedBy uint64, role model.Role) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO partnerships (venue_id, artist_id, requested_by_user_id, requested_by_role, status)
		 VALUES (?,?,?,?,'pending')
		 ON DUPLICATE KEY UPDATE
		   requested_by_user_id=VALUES(requested_by_user_id),
		   requested_by_role=VALUES(requested_by_role),
		   status='pending',
		   responded_at=NULL`,
		venueID, artistID, requestedBy, string(role))
	return err
}

// GetByPair returns the single partnership for a (venue, artist)
// pair; sql.ErrNoRows when the pair has never been requested.
func (r *PartnershipRepo) GetByPair(ctx context.Context, venueID, artistID uint64) (model.Partnership, error) {
	return scanPartnership(r.DB.QueryRowContext(ctx,
		"SELECT "+partnershipCols+" FROM partnerships WHERE venue_id=? AND artist_id=?", venueID, artistID))
}

// GetByID returns a partnership by id; sql.ErrNoRows when absent.
func (r *PartnershipRepo) GetByID(ctx context.Context, id uint64) (model.Partnership, error) {
	return scanPartnership(r.DB.QueryRowContext(ctx,
		"SELECT "+partnershipCols+" FROM partnerships WHERE id=?", id))
}

// Respond stamps a decision onto a still-pending partnership.
// Returns false when it was no longer pending.
func (r *PartnershipRepo) Respond(ctx context.Context, id uint64, status model.PartnershipStatus) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE partnerships SET status=?, responded_at=NOW() WHERE id=? AND status='pending'",
		string(status), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListForVenue returns all partnerships on a venue, newest first.
func (r *PartnershipRepo) ListForVenue(ctx context.Context, venueID uint64) ([]model.Partnership, error) {
	return r.list(ctx, "SELECT "+partnershipCols+" FROM partnerships WHERE venue_id=? ORDER BY created_at DESC", venueID)
}

// ListForArtist returns all partnerships on an artist profile, newest first.
func (r *PartnershipRepo) ListForArtist(ctx context.Context, artistID uint64) ([]model.Partnership, error) {
	return r.list(ctx, "SELECT "+partnershipCols+" FROM partnerships WHERE artist_id=? ORDER BY created_at DESC", artistID)
}

func (r *PartnershipRepo) list(ctx context.Context, q string, args ...interface{}) ([]model.Partnership, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Partnership, 0)
	for rows.Next() {
		p, err := scanPartnershipFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPartnershipFrom(s rowScanner) (model.Partnership, error) {
	var p model.Partnership
	var role, status string
	var respondedAt sql.NullTime
	err := s.Scan(&p.ID, &p.VenueID, &p.ArtistID, &p.RequestedByUserID, &role, &status, &respondedAt, &p.CreatedAt)
	if err != nil {
		return model.Partnership{}, err
	}
	p.RequestedByRole = model.Role(role)
	p.Status = model.PartnershipStatus(status)
	if respondedAt.Valid {
		t := respondedAt.Time
		p.RespondedAt = &t
	}
	return p, nil
}

func scanPartnership(row *sql.Row) (model.Partnership, error) { return scanPartnershipFrom(row) }
