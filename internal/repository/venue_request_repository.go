package repository

import (
	"context"
	"database/sql"

	"github.com/choonlive/gig-platform/internal/model"
)

// VenueRequestRepo persists venue listing requests.  The review
// decision is written as a conditional update gated on status=pending
// so two concurrent reviews of the same request can never both
// succeed: the loser observes zero affected rows.
type VenueRequestRepo struct{ DB *sql.DB }

func NewVenueRequestRepo(db *sql.DB) *VenueRequestRepo { return &VenueRequestRepo{DB: db} }

const requestCols = `id,requested_by_user_id,venue_name,address,suburb,city,state,postcode,
	website,instagram,notes,provisional_venue_id,status,reviewed_by_user_id,reviewed_at,created_at`

// CreateTx inserts a pending request referencing its provisional
// venue, within the submission transaction.
func (r *VenueRequestRepo) CreateTx(ctx context.Context, tx *sql.Tx, vr *model.VenueRequest) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO venue_requests
		 (requested_by_user_id,venue_name,address,suburb,city,state,postcode,website,instagram,notes,provisional_venue_id,status)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,'pending')`,
		vr.RequestedByUserID, vr.VenueName, vr.Address, vr.Suburb, vr.City, vr.State, vr.Postcode,
		vr.Website, vr.Instagram, vr.Notes, vr.ProvisionalVenueID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	vr.ID = uint64(id)
	vr.Status = model.VenueRequestPending
	return nil
}

// GetByIDTx loads a request inside an existing transaction.
func (r *VenueRequestRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (model.VenueRequest, error) {
	return scanRequest(tx.QueryRowContext(ctx, "SELECT "+requestCols+" FROM venue_requests WHERE id=?", id))
}

// GetByID loads a request outside a transaction.
func (r *VenueRequestRepo) GetByID(ctx context.Context, id uint64) (model.VenueRequest, error) {
	return scanRequest(r.DB.QueryRowContext(ctx, "SELECT "+requestCols+" FROM venue_requests WHERE id=?", id))
}

// HasPendingForRequester reports whether the user already has an open
// request under the same venue name.  Submission rejects duplicates
// so at most one review is ever in flight for the same ask.
func (r *VenueRequestRepo) HasPendingForRequester(ctx context.Context, userID uint64, venueName string) (bool, error) {
	var id uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM venue_requests WHERE requested_by_user_id=? AND venue_name=? AND status='pending' LIMIT 1",
		userID, venueName).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MarkReviewedTx stamps the decision onto a still-pending request.
// Returns false when the request was no longer pending, which the
// caller surfaces as a stale-state outcome.
func (r *VenueRequestRepo) MarkReviewedTx(ctx context.Context, tx *sql.Tx, id uint64, status model.VenueRequestStatus, reviewerID uint64) (bool, error) {
	res, err := tx.ExecContext(ctx,
		"UPDATE venue_requests SET status=?, reviewed_by_user_id=?, reviewed_at=NOW() WHERE id=? AND status='pending'",
		string(status), reviewerID, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListPending returns the admin review queue, oldest first.
func (r *VenueRequestRepo) ListPending(ctx context.Context) ([]model.VenueRequest, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+requestCols+" FROM venue_requests WHERE status='pending' ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.VenueRequest, 0)
	for rows.Next() {
		vr, err := scanRequestFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, vr)
	}
	return out, rows.Err()
}

func scanRequestFrom(s rowScanner) (model.VenueRequest, error) {
	var vr model.VenueRequest
	var status string
	var website, instagram, notes sql.NullString
	var reviewedBy sql.NullInt64
	var reviewedAt sql.NullTime
	err := s.Scan(&vr.ID, &vr.RequestedByUserID, &vr.VenueName, &vr.Address, &vr.Suburb, &vr.City,
		&vr.State, &vr.Postcode, &website, &instagram, &notes, &vr.ProvisionalVenueID,
		&status, &reviewedBy, &reviewedAt, &vr.CreatedAt)
	if err != nil {
		return model.VenueRequest{}, err
	}
	vr.Website = website.String
	vr.Instagram = instagram.String
	vr.Notes = notes.String
	vr.Status = model.VenueRequestStatus(status)
	if reviewedBy.Valid {
		id := uint64(reviewedBy.Int64)
		vr.ReviewedByUserID = &id
	}
	if reviewedAt.Valid {
		t := reviewedAt.Time
		vr.ReviewedAt = &t
	}
	return vr, nil
}

func scanRequest(row *sql.Row) (model.VenueRequest, error) { return scanRequestFrom(row) }
