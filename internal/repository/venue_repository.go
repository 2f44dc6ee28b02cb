package repository

import (
	"context"
	"database/sql"

	"github.com/choonlive/gig-platform/internal/model"
)

// VenueRepo provides persistence for venues.  Venues are created
// either approved (seeded by an admin) or provisional (approved=0,
// alongside a pending venue request).  The approval flip and the
// venue deletion happen only inside the workflow cascades, so those
// writes are exposed as Tx variants.
type VenueRepo struct{ DB *sql.DB }

func NewVenueRepo(db *sql.DB) *VenueRepo { return &VenueRepo{DB: db} }

const venueCols = "id,name,address,suburb,city,state,postcode,lat,lng,website,instagram,approved,created_at"

// CreateProvisionalTx inserts an unapproved venue row and populates
// the generated ID on the provided model.  It runs inside the venue
// request submission transaction: both the venue and its request are
// written or neither is.
func (r *VenueRepo) CreateProvisionalTx(ctx context.Context, tx *sql.Tx, v *model.Venue) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO venues (name,address,suburb,city,state,postcode,lat,lng,website,instagram,approved)
		 VALUES (?,?,?,?,?,?,?,?,?,?,0)`,
		v.Name, v.Address, v.Suburb, v.City, v.State, v.Postcode, v.Lat, v.Lng, v.Website, v.Instagram)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// GetByID returns a venue by id; sql.ErrNoRows when absent.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (model.Venue, error) {
	return scanVenue(r.DB.QueryRowContext(ctx, "SELECT "+venueCols+" FROM venues WHERE id=?", id))
}

// GetByIDTx is GetByID inside an existing transaction.
func (r *VenueRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Venue, error) {
	return scanVenue(tx.QueryRowContext(ctx, "SELECT "+venueCols+" FROM venues WHERE id=?", id))
}

// ApproveTx flips a venue live, overwriting its details with the
// reviewed request fields.  It reuses the provisional row's id; no
// second venue row is ever created for the same request.  Returns the
// affected-row count so callers can detect a missing provisional row.
func (r *VenueRepo) ApproveTx(ctx context.Context, tx *sql.Tx, id uint64, req model.VenueRequest) (int64, error) {
	res, err := tx.ExecContext(ctx,
		`UPDATE venues SET name=?, address=?, suburb=?, city=?, state=?, postcode=?, website=?, instagram=?, approved=1
		 WHERE id=?`,
		req.VenueName, req.Address, req.Suburb, req.City, req.State, req.Postcode, req.Website, req.Instagram, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteTx removes the venue row itself.  Callers must have already
// cascaded gigs and memberships inside the same transaction.
func (r *VenueRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id uint64) (int64, error) {
	res, err := tx.ExecContext(ctx, "DELETE FROM venues WHERE id=?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListApproved returns all live venues ordered by name, for public browse.
func (r *VenueRepo) ListApproved(ctx context.Context) ([]model.Venue, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+venueCols+" FROM venues WHERE approved=1 ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Venue, 0)
	for rows.Next() {
		v, err := scanVenueRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanVenueFrom(s rowScanner) (model.Venue, error) {
	var v model.Venue
	var website, instagram sql.NullString
	err := s.Scan(&v.ID, &v.Name, &v.Address, &v.Suburb, &v.City, &v.State, &v.Postcode,
		&v.Lat, &v.Lng, &website, &instagram, &v.Approved, &v.CreatedAt)
	if err != nil {
		return model.Venue{}, err
	}
	v.Website = website.String
	v.Instagram = instagram.String
	return v, nil
}

func scanVenue(row *sql.Row) (model.Venue, error)      { return scanVenueFrom(row) }
func scanVenueRows(rows *sql.Rows) (model.Venue, error) { return scanVenueFrom(rows) }
