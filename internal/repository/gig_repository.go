package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/choonlive/gig-platform/internal/model"
)

// GigRepo provides persistence for gigs.  Gigs are never physically
// deleted: the removed status is terminal and every listing query
// excludes it.  Status transitions that must be race-safe (moderation,
// the creator cancel/resubmit loop, the venue cascades) are written as
// conditional updates whose affected-row count the workflow inspects.
type GigRepo struct{ DB *sql.DB }

func NewGigRepo(db *sql.DB) *GigRepo { return &GigRepo{DB: db} }

const gigCols = `id,venue_id,artist_name,artist_id,date,start_time,end_time,price_type,ticket_price_cents,
	ticket_url,description,genres,vibe_tags,poster_url,status,needs_review,admin_note,created_by_user_id,created_at,updated_at`

// CreateTx inserts a gig with its computed initial status and
// needs_review=1, populating the generated ID.
func (r *GigRepo) CreateTx(ctx context.Context, tx *sql.Tx, g *model.Gig) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO gigs (venue_id,artist_name,artist_id,date,start_time,end_time,price_type,ticket_price_cents,
		 ticket_url,description,genres,vibe_tags,poster_url,status,needs_review,created_by_user_id)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,1,?)`,
		g.VenueID, g.ArtistName, g.ArtistID, g.Date, g.StartTime, g.EndTime, string(g.PriceType), g.TicketPrice,
		g.TicketURL, g.Description, g.Genres, g.VibeTags, g.PosterURL, string(g.Status), g.CreatedByUserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = uint64(id)
	g.NeedsReview = true
	return nil
}

// GetByID returns a gig by id; sql.ErrNoRows when absent.
func (r *GigRepo) GetByID(ctx context.Context, id uint64) (model.Gig, error) {
	return scanGig(r.DB.QueryRowContext(ctx, "SELECT "+gigCols+" FROM gigs WHERE id=?", id))
}

// GetByIDTx is GetByID inside an existing transaction.
func (r *GigRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Gig, error) {
	return scanGig(tx.QueryRowContext(ctx, "SELECT "+gigCols+" FROM gigs WHERE id=?", id))
}

// UpdateContent rewrites a gig's content fields without touching
// status, needs_review or admin_note.
func (r *GigRepo) UpdateContent(ctx context.Context, g model.Gig) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE gigs SET artist_name=?, date=?, start_time=?, end_time=?, price_type=?, ticket_price_cents=?,
		 ticket_url=?, description=?, genres=?, vibe_tags=?, poster_url=?, updated_at=NOW()
		 WHERE id=?`,
		g.ArtistName, g.Date, g.StartTime, g.EndTime, string(g.PriceType), g.TicketPrice,
		g.TicketURL, g.Description, g.Genres, g.VibeTags, g.PosterURL, g.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SetStatusTx applies an admin moderation transition.  The update is
// conditional on the gig not already being removed, and every
// moderation write clears the review flag (needs_review is monotonic
// down; nothing sets it back except a fresh creation).  Returns the
// affected-row count.
func (r *GigRepo) SetStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status model.GigStatus, note string) (int64, error) {
	res, err := tx.ExecContext(ctx,
		"UPDATE gigs SET status=?, admin_note=?, needs_review=0, updated_at=NOW() WHERE id=? AND status<>'removed'",
		string(status), note, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// RemoveTx marks a gig removed without disturbing any admin note
// already on it.  Removed is terminal: the condition refuses to touch
// an already-removed row, and nothing transitions out of it.
func (r *GigRepo) RemoveTx(ctx context.Context, tx *sql.Tx, id uint64) (int64, error) {
	res, err := tx.ExecContext(ctx,
		"UPDATE gigs SET status='removed', needs_review=0, updated_at=NOW() WHERE id=? AND status<>'removed'", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DismissReviewTx clears the needs_review flag without touching the
// status.  Affected rows is zero when the flag was already clear.
func (r *GigRepo) DismissReviewTx(ctx context.Context, tx *sql.Tx, id uint64) (int64, error) {
	res, err := tx.ExecContext(ctx,
		"UPDATE gigs SET needs_review=0, updated_at=NOW() WHERE id=? AND needs_review=1", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ToggleByCreatorTx performs one step of the creator cancel/resubmit
// loop: it moves the gig from one of the allowed source states to the
// target, scoped to rows the creator owns.  A zero row count means
// the gig moved out from under the caller.
func (r *GigRepo) ToggleByCreatorTx(ctx context.Context, tx *sql.Tx, id, creatorID uint64, from []model.GigStatus, to model.GigStatus) (int64, error) {
	placeholders := make([]string, len(from))
	args := []interface{}{string(to), id, creatorID}
	for i, s := range from {
		placeholders[i] = "?"
		args = append(args, string(s))
	}
	q := "UPDATE gigs SET status=?, updated_at=NOW() WHERE id=? AND created_by_user_id=? AND status IN (" +
		strings.Join(placeholders, ",") + ")"
	res, err := tx.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CascadeApproveByVenueTx flips every gig blocked on the venue's
// approval to approved.  Part of the venue request approval
// transaction; returns how many gigs went live.
func (r *GigRepo) CascadeApproveByVenueTx(ctx context.Context, tx *sql.Tx, venueID uint64) (int64, error) {
	res, err := tx.ExecContext(ctx,
		"UPDATE gigs SET status='approved', updated_at=NOW() WHERE venue_id=? AND status='pending_venue_approval'",
		venueID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CascadeRemoveByVenueTx marks every non-removed gig under the venue
// as removed.  Part of the venue removal transaction.
func (r *GigRepo) CascadeRemoveByVenueTx(ctx context.Context, tx *sql.Tx, venueID uint64) (int64, error) {
	res, err := tx.ExecContext(ctx,
		"UPDATE gigs SET status='removed', updated_at=NOW() WHERE venue_id=? AND status<>'removed'",
		venueID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// PublicFilter narrows the public gig listing.  Zero values mean "no
// filter".  Only approved gigs are ever returned.
type PublicFilter struct {
	VenueID  uint64
	Suburb   string
	DateFrom string // inclusive, YYYY-MM-DD
	DateTo   string // inclusive, YYYY-MM-DD
}

// ListPublic returns approved gigs joined with their venue name,
// soonest first.  Used by the guest feed and search.
func (r *GigRepo) ListPublic(ctx context.Context, f PublicFilter) ([]PublicGig, error) {
	q := `SELECT g.id, g.venue_id, v.name, g.artist_name, g.artist_id, g.date, g.start_time, g.end_time,
	             g.price_type, g.ticket_price_cents, g.ticket_url, g.description, g.genres, g.vibe_tags, g.poster_url
	      FROM gigs g
	      JOIN venues v ON v.id = g.venue_id
	      WHERE g.status='approved' AND v.approved=1`
	args := []interface{}{}
	if f.VenueID != 0 {
		q += " AND g.venue_id=?"
		args = append(args, f.VenueID)
	}
	if f.Suburb != "" {
		q += " AND v.suburb=?"
		args = append(args, f.Suburb)
	}
	if f.DateFrom != "" {
		q += " AND g.date>=?"
		args = append(args, f.DateFrom)
	}
	if f.DateTo != "" {
		q += " AND g.date<=?"
		args = append(args, f.DateTo)
	}
	q += " ORDER BY g.date, g.start_time"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]PublicGig, 0)
	for rows.Next() {
		var g PublicGig
		var artistID sql.NullInt64
		var endTime, ticketURL, desc, poster sql.NullString
		if err := rows.Scan(&g.ID, &g.VenueID, &g.VenueName, &g.ArtistName, &artistID, &g.Date, &g.StartTime,
			&endTime, &g.PriceType, &g.TicketPriceCents, &ticketURL, &desc, &g.Genres, &g.VibeTags, &poster); err != nil {
			return nil, err
		}
		if artistID.Valid {
			id := uint64(artistID.Int64)
			g.ArtistID = &id
		}
		g.EndTime = endTime.String
		g.TicketURL = ticketURL.String
		g.Description = desc.String
		g.PosterURL = poster.String
		out = append(out, g)
	}
	return out, rows.Err()
}

// PublicGig is the sanitized listing row returned to guests.
type PublicGig struct {
	ID               uint64  `json:"id"`
	VenueID          uint64  `json:"venue_id"`
	VenueName        string  `json:"venue_name"`
	ArtistName       string  `json:"artist_name"`
	ArtistID         *uint64 `json:"artist_id,omitempty"`
	Date             string  `json:"date"`
	StartTime        string  `json:"start_time"`
	EndTime          string  `json:"end_time,omitempty"`
	PriceType        string  `json:"price_type"`
	TicketPriceCents uint32  `json:"ticket_price_cents"`
	TicketURL        string  `json:"ticket_url,omitempty"`
	Description      string  `json:"description,omitempty"`
	Genres           string  `json:"genres"`
	VibeTags         string  `json:"vibe_tags"`
	PosterURL        string  `json:"poster_url,omitempty"`
}

// ListByCreator returns every non-removed gig the user created,
// newest date first, for the my-gigs view.
func (r *GigRepo) ListByCreator(ctx context.Context, userID uint64) ([]model.Gig, error) {
	return r.list(ctx,
		"SELECT "+gigCols+" FROM gigs WHERE created_by_user_id=? AND status<>'removed' ORDER BY date DESC, start_time DESC",
		userID)
}

// ListFlagged returns gigs awaiting their first moderation pass,
// oldest first, for the admin review queue.
func (r *GigRepo) ListFlagged(ctx context.Context) ([]model.Gig, error) {
	return r.list(ctx,
		"SELECT "+gigCols+" FROM gigs WHERE needs_review=1 AND status<>'removed' ORDER BY created_at")
}

func (r *GigRepo) list(ctx context.Context, q string, args ...interface{}) ([]model.Gig, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Gig, 0)
	for rows.Next() {
		g, err := scanGigFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func scanGigFrom(s rowScanner) (model.Gig, error) {
	var g model.Gig
	var artistID sql.NullInt64
	var priceType, status string
	var endTime, ticketURL, desc, poster, note sql.NullString
	err := s.Scan(&g.ID, &g.VenueID, &g.ArtistName, &artistID, &g.Date, &g.StartTime, &endTime,
		&priceType, &g.TicketPrice, &ticketURL, &desc, &g.Genres, &g.VibeTags, &poster,
		&status, &g.NeedsReview, &note, &g.CreatedByUserID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return model.Gig{}, err
	}
	if artistID.Valid {
		id := uint64(artistID.Int64)
		g.ArtistID = &id
	}
	g.EndTime = endTime.String
	g.TicketURL = ticketURL.String
	g.Description = desc.String
	g.PosterURL = poster.String
	g.AdminNote = note.String
	g.PriceType = model.PriceType(priceType)
	g.Status = model.GigStatus(status)
	return g, nil
}

func scanGig(row *sql.Row) (model.Gig, error) { return scanGigFrom(row) }
