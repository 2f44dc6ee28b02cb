package repository

import (
	"context"
	"database/sql"

	"github.com/choonlive/gig-platform/internal/model"
)

// ArtistRepo persists artist profiles.  Profile ownership
// (created_by_user_id) is the fact that authorizes a user to act on
// the artist side of a partnership.
type ArtistRepo struct{ DB *sql.DB }

func NewArtistRepo(db *sql.DB) *ArtistRepo { return &ArtistRepo{DB: db} }

// Create inserts a profile and returns its ID.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO artists (display_name, instagram, created_by_user_id) VALUES (?,?,?)",
		a.DisplayName, a.Instagram, a.CreatedByUserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID returns a profile by id; sql.ErrNoRows when absent.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (model.Artist, error) {
	var a model.Artist
	var instagram sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, display_name, instagram, created_by_user_id, created_at FROM artists WHERE id=?",
		id).Scan(&a.ID, &a.DisplayName, &instagram, &a.CreatedByUserID, &a.CreatedAt)
	if err != nil {
		return model.Artist{}, err
	}
	a.Instagram = instagram.String
	return a, nil
}

// IsOwnedBy reports whether the profile was created by the user.
func (r *ArtistRepo) IsOwnedBy(ctx context.Context, artistID, userID uint64) (bool, error) {
	var id uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM artists WHERE id=? AND created_by_user_id=? LIMIT 1",
		artistID, userID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns all artist profiles ordered by display name.
func (r *ArtistRepo) List(ctx context.Context) ([]model.Artist, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, display_name, instagram, created_by_user_id, created_at FROM artists ORDER BY display_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Artist, 0)
	for rows.Next() {
		var a model.Artist
		var instagram sql.NullString
		if err := rows.Scan(&a.ID, &a.DisplayName, &instagram, &a.CreatedByUserID, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Instagram = instagram.String
		out = append(out, a)
	}
	return out, rows.Err()
}
