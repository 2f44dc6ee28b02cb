package workflow

import (
	"context"
	"database/sql"

	"github.com/choonlive/gig-platform/internal/repository"
)

// Engine is the workflow facade.  It owns no state beyond its
// repositories and the database handle used to open the one
// transaction each operation runs in.
type Engine struct {
	DB           *sql.DB
	Venues       *repository.VenueRepo
	Memberships  *repository.MembershipRepo
	Requests     *repository.VenueRequestRepo
	Gigs         *repository.GigRepo
	Partnerships *repository.PartnershipRepo
	Artists      *repository.ArtistRepo
}

// NewEngine constructs the facade and panics on a nil dependency,
// matching how handlers are wired.
func NewEngine(db *sql.DB, venues *repository.VenueRepo, memberships *repository.MembershipRepo,
	requests *repository.VenueRequestRepo, gigs *repository.GigRepo,
	partnerships *repository.PartnershipRepo, artists *repository.ArtistRepo) *Engine {
	if db == nil || venues == nil || memberships == nil || requests == nil || gigs == nil || partnerships == nil || artists == nil {
		panic("nil dependency passed to NewEngine")
	}
	return &Engine{
		DB:           db,
		Venues:       venues,
		Memberships:  memberships,
		Requests:     requests,
		Gigs:         gigs,
		Partnerships: partnerships,
		Artists:      artists,
	}
}

// withTx runs fn inside one transaction, rolling back on any error.
// The two venue cascades and every conditional status transition run
// through here so partial application is never observable.
func (e *Engine) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
