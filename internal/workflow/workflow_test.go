package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/choonlive/gig-platform/internal/guard"
	"github.com/choonlive/gig-platform/internal/model"
)

// The tests below exercise the paths that must fail before anything
// reaches the store: guard denials and payload validation.  A zero
// Engine is enough because these paths return before any repository
// or transaction is touched.

var (
	fan        = guard.Actor{ID: 1, Role: model.RoleFan}
	artist     = guard.Actor{ID: 2, Role: model.RoleArtist}
	venueAdmin = guard.Actor{ID: 3, Role: model.RoleVenueAdmin}
	admin      = guard.Actor{ID: 4, Role: model.RoleAdmin}
)

func wantValidation(t *testing.T, err error, field string) {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if ve.Field != field {
		t.Errorf("field = %q, want %q", ve.Field, field)
	}
}

func TestSetGigStatusRejectsNonAdmin(t *testing.T) {
	e := &Engine{}
	for _, actor := range []guard.Actor{fan, artist, venueAdmin} {
		if _, err := e.SetGigStatus(context.Background(), actor, 1, "approved", ""); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("role %s: got %v, want ErrUnauthorized", actor.Role, err)
		}
	}
}

func TestSetGigStatusRejectsNonModerationTargets(t *testing.T) {
	e := &Engine{}
	for _, status := range []string{"pending", "pending_venue_approval", "cancelled", "bogus", ""} {
		_, err := e.SetGigStatus(context.Background(), admin, 1, status, "note")
		wantValidation(t, err, "status")
	}
}

func TestSetGigStatusInfoRequestedRequiresNote(t *testing.T) {
	e := &Engine{}
	for _, note := range []string{"", "   "} {
		_, err := e.SetGigStatus(context.Background(), admin, 1, "info_requested", note)
		wantValidation(t, err, "admin_note")
	}
}

func TestReviewVenueRequestRejectsNonAdmin(t *testing.T) {
	e := &Engine{}
	if _, err := e.ReviewVenueRequest(context.Background(), venueAdmin, 1, "approve"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestReviewVenueRequestRejectsUnknownDecision(t *testing.T) {
	e := &Engine{}
	_, err := e.ReviewVenueRequest(context.Background(), admin, 1, "maybe")
	wantValidation(t, err, "decision")
}

func TestSubmitVenueRequestRejectsOtherRoles(t *testing.T) {
	e := &Engine{}
	for _, actor := range []guard.Actor{fan, artist, admin} {
		if _, err := e.SubmitVenueRequest(context.Background(), actor, VenueRequestInput{VenueName: "The Cellar", Address: "1 Main St"}); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("role %s: got %v, want ErrUnauthorized", actor.Role, err)
		}
	}
}

func TestSubmitVenueRequestRequiresNameAndAddress(t *testing.T) {
	e := &Engine{}
	_, err := e.SubmitVenueRequest(context.Background(), venueAdmin, VenueRequestInput{Address: "1 Main St"})
	wantValidation(t, err, "venue_name")

	_, err = e.SubmitVenueRequest(context.Background(), venueAdmin, VenueRequestInput{VenueName: "The Cellar"})
	wantValidation(t, err, "address")
}

func TestCreateGigValidation(t *testing.T) {
	e := &Engine{}
	base := GigInput{VenueID: 7, ArtistName: "Neon Koala", Date: "2026-10-01", StartTime: "19:30", PriceType: "Door"}

	cases := []struct {
		name   string
		mutate func(*GigInput)
		field  string
	}{
		{"missing venue", func(in *GigInput) { in.VenueID = 0 }, "venue_id"},
		{"missing artist name", func(in *GigInput) { in.ArtistName = "  " }, "artist_name"},
		{"missing date", func(in *GigInput) { in.Date = "" }, "date"},
		{"missing start time", func(in *GigInput) { in.StartTime = "" }, "start_time"},
		{"bad price type", func(in *GigInput) { in.PriceType = "Donation" }, "price_type"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			_, err := e.CreateGig(context.Background(), artist, in)
			wantValidation(t, err, tc.field)
		})
	}
}

func TestCreateGigDeniesBeforeValidating(t *testing.T) {
	e := &Engine{}
	// A denied caller gets ErrUnauthorized even when the payload is
	// also malformed; validation details are for authorized callers.
	for _, in := range []GigInput{
		{},
		{VenueID: 7},
		{VenueID: 7, ArtistName: "Neon Koala", Date: "2026-10-01", StartTime: "19:30", PriceType: "Donation"},
	} {
		if _, err := e.CreateGig(context.Background(), fan, in); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("fan with input %+v: got %v, want ErrUnauthorized", in, err)
		}
	}
}

func TestGigInputDefaults(t *testing.T) {
	in := GigInput{VenueID: 7, ArtistName: "Neon Koala", Date: "2026-10-01", StartTime: "19:30", PriceType: "Free", TicketPriceCents: 2500}
	if err := in.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if in.TicketPriceCents != 0 {
		t.Errorf("free gigs must zero the ticket price, got %d", in.TicketPriceCents)
	}
	if in.Description != fallbackGigDescription {
		t.Errorf("blank description must fall back, got %q", in.Description)
	}
	if in.PosterURL != fallbackPosterURL {
		t.Errorf("blank poster must fall back, got %q", in.PosterURL)
	}
	if in.Genres != "[]" || in.VibeTags != "[]" {
		t.Errorf("blank tag lists must default to empty JSON arrays, got %q %q", in.Genres, in.VibeTags)
	}
}

func TestCancelOrResubmitGigRejectsUnknownAction(t *testing.T) {
	e := &Engine{}
	_, err := e.CancelOrResubmitGig(context.Background(), artist, 1, "pause")
	wantValidation(t, err, "action")
}

func TestRequestPartnershipRequiresBothSides(t *testing.T) {
	e := &Engine{}
	_, err := e.RequestPartnership(context.Background(), artist, 0, 5)
	wantValidation(t, err, "venue_id")

	_, err = e.RequestPartnership(context.Background(), artist, 5, 0)
	wantValidation(t, err, "artist_id")
}

func TestRespondPartnershipRejectsUnknownDecision(t *testing.T) {
	e := &Engine{}
	_, err := e.RespondPartnership(context.Background(), artist, 1, "later")
	wantValidation(t, err, "decision")
}

func TestRemoveVenueRejectsNonAdmin(t *testing.T) {
	e := &Engine{}
	if _, err := e.RemoveVenue(context.Background(), venueAdmin, 1); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestDismissAndRemoveGigRejectNonAdmin(t *testing.T) {
	e := &Engine{}
	if err := e.DismissGigReviewFlag(context.Background(), venueAdmin, 1); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("dismiss: got %v, want ErrUnauthorized", err)
	}
	if err := e.RemoveGig(context.Background(), artist, 1); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("remove: got %v, want ErrUnauthorized", err)
	}
}
