package model

import "testing"

func TestInitialGigStatus(t *testing.T) {
	// Publish-then-review: an approved venue publishes immediately,
	// a provisional venue parks the gig behind the approval cascade.
	if got := InitialGigStatus(true); got != GigApproved {
		t.Errorf("approved venue: got %s, want %s", got, GigApproved)
	}
	if got := InitialGigStatus(false); got != GigPendingVenueApproval {
		t.Errorf("provisional venue: got %s, want %s", got, GigPendingVenueApproval)
	}
}

func TestModerationTarget(t *testing.T) {
	allowed := map[GigStatus]bool{
		GigApproved:      true,
		GigHidden:        true,
		GigOnHold:        true,
		GigInfoRequested: true,
		GigRemoved:       true,
	}
	all := []GigStatus{GigPending, GigPendingVenueApproval, GigApproved, GigOnHold,
		GigInfoRequested, GigHidden, GigRemoved, GigCancelled, GigStatus("bogus")}
	for _, s := range all {
		if got := s.ModerationTarget(); got != allowed[s] {
			t.Errorf("%s: ModerationTarget = %v, want %v", s, got, allowed[s])
		}
	}
}

func TestRequiresAdminNote(t *testing.T) {
	if !GigInfoRequested.RequiresAdminNote() {
		t.Errorf("info_requested must require a note")
	}
	for _, s := range []GigStatus{GigApproved, GigHidden, GigOnHold, GigRemoved} {
		if s.RequiresAdminNote() {
			t.Errorf("%s must not require a note", s)
		}
	}
}

func TestCancelResubmitLoop(t *testing.T) {
	for _, s := range []GigStatus{GigApproved, GigPending, GigPendingVenueApproval} {
		if !s.CanCancel() {
			t.Errorf("%s should be cancellable by its creator", s)
		}
	}
	for _, s := range []GigStatus{GigOnHold, GigInfoRequested, GigHidden, GigRemoved, GigCancelled} {
		if s.CanCancel() {
			t.Errorf("%s must stay out of the self-service loop", s)
		}
	}
	if !GigCancelled.CanResubmit() {
		t.Errorf("cancelled must be resubmittable")
	}
	if GigRemoved.CanResubmit() {
		t.Errorf("removed is terminal")
	}
}

func TestParsePriceType(t *testing.T) {
	for _, s := range []string{"Free", "Door", "Ticketed"} {
		if _, ok := ParsePriceType(s); !ok {
			t.Errorf("%s should parse", s)
		}
	}
	for _, s := range []string{"free", "", "Donation"} {
		if _, ok := ParsePriceType(s); ok {
			t.Errorf("%q should not parse", s)
		}
	}
}
