package model

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"fan", RoleFan, true},
		{"user", RoleFan, true}, // legacy alias
		{"artist", RoleArtist, true},
		{"venue_admin", RoleVenueAdmin, true},
		{"admin", RoleAdmin, true},
		{"Admin", "", false},
		{"owner", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseRole(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRegisterable(t *testing.T) {
	for _, r := range []Role{RoleFan, RoleArtist, RoleVenueAdmin} {
		if !r.Registerable() {
			t.Errorf("%s should be registerable", r)
		}
	}
	if RoleAdmin.Registerable() {
		t.Errorf("admin accounts are seeded, never self-registered")
	}
}

func TestParsePartnershipDecision(t *testing.T) {
	if s, ok := ParsePartnershipDecision("accept"); !ok || s != PartnershipAccepted {
		t.Errorf("accept: got (%q, %v)", s, ok)
	}
	if s, ok := ParsePartnershipDecision("declined"); !ok || s != PartnershipDeclined {
		t.Errorf("declined: got (%q, %v)", s, ok)
	}
	if _, ok := ParsePartnershipDecision("pending"); ok {
		t.Errorf("pending is not a decision")
	}
}
