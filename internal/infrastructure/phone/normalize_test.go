package phone

import "testing"

func TestNormalizeE164InRegion(t *testing.T) {
	cases := []struct {
		name, in, region, want string
	}{
		{"empty", "   ", "BR", ""},
		{"national br mobile", "(81) 99876-5432", "BR", "+5581998765432"},
		{"already international", "+1 650-253-0000", "BR", "+16502530000"},
		{"us national", "650 253 0000", "US", "+16502530000"},
		{"garbage kept trimmed", " call me ", "BR", "call me"},
		{"invalid number kept", "123", "BR", "123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeE164InRegion(tc.in, tc.region); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeE164_RegionFromEnv(t *testing.T) {
	t.Setenv("PHONE_DEFAULT_REGION", "us")
	if got := NormalizeE164("650 253 0000"); got != "+16502530000" {
		t.Fatalf("expected US number, got %q", got)
	}

	t.Setenv("PHONE_DEFAULT_REGION", "")
	if got := NormalizeE164("(81) 99876-5432"); got != "+5581998765432" {
		t.Fatalf("expected BR default, got %q", got)
	}
}
