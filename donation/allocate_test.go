package donation

import (
	"math"
	"testing"

	models "github.com/AndrewCheung360/buy4good-go/models"
)

func TestAllocateComputesAmount(t *testing.T) {
	cases := []struct {
		name     string
		txAmount float64
		pct      float64
		want     float64
	}{
		{"typical", 100.00, 0.02, 2.00},
		{"one percent", 49.99, 0.01, 0.4999},
		{"zero amount", 0, 0.05, 0},
		{"zero percentage", 250.00, 0, 0},
		{"full percentage", 10.00, 1.0, 10.00},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Allocate(tc.txAmount, tc.pct, "", nil)
			if math.Abs(got.DonationAmount-tc.want) > 1e-9 {
				t.Errorf("Allocate(%v, %v) amount = %v, want %v", tc.txAmount, tc.pct, got.DonationAmount, tc.want)
			}
		})
	}
}

func TestAllocateFallsBackToPlaceholderCharity(t *testing.T) {
	got := Allocate(100, 0.02, "", nil)
	if got.CharityID != PlaceholderCharityID {
		t.Errorf("charity id = %q, want %q", got.CharityID, PlaceholderCharityID)
	}
	if got.CharityName != PlaceholderCharityName {
		t.Errorf("charity name = %q, want %q", got.CharityName, PlaceholderCharityName)
	}
}

func TestAllocateUsesFirstPreferenceOnly(t *testing.T) {
	prefs := []models.CharityPreference{
		{CharityID: "c1", CharityName: "Charity One", AllocationPercentage: 40},
		{CharityID: "c2", CharityName: "Charity Two", AllocationPercentage: 60},
	}

	got := Allocate(50, 0.10, "", prefs)
	if got.CharityID != "c1" {
		t.Errorf("charity id = %q, want first preference c1", got.CharityID)
	}
	// 100% of the donation goes to the first preference; the weights on
	// each preference do not split it in default mode.
	if math.Abs(got.DonationAmount-5.0) > 1e-9 {
		t.Errorf("amount = %v, want full 5.0 to first preference", got.DonationAmount)
	}
}

func TestAllocateExplicitCharityWins(t *testing.T) {
	prefs := []models.CharityPreference{
		{CharityID: "c1", CharityName: "Charity One", AllocationPercentage: 100},
	}

	got := Allocate(10, 0.1, "c9", prefs)
	if got.CharityID != "c9" {
		t.Errorf("charity id = %q, want explicit c9", got.CharityID)
	}
	// Unknown explicit id resolves to itself until the store supplies a name.
	if got.CharityName != "c9" {
		t.Errorf("charity name = %q, want fallback to id", got.CharityName)
	}

	got = Allocate(10, 0.1, "c1", prefs)
	if got.CharityName != "Charity One" {
		t.Errorf("charity name = %q, want resolved from preferences", got.CharityName)
	}
}

func TestAllocateZeroStillAllocates(t *testing.T) {
	got := Allocate(0, 0, "", nil)
	if got.CharityID != PlaceholderCharityID || got.DonationAmount != 0 {
		t.Errorf("zero inputs should still produce a placeholder allocation, got %+v", got)
	}
}

func TestAllocateProportionalSplitsByWeight(t *testing.T) {
	prefs := []models.CharityPreference{
		{CharityID: "c1", CharityName: "Charity One", AllocationPercentage: 40},
		{CharityID: "c2", CharityName: "Charity Two", AllocationPercentage: 60},
	}

	got := AllocateProportional(100, 0.10, prefs)
	if len(got) != 2 {
		t.Fatalf("allocations = %d, want 2", len(got))
	}
	if math.Abs(got[0].DonationAmount-4.0) > 1e-9 {
		t.Errorf("c1 amount = %v, want 4.0", got[0].DonationAmount)
	}
	if math.Abs(got[1].DonationAmount-6.0) > 1e-9 {
		t.Errorf("c2 amount = %v, want 6.0", got[1].DonationAmount)
	}
}

func TestAllocateProportionalWithoutPreferences(t *testing.T) {
	got := AllocateProportional(100, 0.02, nil)
	if len(got) != 1 {
		t.Fatalf("allocations = %d, want 1", len(got))
	}
	if got[0].CharityID != PlaceholderCharityID {
		t.Errorf("charity id = %q, want placeholder", got[0].CharityID)
	}
}
