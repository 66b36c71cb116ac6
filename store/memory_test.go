package store

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	models "github.com/AndrewCheung360/buy4good-go/models"
)

func TestMemoryAccessTokenLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, ok := m.GetAccessToken(ctx, "u1"); ok {
		t.Fatal("expected no token before storing")
	}

	if !m.StoreAccessToken(ctx, "u1", "tok_A") {
		t.Fatal("store should succeed")
	}
	if token, ok := m.GetAccessToken(ctx, "u1"); !ok || token != "tok_A" {
		t.Errorf("token = %q, %v; want tok_A, true", token, ok)
	}

	// Latest write wins.
	m.StoreAccessToken(ctx, "u1", "tok_B")
	if token, _ := m.GetAccessToken(ctx, "u1"); token != "tok_B" {
		t.Errorf("token = %q, want tok_B after upsert", token)
	}

	if !m.DeleteAccessToken(ctx, "u1") {
		t.Error("delete should report true for an existing token")
	}
	if m.DeleteAccessToken(ctx, "u1") {
		t.Error("delete should report false when nothing is stored")
	}
}

func TestMemorySequentialTotals(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.AddToUserTotal(ctx, "u1", 5.0)
	m.AddToUserTotal(ctx, "u1", 3.0)

	if total := m.GetUserTotal(ctx, "u1"); math.Abs(total-8.0) > 1e-9 {
		t.Errorf("total = %v, want 8.0", total)
	}
	if total := m.GetUserTotal(ctx, "other"); total != 0 {
		t.Errorf("total for unknown user = %v, want 0", total)
	}
}

func TestMemoryConcurrentTotals(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.AddToUserTotal(ctx, "u1", 1.0)
		}()
	}
	wg.Wait()

	if total := m.GetUserTotal(ctx, "u1"); math.Abs(total-100.0) > 1e-9 {
		t.Errorf("total = %v, want 100.0 with no lost updates", total)
	}
}

func TestMemoryRecentDonationsNewestFirst(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	base := time.Now()
	for i := 0; i < 5; i++ {
		m.CreateDonationRecord(ctx, models.DonationRecord{
			UserID:        "u1",
			CharityID:     "c1",
			TransactionID: string(rune('a' + i)),
			DonationDate:  base.Add(time.Duration(i) * time.Hour),
		})
	}

	recs := m.GetRecentDonations(ctx, "u1", 3)
	if len(recs) != 3 {
		t.Fatalf("records = %d, want limit 3", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].DonationDate.After(recs[i-1].DonationDate) {
			t.Errorf("records not ordered newest first at index %d", i)
		}
	}
	if recs[0].TransactionID != "e" {
		t.Errorf("first record = %q, want the newest (e)", recs[0].TransactionID)
	}
}

func TestMemorySettingsLazyDefaults(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	settings := m.GetOrCreateSettings(ctx, "u1")
	if settings.AutoDonationPercentage != models.DefaultDonationPercentage {
		t.Errorf("percentage = %v, want default %v", settings.AutoDonationPercentage, models.DefaultDonationPercentage)
	}
	if settings.AutoDonateEnabled {
		t.Error("auto-donate should default to disabled")
	}

	enabled := true
	if !m.UpdateSettings(ctx, "u1", models.SettingsUpdate{AutoDonateEnabled: &enabled}) {
		t.Fatal("update should succeed")
	}

	settings = m.GetOrCreateSettings(ctx, "u1")
	if !settings.AutoDonateEnabled {
		t.Error("auto-donate should be enabled after update")
	}
	// Partial update must not touch the percentage.
	if settings.AutoDonationPercentage != models.DefaultDonationPercentage {
		t.Errorf("percentage changed by unrelated update: %v", settings.AutoDonationPercentage)
	}
}

func TestMemoryCharityPreferences(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.UpsertCharityPreference(ctx, models.CharityPreference{UserID: "u1", CharityID: "c1", CharityName: "One", AllocationPercentage: 40})
	m.UpsertCharityPreference(ctx, models.CharityPreference{UserID: "u1", CharityID: "c2", CharityName: "Two", AllocationPercentage: 60})

	prefs := m.GetCharityPreferences(ctx, "u1")
	if len(prefs) != 2 {
		t.Fatalf("preferences = %d, want 2", len(prefs))
	}
	if prefs[0].CharityID != "c1" {
		t.Errorf("first preference = %q, want insertion order preserved", prefs[0].CharityID)
	}

	// Upsert replaces in place, keeping order.
	m.UpsertCharityPreference(ctx, models.CharityPreference{UserID: "u1", CharityID: "c1", CharityName: "One", AllocationPercentage: 70})
	prefs = m.GetCharityPreferences(ctx, "u1")
	if len(prefs) != 2 || prefs[0].AllocationPercentage != 70 {
		t.Errorf("upsert should update the existing preference in place, got %+v", prefs)
	}

	if name, ok := m.GetCharityName(ctx, "c2"); !ok || name != "Two" {
		t.Errorf("GetCharityName(c2) = %q, %v; want Two, true", name, ok)
	}
	if _, ok := m.GetCharityName(ctx, "missing"); ok {
		t.Error("GetCharityName should miss for unknown charity")
	}
}
