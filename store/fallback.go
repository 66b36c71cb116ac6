package store

import (
	"context"
	"log"

	models "github.com/AndrewCheung360/buy4good-go/models"
)

// fallbackStore routes every call to the durable store first and
// substitutes the ephemeral store when the durable call fails or misses.
// Degradation is a mode switch, logged at warning level, not an error.
type fallbackStore struct {
	durable   durableStore
	ephemeral *Memory
}

// durableStore is the Store surface plus the failure-distinguishing settings
// lookup the wrapper needs to decide when to serve from memory.
type durableStore interface {
	Store
	getOrCreateSettings(ctx context.Context, userID string) (models.DonationSettings, bool)
}

func (f *fallbackStore) StoreAccessToken(ctx context.Context, userID, token string) bool {
	if f.durable.StoreAccessToken(ctx, userID, token) {
		return true
	}
	log.Printf("warning: durable store unavailable, keeping access token in memory for user %s", userID)
	return f.ephemeral.StoreAccessToken(ctx, userID, token)
}

func (f *fallbackStore) GetAccessToken(ctx context.Context, userID string) (string, bool) {
	if token, ok := f.durable.GetAccessToken(ctx, userID); ok {
		return token, true
	}
	return f.ephemeral.GetAccessToken(ctx, userID)
}

func (f *fallbackStore) DeleteAccessToken(ctx context.Context, userID string) bool {
	durable := f.durable.DeleteAccessToken(ctx, userID)
	ephemeral := f.ephemeral.DeleteAccessToken(ctx, userID)
	return durable || ephemeral
}

func (f *fallbackStore) GetCharityPreferences(ctx context.Context, userID string) []models.CharityPreference {
	if prefs := f.durable.GetCharityPreferences(ctx, userID); len(prefs) > 0 {
		return prefs
	}
	return f.ephemeral.GetCharityPreferences(ctx, userID)
}

func (f *fallbackStore) UpsertCharityPreference(ctx context.Context, pref models.CharityPreference) bool {
	if f.durable.UpsertCharityPreference(ctx, pref) {
		return true
	}
	log.Printf("warning: durable store unavailable, keeping charity preference in memory for user %s", pref.UserID)
	return f.ephemeral.UpsertCharityPreference(ctx, pref)
}

func (f *fallbackStore) GetCharityName(ctx context.Context, charityID string) (string, bool) {
	if name, ok := f.durable.GetCharityName(ctx, charityID); ok {
		return name, true
	}
	return f.ephemeral.GetCharityName(ctx, charityID)
}

func (f *fallbackStore) CreateDonationRecord(ctx context.Context, rec models.DonationRecord) bool {
	if f.durable.CreateDonationRecord(ctx, rec) {
		return true
	}
	log.Printf("warning: durable store unavailable, keeping donation record in memory for user %s", rec.UserID)
	return f.ephemeral.CreateDonationRecord(ctx, rec)
}

func (f *fallbackStore) AddToUserTotal(ctx context.Context, userID string, amount float64) bool {
	if f.durable.AddToUserTotal(ctx, userID, amount) {
		return true
	}
	log.Printf("warning: durable store unavailable, tracking donation total in memory for user %s", userID)
	return f.ephemeral.AddToUserTotal(ctx, userID, amount)
}

func (f *fallbackStore) GetUserTotal(ctx context.Context, userID string) float64 {
	if total := f.durable.GetUserTotal(ctx, userID); total > 0 {
		return total
	}
	return f.ephemeral.GetUserTotal(ctx, userID)
}

func (f *fallbackStore) GetRecentDonations(ctx context.Context, userID string, limit int64) []models.DonationRecord {
	if recs := f.durable.GetRecentDonations(ctx, userID, limit); len(recs) > 0 {
		return recs
	}
	return f.ephemeral.GetRecentDonations(ctx, userID, limit)
}

func (f *fallbackStore) GetOrCreateSettings(ctx context.Context, userID string) models.DonationSettings {
	if settings, ok := f.durable.getOrCreateSettings(ctx, userID); ok {
		return settings
	}
	log.Printf("warning: durable store unavailable, serving settings from memory for user %s", userID)
	return f.ephemeral.GetOrCreateSettings(ctx, userID)
}

func (f *fallbackStore) UpdateSettings(ctx context.Context, userID string, upd models.SettingsUpdate) bool {
	if f.durable.UpdateSettings(ctx, userID, upd) {
		return true
	}
	log.Printf("warning: durable store unavailable, keeping settings in memory for user %s", userID)
	return f.ephemeral.UpdateSettings(ctx, userID, upd)
}
