package store

import (
	"context"
	"log"

	config "github.com/AndrewCheung360/buy4good-go/config"
	models "github.com/AndrewCheung360/buy4good-go/models"
)

// Store persists per-user tokens, charity preferences, donation records,
// running totals and settings. Every operation reports success or absence
// through its return values rather than an error: callers check and decide
// whether a soft failure is user-visible.
type Store interface {
	StoreAccessToken(ctx context.Context, userID, token string) bool
	GetAccessToken(ctx context.Context, userID string) (string, bool)
	DeleteAccessToken(ctx context.Context, userID string) bool

	GetCharityPreferences(ctx context.Context, userID string) []models.CharityPreference
	UpsertCharityPreference(ctx context.Context, pref models.CharityPreference) bool
	GetCharityName(ctx context.Context, charityID string) (string, bool)

	CreateDonationRecord(ctx context.Context, rec models.DonationRecord) bool
	AddToUserTotal(ctx context.Context, userID string, amount float64) bool
	GetUserTotal(ctx context.Context, userID string) float64
	GetRecentDonations(ctx context.Context, userID string, limit int64) []models.DonationRecord

	GetOrCreateSettings(ctx context.Context, userID string) models.DonationSettings
	UpdateSettings(ctx context.Context, userID string, upd models.SettingsUpdate) bool
}

// New selects the storage mode once at process start: durable Mongo with a
// per-call ephemeral fallback when configured, plain in-memory otherwise.
func New(cfg *config.Config) Store {
	if cfg.MongoClient == nil {
		log.Println("durable store not configured, using in-memory storage only")
		return NewMemory()
	}
	return &fallbackStore{
		durable:   NewMongo(cfg),
		ephemeral: NewMemory(),
	}
}
