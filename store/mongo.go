package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	config "github.com/AndrewCheung360/buy4good-go/config"
	models "github.com/AndrewCheung360/buy4good-go/models"
)

// Collection names in the durable store.
const (
	colTokens      = "tokens"
	colPreferences = "charity_preferences"
	colDonations   = "user_donations"
	colUsers       = "users"
	colSettings    = "user_settings"
)

// Mongo is the durable Store backed by named Mongo collections.
type Mongo struct {
	client *mongo.Client
	dbName string
}

func NewMongo(cfg *config.Config) *Mongo {
	return &Mongo{client: cfg.MongoClient, dbName: cfg.DBName}
}

func (m *Mongo) col(name string) *mongo.Collection {
	return m.client.Database(m.dbName).Collection(name)
}

// ---------------- ACCESS TOKENS ----------------

func (m *Mongo) StoreAccessToken(ctx context.Context, userID, token string) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.col(colTokens).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"access_token": token, "updated_at": time.Now()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Printf("error storing access token for user %s: %v", userID, err)
		return false
	}
	return true
}

func (m *Mongo) GetAccessToken(ctx context.Context, userID string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc struct {
		AccessToken string `bson:"access_token"`
	}
	err := m.col(colTokens).FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("error retrieving access token for user %s: %v", userID, err)
		}
		return "", false
	}
	return doc.AccessToken, true
}

func (m *Mongo) DeleteAccessToken(ctx context.Context, userID string) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := m.col(colTokens).DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		log.Printf("error deleting access token for user %s: %v", userID, err)
		return false
	}
	return res.DeletedCount > 0
}

// ---------------- CHARITY PREFERENCES ----------------

func (m *Mongo) GetCharityPreferences(ctx context.Context, userID string) []models.CharityPreference {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := m.col(colPreferences).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		log.Printf("error getting charity preferences for user %s: %v", userID, err)
		return nil
	}

	var prefs []models.CharityPreference
	if err := cursor.All(ctx, &prefs); err != nil {
		log.Printf("error decoding charity preferences for user %s: %v", userID, err)
		return nil
	}
	return prefs
}

func (m *Mongo) UpsertCharityPreference(ctx context.Context, pref models.CharityPreference) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	_, err := m.col(colPreferences).UpdateOne(ctx,
		bson.M{"user_id": pref.UserID, "charity_id": pref.CharityID},
		bson.M{
			"$set": bson.M{
				"charity_name":          pref.CharityName,
				"allocation_percentage": pref.AllocationPercentage,
				"updated_at":            now,
			},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Printf("error upserting charity preference for user %s: %v", pref.UserID, err)
		return false
	}
	return true
}

func (m *Mongo) GetCharityName(ctx context.Context, charityID string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc struct {
		CharityName string `bson:"charity_name"`
	}
	err := m.col(colPreferences).FindOne(ctx, bson.M{"charity_id": charityID}).Decode(&doc)
	if err != nil || doc.CharityName == "" {
		return "", false
	}
	return doc.CharityName, true
}

// ---------------- DONATIONS ----------------

func (m *Mongo) CreateDonationRecord(ctx context.Context, rec models.DonationRecord) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := m.col(colDonations).InsertOne(ctx, rec); err != nil {
		log.Printf("error creating donation record for user %s: %v", rec.UserID, err)
		return false
	}
	return true
}

// AddToUserTotal increments the running total with a single $inc upsert so
// concurrent donations for the same user cannot lose an update.
func (m *Mongo) AddToUserTotal(ctx context.Context, userID string, amount float64) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	_, err := m.col(colUsers).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{
			"$inc":         bson.M{"total_donation_amount": amount},
			"$set":         bson.M{"updated_at": now},
			"$setOnInsert": bson.M{"created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Printf("error updating total donation amount for user %s: %v", userID, err)
		return false
	}
	return true
}

func (m *Mongo) GetUserTotal(ctx context.Context, userID string) float64 {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.UserTotal
	err := m.col(colUsers).FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("error getting total donation amount for user %s: %v", userID, err)
		}
		return 0
	}
	return doc.TotalDonationAmount
}

func (m *Mongo) GetRecentDonations(ctx context.Context, userID string, limit int64) []models.DonationRecord {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "donation_date", Value: -1}}).
		SetLimit(limit)

	cursor, err := m.col(colDonations).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		log.Printf("error getting recent donations for user %s: %v", userID, err)
		return nil
	}

	var donations []models.DonationRecord
	if err := cursor.All(ctx, &donations); err != nil {
		log.Printf("error decoding recent donations for user %s: %v", userID, err)
		return nil
	}
	return donations
}

// ---------------- SETTINGS ----------------

func (m *Mongo) GetOrCreateSettings(ctx context.Context, userID string) models.DonationSettings {
	settings, _ := m.getOrCreateSettings(ctx, userID)
	return settings
}

// getOrCreateSettings reports false only when the collection is unreachable;
// a missing record still creates the default and counts as success.
func (m *Mongo) getOrCreateSettings(ctx context.Context, userID string) (models.DonationSettings, bool) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings models.DonationSettings
	err := m.col(colSettings).FindOne(ctx, bson.M{"_id": userID}).Decode(&settings)
	if err == nil {
		return settings, true
	}
	if err != mongo.ErrNoDocuments {
		log.Printf("error getting settings for user %s: %v", userID, err)
		return models.DefaultSettings(userID), false
	}

	settings = models.DefaultSettings(userID)
	settings.UpdatedAt = time.Now()
	if _, err := m.col(colSettings).InsertOne(ctx, settings); err != nil {
		log.Printf("error creating default settings for user %s: %v", userID, err)
	}
	return settings, true
}

func (m *Mongo) UpdateSettings(ctx context.Context, userID string, upd models.SettingsUpdate) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	onInsert := bson.M{}
	if upd.AutoDonationPercentage != nil {
		set["auto_donation_percentage"] = *upd.AutoDonationPercentage
	} else {
		onInsert["auto_donation_percentage"] = models.DefaultDonationPercentage
	}
	if upd.AutoDonateEnabled != nil {
		set["auto_donate_enabled"] = *upd.AutoDonateEnabled
	} else {
		onInsert["auto_donate_enabled"] = false
	}

	update := bson.M{"$set": set}
	if len(onInsert) > 0 {
		update["$setOnInsert"] = onInsert
	}

	_, err := m.col(colSettings).UpdateOne(ctx,
		bson.M{"_id": userID},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Printf("error updating settings for user %s: %v", userID, err)
		return false
	}
	return true
}
