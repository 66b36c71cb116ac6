package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonationRecord is one (transaction, charity) allocation. Append-only.
type DonationRecord struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID                string             `bson:"user_id" json:"user_id"`
	CharityID             string             `bson:"charity_id" json:"charity_id"`
	CharityName           string             `bson:"charity_name" json:"charity_name"`
	DonationAmount        float64            `bson:"donation_amount" json:"donation_amount"`
	TransactionID         string             `bson:"transaction_id" json:"transaction_id"`
	OriginalTransactionID string             `bson:"original_transaction_id,omitempty" json:"original_transaction_id,omitempty"`
	DonationPercentage    float64            `bson:"donation_percentage" json:"donation_percentage"`
	DonationDate          time.Time          `bson:"donation_date" json:"donation_date"`
	MerchantName          string             `bson:"merchant_name,omitempty" json:"merchant_name,omitempty"`
	ProductName           string             `bson:"product_name,omitempty" json:"product_name,omitempty"`
	MerchantLogo          string             `bson:"merchant_logo,omitempty" json:"merchant_logo,omitempty"`
}

// UserTotal tracks a user's running donation total. Mutated only by
// adding a new donation's amount, never decremented.
type UserTotal struct {
	UserID              string    `bson:"_id" json:"user_id"`
	TotalDonationAmount float64   `bson:"total_donation_amount" json:"total_donation_amount"`
	CreatedAt           time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt           time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// CharityPreference links a user to a charity with an allocation weight.
// Weights are validated to [0,100] per call; the sum across a user's
// preferences is intentionally not validated.
type CharityPreference struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID               string             `bson:"user_id" json:"user_id"`
	CharityID            string             `bson:"charity_id" json:"charity_id"`
	CharityName          string             `bson:"charity_name,omitempty" json:"charity_name,omitempty"`
	AllocationPercentage float64            `bson:"allocation_percentage" json:"allocation_percentage"`
	CreatedAt            time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt            time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
