package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Merchant is a shopping partner in the cashback catalog.
type Merchant struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Domain       string             `bson:"domain,omitempty" json:"domain,omitempty"`
	CashbackRate float64            `bson:"cashback_rate" json:"cashback_rate"` // percent of purchase
	LogoURL      string             `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
