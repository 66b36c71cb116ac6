package models

import "time"

// Defaults applied when a user's settings record is created lazily.
const (
	DefaultDonationPercentage = 0.01
	MaxDonationPercentage     = 0.10
)

// DonationSettings holds a user's auto-donation preferences, one record
// per user, created on first access with (0.01, false).
type DonationSettings struct {
	UserID                 string    `bson:"_id" json:"user_id"`
	AutoDonationPercentage float64   `bson:"auto_donation_percentage" json:"auto_donation_percentage"`
	AutoDonateEnabled      bool      `bson:"auto_donate_enabled" json:"auto_donate_enabled"`
	UpdatedAt              time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// SettingsUpdate carries partial settings changes; nil means unchanged.
type SettingsUpdate struct {
	AutoDonationPercentage *float64 `json:"auto_donation_percentage,omitempty"`
	AutoDonateEnabled      *bool    `json:"auto_donate_enabled,omitempty"`
}

// DefaultSettings returns the lazily-created settings record for a user.
func DefaultSettings(userID string) DonationSettings {
	return DonationSettings{
		UserID:                 userID,
		AutoDonationPercentage: DefaultDonationPercentage,
		AutoDonateEnabled:      false,
	}
}
