package models

// AutoDonateRequest triggers the allocation pipeline for one purchase
// transaction. CharityID overrides the user's stored preferences when set.
type AutoDonateRequest struct {
	UserID                string  `json:"user_id" binding:"required"`
	Email                 string  `json:"email,omitempty"`
	TransactionAmount     float64 `json:"transaction_amount"`
	OriginalTransactionID string  `json:"original_transaction_id,omitempty"`
	DonationPercentage    float64 `json:"donation_percentage"`
	CharityID             string  `json:"charity_id,omitempty"`
	Date                  string  `json:"date,omitempty"`
	MerchantName          string  `json:"merchant_name,omitempty"`
	ProductName           string  `json:"product_name,omitempty"`
	MerchantLogo          string  `json:"merchant_logo,omitempty"`
}

type SimulateTransactionRequest struct {
	MerchantID string                 `json:"merchant_id" binding:"required"`
	Amount     string                 `json:"amount" binding:"required"`
	Currency   string                 `json:"currency"`
	UserID     string                 `json:"user_id,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

type SimulateTransactionResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	Commission    string `json:"commission,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// WebhookRequest is accepted and logged; signature verification is a
// pass-through stub.
type WebhookRequest struct {
	EventType string                 `json:"event_type" binding:"required"`
	Data      map[string]interface{} `json:"data" binding:"required"`
	Timestamp string                 `json:"timestamp" binding:"required"`
	Signature string                 `json:"signature,omitempty"`
}
