package donation

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	models "github.com/AndrewCheung360/buy4good-go/models"
	store "github.com/AndrewCheung360/buy4good-go/store"
)

// MerchantContext carries the purchase context attached to a donation record.
type MerchantContext struct {
	MerchantName string
	ProductName  string
	MerchantLogo string
}

// RecordResult reports whether the donation record was persisted and the
// synthetic transaction id assigned to it.
type RecordResult struct {
	Success       bool
	TransactionID string
}

// Record persists a donation record for one allocation and bumps the
// user's running total. The total is only incremented when the record
// write succeeded, so totals never drift above retrievable records. The
// transaction id is generated locally; no donation-processor call happens
// on this path.
func Record(ctx context.Context, st store.Store, userID string, alloc Allocation, origTxID string, pct float64, merchant MerchantContext) RecordResult {
	txID := "donation_" + uuid.NewString()

	rec := models.DonationRecord{
		UserID:                userID,
		CharityID:             alloc.CharityID,
		CharityName:           alloc.CharityName,
		DonationAmount:        alloc.DonationAmount,
		TransactionID:         txID,
		OriginalTransactionID: origTxID,
		DonationPercentage:    pct,
		DonationDate:          time.Now(),
		MerchantName:          merchant.MerchantName,
		ProductName:           merchant.ProductName,
		MerchantLogo:          merchant.MerchantLogo,
	}

	if !st.CreateDonationRecord(ctx, rec) {
		log.Printf("donation record not persisted for user %s, skipping total update", userID)
		return RecordResult{Success: false, TransactionID: txID}
	}

	if !st.AddToUserTotal(ctx, userID, alloc.DonationAmount) {
		log.Printf("total donation update failed for user %s after record write", userID)
	}

	return RecordResult{Success: true, TransactionID: txID}
}
