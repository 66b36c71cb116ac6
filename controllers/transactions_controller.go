package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	config "github.com/AndrewCheung360/buy4good-go/config"
	donation "github.com/AndrewCheung360/buy4good-go/donation"
	models "github.com/AndrewCheung360/buy4good-go/models"
	store "github.com/AndrewCheung360/buy4good-go/store"
	utils "github.com/AndrewCheung360/buy4good-go/utils"
)

// ---------------- AUTO DONATE ----------------
// The core pipeline: preferences -> allocation -> record -> total.
func AutoDonate(cfg *config.Config, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.AutoDonateRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		prefs := st.GetCharityPreferences(ctx, input.UserID)
		merchant := donation.MerchantContext{
			MerchantName: input.MerchantName,
			ProductName:  input.ProductName,
			MerchantLogo: input.MerchantLogo,
		}

		// Proportional mode distributes across every preference by weight.
		if cfg.ProportionalAllocation && input.CharityID == "" && len(prefs) > 0 {
			allocs := donation.AllocateProportional(input.TransactionAmount, input.DonationPercentage, prefs)

			var donations []gin.H
			var distributed float64
			for _, alloc := range allocs {
				res := donation.Record(ctx, st, input.UserID, alloc, input.OriginalTransactionID, input.DonationPercentage, merchant)
				if res.Success {
					distributed += alloc.DonationAmount
				}
				donations = append(donations, gin.H{
					"success":         res.Success,
					"transaction_id":  res.TransactionID,
					"charity_id":      alloc.CharityID,
					"charity_name":    alloc.CharityName,
					"donation_amount": alloc.DonationAmount,
				})
			}

			c.JSON(http.StatusCreated, gin.H{
				"success":           true,
				"donations":         donations,
				"total_distributed": distributed,
			})
			return
		}

		alloc := donation.Allocate(input.TransactionAmount, input.DonationPercentage, input.CharityID, prefs)
		// An explicit charity outside the preference set may still have a
		// name on record from another user's preferences.
		if input.CharityID != "" && alloc.CharityName == alloc.CharityID {
			if name, ok := st.GetCharityName(ctx, input.CharityID); ok {
				alloc.CharityName = name
			}
		}

		res := donation.Record(ctx, st, input.UserID, alloc, input.OriginalTransactionID, input.DonationPercentage, merchant)
		if !res.Success {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record donation"})
			return
		}

		// Receipt email is best-effort.
		if input.Email != "" {
			if err := utils.SendDonationReceipt(input.Email, alloc.CharityName, alloc.DonationAmount); err != nil {
				log.Printf("donation receipt email failed for user %s: %v", input.UserID, err)
			}
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":         true,
			"transaction_id":  res.TransactionID,
			"charity_id":      alloc.CharityID,
			"charity_name":    alloc.CharityName,
			"donation_amount": alloc.DonationAmount,
		})
	}
}

// ---------------- SIMULATE ----------------
func SimulateTransaction(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.SimulateTransactionRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		amount, err := strconv.ParseFloat(input.Amount, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount format"})
			return
		}

		// Mock commission at 5% of the transaction amount.
		commission := strconv.FormatFloat(amount*0.05, 'f', 2, 64)

		c.JSON(http.StatusCreated, models.SimulateTransactionResponse{
			TransactionID: uuid.NewString(),
			Status:        "completed",
			Amount:        input.Amount,
			Commission:    commission,
			CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// ---------------- WEBHOOK ----------------
// Signature verification is a pass-through stub; events are logged only.
func HandleWebhook(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.WebhookRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		switch input.EventType {
		case "transaction.completed":
			log.Println("processing completed transaction webhook")
		case "commission.earned":
			log.Println("processing commission earned webhook")
		case "user.signup":
			log.Println("processing user signup webhook")
		default:
			log.Printf("unknown webhook event type: %s", input.EventType)
		}

		c.JSON(http.StatusOK, gin.H{
			"status":       "success",
			"message":      "Webhook event '" + input.EventType + "' processed successfully",
			"processed_at": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
